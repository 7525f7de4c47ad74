package models

import (
	"time"
)

// Plot represents a cultivated land unit (parcela) laid out as a rows x columns grid
type Plot struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"nombre" gorm:"column:nombre;not null"`
	Location     string    `json:"ubicacion" gorm:"column:ubicacion"`
	Rows         int       `json:"filas" gorm:"column:filas;not null"`
	Columns      int       `json:"columnas" gorm:"column:columnas;not null"`
	PlantingDate time.Time `json:"fecha_siembra" gorm:"column:fecha_siembra;not null"`
	CropID       string    `json:"cultivo_id" gorm:"column:cultivo_id;index"`
	SeasonID     string    `json:"epoca_id" gorm:"column:epoca_id;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Trees     []Tree             `json:"arboles,omitempty" gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE"`
	Schedules []WateringSchedule `json:"horariosRiego,omitempty" gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE"`
	History   []WateringHistory  `json:"historialRiego,omitempty" gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE"`
	Alerts    []Alert            `json:"alertas,omitempty" gorm:"foreignKey:PlotID;constraint:OnDelete:SET NULL"`
}

// TableName sets the table name for Plot model
func (Plot) TableName() string {
	return "parcelas"
}
