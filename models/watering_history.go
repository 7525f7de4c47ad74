package models

import (
	"time"
)

// WateringHistory represents a logged irrigation event (historial de riego) for a plot
type WateringHistory struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PlotID            uint      `json:"parcela_id" gorm:"column:parcela_id;not null;index"`
	RecommendedLiters float64   `json:"litros_recomendados" gorm:"column:litros_recomendados;not null"`
	AppliedLiters     *float64  `json:"litros_aplicados" gorm:"column:litros_aplicados"`
	WateredAt         time.Time `json:"fecha_hora_riego" gorm:"column:fecha_hora_riego;not null;index"`
	Status            string    `json:"estado" gorm:"column:estado;index"`

	// Relations
	Plot *Plot `json:"parcela,omitempty" gorm:"foreignKey:PlotID"`
}

// TableName sets the table name for WateringHistory model
func (WateringHistory) TableName() string {
	return "historial_riego"
}
