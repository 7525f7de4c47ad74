package models

import (
	"time"
)

// Alert represents a notification (alerta) optionally tied to a sensor, a tree and/or a plot.
// The three references are independent and each may be null.
type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Type      string    `json:"tipo" gorm:"column:tipo;not null;index"`
	Message   string    `json:"mensaje" gorm:"column:mensaje;not null"`
	Severity  string    `json:"severidad" gorm:"column:severidad;not null;index"`
	SensorID  *uint     `json:"sensor_id" gorm:"column:sensor_id;index"`
	TreeID    *uint     `json:"arbol_id" gorm:"column:arbol_id;index"`
	PlotID    *uint     `json:"parcela_id" gorm:"column:parcela_id;index"`
	Resolved  bool      `json:"resuelta" gorm:"column:resuelta;not null;index"`
	Timestamp time.Time `json:"fecha_hora" gorm:"column:fecha_hora;not null;index"`

	// Relations
	Sensor *Sensor `json:"sensor,omitempty" gorm:"foreignKey:SensorID"`
	Tree   *Tree   `json:"arbol,omitempty" gorm:"foreignKey:TreeID"`
	Plot   *Plot   `json:"parcela,omitempty" gorm:"foreignKey:PlotID"`
}

// TableName sets the table name for Alert model
func (Alert) TableName() string {
	return "alertas"
}
