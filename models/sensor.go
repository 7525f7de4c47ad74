package models

// Sensor is a monitoring device attached to a tree. Readings live in an
// external telemetry store; DataPath points at them.
type Sensor struct {
	ID       uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	TreeID   uint    `json:"arbol_id" gorm:"column:arbol_id;not null;index"`
	Type     string  `json:"tipo" gorm:"column:tipo;not null;index"`
	DataPath *string `json:"firebase_path" gorm:"column:firebase_path"`

	// Relations
	Tree   *Tree   `json:"arbol,omitempty" gorm:"foreignKey:TreeID"`
	Alerts []Alert `json:"alertas,omitempty" gorm:"foreignKey:SensorID;constraint:OnDelete:SET NULL"`
}

// TableName sets the table name for Sensor model
func (Sensor) TableName() string {
	return "sensores"
}
