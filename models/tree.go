package models

// Tree represents a single planted position (arbol) inside a plot grid
type Tree struct {
	ID            uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	PlotID        uint    `json:"parcela_id" gorm:"column:parcela_id;not null;index"`
	Row           int     `json:"fila" gorm:"column:fila;not null"`
	Column        int     `json:"columna" gorm:"column:columna;not null"`
	Status        string  `json:"estado" gorm:"column:estado;index"`
	StatusComment *string `json:"comentario_estado" gorm:"column:comentario_estado"`

	// Relations
	Plot    *Plot    `json:"parcela,omitempty" gorm:"foreignKey:PlotID"`
	Sensors []Sensor `json:"sensores,omitempty" gorm:"foreignKey:TreeID;constraint:OnDelete:CASCADE"`
	Alerts  []Alert  `json:"alertas,omitempty" gorm:"foreignKey:TreeID;constraint:OnDelete:SET NULL"`
}

// TableName sets the table name for Tree model
func (Tree) TableName() string {
	return "arboles"
}
