package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Weekdays custom type for storing the set of watering days as JSON
type Weekdays []string

func (w Weekdays) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	bytes, err := json.Marshal([]string(w))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (w *Weekdays) Scan(value interface{}) error {
	if value == nil {
		*w = Weekdays{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	if len(bytes) == 0 {
		*w = Weekdays{}
		return nil
	}
	return json.Unmarshal(bytes, w)
}

// NewWeekdays builds a Weekdays set, dropping blanks and repeated days
// while keeping the order of first appearance
func NewWeekdays(days []string) Weekdays {
	seen := make(map[string]bool, len(days))
	set := make(Weekdays, 0, len(days))
	for _, d := range days {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		set = append(set, d)
	}
	return set
}

// WateringSchedule represents a recurring irrigation plan (horario de riego) for a plot
type WateringSchedule struct {
	ID         uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	PlotID     uint     `json:"parcela_id" gorm:"column:parcela_id;not null;index"`
	DaysOfWeek Weekdays `json:"dias_semana" gorm:"column:dias_semana;type:text"`
	TimeOfDay  string   `json:"hora_riego" gorm:"column:hora_riego"`
	Active     bool     `json:"activo" gorm:"column:activo;not null;index"`

	// Relations
	Plot *Plot `json:"parcela,omitempty" gorm:"foreignKey:PlotID"`
}

// TableName sets the table name for WateringSchedule model
func (WateringSchedule) TableName() string {
	return "horarios_riego"
}
