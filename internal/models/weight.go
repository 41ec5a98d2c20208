package models

import (
	"time"

	"gorm.io/datatypes"
)

// WeightRecord — запись взвешивания сотрудника за смену.
type WeightRecord struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EmployeeID int64          `gorm:"index;not null" json:"employee_id"`
	Shift      string         `gorm:"size:32;not null" json:"shift"`
	Area       string         `gorm:"size:120" json:"area"`
	WeightKg   float64        `gorm:"not null" json:"weight_kg"`
	RecordedOn datatypes.Date `json:"recorded_on"`
	Notes      string         `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
