package models

import (
	"time"

	"gorm.io/datatypes"
)

// EPPDelivery — выдача средств индивидуальной защиты (EPP) сотруднику.
type EPPDelivery struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	EmployeeID   int64          `gorm:"index;not null" json:"employee_id"`
	Item         string         `gorm:"size:120;not null" json:"item"`
	Quantity     int            `gorm:"not null" json:"quantity"`
	DeliveredOn  datatypes.Date `json:"delivered_on"`
	Observations string         `gorm:"size:500" json:"observations,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (EPPDelivery) TableName() string { return "epp_deliveries" }
