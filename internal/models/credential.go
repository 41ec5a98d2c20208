package models

import "time"

// Credential — один bcrypt-хэш на сотрудника. Соль внутри хэша.
type Credential struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	EmployeeID   int64     `gorm:"uniqueIndex;not null" json:"employee_id"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
