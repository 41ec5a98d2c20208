package models

import "time"

// User — профиль сотрудника. DocumentID совпадает с Credential.EmployeeID.
// Role хранится строкой: значение из БД не доверенное и проверяется при логине.
type User struct {
	DocumentID int64     `gorm:"primaryKey;autoIncrement:false" json:"document_id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	Surname    string    `gorm:"size:120;not null" json:"surname"`
	Role       Role      `gorm:"size:32;not null" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
