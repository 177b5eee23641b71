package models

import "time"

// Patient is a ward patient. HN (hospital number) is the unit-wide unique
// identifier and is immutable after creation. Rows are soft-deleted via
// IsDeleted so historical appointments keep their joins.
type Patient struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	HN          string    `gorm:"uniqueIndex;size:20;not null" json:"hn"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	Age         int       `gorm:"not null" json:"age"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	LineID      string    `gorm:"size:100" json:"line_id"`
	Address     string    `gorm:"type:text" json:"address"`
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreatePatientInput struct {
	HN          string `json:"hn" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Age         int    `json:"age" binding:"required,min=0"`
	PhoneNumber string `json:"phone_number"`
	LineID      string `json:"line_id"`
	Address     string `json:"address"`
}

// UpdatePatientInput deliberately has no HN field: the hospital number
// never changes once assigned.
type UpdatePatientInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Age         *int   `json:"age"`
	PhoneNumber string `json:"phone_number"`
	LineID      string `json:"line_id"`
	Address     string `json:"address"`
}
