package models

import "time"

// User is a staff account. Role is assigned at provisioning and only an
// admin can change it; there is no self-service role switch.
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Role         string    `gorm:"size:20;not null;default:nurse" json:"role"` // admin, doctor, nurse
	PasswordHash string    `gorm:"not null" json:"-"`                          // never serialized
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateUserInput is the admin provisioning payload.
type CreateUserInput struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=admin doctor nurse"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required,oneof=admin doctor nurse"`
}
