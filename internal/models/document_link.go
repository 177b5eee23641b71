package models

import "time"

// DocumentLink is a titled URL on the reference shelf (standing orders,
// drug info, ...). Deleting deactivates instead of removing the row.
type DocumentLink struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Category  string    `gorm:"size:30;not null" json:"category"` // standing_order, drug_info, patient_care, guidelines
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateDocumentLinkInput struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Category string `json:"category" binding:"required,oneof=standing_order drug_info patient_care guidelines"`
}

type UpdateDocumentLinkInput struct {
	Title    string `json:"title"`
	URL      string `json:"url" binding:"omitempty,url"`
	Category string `json:"category" binding:"omitempty,oneof=standing_order drug_info patient_care guidelines"`
	IsActive *bool  `json:"is_active"`
}
