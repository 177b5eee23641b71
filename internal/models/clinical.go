package models

import (
	"encoding/json"
	"time"
)

// Diagnosis is the staging record for a patient's disease.
type Diagnosis struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	PatientID       uint64    `gorm:"not null;index" json:"patient_id"`
	DiseaseType     string    `gorm:"size:100;not null" json:"disease_type"`
	DiagnosisDate   string    `gorm:"type:date;not null" json:"diagnosis_date"` // YYYY-MM-DD
	Stage           string    `gorm:"size:20" json:"stage"`                     // I-IV
	BonemarrowStudy string    `gorm:"type:text" json:"bonemarrow_study"`
	ImagingResults  string    `gorm:"type:text" json:"imaging_results"` // CT/MRI/PET
	PrognosticScore string    `gorm:"type:text" json:"prognostic_score"` // e.g. IPSS for MDS
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LabResult stores one test with its values as raw JSON, since every test
// type (CBC, BUN, creatinine, ...) carries a different set of keys.
type LabResult struct {
	ID        uint64          `gorm:"primaryKey" json:"id"`
	PatientID uint64          `gorm:"not null;index" json:"patient_id"`
	TestType  string          `gorm:"size:50;not null" json:"test_type"`
	Results   json.RawMessage `gorm:"type:jsonb;not null" json:"results"`
	TestDate  string          `gorm:"type:date;not null" json:"test_date"` // YYYY-MM-DD
	CreatedAt time.Time       `json:"created_at"`
}

type CreateDiagnosisInput struct {
	PatientID       uint64 `json:"patient_id" binding:"required"`
	DiseaseType     string `json:"disease_type" binding:"required"`
	DiagnosisDate   string `json:"diagnosis_date" binding:"required"`
	Stage           string `json:"stage"`
	BonemarrowStudy string `json:"bonemarrow_study"`
	ImagingResults  string `json:"imaging_results"`
	PrognosticScore string `json:"prognostic_score"`
}

type CreateLabResultInput struct {
	PatientID uint64          `json:"patient_id" binding:"required"`
	TestType  string          `json:"test_type" binding:"required"`
	Results   json.RawMessage `json:"results" binding:"required"`
	TestDate  string          `json:"test_date" binding:"required"`
}
