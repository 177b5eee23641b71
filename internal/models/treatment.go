package models

import "time"

// TreatmentPlan is a patient's course of treatment, optionally tied to a
// diagnosis.
type TreatmentPlan struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PatientID   uint64    `gorm:"not null;index" json:"patient_id"`
	DiagnosisID *uint64   `json:"diagnosis_id"`
	PlanType    string    `gorm:"size:20;not null" json:"plan_type"`               // chemotherapy, radiation, supportive
	Status      string    `gorm:"size:20;not null;default:active" json:"status"` // active, completed, discontinued
	StartDate   string    `gorm:"type:date" json:"start_date"`                   // YYYY-MM-DD
	EndDate     string    `gorm:"type:date" json:"end_date"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Protocols []ChemotherapyProtocol `gorm:"foreignKey:TreatmentPlanID" json:"protocols,omitempty"`
}

// ChemotherapyProtocol records one dosing cycle under a plan
// (R-CHOP, ABVD, ICE, ...).
type ChemotherapyProtocol struct {
	ID                    uint64    `gorm:"primaryKey" json:"id"`
	TreatmentPlanID       uint64    `gorm:"not null;index" json:"treatment_plan_id"`
	ProtocolName          string    `gorm:"size:100;not null" json:"protocol_name"`
	Cycle                 int       `gorm:"not null" json:"cycle"`
	TotalCycles           int       `json:"total_cycles"`
	BSA                   float64   `gorm:"type:decimal(5,2)" json:"bsa"` // body surface area
	CreatinineClearance   float64   `gorm:"type:decimal(5,2)" json:"creatinine_clearance"`
	AUC                   float64   `gorm:"type:decimal(5,2)" json:"auc"` // for carboplatin dosing
	DoseReduction         int       `json:"dose_reduction"`               // percent
	ReductionReason       string    `gorm:"type:text" json:"reduction_reason"`
	SideEffects           string    `gorm:"type:text" json:"side_effects"`
	SupportiveMedications string    `gorm:"type:text" json:"supportive_medications"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type CreateTreatmentPlanInput struct {
	PatientID   uint64  `json:"patient_id" binding:"required"`
	DiagnosisID *uint64 `json:"diagnosis_id"`
	PlanType    string  `json:"plan_type" binding:"required,oneof=chemotherapy radiation supportive"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Notes       string  `json:"notes"`
}

type UpdateTreatmentPlanInput struct {
	Status    string `json:"status" binding:"omitempty,oneof=active completed discontinued"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type CreateProtocolInput struct {
	ProtocolName          string  `json:"protocol_name" binding:"required"`
	Cycle                 int     `json:"cycle" binding:"required,min=1"`
	TotalCycles           int     `json:"total_cycles"`
	BSA                   float64 `json:"bsa"`
	CreatinineClearance   float64 `json:"creatinine_clearance"`
	AUC                   float64 `json:"auc"`
	DoseReduction         int     `json:"dose_reduction"`
	ReductionReason       string  `json:"reduction_reason"`
	SideEffects           string  `json:"side_effects"`
	SupportiveMedications string  `json:"supportive_medications"`
}
