package models

import "time"

// Appointment is one visit slot for a patient. Status moves through the
// lifecycle in internal/scheduling; AdmissionTime and DischargeTime are
// stamped only by the check-in and discharge transitions.
type Appointment struct {
	ID                   uint64     `gorm:"primaryKey" json:"id"`
	PatientID            uint64     `gorm:"not null;index" json:"patient_id"`
	TreatmentPlanID      *uint64    `json:"treatment_plan_id"`
	AppointmentDate      time.Time  `gorm:"not null;index" json:"appointment_date"`
	AppointmentType      string     `gorm:"size:20;not null" json:"appointment_type"` // chemotherapy, radiation, followup
	Status               string     `gorm:"size:20;not null;default:scheduled;index" json:"status"`
	ChemotherapyProtocol string     `gorm:"size:100" json:"chemotherapy_protocol"`
	RadiationHospital    string     `gorm:"size:100" json:"radiation_hospital"`
	RadiationDate        string     `gorm:"type:date" json:"radiation_date"` // YYYY-MM-DD
	BedNumber            string     `gorm:"size:20" json:"bed_number"`
	AttendingStaff       string     `gorm:"size:100" json:"attending_staff"`
	AdmissionTime        *time.Time `json:"admission_time"`
	DischargeTime        *time.Time `json:"discharge_time"`
	RescheduleReason     string     `gorm:"type:text" json:"reschedule_reason"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

type CreateAppointmentInput struct {
	PatientID            uint64    `json:"patient_id" binding:"required"`
	TreatmentPlanID      *uint64   `json:"treatment_plan_id"`
	AppointmentDate      time.Time `json:"appointment_date" binding:"required"` // RFC3339, e.g. 2025-11-20T08:00:00Z
	AppointmentType      string    `json:"appointment_type" binding:"required,oneof=chemotherapy radiation followup"`
	ChemotherapyProtocol string    `json:"chemotherapy_protocol"`
	RadiationHospital    string    `json:"radiation_hospital"`
	RadiationDate        string    `json:"radiation_date"`
	BedNumber            string    `json:"bed_number"`
	AttendingStaff       string    `json:"attending_staff"`
}

// UpdateAppointmentInput is a partial update. A non-empty Status triggers a
// lifecycle transition; everything else is a plain field edit.
type UpdateAppointmentInput struct {
	AppointmentDate      *time.Time `json:"appointment_date"`
	AppointmentType      string     `json:"appointment_type" binding:"omitempty,oneof=chemotherapy radiation followup"`
	Status               string     `json:"status"`
	ChemotherapyProtocol *string    `json:"chemotherapy_protocol"`
	RadiationHospital    *string    `json:"radiation_hospital"`
	RadiationDate        *string    `json:"radiation_date"`
	BedNumber            *string    `json:"bed_number"`
	AttendingStaff       *string    `json:"attending_staff"`
	RescheduleReason     string     `json:"reschedule_reason"`
}

// AdmittedAppointment decorates an appointment with the derived ward phase.
// The phase is computed from the admission clock at read time, never stored.
type AdmittedAppointment struct {
	Appointment
	InpatientStatus string `json:"inpatient_status"`
	InpatientLabel  string `json:"inpatient_label"`
}
