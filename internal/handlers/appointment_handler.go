package handlers

import (
	"errors"
	"net/http"
	"time"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/internal/scheduling"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateAppointment books a visit. New appointments always start out
// scheduled with no admission or discharge time.
func CreateAppointment(c *gin.Context) {
	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid appointment input", err.Error())
		return
	}

	// the patient must exist and not be soft-deleted
	var patient models.Patient
	if err := config.DB.Where("is_deleted = ?", false).First(&patient, input.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	appointment := models.Appointment{
		PatientID:            input.PatientID,
		TreatmentPlanID:      input.TreatmentPlanID,
		AppointmentDate:      input.AppointmentDate,
		AppointmentType:      input.AppointmentType,
		Status:               string(scheduling.StatusScheduled),
		ChemotherapyProtocol: input.ChemotherapyProtocol,
		RadiationHospital:    input.RadiationHospital,
		RadiationDate:        input.RadiationDate,
		BedNumber:            input.BedNumber,
		AttendingStaff:       input.AttendingStaff,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		logger.L().WithError(err).Error("failed to create appointment")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create appointment", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Appointment created", appointment)
}

// UpdateAppointment applies a partial edit. A status change goes through
// the lifecycle state machine; check-in uses a conditional update so a lost
// race gets 409 instead of overwriting an existing admission time. Other
// concurrent edits on the same row are last-write-wins.
func UpdateAppointment(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var input models.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid appointment input", err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Appointment not found", nil)
		return
	}

	updates := map[string]interface{}{}
	if input.AppointmentDate != nil {
		updates["appointment_date"] = *input.AppointmentDate
	}
	if input.AppointmentType != "" {
		updates["appointment_type"] = input.AppointmentType
	}
	if input.ChemotherapyProtocol != nil {
		updates["chemotherapy_protocol"] = *input.ChemotherapyProtocol
	}
	if input.RadiationHospital != nil {
		updates["radiation_hospital"] = *input.RadiationHospital
	}
	if input.RadiationDate != nil {
		updates["radiation_date"] = *input.RadiationDate
	}
	if input.BedNumber != nil {
		updates["bed_number"] = *input.BedNumber
	}
	if input.AttendingStaff != nil {
		updates["attending_staff"] = *input.AttendingStaff
	}

	checkIn := false
	if input.Status != "" && input.Status != appointment.Status {
		change, err := scheduling.Plan(
			scheduling.Status(appointment.Status),
			scheduling.Status(input.Status),
			input.RescheduleReason,
			time.Now(),
		)
		if err != nil {
			switch {
			case errors.Is(err, scheduling.ErrReasonRequired):
				utils.APIResponse(c, http.StatusBadRequest, false, "A reason is required for this status change", nil)
			case errors.Is(err, scheduling.ErrInvalidStatus):
				utils.APIResponse(c, http.StatusBadRequest, false, "Invalid appointment status", nil)
			default:
				utils.APIResponse(c, http.StatusBadRequest, false, "Invalid status transition", nil)
			}
			return
		}

		updates["status"] = string(change.Status)
		if change.AdmissionTime != nil {
			updates["admission_time"] = *change.AdmissionTime
			checkIn = true
		}
		if change.DischargeTime != nil {
			updates["discharge_time"] = *change.DischargeTime
		}
		if change.RescheduleReason != nil {
			updates["reschedule_reason"] = *change.RescheduleReason
		}
	}

	if len(updates) > 0 {
		query := config.DB.Model(&models.Appointment{}).Where("id = ?", id)
		if checkIn {
			// Guard against a concurrent check-in: only the request that
			// still sees the row as scheduled wins.
			query = query.Where("status = ?", scheduling.StatusScheduled)
		}

		res := query.Updates(updates)
		if res.Error != nil {
			logger.L().WithError(res.Error).Error("failed to update appointment")
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update appointment", nil)
			return
		}
		if checkIn && res.RowsAffected == 0 {
			utils.APIResponse(c, http.StatusConflict, false, "Appointment is already checked in", nil)
			return
		}
	}

	config.DB.First(&appointment, id)
	utils.APIResponse(c, http.StatusOK, true, "Appointment updated", appointment)
}

// GetTodayAppointments lists the current calendar day's appointments with
// their patient summaries.
func GetTodayAppointments(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date asc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Today's appointments", appointments)
}

// GetAdmittedPatients lists everyone currently admitted: checked in and not
// yet discharged. The ward phase is derived from the admission clock on
// every read, never stored.
func GetAdmittedPatients(c *gin.Context) {
	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Where("status = ? AND discharge_time IS NULL", scheduling.StatusCheckedIn).
		Order("admission_time asc").
		Find(&appointments)

	now := time.Now()
	admitted := make([]models.AdmittedAppointment, 0, len(appointments))
	for _, appt := range appointments {
		entry := models.AdmittedAppointment{Appointment: appt}
		if appt.AdmissionTime != nil {
			phase := scheduling.InpatientPhase(*appt.AdmissionTime, now)
			entry.InpatientStatus = string(phase)
			entry.InpatientLabel = scheduling.PhaseLabel(phase)
		}
		admitted = append(admitted, entry)
	}

	utils.APIResponse(c, http.StatusOK, true, "Admitted patients", admitted)
}

// GetMissedAppointments lists no-shows, newest first
func GetMissedAppointments(c *gin.Context) {
	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Where("status = ?", scheduling.StatusMissed).
		Order("appointment_date desc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Missed appointments", appointments)
}

// GetAppointmentsByDateRange serves the reporting/export queries.
// startDate and endDate are ISO dates; both bounds are inclusive whole days.
func GetAppointmentsByDateRange(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		utils.APIResponse(c, http.StatusBadRequest, false, "startDate and endDate are required", nil)
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid startDate", nil)
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid endDate", nil)
		return
	}

	var appointments []models.Appointment
	config.DB.
		Preload("Patient").
		Where("appointment_date >= ? AND appointment_date < ?", start, end.Add(24*time.Hour)).
		Order("appointment_date asc").
		Find(&appointments)

	utils.APIResponse(c, http.StatusOK, true, "Appointments", appointments)
}
