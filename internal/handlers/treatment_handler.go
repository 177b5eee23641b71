package handlers

import (
	"net/http"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateTreatmentPlan opens a treatment course for a patient
func CreateTreatmentPlan(c *gin.Context) {
	var input models.CreateTreatmentPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid treatment plan input", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.Where("is_deleted = ?", false).First(&patient, input.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	plan := models.TreatmentPlan{
		PatientID:   input.PatientID,
		DiagnosisID: input.DiagnosisID,
		PlanType:    input.PlanType,
		Status:      "active",
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		logger.L().WithError(err).Error("failed to create treatment plan")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create treatment plan", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Treatment plan created", plan)
}

// UpdateTreatmentPlan edits status/dates/notes on a plan
func UpdateTreatmentPlan(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateTreatmentPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid treatment plan input", err.Error())
		return
	}

	var plan models.TreatmentPlan
	if err := config.DB.First(&plan, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Treatment plan not found", nil)
		return
	}

	if input.Status != "" {
		plan.Status = input.Status
	}
	if input.StartDate != "" {
		plan.StartDate = input.StartDate
	}
	if input.EndDate != "" {
		plan.EndDate = input.EndDate
	}
	if input.Notes != "" {
		plan.Notes = input.Notes
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		logger.L().WithError(err).Error("failed to update treatment plan")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update treatment plan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Treatment plan updated", plan)
}

// GetPatientTreatmentPlans lists a patient's plans with their protocol
// cycles, newest first.
func GetPatientTreatmentPlans(c *gin.Context) {
	patientID := c.Param("id")

	var plans []models.TreatmentPlan
	config.DB.
		Preload("Protocols").
		Where("patient_id = ?", patientID).
		Order("start_date desc").
		Find(&plans)

	utils.APIResponse(c, http.StatusOK, true, "Treatment plans", plans)
}

// CreateProtocol records a chemo cycle under a plan
func CreateProtocol(c *gin.Context) {
	planID := utils.StringToUint64(c.Param("id"))

	var input models.CreateProtocolInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid protocol input", err.Error())
		return
	}

	var plan models.TreatmentPlan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Treatment plan not found", nil)
		return
	}

	protocol := models.ChemotherapyProtocol{
		TreatmentPlanID:       planID,
		ProtocolName:          input.ProtocolName,
		Cycle:                 input.Cycle,
		TotalCycles:           input.TotalCycles,
		BSA:                   input.BSA,
		CreatinineClearance:   input.CreatinineClearance,
		AUC:                   input.AUC,
		DoseReduction:         input.DoseReduction,
		ReductionReason:       input.ReductionReason,
		SideEffects:           input.SideEffects,
		SupportiveMedications: input.SupportiveMedications,
	}

	if err := config.DB.Create(&protocol).Error; err != nil {
		logger.L().WithError(err).Error("failed to create protocol")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create protocol", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Protocol recorded", protocol)
}

// GetProtocols lists the recorded cycles for a plan
func GetProtocols(c *gin.Context) {
	planID := c.Param("id")

	var protocols []models.ChemotherapyProtocol
	config.DB.
		Where("treatment_plan_id = ?", planID).
		Order("cycle asc").
		Find(&protocols)

	utils.APIResponse(c, http.StatusOK, true, "Protocols", protocols)
}
