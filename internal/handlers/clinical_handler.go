package handlers

import (
	"net/http"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateDiagnosis records a disease/staging entry for a patient
func CreateDiagnosis(c *gin.Context) {
	var input models.CreateDiagnosisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid diagnosis input", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.Where("is_deleted = ?", false).First(&patient, input.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	diagnosis := models.Diagnosis{
		PatientID:       input.PatientID,
		DiseaseType:     input.DiseaseType,
		DiagnosisDate:   input.DiagnosisDate,
		Stage:           input.Stage,
		BonemarrowStudy: input.BonemarrowStudy,
		ImagingResults:  input.ImagingResults,
		PrognosticScore: input.PrognosticScore,
	}

	if err := config.DB.Create(&diagnosis).Error; err != nil {
		logger.L().WithError(err).Error("failed to create diagnosis")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create diagnosis", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Diagnosis recorded", diagnosis)
}

// GetPatientDiagnoses lists a patient's diagnoses, newest first
func GetPatientDiagnoses(c *gin.Context) {
	patientID := c.Param("id")

	var diagnoses []models.Diagnosis
	config.DB.
		Where("patient_id = ?", patientID).
		Order("diagnosis_date desc").
		Find(&diagnoses)

	utils.APIResponse(c, http.StatusOK, true, "Diagnoses", diagnoses)
}

// CreateLabResult stores one test. The values go in as raw JSON because
// each test type has its own keys.
func CreateLabResult(c *gin.Context) {
	var input models.CreateLabResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid lab result input", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.Where("is_deleted = ?", false).First(&patient, input.PatientID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	labResult := models.LabResult{
		PatientID: input.PatientID,
		TestType:  input.TestType,
		Results:   input.Results,
		TestDate:  input.TestDate,
	}

	if err := config.DB.Create(&labResult).Error; err != nil {
		logger.L().WithError(err).Error("failed to create lab result")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to save lab result", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Lab result saved", labResult)
}

// GetPatientLabResults lists a patient's lab results, newest first
func GetPatientLabResults(c *gin.Context) {
	patientID := c.Param("id")

	var results []models.LabResult
	config.DB.
		Where("patient_id = ?", patientID).
		Order("test_date desc").
		Find(&results)

	utils.APIResponse(c, http.StatusOK, true, "Lab results", results)
}
