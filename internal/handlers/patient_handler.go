package handlers

import (
	"net/http"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreatePatient registers a new patient with their HN
func CreatePatient(c *gin.Context) {
	var input models.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient input", err.Error())
		return
	}

	patient := models.Patient{
		HN:          input.HN,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Age:         input.Age,
		PhoneNumber: input.PhoneNumber,
		LineID:      input.LineID,
		Address:     input.Address,
	}

	if err := config.DB.Create(&patient).Error; err != nil {
		// unique index on hn
		utils.APIResponse(c, http.StatusBadRequest, false, "HN is already registered", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Patient created", patient)
}

// GetPatients lists active patients, optionally filtered by ?search= over
// HN, name and phone number. Soft-deleted rows never show up here.
func GetPatients(c *gin.Context) {
	search := c.Query("search")

	var patients []models.Patient
	query := config.DB.Where("is_deleted = ?", false).Order("last_name asc")

	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"hn LIKE ? OR first_name LIKE ? OR last_name LIKE ? OR phone_number LIKE ?",
			like, like, like, like,
		)
	}

	query.Find(&patients)

	utils.APIResponse(c, http.StatusOK, true, "Patients", patients)
}

// GetPatient fetches one patient by id. Soft-deleted patients stay
// retrievable here so historical appointments keep resolving.
func GetPatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := config.DB.First(&patient, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient", patient)
}

// UpdatePatient edits contact/demographic fields. HN is immutable and is
// not part of the input struct.
func UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient input", err.Error())
		return
	}

	var patient models.Patient
	if err := config.DB.Where("is_deleted = ?", false).First(&patient, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	if input.FirstName != "" {
		patient.FirstName = input.FirstName
	}
	if input.LastName != "" {
		patient.LastName = input.LastName
	}
	if input.Age != nil {
		patient.Age = *input.Age
	}
	if input.PhoneNumber != "" {
		patient.PhoneNumber = input.PhoneNumber
	}
	if input.LineID != "" {
		patient.LineID = input.LineID
	}
	if input.Address != "" {
		patient.Address = input.Address
	}

	if err := config.DB.Save(&patient).Error; err != nil {
		logger.L().WithError(err).Error("failed to update patient")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update patient", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient updated", patient)
}

// DeletePatient soft-deletes: the row stays for historical appointment and
// treatment plan joins, it just disappears from lists and search.
func DeletePatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := config.DB.First(&patient, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
		return
	}

	if err := config.DB.Model(&patient).Update("is_deleted", true).Error; err != nil {
		logger.L().WithError(err).Error("failed to soft delete patient")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete patient", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Patient deleted", nil)
}
