package handlers

import (
	"net/http"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDocumentLinks lists the active reference links grouped for the shelf
func GetDocumentLinks(c *gin.Context) {
	var links []models.DocumentLink
	config.DB.
		Where("is_active = ?", true).
		Order("category asc, title asc").
		Find(&links)

	utils.APIResponse(c, http.StatusOK, true, "Document links", links)
}

// CreateDocumentLink adds a link to the shelf
func CreateDocumentLink(c *gin.Context) {
	var input models.CreateDocumentLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid document link input", err.Error())
		return
	}

	link := models.DocumentLink{
		Title:    input.Title,
		URL:      input.URL,
		Category: input.Category,
		IsActive: true,
	}

	if err := config.DB.Create(&link).Error; err != nil {
		logger.L().WithError(err).Error("failed to create document link")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create document link", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Document link created", link)
}

// UpdateDocumentLink edits title/url/category or toggles activation
func UpdateDocumentLink(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateDocumentLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid document link input", err.Error())
		return
	}

	var link models.DocumentLink
	if err := config.DB.First(&link, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Document link not found", nil)
		return
	}

	if input.Title != "" {
		link.Title = input.Title
	}
	if input.URL != "" {
		link.URL = input.URL
	}
	if input.Category != "" {
		link.Category = input.Category
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&link).Error; err != nil {
		logger.L().WithError(err).Error("failed to update document link")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update document link", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Document link updated", link)
}

// DeleteDocumentLink deactivates a link; the row stays around so it can be
// restored from settings.
func DeleteDocumentLink(c *gin.Context) {
	id := c.Param("id")

	var link models.DocumentLink
	if err := config.DB.First(&link, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Document link not found", nil)
		return
	}

	if err := config.DB.Model(&link).Update("is_active", false).Error; err != nil {
		logger.L().WithError(err).Error("failed to deactivate document link")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete document link", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Document link deleted", nil)
}
