package handlers

import (
	"net/http"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists all staff accounts (admin only, gated in routes).
func GetUsers(c *gin.Context) {
	var users []models.User
	config.DB.Order("created_at asc").Find(&users)

	utils.APIResponse(c, http.StatusOK, true, "All users", users)
}

// CreateUser provisions a staff account with its role. This is the only way
// a role is assigned; there is no self-registration.
func CreateUser(c *gin.Context) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid user input", err.Error())
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.L().WithError(err).Error("failed to hash password")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to process password", nil)
		return
	}

	user := models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		PasswordHash: hash,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Email is already registered", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "User created", user)
}

// UpdateUserRole reassigns a user's role.
func UpdateUserRole(c *gin.Context) {
	id := c.Param("id")

	var input models.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid role input", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	if err := config.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		logger.L().WithError(err).Error("failed to update user role")
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update role", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Role updated", user)
}
