package handlers

import (
	"net/http"
	"time"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/models"
	"chemoward-backend/internal/scheduling"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the four counters on the ward dashboard.
// "waiting" means booked for today and not yet checked in.
func GetDashboardStats(c *gin.Context) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var todayCount int64
	config.DB.Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Count(&todayCount)

	var admittedCount int64
	config.DB.Model(&models.Appointment{}).
		Where("status = ? AND discharge_time IS NULL", scheduling.StatusCheckedIn).
		Count(&admittedCount)

	var waitingCount int64
	config.DB.Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ? AND status = ?",
			start, end, scheduling.StatusScheduled).
		Count(&waitingCount)

	var missedCount int64
	config.DB.Model(&models.Appointment{}).
		Where("status = ?", scheduling.StatusMissed).
		Count(&missedCount)

	utils.APIResponse(c, http.StatusOK, true, "Dashboard stats", gin.H{
		"todayAppointments":  todayCount,
		"admittedPatients":   admittedCount,
		"waitingPatients":    waitingCount,
		"missedAppointments": missedCount,
	})
}
