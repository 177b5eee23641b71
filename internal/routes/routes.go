package routes

import (
	"chemoward-backend/internal/handlers"
	"chemoward-backend/internal/middleware"
	"chemoward-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api")
	{
		// Auth: login is the only public endpoint
		api.POST("/auth/login", handlers.Login)

		// Everything else requires a valid token, then a per-route
		// permission check against the role table.
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/user", handlers.GetCurrentUser)

			// PATIENTS
			protected.GET("/patients", middleware.RequirePermission(rbac.PermViewPatients), handlers.GetPatients)
			protected.GET("/patients/:id", middleware.RequirePermission(rbac.PermViewPatients), handlers.GetPatient)
			protected.POST("/patients", middleware.RequirePermission(rbac.PermEditPatients), handlers.CreatePatient)
			protected.PUT("/patients/:id", middleware.RequirePermission(rbac.PermEditPatients), handlers.UpdatePatient)
			protected.DELETE("/patients/:id", middleware.RequirePermission(rbac.PermDeletePatients), handlers.DeletePatient)

			// APPOINTMENTS
			protected.GET("/appointments/today", middleware.RequirePermission(rbac.PermViewAppointments), handlers.GetTodayAppointments)
			protected.GET("/appointments/admitted", middleware.RequirePermission(rbac.PermViewAppointments), handlers.GetAdmittedPatients)
			protected.GET("/appointments/missed", middleware.RequirePermission(rbac.PermViewAppointments), handlers.GetMissedAppointments)
			protected.GET("/appointments/date-range", middleware.RequirePermission(rbac.PermViewAppointments), handlers.GetAppointmentsByDateRange)
			protected.POST("/appointments", middleware.RequirePermission(rbac.PermEditAppointments), handlers.CreateAppointment)
			protected.PUT("/appointments/:id", middleware.RequirePermission(rbac.PermEditAppointments), handlers.UpdateAppointment)

			// TREATMENT PLANS + PROTOCOL CYCLES
			protected.GET("/patients/:id/treatment-plans", middleware.RequirePermission(rbac.PermViewTreatmentPlans), handlers.GetPatientTreatmentPlans)
			protected.POST("/treatment-plans", middleware.RequirePermission(rbac.PermEditTreatmentPlans), handlers.CreateTreatmentPlan)
			protected.PUT("/treatment-plans/:id", middleware.RequirePermission(rbac.PermEditTreatmentPlans), handlers.UpdateTreatmentPlan)
			protected.GET("/treatment-plans/:id/protocols", middleware.RequirePermission(rbac.PermViewTreatmentPlans), handlers.GetProtocols)
			protected.POST("/treatment-plans/:id/protocols", middleware.RequirePermission(rbac.PermEditTreatmentPlans), handlers.CreateProtocol)

			// DIAGNOSES
			protected.GET("/patients/:id/diagnoses", middleware.RequirePermission(rbac.PermViewPatients), handlers.GetPatientDiagnoses)
			protected.POST("/diagnoses", middleware.RequirePermission(rbac.PermEditPatients), handlers.CreateDiagnosis)

			// LAB RESULTS
			protected.GET("/patients/:id/lab-results", middleware.RequirePermission(rbac.PermViewLabResults), handlers.GetPatientLabResults)
			protected.POST("/lab-results", middleware.RequirePermission(rbac.PermEditLabResults), handlers.CreateLabResult)

			// DOCUMENT LINKS
			protected.GET("/document-links", middleware.RequirePermission(rbac.PermAccessDocumentLinks), handlers.GetDocumentLinks)
			protected.POST("/document-links", middleware.RequirePermission(rbac.PermAccessDocumentLinks), handlers.CreateDocumentLink)
			protected.PUT("/document-links/:id", middleware.RequirePermission(rbac.PermAccessDocumentLinks), handlers.UpdateDocumentLink)
			protected.DELETE("/document-links/:id", middleware.RequirePermission(rbac.PermAccessDocumentLinks), handlers.DeleteDocumentLink)

			// DASHBOARD
			protected.GET("/dashboard/stats", middleware.RequirePermission(rbac.PermViewAppointments), handlers.GetDashboardStats)

			// USER MANAGEMENT (admin only via manage_users)
			protected.GET("/users", middleware.RequirePermission(rbac.PermManageUsers), handlers.GetUsers)
			protected.POST("/users", middleware.RequirePermission(rbac.PermManageUsers), handlers.CreateUser)
			protected.PUT("/users/:id/role", middleware.RequirePermission(rbac.PermManageUsers), handlers.UpdateUserRole)
		}
	}
}
