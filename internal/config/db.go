package config

import (
	"os"

	"chemoward-backend/internal/models"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the shared gorm handle used by all handlers.
var DB *gorm.DB

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=chemoward port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.L().WithError(err).Fatal("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Diagnosis{},
		&models.TreatmentPlan{},
		&models.ChemotherapyProtocol{},
		&models.LabResult{},
		&models.Appointment{},
		&models.DocumentLink{},
	); err != nil {
		logger.L().WithError(err).Fatal("failed to migrate database schema")
	}

	DB = db
	logger.L().Info("connected to database")
}

// SeedAdmin provisions the first admin account from env when the users
// table is empty. Every later account is created through /api/users.
func SeedAdmin() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.L().Warn("users table is empty and ADMIN_EMAIL/ADMIN_PASSWORD are not set; no account can log in")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.L().WithError(err).Fatal("failed to hash admin password")
	}

	admin := models.User{
		Email:        email,
		FirstName:    "System",
		LastName:     "Admin",
		Role:         "admin",
		PasswordHash: hash,
	}
	if err := DB.Create(&admin).Error; err != nil {
		logger.L().WithError(err).Fatal("failed to seed admin account")
	}
	logger.L().WithField("email", email).Info("seeded initial admin account")
}
