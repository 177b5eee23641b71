package main

import (
	"os"
	"time"

	"chemoward-backend/internal/config"
	"chemoward-backend/internal/routes"
	"chemoward-backend/pkg/logger"
	"chemoward-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		logger.L().Warn(".env file not found, using environment")
	}

	// 2. Connect DB and seed the first admin account
	config.ConnectDB()
	config.SeedAdmin()

	// 3. Init router
	r := gin.Default()

	// 4. Global middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	// 5. Routes
	routes.SetupRoutes(r)

	// 6. Health check
	r.GET("/health", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK", nil)
	})

	// 7. Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.L().Infof("server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		logger.L().WithError(err).Fatal("server stopped")
	}
}
