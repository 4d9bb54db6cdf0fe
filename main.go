package main

import (
	"fastfood-ui/config"
	"fastfood-ui/middleware"
	"fastfood-ui/repositories"
	"fastfood-ui/routes"
	"fastfood-ui/services"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := config.NewLogger(config.AppConfig)

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	sessions := repositories.NewSessionRepository(config.AppConfig.SessionTTL)
	stopSweeper := sessions.StartSweeper(10 * time.Minute)
	defer stopSweeper()

	client := services.NewClient(config.AppConfig.APIBaseURL, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging(logger))
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(router, sessions, client, logger)

	port := ":" + config.AppConfig.Port
	logger.Info().
		Str("port", config.AppConfig.Port).
		Str("env", config.AppConfig.AppEnv).
		Str("api", config.AppConfig.APIBaseURL).
		Msg("server starting")

	if err := router.Run(port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
