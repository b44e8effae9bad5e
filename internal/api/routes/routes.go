package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "voicemap/docs" // OpenAPI document
	"voicemap/internal/api/handlers"
	"voicemap/internal/api/services"
	"voicemap/internal/app/metrics"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	SpeechService services.SpeechService
	HealthService services.HealthService
	SignService   services.SignService
	Metrics       *metrics.Metrics
	FrontendDir   string
}

// RegisterRoutes registers every VoiceMap route on the root router
func RegisterRoutes(router *gin.Engine, container *ServiceContainer) {
	speechHandler := handlers.NewSpeechHandler(container.SpeechService)
	router.POST("/transcribe", speechHandler.Transcribe)
	router.POST("/sign-language", speechHandler.SignLanguage)

	if container.SignService != nil {
		signHandler := handlers.NewSignHandler(container.SignService)
		router.GET("/signs/:filename", signHandler.Get)
		router.HEAD("/signs/:filename", signHandler.Get)
	}

	if container.HealthService != nil {
		healthHandler := handlers.NewHealthHandler(container.HealthService)
		router.GET("/health", healthHandler.Get)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if container.Metrics != nil {
		router.GET("/metrics", gin.WrapH(container.Metrics.Handler()))
	}

	// Frontend: "/" is the index, any other unmatched path is looked up on disk
	staticHandler := handlers.NewStaticHandler(container.FrontendDir)
	router.GET("/", staticHandler.Index)
	router.HEAD("/", staticHandler.Index)
	router.NoRoute(staticHandler.Fallback)
	router.NoMethod(handlers.MethodNotAllowed)
}
