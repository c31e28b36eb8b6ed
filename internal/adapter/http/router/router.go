package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gcaponi/S4all-BOT/internal/adapter/http/handler"
	"github.com/gcaponi/S4all-BOT/internal/adapter/http/middleware"
	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

// Setup creates and configures the Gin router. The database and Redis
// clients may be nil when the corresponding backends are not configured;
// they are only used for health reporting here.
func Setup(classifyUC usecase.ClassifyUsecase, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(db, redisClient, classifyUC)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC)
	vocabularyHandler := handler.NewVocabularyHandler(classifyUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", classifyHandler.Classify)

		vocabulary := v1.Group("/vocabulary")
		{
			vocabulary.GET("", vocabularyHandler.Info)
			vocabulary.POST("/reload", vocabularyHandler.Reload)
		}
	}

	return router
}
