package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gcaponi/S4all-BOT/internal/usecase"
)

// HealthHandler handles health check endpoints. The database and Redis are
// optional: the database is only configured when the vocabulary source is
// postgres, and Redis only when result caching is enabled. The classifier
// is always reported since the service is useless without it.
type HealthHandler struct {
	db       *gorm.DB
	redis    *redis.Client
	classify usecase.ClassifyUsecase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, redis *redis.Client, classify usecase.ClassifyUsecase) *HealthHandler {
	return &HealthHandler{
		db:       db,
		redis:    redis,
		classify: classify,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check classifier vocabulary
	if h.classify != nil {
		info, err := h.classify.VocabularyInfo(ctx)
		switch {
		case err != nil:
			components["classifier"] = "error: " + err.Error()
			healthy = false
		case vocabularyEntries(info) == 0:
			components["classifier"] = "error: empty vocabulary"
			healthy = false
		default:
			components["classifier"] = fmt.Sprintf("ok (%d vocabulary entries)", vocabularyEntries(info))
		}
	} else {
		components["classifier"] = "not configured"
		healthy = false
	}

	// Check database
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			components["database"] = "error: " + err.Error()
			healthy = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			components["database"] = "error: " + err.Error()
			healthy = false
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not configured"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready. Readiness gates on a loaded vocabulary and, for
// database-backed deployments, a reachable vocabulary store; the engine
// itself is in-memory and ready the moment it is constructed.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.classify == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "classifier not configured"})
		return
	}
	info, err := h.classify.VocabularyInfo(ctx)
	if err != nil || vocabularyEntries(info) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "vocabulary not loaded"})
		return
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database error"})
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func vocabularyEntries(info *usecase.VocabularyOutput) int {
	total := 0
	for _, n := range info.Counts {
		total += n
	}
	return total
}
