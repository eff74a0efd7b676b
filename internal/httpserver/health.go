package httpserver

import (
	"context"
	"fmt"
	"net/http"

	configKafka "visibility-srv/config/kafka"
	configMinIO "visibility-srv/config/minio"
	configPostgre "visibility-srv/config/postgre"
	configRedis "visibility-srv/config/redis"
	"visibility-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI visibility report service"
	HealthVersion = "1.0.0"
	ServiceName   = "visibility-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// dependencyCheck is one dependency behind /ready. A failing required
// dependency makes the service not ready; an optional one only degrades it.
type dependencyCheck struct {
	name     string
	required bool
	check    func(ctx context.Context) error
}

// dependencyChecks uses the connectors' health checks. MinIO and Kafka are
// checked only when they were configured.
func dependencyChecks(cfg Config) []dependencyCheck {
	checks := []dependencyCheck{
		{name: "database", required: true, check: configPostgre.HealthCheck},
		{name: "redis", required: true, check: configRedis.HealthCheck},
	}
	if cfg.MinIO != nil {
		checks = append(checks, dependencyCheck{name: "minio", check: configMinIO.HealthCheck})
	}
	if cfg.KafkaProducer != nil {
		checks = append(checks, dependencyCheck{name: "kafka", check: func(context.Context) error {
			return configKafka.HealthCheck()
		}})
	}
	return checks
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic. Postgres and Redis are required; MinIO and Kafka only degrade readiness
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A required dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	data := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"minio":   "disabled",
		"kafka":   "disabled",
	}
	for _, dep := range srv.checks {
		err := dep.check(ctx)
		if err == nil {
			data[dep.name] = "connected"
			continue
		}
		if dep.required {
			srv.l.Errorf(ctx, "httpserver.readyCheck: %s health check failed: %v", dep.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": fmt.Sprintf("%s connection failed", dep.name),
				"error":   err.Error(),
			})
			return
		}
		srv.l.Warnf(ctx, "httpserver.readyCheck: %s health check failed: %v", dep.name, err)
		data[dep.name] = "degraded"
	}
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
