package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
)

type healthHandler struct {
	healthService portssvc.HealthSvcFacade
}

// registerHealthRoutes wires the liveness endpoints.
func registerHealthRoutes(r *gin.Engine, healthService portssvc.HealthSvcFacade) {
	h := &healthHandler{healthService: healthService}

	r.GET("/health", h.healthcheck)
	r.GET("/api/v1/healthcheck", h.healthcheck)
}

// healthcheck godoc
// @Summary Health check
// @Description Reports whether the service and its database are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 503 {object} dto.APIResponse
// @Router /healthcheck [get]
func (h *healthHandler) healthcheck(c *gin.Context) {
	if err := h.healthService.Check(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable,
			dto.NewErrorResponse(http.StatusServiceUnavailable, "service unavailable", "INTERNAL"))
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "OK"}, "healthy")
}
