package http

import (
	"net/http"

	"crypto-sentiment-analyzer/internal/analyzer/dto"
	"crypto-sentiment-analyzer/internal/analyzer/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service and model readiness.
type HealthHandler struct {
	analyzerService service.AnalyzerService
	version         string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(analyzerService service.AnalyzerService, version string) *HealthHandler {
	return &HealthHandler{analyzerService: analyzerService, version: version}
}

// RegisterRoutes registers the health route to the Echo group.
func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
}

// Health godoc
// @Summary Service health
// @Description Report service status and model readiness; the service accepts analysis requests only once models are loaded
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	loaded := h.analyzerService.Ready()
	status := "healthy"
	if !loaded {
		status = "initializing"
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       status,
		ModelsLoaded: loaded,
		Version:      h.version,
	})
}
