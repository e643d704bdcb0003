package http

import (
	"errors"
	"net/http"
	"strconv"

	"crypto-sentiment-analyzer/internal/analyzer/dto"
	"crypto-sentiment-analyzer/internal/analyzer/service"
	"crypto-sentiment-analyzer/pkg/logger"
	"crypto-sentiment-analyzer/pkg/ratelimit"

	"github.com/labstack/echo/v4"
)

// AnalyzerHandler handles HTTP requests for text analysis.
type AnalyzerHandler struct {
	analyzerService service.AnalyzerService
	logger          *logger.Logger
	limiter         *ratelimit.RequestLimiter
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(analyzerService service.AnalyzerService, logger *logger.Logger, limiter *ratelimit.RequestLimiter) *AnalyzerHandler {
	return &AnalyzerHandler{analyzerService: analyzerService, logger: logger, limiter: limiter}
}

// RegisterRoutes registers the analyzer routes to the Echo group.
func (h *AnalyzerHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analyze", h.Analyze, h.rateLimit)
	g.POST("/analyze/batch", h.AnalyzeBatch, h.rateLimit)
	// Kept for clients of the previous API surface.
	g.POST("/batch", h.AnalyzeBatch, h.rateLimit)
	g.GET("/analyses/recent", h.RecentAnalyses)
}

// rateLimit rejects requests over the configured per-minute budget.
func (h *AnalyzerHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.limiter != nil && !h.limiter.Allow() {
			return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Rate limit exceeded"})
		}
		return next(c)
	}
}

// Analyze godoc
// @Summary Analyze a text
// @Description Run sentiment, entity, keyword and impact analysis over a single text
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Text to analyze"
// @Success 200 {object} dto.AnalysisResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzerHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.analyzerService.Analyze(c.Request().Context(), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// AnalyzeBatch godoc
// @Summary Analyze a batch of texts
// @Description Analyze up to 100 texts in one request; a failing item yields a neutral placeholder
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.BatchAnalyzeRequest   true    "Texts to analyze"
// @Success 200 {object} dto.BatchAnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze/batch [post]
func (h *AnalyzerHandler) AnalyzeBatch(c echo.Context) error {
	var req dto.BatchAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.analyzerService.AnalyzeBatch(c.Request().Context(), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RecentAnalyses godoc
// @Summary List recent analyses
// @Description Return the newest stored analysis results
// @Tags analysis
// @Produce  json
// @Param   limit  query   int false   "Maximum results (default 20)"
// @Success 200 {array} dto.StoredAnalysisResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyses/recent [get]
func (h *AnalyzerHandler) RecentAnalyses(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit parameter"})
		}
		limit = parsed
	}

	analyses, err := h.analyzerService.RecentAnalyses(c.Request().Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Failed to get recent analyses", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get recent analyses"})
	}
	return c.JSON(http.StatusOK, analyses)
}

// errorResponse maps service errors to HTTP statuses.
func (h *AnalyzerHandler) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrTextTooLong),
		errors.Is(err, service.ErrInvalidContentType),
		errors.Is(err, service.ErrBatchSize):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotReady):
		return c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("Analysis failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Analysis failed: " + err.Error()})
	}
}
