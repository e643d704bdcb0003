package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"crypto-sentiment-analyzer/internal/analyzer/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		wantStatus string
	}{
		{"models loaded", true, "healthy"},
		{"models loading", false, "initializing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAnalyzerService{ready: tt.ready}
			h := NewHealthHandler(svc, "1.0.0")

			e := echo.New()
			h.RegisterRoutes(e.Group(""))

			rec := doRequest(e, http.MethodGet, "/health", "")
			require.Equal(t, http.StatusOK, rec.Code)

			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.ready, resp.ModelsLoaded)
			assert.Equal(t, "1.0.0", resp.Version)
		})
	}
}
