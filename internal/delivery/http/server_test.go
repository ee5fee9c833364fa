package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/config"
	"github.com/midpoint-service/internal/delivery/http/handler"
	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/repository/memory"
	"github.com/midpoint-service/internal/usecase"
)

type stubGeocoder struct{}

func (stubGeocoder) ForwardGeocode(_ context.Context, name string) (domain.Coordinate, domain.PlaceElement, error) {
	return domain.Coordinate{Lat: 10, Lon: float64(len(name))}, domain.PlaceElement{}, nil
}

func (stubGeocoder) ReverseGeocode(_ context.Context, _ domain.Coordinate) (domain.PlaceElement, error) {
	return domain.PlaceElement{}, nil
}

type stubHealth struct{ err error }

func (s stubHealth) Health(context.Context) error { return s.err }

func newTestServer(t *testing.T, cache HealthChecker) *Server {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 8080, AllowOrigins: "*"},
		Geocoding: config.GeocodingConfig{APIToken: "token", RequestTimeout: time.Second},
	}
	logger := zap.NewNop()
	h := handler.NewMidpointHandler(
		usecase.NewMidpointUseCase(stubGeocoder{}, nil, logger, time.Hour),
		usecase.NewHistoryUseCase(memory.NewHistoryRepository(), logger, 50),
		logger,
	)
	return NewServer(cfg, logger, h, cache)
}

func get(t *testing.T, s *Server, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name   string
		cache  HealthChecker
		status string
	}{
		{name: "without redis", cache: nil, status: "healthy"},
		{name: "redis ok", cache: stubHealth{}, status: "healthy"},
		{name: "redis down", cache: stubHealth{err: fmt.Errorf("connection refused")}, status: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, newTestServer(t, tt.cache), "/api/v1/health")
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(body, &decoded))
			assert.Equal(t, tt.status, decoded["status"])
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, nil)

	// one request so the http collectors have samples
	get(t, s, "/api/v1/health")

	resp, body := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "midpoint_http_requests_total")
}

func TestServer_UnknownRoute(t *testing.T) {
	resp, body := get(t, newTestServer(t, nil), "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var decoded map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "NOT_FOUND", decoded["error"]["code"])
}

func TestServer_MidpointRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	for _, url := range []string{"/api/midpoint", "/api/v1/midpoint", "/api/v1/midpoint/geojson"} {
		req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(`{"cityA":"Roma","cityB":"Milano"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.App().Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, url)
	}
}
