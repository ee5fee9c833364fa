package geocoding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/midpoint-service/internal/config"
	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/domain/repository"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/pkg/metrics"
)

const (
	geocodePath = "/geocode"
	reversePath = "/reverse"

	// ответы сервиса небольшие, 1 MiB с запасом
	maxResponseBytes = 1 << 20
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *zap.Logger
}

type geocodeRequest struct {
	Address string `json:"address"`
}

type reverseRequest struct {
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// NewGeocodingClient создает новый клиент для сервиса геокодирования
func NewGeocodingClient(cfg *config.GeocodingConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiToken: cfg.APIToken,
		logger:   logger,
	}
}

// ForwardGeocode возвращает координаты и исходный элемент по названию места
func (c *client) ForwardGeocode(ctx context.Context, placeName string) (domain.Coordinate, domain.PlaceElement, error) {
	if strings.TrimSpace(placeName) == "" {
		return domain.Coordinate{}, nil, errors.ErrInvalidInput.WithMessage("place name must not be empty")
	}

	operation := fmt.Sprintf("geocode '%s'", placeName)
	body, err := c.post(ctx, "forward", geocodePath, geocodeRequest{Address: placeName})
	if err != nil {
		return domain.Coordinate{}, nil, withInput(err, placeName)
	}

	element, err := normalizeEnvelope(body, operation)
	if err != nil {
		c.logger.Error("Unexpected geocoding response",
			zap.String("input", placeName),
			zap.ByteString("body", body),
			zap.Error(err))
		return domain.Coordinate{}, nil, withInput(err, placeName)
	}

	coord, err := coordinateFromElement(element, placeName)
	if err != nil {
		c.logger.Error("Geocoded element has no usable coordinates",
			zap.String("input", placeName),
			zap.Error(err))
		return domain.Coordinate{}, nil, err
	}

	c.logger.Debug("Place geocoded",
		zap.String("input", placeName),
		zap.Float64("lat", coord.Lat),
		zap.Float64("lon", coord.Lon))

	return coord, element, nil
}

// ReverseGeocode возвращает описание места по координатам
func (c *client) ReverseGeocode(ctx context.Context, point domain.Coordinate) (domain.PlaceElement, error) {
	body, err := c.post(ctx, "reverse", reversePath, reverseRequest{
		Type: "coordinates",
		Lat:  point.Lat,
		Long: point.Lon,
	})
	if err != nil {
		return nil, err
	}

	element, err := normalizeEnvelope(body, "reverse")
	if err != nil {
		c.logger.Error("Unexpected reverse geocoding response",
			zap.Float64("lat", point.Lat),
			zap.Float64("lon", point.Lon),
			zap.ByteString("body", body),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Point reverse geocoded",
		zap.Float64("lat", point.Lat),
		zap.Float64("lon", point.Lon))

	return element, nil
}

// post sends one authenticated JSON request and returns the body of a 2xx answer.
// Transport failures and non-2xx statuses are reported as ErrRemoteService.
func (c *client) post(ctx context.Context, operation, path string, payload interface{}) (_ []byte, err error) {
	if c.apiToken == "" {
		return nil, errors.ErrMissingCredential
	}

	started := time.Now()
	defer func() { metrics.ObserveGeocode(operation, started, err) }()

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling geocoding API",
		zap.String("operation", operation),
		zap.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, errors.ErrRemoteService.
			WithMessage("geocoding service unreachable (%s)", operation).
			WithDetails(map[string]interface{}{"operation": operation}).
			Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error("Failed to read response", zap.Error(err))
		return nil, errors.ErrRemoteService.
			WithMessage("failed to read geocoding response (%s)", operation).
			WithDetails(map[string]interface{}{"operation": operation}).
			Wrap(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Geocoding API returned error",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrRemoteService.
			WithMessage("geocoding API error: status %d", resp.StatusCode).
			WithDetails(map[string]interface{}{
				"operation":   operation,
				"status_code": resp.StatusCode,
				"body":        string(body),
			})
	}

	c.logger.Debug("Geocoding API call successful",
		zap.String("operation", operation),
		zap.Duration("duration", time.Since(started)))

	return body, nil
}

// withInput attaches the offending place name to an AppError.
func withInput(err error, placeName string) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.WithDetails(map[string]interface{}{"input": placeName})
	}
	return err
}
