package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/usecase"
)

type staticGeocoder map[string]domain.Coordinate

func (g staticGeocoder) ForwardGeocode(_ context.Context, name string) (domain.Coordinate, domain.PlaceElement, error) {
	return g[name], domain.PlaceElement{"name": name}, nil
}

func (g staticGeocoder) ReverseGeocode(context.Context, domain.Coordinate) (domain.PlaceElement, error) {
	return domain.PlaceElement{"name": "center"}, nil
}

func newUseCase() *usecase.MidpointUseCase {
	geocoder := staticGeocoder{
		"Null Island": {Lat: 0, Lon: 0},
		"Equator 90E": {Lat: 0, Lon: 90},
	}
	return usecase.NewMidpointUseCase(geocoder, nil, zap.NewNop(), time.Hour)
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newUseCase(), []string{"Null Island", "Equator 90E"}, formatJSON, false, &out)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	midpoint := decoded["midpoint"].(map[string]interface{})
	assert.InDelta(t, 45, midpoint["lon"].(float64), 0.01)
}

func TestRun_GeoJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newUseCase(), []string{"Null Island", "Equator 90E"}, formatGeoJSON, true, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"FeatureCollection"`)
}

func TestRun_InvalidInput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), newUseCase(), []string{"Null Island"}, formatJSON, false, &out)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
	assert.Zero(t, out.Len())

	var errOut bytes.Buffer
	writeError(&errOut, err)
	assert.Contains(t, errOut.String(), errors.CodeInvalidInput)
}
