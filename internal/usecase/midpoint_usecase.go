package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/domain/repository"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/pkg/metrics"
	"github.com/midpoint-service/internal/pkg/utils"
)

// MidpointUseCase - use case для вычисления точки встречи
type MidpointUseCase struct {
	geocoder  repository.GeocodingRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewMidpointUseCase - создание нового MidpointUseCase.
// cacheRepo may be nil, which disables the forward geocoding cache.
func NewMidpointUseCase(
	geocoder repository.GeocodingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MidpointUseCase {
	return &MidpointUseCase{
		geocoder:  geocoder,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// ComputeCenter geocodes 2 or 3 place names, computes their midpoint or
// centroid, reverse geocodes it and builds the star graph around it.
// Any failure aborts the run; no partial result is returned.
func (uc *MidpointUseCase) ComputeCenter(ctx context.Context, placeNames []string) (_ *domain.ResultRecord, err error) {
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.MidpointComputations.WithLabelValues(strconv.Itoa(len(placeNames)), outcome).Inc()
	}()

	names, err := validatePlaceNames(placeNames)
	if err != nil {
		return nil, err
	}

	// Шаг 1: прямое геокодирование всех точек (параллельно)
	inputs, err := uc.resolveInputs(ctx, names)
	if err != nil {
		uc.logger.Error("Failed to geocode inputs", zap.Strings("inputs", names), zap.Error(err))
		return nil, err
	}

	// Шаг 2: центр
	coords := make([]domain.Coordinate, len(inputs))
	for i, in := range inputs {
		coords[i] = in.Coordinate
	}
	center, err := utils.SphericalMean(coords)
	if err != nil {
		return nil, err
	}

	// Шаг 3: обратное геокодирование центра, без него результата нет
	centerElement, err := uc.geocoder.ReverseGeocode(ctx, center)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode center",
			zap.Float64("lat", center.Lat),
			zap.Float64("lon", center.Lon),
			zap.Error(err))
		return nil, err
	}

	// Шаг 4: расстояния и граф
	leaves := make([]domain.GraphNode, len(inputs))
	weights := make([]float64, len(inputs))
	for i, in := range inputs {
		leaves[i] = domain.GraphNode{ID: in.ID, Coordinate: in.Coordinate}
		weights[i] = utils.HaversineDistanceKm(in.Coordinate, center)
	}

	graph, err := domain.NewStarGraph(domain.GraphNode{ID: domain.CenterNodeID, Coordinate: center}, leaves, weights)
	if err != nil {
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	record := &domain.ResultRecord{
		ID:     uuid.New(),
		Inputs: inputs,
		Center: domain.CenterPoint{
			Coordinate: center,
			Element:    centerElement,
		},
		Graph:     graph,
		Paths:     graph.PairwisePaths(),
		CreatedAt: uc.now().UTC(),
	}

	uc.logger.Info("Center computed",
		zap.String("id", record.ID.String()),
		zap.Int("points", len(inputs)),
		zap.Float64("lat", center.Lat),
		zap.Float64("lon", center.Lon))

	return record, nil
}

// resolveInputs geocodes every name concurrently. The first failure cancels the rest.
func (uc *MidpointUseCase) resolveInputs(ctx context.Context, names []string) ([]domain.InputPoint, error) {
	inputs := make([]domain.InputPoint, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			coord, element, err := uc.geocodePlace(gctx, name)
			if err != nil {
				return err
			}
			inputs[i] = domain.InputPoint{
				ID:         domain.InputNodeID(i),
				Name:       name,
				Coordinate: coord,
				Element:    element,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// geocodePlace consults the cache before the remote service. The cache is
// best effort: its failures are logged and the remote service is used.
func (uc *MidpointUseCase) geocodePlace(ctx context.Context, name string) (domain.Coordinate, domain.PlaceElement, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetPlace(ctx, name)
		switch {
		case err != nil:
			uc.logger.Warn("Geocode cache read failed", zap.String("input", name), zap.Error(err))
		case cached != nil && cached.Coordinate.Valid():
			metrics.CacheHits.WithLabelValues("geocode").Inc()
			return cached.Coordinate, cached.Element, nil
		default:
			metrics.CacheMisses.WithLabelValues("geocode").Inc()
		}
	}

	coord, element, err := uc.geocoder.ForwardGeocode(ctx, name)
	if err != nil {
		return domain.Coordinate{}, nil, err
	}

	if uc.cacheRepo != nil {
		place := &domain.CachedPlace{Coordinate: coord, Element: element}
		if err := uc.cacheRepo.SetPlace(ctx, name, place, uc.cacheTTL); err != nil {
			uc.logger.Warn("Geocode cache write failed", zap.String("input", name), zap.Error(err))
		}
	}

	return coord, element, nil
}

// validatePlaceNames requires 2 or 3 names that are non-empty after trimming.
func validatePlaceNames(placeNames []string) ([]string, error) {
	if len(placeNames) < domain.MinInputPoints || len(placeNames) > domain.MaxInputPoints {
		return nil, errors.ErrInvalidInput.
			WithMessage("expected %d or %d place names, got %d", domain.MinInputPoints, domain.MaxInputPoints, len(placeNames)).
			WithDetails(map[string]interface{}{"count": len(placeNames)})
	}

	names := make([]string, len(placeNames))
	for i, name := range placeNames {
		names[i] = strings.TrimSpace(name)
		if names[i] == "" {
			return nil, errors.ErrInvalidInput.
				WithMessage("place name %s is empty", domain.InputNodeID(i)).
				WithDetails(map[string]interface{}{"index": i})
		}
	}

	return names, nil
}
