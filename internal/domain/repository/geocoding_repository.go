package repository

import (
	"context"

	"github.com/midpoint-service/internal/domain"
)

// GeocodingRepository определяет методы для работы с удалённым сервисом геокодирования
type GeocodingRepository interface {
	// ForwardGeocode возвращает координаты и исходный элемент по названию места
	ForwardGeocode(ctx context.Context, placeName string) (domain.Coordinate, domain.PlaceElement, error)

	// ReverseGeocode возвращает описание места по координатам
	ReverseGeocode(ctx context.Context, point domain.Coordinate) (domain.PlaceElement, error)
}
