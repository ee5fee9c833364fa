package repository

import (
	"context"
	"time"

	"github.com/midpoint-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetPlace получает результат прямого геокодирования из кеша (nil при промахе)
	GetPlace(ctx context.Context, placeName string) (*domain.CachedPlace, error)

	// SetPlace сохраняет результат прямого геокодирования с TTL
	SetPlace(ctx context.Context, placeName string, place *domain.CachedPlace, ttl time.Duration) error
}
