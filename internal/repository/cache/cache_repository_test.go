package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestPlaceKey(t *testing.T) {
	assert.Equal(t, "geocode:roma", cache.PlaceKey("Roma"))
	assert.Equal(t, "geocode:san marino", cache.PlaceKey("  San   Marino "))
}

func TestCacheRepository_Place(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, zap.NewNop()))
	ctx := context.Background()

	name := "Test City " + time.Now().Format("150405.000000")
	defer client.Del(ctx, cache.PlaceKey(name))

	t.Run("miss", func(t *testing.T) {
		place, err := repo.GetPlace(ctx, name)
		require.NoError(t, err)
		assert.Nil(t, place)
	})

	t.Run("set and get", func(t *testing.T) {
		stored := &domain.CachedPlace{
			Coordinate: domain.Coordinate{Lat: 43.7696, Lon: 11.2558},
			Element:    domain.PlaceElement{"city": "Firenze"},
		}
		require.NoError(t, repo.SetPlace(ctx, name, stored, time.Minute))

		place, err := repo.GetPlace(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, stored.Coordinate, place.Coordinate)
		assert.Equal(t, "Firenze", place.Element["city"])

		exists, err := repo.Exists(ctx, cache.PlaceKey(name))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, cache.PlaceKey(name)))
		place, err := repo.GetPlace(ctx, name)
		require.NoError(t, err)
		assert.Nil(t, place)
	})
}
