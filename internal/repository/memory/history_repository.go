package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/domain/repository"
	"github.com/midpoint-service/internal/pkg/metrics"
)

// historyRepository keeps results for the lifetime of the process.
// Records are never updated or removed.
type historyRepository struct {
	mu      sync.RWMutex
	records []*domain.ResultRecord
	byID    map[uuid.UUID]*domain.ResultRecord
}

func NewHistoryRepository() repository.HistoryRepository {
	return &historyRepository{
		byID: make(map[uuid.UUID]*domain.ResultRecord),
	}
}

func (r *historyRepository) Append(_ context.Context, record *domain.ResultRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	r.byID[record.ID] = record
	metrics.HistorySize.Set(float64(len(r.records)))

	return nil
}

func (r *historyRepository) List(_ context.Context, limit int) ([]*domain.ResultRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.records)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]*domain.ResultRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, r.records[i])
	}

	return result, nil
}

func (r *historyRepository) Get(_ context.Context, id uuid.UUID) (*domain.ResultRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}
