package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/midpoint-service/internal/domain"
)

// HistoryRepository is an append-only store of computed results
type HistoryRepository interface {
	Append(ctx context.Context, record *domain.ResultRecord) error

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]*domain.ResultRecord, error)

	// Get returns the record with the given id or nil if absent
	Get(ctx context.Context, id uuid.UUID) (*domain.ResultRecord, error)
}
