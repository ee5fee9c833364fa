package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/domain/repository"
	"github.com/midpoint-service/internal/pkg/errors"
)

// HistoryUseCase - история вычисленных результатов
type HistoryUseCase struct {
	historyRepo  repository.HistoryRepository
	logger       *zap.Logger
	defaultLimit int
}

func NewHistoryUseCase(historyRepo repository.HistoryRepository, logger *zap.Logger, defaultLimit int) *HistoryUseCase {
	return &HistoryUseCase{
		historyRepo:  historyRepo,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// Record appends a finished result
func (uc *HistoryUseCase) Record(ctx context.Context, record *domain.ResultRecord) error {
	if err := uc.historyRepo.Append(ctx, record); err != nil {
		uc.logger.Error("Failed to append result to history", zap.String("id", record.ID.String()), zap.Error(err))
		return errors.ErrInternalServer.Wrap(err)
	}
	return nil
}

// List returns the newest results; limit <= 0 uses the configured default.
func (uc *HistoryUseCase) List(ctx context.Context, limit int) ([]*domain.ResultRecord, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	records, err := uc.historyRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list history", zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	return records, nil
}

func (uc *HistoryUseCase) Get(ctx context.Context, id string) (*domain.ResultRecord, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrInvalidRequest.
			WithMessage("invalid result id: %s", id).
			WithDetails(map[string]interface{}{"id": id})
	}

	record, err := uc.historyRepo.Get(ctx, parsed)
	if err != nil {
		uc.logger.Error("Failed to get result from history", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	if record == nil {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"id": id})
	}
	return record, nil
}
