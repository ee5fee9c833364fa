package usecase_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/usecase"
)

func TestHistoryUseCase_List(t *testing.T) {
	t.Run("non-positive limit uses default", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		records := []*domain.ResultRecord{{ID: uuid.New()}}
		repo.On("List", mock.Anything, 50).Return(records, nil).Once()

		got, err := uc.List(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, records, got)
		repo.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		repo.On("List", mock.Anything, 5).Return([]*domain.ResultRecord{}, nil).Once()

		got, err := uc.List(context.Background(), 5)
		require.NoError(t, err)
		assert.Empty(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		repo.On("List", mock.Anything, 50).Return(nil, fmt.Errorf("boom"))

		_, err := uc.List(context.Background(), -1)
		assert.True(t, stderrors.Is(err, errors.ErrInternalServer))
	})
}

func TestHistoryUseCase_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		record := &domain.ResultRecord{ID: id}
		repo.On("Get", mock.Anything, id).Return(record, nil)

		got, err := uc.Get(context.Background(), id.String())
		require.NoError(t, err)
		assert.Same(t, record, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		repo.On("Get", mock.Anything, id).Return(nil, nil)

		_, err := uc.Get(context.Background(), id.String())
		assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := &MockHistoryRepository{}
		uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

		_, err := uc.Get(context.Background(), "not-a-uuid")
		assert.True(t, stderrors.Is(err, errors.ErrInvalidRequest))
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestHistoryUseCase_Record(t *testing.T) {
	repo := &MockHistoryRepository{}
	uc := usecase.NewHistoryUseCase(repo, zap.NewNop(), 50)

	ok := &domain.ResultRecord{ID: uuid.New()}
	bad := &domain.ResultRecord{ID: uuid.New()}
	repo.On("Append", mock.Anything, ok).Return(nil)
	repo.On("Append", mock.Anything, bad).Return(fmt.Errorf("full"))

	assert.NoError(t, uc.Record(context.Background(), ok))
	assert.True(t, stderrors.Is(uc.Record(context.Background(), bad), errors.ErrInternalServer))
}
