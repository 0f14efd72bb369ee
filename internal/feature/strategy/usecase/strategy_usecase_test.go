package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_api/internal/feature/stockdata/domain/entity"
)

// mockBarRepository はBarRepositoryインターフェースのモック実装です。
type mockBarRepository struct {
	FindAllAscendingFunc func(ctx context.Context) ([]entity.PriceBar, error)
}

func (m *mockBarRepository) FindAllAscending(ctx context.Context) ([]entity.PriceBar, error) {
	return m.FindAllAscendingFunc(ctx)
}

func TestStrategyUsecase_Performance(t *testing.T) {
	t.Parallel()

	t.Run("success: evaluates stored series", func(t *testing.T) {
		t.Parallel()

		repo := &mockBarRepository{
			FindAllAscendingFunc: func(ctx context.Context) ([]entity.PriceBar, error) {
				return barsFromCloses(10, 20, 30, 40, 50, 60, 70, 80, 90, 100), nil
			},
		}
		uc := NewStrategyUsecase(repo)

		result, err := uc.Performance(context.Background(), 2, 3)

		require.NoError(t, err)
		require.NotNil(t, result.Summary)
		assert.Equal(t, 7, result.Summary.BuySignals)
	})

	t.Run("informational: not enough stored rows", func(t *testing.T) {
		t.Parallel()

		repo := &mockBarRepository{
			FindAllAscendingFunc: func(ctx context.Context) ([]entity.PriceBar, error) {
				return barsFromCloses(100, 101), nil
			},
		}
		uc := NewStrategyUsecase(repo)

		result, err := uc.Performance(context.Background(), 5, 20)

		require.NoError(t, err)
		assert.Nil(t, result.Summary)
		assert.Equal(t, "Not enough valid data. Need at least 20 rows.", result.Message)
	})

	t.Run("error: repository failure propagates", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("connection refused")
		repo := &mockBarRepository{
			FindAllAscendingFunc: func(ctx context.Context) ([]entity.PriceBar, error) {
				return nil, wantErr
			},
		}
		uc := NewStrategyUsecase(repo)

		_, err := uc.Performance(context.Background(), 5, 20)

		assert.ErrorIs(t, err, wantErr)
	})
}
