package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/internal/infrastructure/memory"
)

func TestStockAdjustmentRepo_ListByItem(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStockAdjustmentRepository()

	for i := 0; i < repository.DefaultHistoryLimit+10; i++ {
		require.NoError(t, repo.Record(ctx, &entity.StockAdjustment{
			ID:      fmt.Sprintf("a%d", i),
			ItemID:  "c1",
			Delta:   decimal.NewFromInt(int64(i)),
			Outcome: entity.AdjustmentApplied,
		}))
	}
	require.NoError(t, repo.Record(ctx, &entity.StockAdjustment{ID: "otro", ItemID: "v1"}))

	got, err := repo.ListByItem(ctx, "c1", 0)
	require.NoError(t, err)
	assert.Len(t, got, repository.DefaultHistoryLimit, "sin límite se aplica el tope por defecto")
	assert.Equal(t, fmt.Sprintf("a%d", repository.DefaultHistoryLimit+9), got[0].ID, "el más reciente primero")

	got, err = repo.ListByItem(ctx, "c1", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = repo.ListByItem(ctx, "v1", -1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "otro", got[0].ID)
}
