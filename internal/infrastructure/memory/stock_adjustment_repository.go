package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo traza de ajustes en memoria.
type StockAdjustmentRepo struct {
	mu   sync.Mutex
	list []entity.StockAdjustment
}

// NewStockAdjustmentRepository construye la traza vacía.
func NewStockAdjustmentRepository() *StockAdjustmentRepo {
	return &StockAdjustmentRepo{}
}

func (r *StockAdjustmentRepo) Record(_ context.Context, adj *entity.StockAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, *adj)
	return nil
}

// ListByItem devuelve los ajustes del ítem, del más reciente al más antiguo.
func (r *StockAdjustmentRepo) ListByItem(_ context.Context, itemID string, limit int) ([]*entity.StockAdjustment, error) {
	if limit <= 0 {
		limit = repository.DefaultHistoryLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockAdjustment, 0)
	for i := len(r.list) - 1; i >= 0 && len(out) < limit; i-- {
		if r.list[i].ItemID == itemID {
			a := r.list[i]
			out = append(out, &a)
		}
	}
	return out, nil
}
