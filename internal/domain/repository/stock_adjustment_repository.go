package repository

import (
	"context"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

// DefaultHistoryLimit tope de ajustes devueltos cuando limit <= 0.
const DefaultHistoryLimit = 50

// StockAdjustmentRepository traza de ajustes de stock hechos desde esta aplicación.
type StockAdjustmentRepository interface {
	Record(ctx context.Context, adj *entity.StockAdjustment) error
	ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockAdjustment, error)
}
