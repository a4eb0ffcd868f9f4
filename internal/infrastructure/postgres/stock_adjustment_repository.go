package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

// StockAdjustmentRepo traza de ajustes de stock sobre PostgreSQL (NUMERIC vía pgx-shopspring-decimal).
type StockAdjustmentRepo struct {
	pool *pgxpool.Pool
}

// NewStockAdjustmentRepository construye el adaptador.
func NewStockAdjustmentRepository(pool *pgxpool.Pool) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{pool: pool}
}

// Record persiste un ajuste.
func (r *StockAdjustmentRepo) Record(ctx context.Context, a *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, item_id, user_id, delta, previous, result, reason, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.ItemID, a.UserID, a.Delta, a.Previous, a.Result, a.Reason, a.Outcome, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	return nil
}

// ListByItem lista los ajustes de un ítem, más recientes primero.
func (r *StockAdjustmentRepo) ListByItem(ctx context.Context, itemID string, limit int) ([]*entity.StockAdjustment, error) {
	if limit <= 0 {
		limit = repository.DefaultHistoryLimit
	}
	query := `
		SELECT id, item_id, user_id, delta, previous, result, reason, outcome, created_at
		FROM stock_adjustments WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.StockAdjustment, 0)
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(&a.ID, &a.ItemID, &a.UserID, &a.Delta, &a.Previous, &a.Result,
			&a.Reason, &a.Outcome, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
