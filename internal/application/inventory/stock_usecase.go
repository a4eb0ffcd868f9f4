// Package inventory contiene el ajuste de existencias de la página de inventario.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/obra-admin/internal/application/crud"
	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// StockUseCase ajusta la cantidad de un ítem de forma optimista: la vista local
// cambia primero, luego se envía el PATCH y, si falla, se revierte.
type StockUseCase struct {
	page  *crud.Page[entity.InventoryItem]
	audit repository.StockAdjustmentRepository
	log   *logger.Logger
	now   func() time.Time
}

// NewStockUseCase construye el caso de uso. audit puede ser nil.
func NewStockUseCase(page *crud.Page[entity.InventoryItem], audit repository.StockAdjustmentRepository, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{page: page, audit: audit, log: log.Component("inventory.stock"), now: time.Now}
}

// Adjust suma delta (con signo) a la existencia del ítem. Un resultado negativo
// se rechaza sin enviar nada al API.
func (uc *StockUseCase) Adjust(
	ctx context.Context,
	sessionID, userID, itemID string,
	in dto.StockAdjustRequest,
) (dto.PageView[entity.InventoryItem], error) {
	delta, err := decimal.NewFromString(strings.TrimSpace(in.Delta))
	if err != nil || delta.IsZero() {
		pv := dto.PageView[entity.InventoryItem]{Items: uc.page.Current(sessionID)}
		pv.Total = len(pv.Items)
		err = fmt.Errorf("%w: delta %q", domain.ErrInvalidInput, in.Delta)
		pv.Notification = dto.NotificationFromError(err)
		return pv, err
	}

	var (
		attempted        bool
		previous, result decimal.Decimal
	)
	pv, err := uc.page.Optimistic(ctx, sessionID, itemID, func(cur entity.InventoryItem) (entity.InventoryItem, map[string]any, error) {
		next := cur.Quantity.Add(delta)
		if next.IsNegative() {
			return cur, nil, fmt.Errorf("%s: %w", cur.Name, domain.ErrNegativeStock)
		}
		attempted, previous, result = true, cur.Quantity, next
		cur.Quantity = next
		return cur, map[string]any{"quantity": next}, nil
	})
	if attempted {
		outcome := entity.AdjustmentApplied
		if err != nil {
			outcome = entity.AdjustmentRolledBack
		}
		uc.record(ctx, &entity.StockAdjustment{
			ID: uuid.NewString(), ItemID: itemID, UserID: userID,
			Delta: delta, Previous: previous, Result: result,
			Reason: in.Reason, Outcome: outcome, CreatedAt: uc.now().UTC(),
		})
	}
	if err == nil && pv.Item != nil && pv.Item.BelowMinimum() {
		pv.Notification = &dto.Notification{Level: dto.NotifySuccess, Message: "Existencia actualizada. Quedó por debajo del mínimo"}
	}
	return pv, err
}

// History últimos ajustes registrados para el ítem.
func (uc *StockUseCase) History(ctx context.Context, itemID string, limit int) ([]*entity.StockAdjustment, error) {
	if uc.audit == nil {
		return []*entity.StockAdjustment{}, nil
	}
	return uc.audit.ListByItem(ctx, itemID, limit)
}

func (uc *StockUseCase) record(ctx context.Context, adj *entity.StockAdjustment) {
	if uc.audit == nil {
		return
	}
	// un fallo de la traza solo se registra en el log
	if err := uc.audit.Record(context.WithoutCancel(ctx), adj); err != nil && !errors.Is(err, context.Canceled) {
		uc.log.Error().Err(err).Str("item_id", adj.ItemID).Msg("no se pudo registrar el ajuste de stock")
	}
}
