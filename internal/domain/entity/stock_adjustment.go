package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultados de un ajuste de stock optimista.
const (
	AdjustmentApplied    = "aplicado"
	AdjustmentRolledBack = "revertido"
)

// StockAdjustment traza local de un ajuste de existencias hecho desde la página de inventario.
type StockAdjustment struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	UserID    string          `json:"user_id"`
	Delta     decimal.Decimal `json:"delta"`
	Previous  decimal.Decimal `json:"previous"`
	Result    decimal.Decimal `json:"result"`
	Reason    string          `json:"reason,omitempty"`
	Outcome   string          `json:"outcome"`
	CreatedAt time.Time       `json:"created_at"`
}
