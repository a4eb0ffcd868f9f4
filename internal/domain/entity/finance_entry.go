package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento financiero.
const (
	FinanceIngreso = "ingreso"
	FinanceEgreso  = "egreso"
)

// FinanceEntry movimiento financiero (ingreso o egreso) asociado opcionalmente a un proyecto.
type FinanceEntry struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind" validate:"required,oneof=ingreso egreso"`
	Concept   string          `json:"concept" validate:"required,max=300"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Category  string          `json:"category"`
	ProjectID string          `json:"project_id,omitempty"`
	Date      *time.Time      `json:"date,omitempty"`
}

func (f FinanceEntry) RecordID() string { return f.ID }

func (f FinanceEntry) SearchText() []string {
	return []string{f.Concept, f.Category, decimalText(f.Amount)}
}

func (f FinanceEntry) Attribute(name string) (string, bool) {
	switch name {
	case "kind":
		return known(f.Kind)
	case "category":
		return known(f.Category)
	case "project_id":
		return known(f.ProjectID)
	}
	return "", false
}
