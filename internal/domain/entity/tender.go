package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una licitación.
const (
	TenderAbierta    = "abierta"
	TenderPresentada = "presentada"
	TenderAdjudicada = "adjudicada"
	TenderPerdida    = "perdida"
)

// Tender licitación pública o privada.
type Tender struct {
	ID       string          `json:"id"`
	Title    string          `json:"title" validate:"required,max=300"`
	Entity   string          `json:"entity" validate:"required,max=200"`
	Amount   decimal.Decimal `json:"amount" validate:"gte=0"`
	Deadline *time.Time      `json:"deadline,omitempty"`
	Status   string          `json:"status" validate:"omitempty,oneof=abierta presentada adjudicada perdida"`
}

func (t Tender) RecordID() string { return t.ID }

func (t Tender) SearchText() []string {
	return []string{t.Title, t.Entity}
}

func (t Tender) Attribute(name string) (string, bool) {
	if name == "status" {
		return known(t.Status)
	}
	return "", false
}

// Open informa si la licitación sigue en curso.
func (t Tender) Open() bool {
	return t.Status == "" || t.Status == TenderAbierta || t.Status == TenderPresentada
}
