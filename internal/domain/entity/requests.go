package entity

import "github.com/shopspring/decimal"

// Estados comunes de solicitudes de material y de dinero.
const (
	RequestPendiente = "pendiente"
	RequestAprobada  = "aprobada"
	RequestRechazada = "rechazada"
	RequestEntregada = "entregada"
	RequestPagada    = "pagada"
)

// MaterialRequest solicitud de material desde obra.
type MaterialRequest struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id" validate:"required"`
	Material    string          `json:"material" validate:"required,max=200"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit        string          `json:"unit"`
	Status      string          `json:"status" validate:"omitempty,oneof=pendiente aprobada rechazada entregada"`
	RequestedBy string          `json:"requested_by"`
	Notes       string          `json:"notes"`
}

func (m MaterialRequest) RecordID() string { return m.ID }

func (m MaterialRequest) SearchText() []string {
	return []string{m.Material, m.RequestedBy, m.Notes}
}

func (m MaterialRequest) Attribute(name string) (string, bool) {
	switch name {
	case "status":
		return known(m.Status)
	case "project_id":
		return known(m.ProjectID)
	}
	return "", false
}

// Pending informa si la solicitud aún espera decisión.
func (m MaterialRequest) Pending() bool {
	return m.Status == "" || m.Status == RequestPendiente
}

// MoneyRequest solicitud de dinero (anticipo, caja menor) desde obra.
type MoneyRequest struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id" validate:"required"`
	Concept     string          `json:"concept" validate:"required,max=300"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Status      string          `json:"status" validate:"omitempty,oneof=pendiente aprobada rechazada pagada"`
	RequestedBy string          `json:"requested_by"`
}

func (m MoneyRequest) RecordID() string { return m.ID }

func (m MoneyRequest) SearchText() []string {
	return []string{m.Concept, m.RequestedBy}
}

func (m MoneyRequest) Attribute(name string) (string, bool) {
	switch name {
	case "status":
		return known(m.Status)
	case "project_id":
		return known(m.ProjectID)
	}
	return "", false
}

// Pending informa si la solicitud aún espera decisión.
func (m MoneyRequest) Pending() bool {
	return m.Status == "" || m.Status == RequestPendiente
}
