package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto de obra.
const (
	ProjectPlaneacion = "planeacion"
	ProjectEjecucion  = "ejecucion"
	ProjectSuspendido = "suspendido"
	ProjectTerminado  = "terminado"
)

// Project proyecto de obra.
type Project struct {
	ID        string          `json:"id"`
	Code      string          `json:"code" validate:"omitempty,max=30"`
	Name      string          `json:"name" validate:"required,max=200"`
	Client    string          `json:"client" validate:"omitempty,max=200"`
	Location  string          `json:"location"`
	Status    string          `json:"status" validate:"omitempty,oneof=planeacion ejecucion suspendido terminado"`
	Budget    decimal.Decimal `json:"budget" validate:"gte=0"`
	Progress  int             `json:"progress" validate:"min=0,max=100"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) SearchText() []string {
	return []string{p.Code, p.Name, p.Client, p.Location}
}

func (p Project) Attribute(name string) (string, bool) {
	switch name {
	case "status":
		return known(p.Status)
	case "project_id":
		return known(p.ID)
	}
	return "", false
}
