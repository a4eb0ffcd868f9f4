package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado (nómina de obra u oficina).
type Employee struct {
	ID         string          `json:"id"`
	FullName   string          `json:"full_name" validate:"required,max=200"`
	DocumentID string          `json:"document_id" validate:"required,max=30"`
	Position   string          `json:"position"`
	ProjectID  string          `json:"project_id,omitempty"`
	Salary     decimal.Decimal `json:"salary" validate:"gte=0"`
	Active     bool            `json:"active"`
	HiredAt    *time.Time      `json:"hired_at,omitempty"`
}

func (e Employee) RecordID() string { return e.ID }

func (e Employee) SearchText() []string {
	return []string{e.FullName, e.DocumentID, e.Position}
}

func (e Employee) Attribute(name string) (string, bool) {
	switch name {
	case "project_id":
		return known(e.ProjectID)
	case "position":
		return known(e.Position)
	case "active":
		if e.Active {
			return "true", true
		}
		return "false", true
	}
	return "", false
}
