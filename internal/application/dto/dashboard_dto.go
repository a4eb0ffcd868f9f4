package dto

import "github.com/shopspring/decimal"

// DashboardDTO resumen del dashboard. Las secciones que el rol no puede ver quedan en nil.
type DashboardDTO struct {
	Projects      *ProjectsSummaryDTO  `json:"projects,omitempty"`
	Inventory     *InventorySummaryDTO `json:"inventory,omitempty"`
	Finance       *FinanceSummaryDTO   `json:"finance,omitempty"`
	Requests      *RequestsSummaryDTO  `json:"requests,omitempty"`
	HR            *HRSummaryDTO        `json:"hr,omitempty"`
	Tenders       *TendersSummaryDTO   `json:"tenders,omitempty"`
	ProjectScope  string               `json:"project_scope,omitempty"`
	Notifications []Notification       `json:"notifications,omitempty"`
}

// ProjectsSummaryDTO conteos de proyectos.
type ProjectsSummaryDTO struct {
	Total       int             `json:"total"`
	ByStatus    map[string]int  `json:"by_status"`
	TotalBudget decimal.Decimal `json:"total_budget"`
	AvgProgress int             `json:"avg_progress"`
}

// InventorySummaryDTO conteos de inventario.
type InventorySummaryDTO struct {
	Items        int `json:"items"`
	BelowMinimum int `json:"below_minimum"`
}

// FinanceSummaryDTO sumas de ingresos y egresos.
type FinanceSummaryDTO struct {
	Entries int             `json:"entries"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// RequestsSummaryDTO solicitudes pendientes.
type RequestsSummaryDTO struct {
	PendingMaterials   int             `json:"pending_materials"`
	PendingMoney       int             `json:"pending_money"`
	PendingMoneyAmount decimal.Decimal `json:"pending_money_amount"`
}

// HRSummaryDTO conteos de personal.
type HRSummaryDTO struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// TendersSummaryDTO licitaciones en curso.
type TendersSummaryDTO struct {
	Total      int             `json:"total"`
	Open       int             `json:"open"`
	OpenAmount decimal.Decimal `json:"open_amount"`
}
