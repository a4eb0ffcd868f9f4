package entity

import "github.com/shopspring/decimal"

// InventoryItem ítem de inventario de bodega u obra.
type InventoryItem struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku" validate:"omitempty,max=60"`
	Name      string          `json:"name" validate:"required,max=200"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit" validate:"omitempty,max=20"`
	Quantity  decimal.Decimal `json:"quantity" validate:"gte=0"`
	MinStock  decimal.Decimal `json:"min_stock" validate:"gte=0"`
	Warehouse string          `json:"warehouse"`
	ProjectID string          `json:"project_id,omitempty"`
}

func (i InventoryItem) RecordID() string { return i.ID }

func (i InventoryItem) SearchText() []string {
	return []string{i.SKU, i.Name, i.Category, i.Warehouse}
}

func (i InventoryItem) Attribute(name string) (string, bool) {
	switch name {
	case "category":
		return known(i.Category)
	case "warehouse":
		return known(i.Warehouse)
	case "project_id":
		return known(i.ProjectID)
	}
	return "", false
}

// BelowMinimum informa si la existencia está por debajo del mínimo configurado.
func (i InventoryItem) BelowMinimum() bool {
	return i.MinStock.IsPositive() && i.Quantity.LessThan(i.MinStock)
}
