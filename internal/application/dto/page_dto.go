package dto

// PageView estado de una página CRUD: la copia local de la colección y, si
// aplica, el registro afectado y la notificación de la última operación.
type PageView[T any] struct {
	Items        []T               `json:"items"`
	Total        int               `json:"total"`
	Item         *T                `json:"item,omitempty"`
	Notification *Notification     `json:"notification,omitempty"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
}

// StockAdjustRequest entrada para ajustar la existencia de un ítem de inventario.
type StockAdjustRequest struct {
	Delta  string `json:"delta" validate:"required"` // decimal con signo, ej. "-3.5"
	Reason string `json:"reason" validate:"omitempty,max=300"`
}
