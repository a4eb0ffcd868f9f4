package entity

import "github.com/shopspring/decimal"

// Los registros de negocio pertenecen al API externo; aquí solo se guardan
// copias transitorias por vista. Cada uno expone RecordID y SearchText para
// la búsqueda local, y Attribute para los filtros exactos. Attribute devuelve
// false solo para nombres que el registro no conoce; un valor vacío es válido.

func known(s string) (string, bool) {
	return s, true
}

func decimalText(d decimal.Decimal) string {
	return d.String()
}
