// Package sales implementa el motor de filtros y el motor de agregación sobre
// la vista desnormalizada de ventas. Todas las funciones son puras: no mutan
// la entrada y devuelven estructuras nuevas.
package sales

import (
	"time"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// Criteria predicados de filtrado.
// DateFrom y DateTo son inclusivos y se comparan por día calendario.
// Region vacío significa "sin filtro de región"; el caso de uso traduce el
// centinela "todas las regiones" a vacío antes de llegar aquí.
type Criteria struct {
	DateFrom time.Time
	DateTo   time.Time
	Region   string
}

// Matches indica si un registro cumple todos los predicados.
func (c Criteria) Matches(r entity.SaleRecord) bool {
	d := entity.CalendarDate(r.Date)
	if d.Before(entity.CalendarDate(c.DateFrom)) || d.After(entity.CalendarDate(c.DateTo)) {
		return false
	}
	return c.Region == "" || r.CustomerRegion == c.Region
}

// Filter devuelve los registros que cumplen los criterios, en el orden de entrada.
// Si DateFrom > DateTo el resultado es vacío (no es un error).
func Filter(records []entity.SaleRecord, c Criteria) []entity.SaleRecord {
	out := make([]entity.SaleRecord, 0, len(records))
	if entity.CalendarDate(c.DateFrom).After(entity.CalendarDate(c.DateTo)) {
		return out
	}
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
