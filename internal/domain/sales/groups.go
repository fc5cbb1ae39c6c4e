package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// GroupRevenue ingreso acumulado de un grupo (región, producto o categoría).
type GroupRevenue struct {
	Label   string
	Revenue decimal.Decimal
}

// RevenueByRegion ingreso por región del cliente, de mayor a menor.
func RevenueByRegion(records []entity.SaleRecord) []GroupRevenue {
	return groupRevenue(records, func(r entity.SaleRecord) string { return r.CustomerRegion })
}

// RevenueByCategory ingreso por categoría de producto, de mayor a menor.
func RevenueByCategory(records []entity.SaleRecord) []GroupRevenue {
	return groupRevenue(records, func(r entity.SaleRecord) string { return r.ProductCategory })
}

// TopProductsByRevenue los k productos (por nombre) con mayor ingreso.
// k <= 0 devuelve una lista vacía.
func TopProductsByRevenue(records []entity.SaleRecord, k int) []GroupRevenue {
	if k <= 0 {
		return []GroupRevenue{}
	}
	groups := groupRevenue(records, func(r entity.SaleRecord) string { return r.ProductName })
	if len(groups) > k {
		groups = groups[:k]
	}
	return groups
}

// groupRevenue suma TotalAmount por clave y ordena por ingreso descendente;
// los empates se resuelven por etiqueta ascendente para que el orden sea estable.
func groupRevenue(records []entity.SaleRecord, key func(entity.SaleRecord) string) []GroupRevenue {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		k := key(r)
		sums[k] = sums[k].Add(r.TotalAmount)
	}

	out := make([]GroupRevenue, 0, len(sums))
	for label, rev := range sums {
		out = append(out, GroupRevenue{Label: label, Revenue: rev})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Label < out[j].Label
	})
	return out
}
