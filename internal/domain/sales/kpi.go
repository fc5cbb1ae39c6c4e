package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// KPIs indicadores escalares del conjunto filtrado.
type KPIs struct {
	Revenue          decimal.Decimal
	Quantity         int
	TransactionCount int
	AverageBasket    decimal.Decimal
}

// TotalRevenue suma los montos registrados en cada venta (precio al momento de
// la venta). Nunca recalcula desde el precio actual del producto.
func TotalRevenue(records []entity.SaleRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalAmount)
	}
	return total
}

// TotalQuantity suma las unidades vendidas.
func TotalQuantity(records []entity.SaleRecord) int {
	total := 0
	for _, r := range records {
		total += r.Quantity
	}
	return total
}

// TransactionCount número de ventas.
func TransactionCount(records []entity.SaleRecord) int {
	return len(records)
}

// AverageBasket ingreso medio por venta; 0 si no hay ventas.
func AverageBasket(records []entity.SaleRecord) decimal.Decimal {
	n := TransactionCount(records)
	if n == 0 {
		return decimal.Zero
	}
	return TotalRevenue(records).Div(decimal.NewFromInt(int64(n)))
}

// ComputeKPIs agrupa los cuatro indicadores en una sola pasada.
func ComputeKPIs(records []entity.SaleRecord) KPIs {
	k := KPIs{
		Revenue:          TotalRevenue(records),
		Quantity:         TotalQuantity(records),
		TransactionCount: TransactionCount(records),
		AverageBasket:    decimal.Zero,
	}
	if k.TransactionCount > 0 {
		k.AverageBasket = k.Revenue.Div(decimal.NewFromInt(int64(k.TransactionCount)))
	}
	return k
}

// Regions devuelve las regiones distintas presentes, ordenadas alfabéticamente.
func Regions(records []entity.SaleRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.CustomerRegion]; ok {
			continue
		}
		seen[r.CustomerRegion] = struct{}{}
		out = append(out, r.CustomerRegion)
	}
	sort.Strings(out)
	return out
}

// DateBounds devuelve la primera y la última fecha de venta. ok=false si no hay registros.
func DateBounds(records []entity.SaleRecord) (first, last time.Time, ok bool) {
	for i, r := range records {
		d := entity.CalendarDate(r.Date)
		if i == 0 || d.Before(first) {
			first = d
		}
		if i == 0 || d.After(last) {
			last = d
		}
	}
	return first, last, len(records) > 0
}
