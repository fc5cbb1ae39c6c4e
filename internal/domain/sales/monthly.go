package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// YearMonthLayout formato de la clave mensual ("2024-01").
const YearMonthLayout = "2006-01"

var two = decimal.NewFromInt(2)

// MonthRevenue ingreso de un mes calendario.
type MonthRevenue struct {
	YearMonth string
	Revenue   decimal.Decimal
}

// MonthlyRevenue agrupa por año-mes de la fecha de venta, en orden cronológico.
func MonthlyRevenue(records []entity.SaleRecord) []MonthRevenue {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		k := entity.CalendarDate(r.Date).Format(YearMonthLayout)
		sums[k] = sums[k].Add(r.TotalAmount)
	}

	out := make([]MonthRevenue, 0, len(sums))
	for ym, rev := range sums {
		out = append(out, MonthRevenue{YearMonth: ym, Revenue: rev})
	}
	// "YYYY-MM" ordena lexicográficamente igual que cronológicamente.
	sort.Slice(out, func(i, j int) bool { return out[i].YearMonth < out[j].YearMonth })
	return out
}

// TrailingAverage media móvil de dos puntos sobre la serie mensual:
// (mes actual + mes anterior) / 2; el primer mes es su propio ingreso.
func TrailingAverage(series []MonthRevenue) []MonthRevenue {
	out := make([]MonthRevenue, len(series))
	for i, m := range series {
		avg := m.Revenue
		if i > 0 {
			avg = series[i-1].Revenue.Add(m.Revenue).Div(two)
		}
		out[i] = MonthRevenue{YearMonth: m.YearMonth, Revenue: avg}
	}
	return out
}
