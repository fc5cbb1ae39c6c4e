package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord fila desnormalizada: transacción + cliente + producto.
// Es la única estructura sobre la que operan filtros y agregaciones.
type SaleRecord struct {
	TransactionID string
	CustomerID    string
	ProductID     string
	Quantity      int
	Date          time.Time // fecha calendario (00:00 UTC)
	TotalAmount   decimal.Decimal

	CustomerName   string
	CustomerRegion string

	ProductName     string
	ProductCategory string
	ProductPrice    decimal.Decimal // precio actual del producto, no el de la venta
}

// CalendarDate normaliza t al día calendario en UTC, descartando hora y zona.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
