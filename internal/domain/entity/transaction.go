package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction es una venta de un producto a un cliente.
// TotalAmount se fija al crear la venta (Quantity × Price vigente) y no se recalcula.
type Transaction struct {
	ID          string
	CustomerID  string
	ProductID   string
	Quantity    int
	Date        time.Time
	TotalAmount decimal.Decimal
}
