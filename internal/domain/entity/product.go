package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo.
// Stock es informativo: las ventas no lo descuentan.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal // precio unitario de venta (> 0)
	Stock    int
}
