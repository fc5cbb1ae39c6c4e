package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

var saleColumns = []string{
	"transaction_id", "customer_id", "product_id", "quantity", "transaction_date", "total_amount",
	"customer_name", "customer_region", "product_name", "product_category", "product_price",
}

// SalesRepo lectura de la vista desnormalizada sobre SQLite.
type SalesRepo struct {
	db *gorm.DB
}

// NewSalesRepository construye el adaptador.
func NewSalesRepository(db *gorm.DB) *SalesRepo {
	return &SalesRepo{db: db}
}

// FetchSales transactions ⋈ customers ⋈ products, una fila por venta.
func (r *SalesRepo) FetchSales(ctx context.Context) ([]entity.SaleRecord, error) {
	rows, err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`t.id AS transaction_id, t.customer_id, t.product_id, t.quantity,
			t.transaction_date, t.total_amount,
			c.name AS customer_name, c.region AS customer_region,
			p.name AS product_name, p.category AS product_category, p.price AS product_price`).
		Joins("JOIN customers AS c ON c.id = t.customer_id").
		Joins("JOIN products AS p ON p.id = t.product_id").
		Rows()
	if err != nil {
		return nil, classify("sqlite.FetchSales", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, classify("sqlite.FetchSales columns", err)
	}
	if len(cols) != len(saleColumns) {
		return nil, fmt.Errorf("sqlite.FetchSales: %d columnas, se esperaban %d: %w",
			len(cols), len(saleColumns), domain.ErrSchemaMismatch)
	}
	for i, c := range cols {
		if c != saleColumns[i] {
			return nil, fmt.Errorf("sqlite.FetchSales: columna %q, se esperaba %q: %w",
				c, saleColumns[i], domain.ErrSchemaMismatch)
		}
	}

	results := []entity.SaleRecord{}
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(
			&rec.TransactionID, &rec.CustomerID, &rec.ProductID, &rec.Quantity,
			&rec.Date, &rec.TotalAmount,
			&rec.CustomerName, &rec.CustomerRegion,
			&rec.ProductName, &rec.ProductCategory, &rec.ProductPrice,
		); err != nil {
			return nil, fmt.Errorf("sqlite.FetchSales scan: %w: %w", domain.ErrSchemaMismatch, err)
		}
		rec.Date = entity.CalendarDate(rec.Date)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("sqlite.FetchSales rows", err)
	}
	return results, nil
}
