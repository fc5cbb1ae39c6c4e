package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// saleColumns columnas de la vista desnormalizada, en el orden de Scan.
var saleColumns = []string{
	"transaction_id",
	"customer_id",
	"product_id",
	"quantity",
	"transaction_date",
	"total_amount",
	"customer_name",
	"customer_region",
	"product_name",
	"product_category",
	"product_price",
}

// SalesRepo lectura de ventas unidas con cliente y producto.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// salesQuery transactions ⋈ customers ⋈ products (INNER JOIN), una fila por venta.
func salesQuery() (string, []interface{}, error) {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"t.id AS transaction_id",
			"t.customer_id",
			"t.product_id",
			"t.quantity",
			"t.transaction_date",
			"t.total_amount",
			"c.name AS customer_name",
			"c.region AS customer_region",
			"p.name AS product_name",
			"p.category AS product_category",
			"p.price AS product_price",
		).
		From("transactions t").
		Join("customers c ON c.id = t.customer_id").
		Join("products p ON p.id = t.product_id").
		ToSql()
}

// FetchSales devuelve la vista desnormalizada completa.
func (r *SalesRepo) FetchSales(ctx context.Context) ([]entity.SaleRecord, error) {
	query, args, err := salesQuery()
	if err != nil {
		return nil, fmt.Errorf("sales.FetchSales build: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify("sales.FetchSales", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, classify("sales.FetchSales", err)
	}
	if err := checkColumns(rows.FieldDescriptions()); err != nil {
		return nil, err
	}

	results := []entity.SaleRecord{}
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(
			&rec.TransactionID,
			&rec.CustomerID,
			&rec.ProductID,
			&rec.Quantity,
			&rec.Date,
			&rec.TotalAmount,
			&rec.CustomerName,
			&rec.CustomerRegion,
			&rec.ProductName,
			&rec.ProductCategory,
			&rec.ProductPrice,
		); err != nil {
			var scanErr pgx.ScanArgError
			if errors.As(err, &scanErr) {
				return nil, fmt.Errorf("sales.FetchSales scan columna %d: %w: %w", scanErr.ColumnIndex, domain.ErrSchemaMismatch, err)
			}
			return nil, classify("sales.FetchSales scan", err)
		}
		rec.Date = entity.CalendarDate(rec.Date)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("sales.FetchSales rows", err)
	}
	return results, nil
}

// checkColumns verifica que la consulta devolvió exactamente las columnas esperadas.
func checkColumns(fields []pgconn.FieldDescription) error {
	if len(fields) != len(saleColumns) {
		return fmt.Errorf("sales.FetchSales: %d columnas, se esperaban %d: %w",
			len(fields), len(saleColumns), domain.ErrSchemaMismatch)
	}
	for i, f := range fields {
		if f.Name != saleColumns[i] {
			return fmt.Errorf("sales.FetchSales: columna %q en posición %d, se esperaba %q: %w",
				f.Name, i, saleColumns[i], domain.ErrSchemaMismatch)
		}
	}
	return nil
}
