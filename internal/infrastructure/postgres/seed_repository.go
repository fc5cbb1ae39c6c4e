package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
)

var _ repository.SeedRepository = (*SeedRepo)(nil)

// schemaDDL tablas del almacén. Idempotente.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL,
    region        TEXT NOT NULL,
    registered_at DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id       TEXT PRIMARY KEY,
    name     TEXT NOT NULL,
    category TEXT NOT NULL,
    price    NUMERIC(14,2) NOT NULL CHECK (price > 0),
    stock    INTEGER NOT NULL CHECK (stock >= 0)
);

CREATE TABLE IF NOT EXISTS transactions (
    id               TEXT PRIMARY KEY,
    customer_id      TEXT NOT NULL REFERENCES customers (id),
    product_id       TEXT NOT NULL REFERENCES products (id),
    quantity         INTEGER NOT NULL CHECK (quantity > 0),
    transaction_date DATE NOT NULL,
    total_amount     NUMERIC(14,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (transaction_date);`

// SeedRepo escritura del juego de datos de ejemplo.
type SeedRepo struct {
	db TxBeginner
	tx *TxRunner
}

// NewSeedRepository construye el adaptador sobre el pool.
func NewSeedRepository(db TxBeginner) *SeedRepo {
	return &SeedRepo{db: db, tx: NewTxRunner(db)}
}

// CreateSchema crea las tablas si no existen.
func (r *SeedRepo) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaDDL); err != nil {
		return classify("seed.CreateSchema", err)
	}
	return nil
}

// Reset vacía las tres tablas.
func (r *SeedRepo) Reset(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE transactions, customers, products`); err != nil {
		return classify("seed.Reset", err)
	}
	return nil
}

// InsertAll copia clientes, productos y ventas dentro de una transacción (COPY FROM).
func (r *SeedRepo) InsertAll(
	ctx context.Context,
	customers []entity.Customer,
	products []entity.Product,
	transactions []entity.Transaction,
) error {
	return r.tx.Run(ctx, "seed.InsertAll", func(tx pgx.Tx) error {
		customerRows := make([][]any, 0, len(customers))
		for _, c := range customers {
			customerRows = append(customerRows, []any{c.ID, c.Name, c.Email, c.Region, c.RegisteredAt})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"customers"},
			[]string{"id", "name", "email", "region", "registered_at"},
			pgx.CopyFromRows(customerRows),
		); err != nil {
			return classify("seed.InsertAll customers", err)
		}

		productRows := make([][]any, 0, len(products))
		for _, p := range products {
			productRows = append(productRows, []any{p.ID, p.Name, p.Category, p.Price, p.Stock})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"products"},
			[]string{"id", "name", "category", "price", "stock"},
			pgx.CopyFromRows(productRows),
		); err != nil {
			return classify("seed.InsertAll products", err)
		}

		txRows := make([][]any, 0, len(transactions))
		for _, t := range transactions {
			txRows = append(txRows, []any{t.ID, t.CustomerID, t.ProductID, t.Quantity, t.Date, t.TotalAmount})
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"transactions"},
			[]string{"id", "customer_id", "product_id", "quantity", "transaction_date", "total_amount"},
			pgx.CopyFromRows(txRows),
		); err != nil {
			return classify("seed.InsertAll transactions", err)
		}
		return nil
	})
}
