package repository

import (
	"context"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// SeedRepository puerto de escritura usado solo por el cargador de datos de ejemplo.
type SeedRepository interface {
	// CreateSchema crea las tablas customers, products y transactions si no existen.
	CreateSchema(ctx context.Context) error
	// Reset vacía las tres tablas.
	Reset(ctx context.Context) error
	// InsertAll persiste el lote completo en una sola transacción.
	InsertAll(
		ctx context.Context,
		customers []entity.Customer,
		products []entity.Product,
		transactions []entity.Transaction,
	) error
}
