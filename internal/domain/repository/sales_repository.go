package repository

import (
	"context"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
)

// SalesRepository puerto de lectura de la vista desnormalizada de ventas.
// Las implementaciones son read-only.
type SalesRepository interface {
	// FetchSales devuelve una fila por transacción, unida con su cliente y su producto
	// (INNER JOIN). El orden de las filas no está garantizado.
	//
	// Errores:
	//   - domain.ErrStoreUnavailable si el almacén no responde.
	//   - domain.ErrSchemaMismatch   si faltan columnas o tablas esperadas.
	FetchSales(ctx context.Context) ([]entity.SaleRecord, error)
}
