package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// ErrStoreUnavailable: el almacén no responde (conexión o lectura fallida).
	// Fatal para la pasada actual; el snapshot previo, si existe, se sigue mostrando.
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	// ErrSchemaMismatch: la forma del almacén no coincide con las columnas esperadas.
	ErrSchemaMismatch = errors.New("esquema del almacén inesperado")
)
