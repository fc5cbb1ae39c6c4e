// Package store elige el adaptador de almacén según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
	"github.com/jhoicas/boutique-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/boutique-analytics/internal/infrastructure/sqlite"
	"github.com/jhoicas/boutique-analytics/pkg/config"
)

// Store agrupa los puertos de lectura y sembrado sobre una misma conexión.
type Store struct {
	Driver string
	Sales  repository.SalesRepository
	Seed   repository.SeedRepository
	close  func() error
}

// Close libera la conexión subyacente.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open conecta con el driver configurado.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Sales:  postgres.NewSalesRepository(pool),
			Seed:   postgres.NewSeedRepository(pool),
			close:  func() error { pool.Close(); return nil },
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver: cfg.Driver,
			Sales:  sqlite.NewSalesRepository(db),
			Seed:   sqlite.NewSeedRepository(db),
			close:  func() error { return sqlite.Close(db) },
		}, nil

	default:
		return nil, fmt.Errorf("store: driver %q desconocido: %w", cfg.Driver, domain.ErrInvalidInput)
	}
}
