// seed crea el esquema y puebla el almacén con el juego de datos de ejemplo:
// 8 clientes, 10 productos y SEED_TRANSACTIONS ventas aleatorias.
//
// Uso: go run ./cmd/seed [-reset] [-n 50] [-seed 42]
// Sin flags usa la configuración (SEED_*, STORE_DRIVER, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/boutique-analytics/internal/application/seed"
	"github.com/jhoicas/boutique-analytics/internal/infrastructure/store"
	"github.com/jhoicas/boutique-analytics/pkg/config"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
	"github.com/jhoicas/boutique-analytics/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	reset := flag.Bool("reset", cfg.Seed.Reset, "vaciar las tablas antes de insertar")
	n := flag.Int("n", cfg.Seed.Transactions, "número de ventas a generar")
	randomSeed := flag.Int64("seed", cfg.Seed.RandomSeed, "semilla aleatoria (0 = según la hora)")
	flag.Parse()

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacén")
	}
	defer st.Close()

	loader := seed.NewLoader(st.Seed, seed.Options{
		Transactions: *n,
		MaxDaysBack:  cfg.Seed.MaxDaysBack,
		MaxQuantity:  cfg.Seed.MaxQuantity,
		RandomSeed:   *randomSeed,
		Reset:        *reset,
		Regions:      cfg.Dashboard.Regions,
	}, log.Component("seed"))

	summary, err := loader.Run(ctx)
	if err != nil {
		st.Close()
		fmt.Fprintf(os.Stderr, "Sembrar: %v\n", err)
		os.Exit(1)
	}

	f := money.NewFormatter(cfg.Dashboard.Currency, "")
	fmt.Printf("OK (%s): %d clientes, %d productos, %d ventas, total %s\n",
		st.Driver, summary.Customers, summary.Products, summary.Transactions, f.Amount(summary.Revenue))
}
