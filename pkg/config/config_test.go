package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-analytics/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := config.FromViper(viper.New())

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "Toutes", cfg.Dashboard.AllRegionsLabel)
	assert.Equal(t, 10, cfg.Dashboard.TopProducts)
	assert.Equal(t, 90, cfg.Dashboard.DefaultWindowDays)
	assert.Len(t, cfg.Dashboard.Regions, 15)
	assert.Equal(t, 50, cfg.Seed.Transactions)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "SQLite")
	v.Set("DASHBOARD_REGIONS", " Alger , Oran,,Blida ")
	v.Set("DASHBOARD_TOP_PRODUCTS", "5")
	v.Set("SEED_RESET", true)

	cfg := config.FromViper(v)
	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, []string{"Alger", "Oran", "Blida"}, cfg.Dashboard.Regions)
	assert.Equal(t, 5, cfg.Dashboard.TopProducts)
	assert.True(t, cfg.Seed.Reset)
}

func TestValidate_Errores(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"driver desconocido":    func(c *config.Config) { c.DB.Driver = "mysql" },
		"regiones vacías":       func(c *config.Config) { c.Dashboard.Regions = nil },
		"región igual centinela": func(c *config.Config) { c.Dashboard.Regions = []string{"Toutes"} },
		"top-k no positivo":     func(c *config.Config) { c.Dashboard.TopProducts = 0 },
		"ventana no positiva":   func(c *config.Config) { c.Dashboard.DefaultWindowDays = -1 },
		"cantidad máxima cero":  func(c *config.Config) { c.Seed.MaxQuantity = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.FromViper(viper.New())
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "ventes", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/ventes?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
