package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/boutique-analytics/internal/application/analytics"
	infrapdf "github.com/jhoicas/boutique-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/boutique-analytics/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/boutique-analytics/internal/interfaces/http"
	"github.com/jhoicas/boutique-analytics/pkg/config"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
	"github.com/jhoicas/boutique-analytics/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión al almacén")
	}
	defer st.Close()

	formatter := money.NewFormatter(cfg.Dashboard.Currency, "")
	snapshots := appanalytics.NewSnapshotStore(st.Sales, log.Component("snapshot"))
	dashboardUC := appanalytics.NewDashboardUseCase(snapshots, appanalytics.DashboardOptions{
		AllRegionsLabel:   cfg.Dashboard.AllRegionsLabel,
		TopProducts:       cfg.Dashboard.TopProducts,
		DefaultWindowDays: cfg.Dashboard.DefaultWindowDays,
	}, formatter, log.Component("dashboard"))

	// PDF: el mismo tablero exportado con Maroto
	reportUC := appanalytics.NewReportUseCase(
		dashboardUC,
		infrapdf.NewMarotoReportGenerator(formatter),
		"Tableau de bord des ventes",
		cfg.Dashboard.Currency,
	)

	// Primera carga al arrancar; un fallo no impide levantar el servidor.
	if _, err := snapshots.Get(ctx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de ventas fallida")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boutique Analytics API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		RefreshPerMinute: cfg.Dashboard.RefreshPerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
