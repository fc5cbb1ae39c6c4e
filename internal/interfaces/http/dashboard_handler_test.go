package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-analytics/internal/application/analytics"
	"github.com/jhoicas/boutique-analytics/internal/application/dto"
	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	apphttp "github.com/jhoicas/boutique-analytics/internal/interfaces/http"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
	"github.com/jhoicas/boutique-analytics/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubSalesRepo struct {
	mu      sync.Mutex
	records []entity.SaleRecord
	err     error
}

func (s *stubSalesRepo) FetchSales(context.Context) ([]entity.SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]entity.SaleRecord(nil), s.records...), nil
}

func (s *stubSalesRepo) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type stubPDF struct{}

func (stubPDF) GenerateDashboardPDF(context.Context, *dto.DashboardDTO, analytics.ReportMeta) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sale(id, region, product string, qty int, date string, total int64) entity.SaleRecord {
	return entity.SaleRecord{
		TransactionID: id, CustomerID: "c-" + region, ProductID: "p-" + product,
		Quantity: qty, Date: day(date), TotalAmount: decimal.NewFromInt(total),
		CustomerName: "Client " + region, CustomerRegion: region,
		ProductName: product, ProductCategory: "Vêtements", ProductPrice: decimal.NewFromInt(total / int64(qty)),
	}
}

// scenario: dos ventas en enero (Alger 1000, Oran 500) y una en febrero.
func scenario() []entity.SaleRecord {
	return []entity.SaleRecord{
		sale("t1", "Alger", "Robe", 1, "2024-01-05", 1000),
		sale("t2", "Oran", "Sac", 1, "2024-01-20", 500),
		sale("t3", "Alger", "Robe", 2, "2024-02-10", 2000),
	}
}

func buildTestApp(repo *stubSalesRepo, refreshPerMinute int) *fiber.App {
	log := logger.Nop()
	formatter := money.NewFormatter("DA", "")
	dashboard := analytics.NewDashboardUseCase(
		analytics.NewSnapshotStore(repo, log),
		analytics.DashboardOptions{AllRegionsLabel: "Toutes", TopProducts: 10, DefaultWindowDays: 90},
		formatter, log,
	)
	report := analytics.NewReportUseCase(dashboard, stubPDF{}, "Tableau de bord", "DA")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: dashboard, ReportUC: report, RefreshPerMinute: refreshPerMinute,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_FiltroEnero(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard?date_from=2024-01-01&date_to=2024-01-31")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardDTO](t, resp)
	assert.True(t, decimal.NewFromInt(1500).Equal(out.KPIs.Revenue))
	assert.Equal(t, 2, out.KPIs.TransactionCount)
	assert.Equal(t, "1,500 DA", out.KPIs.RevenueText)
	require.Len(t, out.RevenueByRegion, 2)
	assert.Equal(t, "Alger", out.RevenueByRegion[0].Label)
	assert.Equal(t, "Oran", out.RevenueByRegion[1].Label)
	assert.Equal(t, "Toutes", out.Region)
	assert.False(t, out.Stale)
}

func TestGetDashboard_FiltroPorRegion(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard?date_from=2024-01-01&date_to=2024-12-31&region=Alger")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.DashboardDTO](t, resp)
	assert.True(t, decimal.NewFromInt(3000).Equal(out.KPIs.Revenue))
	assert.Equal(t, 3, out.KPIs.Quantity)
	require.Len(t, out.Monthly, 2)
	assert.Equal(t, "2024-01", out.Monthly[0].YearMonth)
}

func TestGetDashboard_FechaInvalidaEs400(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard?date_from=05/01/2024")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_PARAMS", body.Code)
}

func TestGetDashboard_AlmacenCaidoSinSnapshotEs503(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{err: domain.ErrStoreUnavailable}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Code)
}

func TestGetDashboard_EsquemaInesperadoEs500(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{err: domain.ErrSchemaMismatch}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFIG_ERROR", body.Code)
}

func TestGetDashboard_SnapshotAnteriorTrasFalloEsStale(t *testing.T) {
	repo := &stubSalesRepo{records: scenario()}
	app := buildTestApp(repo, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// La recarga falla pero el snapshot anterior sigue sirviéndose.
	repo.fail(errors.Join(domain.ErrStoreUnavailable, errors.New("conexión rechazada")))
	resp = do(t, app, http.MethodPost, "/api/dashboard/refresh")
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/dashboard?date_from=2024-01-01&date_to=2024-12-31")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardDTO](t, resp)
	assert.True(t, out.Stale)
	assert.NotEmpty(t, out.Notice)
	assert.True(t, decimal.NewFromInt(3500).Equal(out.KPIs.Revenue))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros, recarga, reporte, salud
// ──────────────────────────────────────────────────────────────────────────────

func TestGetFilters_CentinelaPrimero(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard/filters")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.FiltersDTO](t, resp)
	assert.Equal(t, []string{"Toutes", "Alger", "Oran"}, out.Regions)
	assert.Equal(t, "2024-01-05", out.MinDate)
	assert.Equal(t, "2024-02-10", out.MaxDate)
	assert.Equal(t, "2024-01-05", out.DefaultFrom, "la ventana por defecto no baja de la fecha mínima")
}

func TestRefresh_DevuelveConteo(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodPost, "/api/dashboard/refresh")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.RefreshResponseDTO](t, resp)
	assert.Equal(t, 3, out.Records)
}

func TestRefresh_LimiteDePeticiones(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 1)

	resp := do(t, app, http.MethodPost, "/api/dashboard/refresh")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, "/api/dashboard/refresh")
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "RATE_LIMITED", body.Code)
}

func TestDownloadReport_CabecerasPDF(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{records: scenario()}, 0)

	resp := do(t, app, http.MethodGet, "/api/dashboard/report.pdf?date_from=2024-01-01&date_to=2024-01-31")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "ventes_2024-01-01_2024-01-31.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 stub", string(body))
}

func TestHealth(t *testing.T) {
	app := buildTestApp(&stubSalesRepo{}, 0)

	resp := do(t, app, http.MethodGet, "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
