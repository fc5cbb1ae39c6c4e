// Package analytics contiene los casos de uso del tablero de ventas:
// snapshot memoizado, filtrado, agregación y exportación.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/boutique-analytics/internal/application/dto"
	"github.com/jhoicas/boutique-analytics/internal/domain"
	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/sales"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
	"github.com/jhoicas/boutique-analytics/pkg/money"
)

const dateLayout = "2006-01-02"

// staleNotice aviso no bloqueante cuando se sirven datos del snapshot anterior.
const staleNotice = "almacén no disponible: se muestran los últimos datos cargados"

// DashboardOptions parámetros de presentación.
type DashboardOptions struct {
	AllRegionsLabel   string
	TopProducts       int
	DefaultWindowDays int
}

// DashboardUseCase ejecuta una pasada completa: snapshot → filtro → agregación.
type DashboardUseCase struct {
	snapshots *SnapshotStore
	opts      DashboardOptions
	formatter *money.Formatter
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	snapshots *SnapshotStore,
	opts DashboardOptions,
	formatter *money.Formatter,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{snapshots: snapshots, opts: opts, formatter: formatter, log: log}
}

// GetDashboard construye el DashboardDTO para los filtros pedidos.
//
// Errores:
//   - domain.ErrInvalidInput     fechas con formato inválido.
//   - domain.ErrStoreUnavailable almacén caído y sin snapshot previo.
//   - domain.ErrSchemaMismatch   siempre fatal, aunque haya snapshot previo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardDTO, error) {
	snap, stale, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filters := uc.buildFilters(snap)
	criteria, err := uc.criteria(req, filters)
	if err != nil {
		return nil, err
	}

	out := uc.Build(snap.Records, criteria)
	out.Filters = filters
	if stale {
		out.Stale = true
		out.Notice = staleNotice
	}
	return out, nil
}

// GetFilters devuelve solo las opciones de los controles de filtro.
func (uc *DashboardUseCase) GetFilters(ctx context.Context) (*dto.FiltersDTO, error) {
	snap, _, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	filters := uc.buildFilters(snap)
	return &filters, nil
}

// Refresh invalida el snapshot y fuerza una lectura nueva del almacén.
// A diferencia de GetDashboard, un fallo del almacén se devuelve siempre como error.
func (uc *DashboardUseCase) Refresh(ctx context.Context) (*dto.RefreshResponseDTO, error) {
	snap, err := uc.snapshots.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: refrescar: %w", err)
	}
	return &dto.RefreshResponseDTO{Records: len(snap.Records), Filters: uc.buildFilters(snap)}, nil
}

// Build aplica el filtro y calcula KPIs y tablas sobre records. Función pura:
// no lee el almacén ni el snapshot; no completa Filters.
func (uc *DashboardUseCase) Build(records []entity.SaleRecord, c sales.Criteria) *dto.DashboardDTO {
	filtered := sales.Filter(records, c)
	kpis := sales.ComputeKPIs(filtered)

	monthly := sales.MonthlyRevenue(filtered)
	trend := sales.TrailingAverage(monthly)
	points := make([]dto.MonthlyPointDTO, 0, len(monthly))
	for i, m := range monthly {
		points = append(points, dto.MonthlyPointDTO{
			YearMonth: m.YearMonth,
			Revenue:   m.Revenue.Round(2),
			Trend:     trend[i].Revenue.Round(2),
		})
	}

	region := c.Region
	if region == "" {
		region = uc.opts.AllRegionsLabel
	}

	return &dto.DashboardDTO{
		Period: dto.PeriodDTO{
			DateFrom: c.DateFrom.Format(dateLayout),
			DateTo:   c.DateTo.Format(dateLayout),
		},
		Region: region,
		KPIs: dto.KPIsDTO{
			Revenue:           kpis.Revenue.Round(2),
			RevenueText:       uc.formatter.Amount(kpis.Revenue),
			Quantity:          kpis.Quantity,
			TransactionCount:  kpis.TransactionCount,
			AverageBasket:     kpis.AverageBasket.Round(2),
			AverageBasketText: uc.formatter.Amount(kpis.AverageBasket),
		},
		RevenueByRegion:   toLabelValues(sales.RevenueByRegion(filtered)),
		TopProducts:       toLabelValues(sales.TopProductsByRevenue(filtered, uc.opts.TopProducts)),
		RevenueByCategory: toLabelValues(sales.RevenueByCategory(filtered)),
		Monthly:           points,
	}
}

// snapshot obtiene los datos y decide si un fallo del almacén es tolerable.
func (uc *DashboardUseCase) snapshot(ctx context.Context) (snap *Snapshot, stale bool, err error) {
	snap, err = uc.snapshots.Get(ctx)
	switch {
	case err == nil:
		return snap, false, nil
	case errors.Is(err, domain.ErrSchemaMismatch):
		return nil, false, fmt.Errorf("dashboard: %w", err)
	case snap != nil:
		uc.log.Warn().Err(err).Time("loaded_at", snap.LoadedAt).Msg("sirviendo snapshot anterior")
		return snap, true, nil
	default:
		return nil, false, fmt.Errorf("dashboard: %w", err)
	}
}

// buildFilters opciones del selector de región y límites de fecha del conjunto completo.
func (uc *DashboardUseCase) buildFilters(snap *Snapshot) dto.FiltersDTO {
	regions := append([]string{uc.opts.AllRegionsLabel}, sales.Regions(snap.Records)...)
	filters := dto.FiltersDTO{Regions: regions, AllRegions: uc.opts.AllRegionsLabel}

	loadedAt := snap.LoadedAt
	if !loadedAt.IsZero() {
		filters.LoadedAt = &loadedAt
	}

	minDate, maxDate, ok := sales.DateBounds(snap.Records)
	if !ok {
		today := entity.CalendarDate(time.Now())
		filters.DefaultFrom = today.Format(dateLayout)
		filters.DefaultTo = today.Format(dateLayout)
		return filters
	}
	from := maxDate.AddDate(0, 0, -uc.opts.DefaultWindowDays)
	if from.Before(minDate) {
		from = minDate
	}
	filters.MinDate = minDate.Format(dateLayout)
	filters.MaxDate = maxDate.Format(dateLayout)
	filters.DefaultFrom = from.Format(dateLayout)
	filters.DefaultTo = maxDate.Format(dateLayout)
	return filters
}

// criteria traduce la petición a criterios de filtro aplicando valores por defecto.
func (uc *DashboardUseCase) criteria(req dto.DashboardRequest, filters dto.FiltersDTO) (sales.Criteria, error) {
	from, err := parseDate("date_from", req.DateFrom, filters.DefaultFrom)
	if err != nil {
		return sales.Criteria{}, err
	}
	to, err := parseDate("date_to", req.DateTo, filters.DefaultTo)
	if err != nil {
		return sales.Criteria{}, err
	}

	region := strings.TrimSpace(req.Region)
	if region == uc.opts.AllRegionsLabel {
		region = ""
	}
	return sales.Criteria{DateFrom: from, DateTo: to, Region: region}, nil
}

func parseDate(field, value, fallback string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s inválido %q: %w", field, value, domain.ErrInvalidInput)
	}
	return t, nil
}

func toLabelValues(groups []sales.GroupRevenue) []dto.LabelValueDTO {
	out := make([]dto.LabelValueDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.LabelValueDTO{Label: g.Label, Revenue: g.Revenue.Round(2)})
	}
	return out
}
