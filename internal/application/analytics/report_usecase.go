package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/boutique-analytics/internal/application/dto"
)

// ReportMeta datos de cabecera del reporte PDF.
type ReportMeta struct {
	Title       string
	Currency    string
	GeneratedAt time.Time
}

// DashboardPDFGenerator puerto de renderizado del tablero en PDF.
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, dashboard *dto.DashboardDTO, meta ReportMeta) ([]byte, error)
}

// ReportUseCase exporta en PDF el mismo tablero que devuelve GetDashboard.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator DashboardPDFGenerator
	title     string
	currency  string
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator DashboardPDFGenerator, title, currency string) *ReportUseCase {
	return &ReportUseCase{
		dashboard: dashboard,
		generator: generator,
		title:     title,
		currency:  currency,
		now:       time.Now,
	}
}

// DownloadReport genera el PDF para los filtros pedidos.
// Retorna (pdfBytes, filename, nil) o los mismos errores que GetDashboard.
func (uc *ReportUseCase) DownloadReport(ctx context.Context, req dto.DashboardRequest) ([]byte, string, error) {
	dashboard, err := uc.dashboard.GetDashboard(ctx, req)
	if err != nil {
		return nil, "", err
	}

	pdf, err := uc.generator.GenerateDashboardPDF(ctx, dashboard, ReportMeta{
		Title:       uc.title,
		Currency:    uc.currency,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}

	filename := fmt.Sprintf("ventes_%s_%s.pdf", dashboard.Period.DateFrom, dashboard.Period.DateTo)
	return pdf, filename, nil
}
