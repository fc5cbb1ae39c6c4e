package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/boutique-analytics/internal/application/analytics"
	"github.com/jhoicas/boutique-analytics/internal/application/dto"
	"github.com/jhoicas/boutique-analytics/internal/domain"
)

// DashboardHandler maneja los endpoints del tablero de ventas.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetDashboard godoc
// @Summary      Tablero de ventas filtrado
// @Description  KPIs, ingresos por wilaya, top productos, ingresos por categoría y evolución
//               mensual para el período y la wilaya pedidos. Si el almacén falla y existe un
//               snapshot anterior, responde con stale=true y un aviso.
// @Tags         dashboard
// @Produce      json
// @Param        date_from  query  string  false  "Inicio (YYYY-MM-DD). Default: date_to - 90 días."
// @Param        date_to    query  string  false  "Fin (YYYY-MM-DD). Default: última fecha de venta."
// @Param        region     query  string  false  "Wilaya exacta; vacío o 'Toutes' = todas."
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	out, err := h.uc.GetDashboard(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetFilters godoc
// @Summary      Opciones de filtro
// @Description  Wilayas disponibles (centinela primero), fechas mínima/máxima y rango por defecto.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FiltersDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/filters [get]
func (h *DashboardHandler) GetFilters(c *fiber.Ctx) error {
	out, err := h.uc.GetFilters(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recargar datos
// @Description  Invalida el snapshot y vuelve a leer el almacén. Limitado por minuto.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.RefreshResponseDTO
// @Failure      429  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Reporte PDF del tablero
// @Description  Mismo tablero que GET /api/dashboard, renderizado en PDF.
// @Tags         dashboard
// @Produce      application/pdf
// @Param        date_from  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Fin (YYYY-MM-DD)"
// @Param        region     query  string  false  "Wilaya"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) DownloadReport(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	pdf, filename, err := h.report.DownloadReport(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrSchemaMismatch):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "CONFIG_ERROR", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
