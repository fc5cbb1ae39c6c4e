package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRequest parámetros de GET /api/dashboard y GET /api/dashboard/report.pdf.
type DashboardRequest struct {
	DateFrom string `query:"date_from"` // YYYY-MM-DD; por defecto date_to - ventana configurada
	DateTo   string `query:"date_to"`   // YYYY-MM-DD; por defecto la última fecha de venta
	Region   string `query:"region"`    // wilaya exacta; vacío o centinela = todas
}

// PeriodDTO rango de fechas aplicado.
type PeriodDTO struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// KPIsDTO indicadores del conjunto filtrado. Los campos *_text vienen formateados
// con separador de miles y moneda para mostrarlos tal cual.
type KPIsDTO struct {
	Revenue           decimal.Decimal `json:"revenue"`
	RevenueText       string          `json:"revenue_text"`
	Quantity          int             `json:"quantity"`
	TransactionCount  int             `json:"transaction_count"`
	AverageBasket     decimal.Decimal `json:"average_basket"` // revenue / transaction_count; 0 sin ventas
	AverageBasketText string          `json:"average_basket_text"`
}

// LabelValueDTO fila (etiqueta, ingreso) de una tabla agrupada.
type LabelValueDTO struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyPointDTO punto de la serie mensual con su tendencia (media móvil de 2 meses).
type MonthlyPointDTO struct {
	YearMonth string          `json:"year_month"` // "2024-01"
	Revenue   decimal.Decimal `json:"revenue"`
	Trend     decimal.Decimal `json:"trend"`
}

// FiltersDTO opciones para los controles de filtro, derivadas del conjunto completo.
type FiltersDTO struct {
	Regions     []string   `json:"regions"` // centinela primero, luego regiones ordenadas
	AllRegions  string     `json:"all_regions"`
	MinDate     string     `json:"min_date,omitempty"`
	MaxDate     string     `json:"max_date,omitempty"`
	DefaultFrom string     `json:"default_from"`
	DefaultTo   string     `json:"default_to"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Period            PeriodDTO         `json:"period"`
	Region            string            `json:"region"`
	KPIs              KPIsDTO           `json:"kpis"`
	RevenueByRegion   []LabelValueDTO   `json:"revenue_by_region"`
	TopProducts       []LabelValueDTO   `json:"top_products"`
	RevenueByCategory []LabelValueDTO   `json:"revenue_by_category"`
	Monthly           []MonthlyPointDTO `json:"monthly"`
	Filters           FiltersDTO        `json:"filters"`

	// Stale = true cuando el almacén falló y se muestran los datos del snapshot anterior.
	Stale  bool   `json:"stale"`
	Notice string `json:"notice,omitempty"`
}

// RefreshResponseDTO respuesta de POST /api/dashboard/refresh.
type RefreshResponseDTO struct {
	Records int        `json:"records"`
	Filters FiltersDTO `json:"filters"`
}
