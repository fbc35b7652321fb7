package models

import "time"

// Deliverable sections. Each one is a self-contained editor sheet persisted
// as a single JSON document under a key-addressed store.
const (
	SectionCoverage = "cobertura"
	SectionRotation = "rotacion"
	SectionProposal = "propuesta"
	SectionKPIs     = "kpis"
)

// CoverageEntry is one store row of the days-of-coverage sheet.
// CoverageDays and StatusBand are derived; they are recomputed on every
// write and read and never trusted from the stored payload.
type CoverageEntry struct {
	StoreName      string  `json:"tienda" validate:"required"`
	InventoryUnits float64 `json:"inventario" validate:"gte=0"`
	DailySalesAvg  float64 `json:"venta_diaria_promedio" validate:"gte=0"`
	CoverageDays   float64 `json:"dias_cobertura"`
	StatusBand     string  `json:"estado"`
}

// RotationEntry is one business-unit row of the turnover comparison sheet.
type RotationEntry struct {
	BusinessUnit            string  `json:"unidad_negocio" validate:"required"`
	SalesPriorYear          float64 `json:"ventas_anio_anterior" validate:"gte=0"`
	AvgInventoryPriorYear   float64 `json:"inventario_prom_anio_anterior" validate:"gte=0"`
	SalesCurrentYear        float64 `json:"ventas_anio_actual" validate:"gte=0"`
	AvgInventoryCurrentYear float64 `json:"inventario_prom_anio_actual" validate:"gte=0"`
	RotationPriorYear       float64 `json:"rotacion_anio_anterior"`
	RotationCurrentYear     float64 `json:"rotacion_anio_actual"`
}

// TechProposalFinance holds the investment figures of the technology
// proposal; payback and 5-year NPV are derived.
type TechProposalFinance struct {
	InitialInvestment      float64 `json:"inversion_inicial" validate:"gte=0"`
	AnnualOperatingCost    float64 `json:"costo_operativo_anual" validate:"gte=0"`
	AnnualProjectedSavings float64 `json:"ahorro_anual_proyectado" validate:"gte=0"`
	PaybackYears           float64 `json:"payback_anios"`
	NetPresentValue5yr     int     `json:"vpn_5_anios"`
}

// KPIRecord bands actual vs. target with the percent-of-target rule.
type KPIRecord struct {
	Name        string  `json:"nombre" validate:"required"`
	ActualValue float64 `json:"valor_actual" validate:"gte=0"`
	TargetValue float64 `json:"valor_objetivo" validate:"gte=0"`
	StatusBand  string  `json:"estado"`
}

// KPIAlert is a deviation-band finding. KPIs within range are suppressed
// entirely, so only warning and critical severities ever appear.
type KPIAlert struct {
	Name         string  `json:"nombre"`
	DeviationPct float64 `json:"desviacion_pct"`
	Severity     string  `json:"severidad"`
}

type CoverageSheet struct {
	Rows      []CoverageEntry `json:"filas" validate:"required,dive"`
	UpdatedAt time.Time       `json:"actualizado_en,omitempty"`
}

type RotationSheet struct {
	Rows      []RotationEntry `json:"filas" validate:"required,dive"`
	UpdatedAt time.Time       `json:"actualizado_en,omitempty"`
}

type ProposalSheet struct {
	Proposal  TechProposalFinance `json:"propuesta"`
	UpdatedAt time.Time           `json:"actualizado_en,omitempty"`
}

type KPISheet struct {
	Rows      []KPIRecord `json:"filas" validate:"required,dive"`
	UpdatedAt time.Time   `json:"actualizado_en,omitempty"`
}
