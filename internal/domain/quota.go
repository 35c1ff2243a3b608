package domain

// QuotaRow es la meta mensual calculada para un ejecutivo.
type QuotaRow struct {
	Executive  string `json:"executive"`
	Supervisor string `json:"supervisor"`
	CenterKey  string `json:"center_key"`
	Status     string `json:"status"`
	TenureDays int    `json:"tenure_days"`

	// MonthlySales trae las ventas por clave de mes de la ventana,
	// densificadas: todo mes de la ventana aparece, con 0 explícito.
	MonthlySales map[string]int `json:"monthly_sales"`
	TotalSales   int            `json:"total_sales"`

	RollingAverage float64 `json:"rolling_average"`

	// NoActiveMonths indica que la ventana completa fue de ceros y el
	// promedio quedó en 0.
	NoActiveMonths bool `json:"no_active_months"`

	Quota int `json:"quota"`

	// IsNewHire marca ingresos del mes objetivo posteriores al día 9;
	// informativa, no altera la meta.
	IsNewHire bool `json:"is_new_hire"`
}

// QuotaTable es la tabla de metas de un mes objetivo, tanto para el mes en
// curso como para una simulación del mes siguiente a un intervalo.
type QuotaTable struct {
	Month          string      `json:"month"`
	WindowMonths   []string    `json:"window_months"`
	Rows           []*QuotaRow `json:"rows"`
	TotalQuota     int         `json:"total_quota"`
	SkippedRecords int         `json:"skipped_records"`
}
