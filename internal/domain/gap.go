package domain

import "time"

// GapRow es el avance de un ejecutivo contra su meta en el mes rastreado.
// Invariante: Gap + Total == Quota, siempre por construcción.
type GapRow struct {
	Executive  string `json:"executive"`
	Supervisor string `json:"supervisor"`
	CenterKey  string `json:"center_key"`
	TenureDays int    `json:"tenure_days"`

	Completed int `json:"completed"`
	InTransit int `json:"in_transit"`
	Total     int `json:"total"`
	Quota     int `json:"quota"`

	// Gap es meta - total, con signo; negativo significa sobre-meta.
	Gap int `json:"gap"`

	RequiredDailyRate          float64 `json:"required_daily_rate"`
	RequiredDailyRateFromToday float64 `json:"required_daily_rate_from_today"`
	ExpectedByToday            int     `json:"expected_by_today"`
	OnTrack                    bool    `json:"on_track"`
	IsNewHire                  bool    `json:"is_new_hire"`
}

// GapRollup es la agregación de GapRow por equipo, centro o global. Las
// tasas se recalculan sobre las sumas del grupo, nunca promediando tasas.
type GapRollup struct {
	Group      string `json:"group"`
	Executives int    `json:"executives"`

	Completed int `json:"completed"`
	InTransit int `json:"in_transit"`
	Total     int `json:"total"`
	Quota     int `json:"quota"`
	Gap       int `json:"gap"`

	AverageQuota               float64 `json:"average_quota"`
	RequiredDailyRate          float64 `json:"required_daily_rate"`
	RequiredDailyRateFromToday float64 `json:"required_daily_rate_from_today"`
	ExpectedByToday            int     `json:"expected_by_today"`
	OnTrack                    bool    `json:"on_track"`
}

// GapReport es el reporte completo de avance del mes: filas por ejecutivo
// más los rollups por supervisor, por centro y global.
type GapReport struct {
	Month string    `json:"month"`
	AsOf  time.Time `json:"as_of"`

	DaysTotal     float64 `json:"business_days_total"`
	DaysElapsed   float64 `json:"business_days_elapsed"`
	DaysRemaining float64 `json:"business_days_remaining"`

	// RateIndeterminate marca un mes con 0 días hábiles equivalentes;
	// las tasas no se calculan en lugar de dividir entre cero.
	RateIndeterminate bool `json:"rate_indeterminate"`

	Rows     []*GapRow    `json:"rows"`
	ByTeam   []*GapRollup `json:"by_team"`
	ByCenter []*GapRollup `json:"by_center"`
	Global   *GapRollup   `json:"global"`

	SkippedRecords int `json:"skipped_records"`
}
