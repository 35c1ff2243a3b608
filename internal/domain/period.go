package domain

// AvailablePeriods lista los periodos con ventas registradas, para que el
// cliente arme sus selectores de mes.
type AvailablePeriods struct {
	Periods []string `json:"periods"` // claves "yyyy-mm"
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
