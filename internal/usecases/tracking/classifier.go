package tracking

import (
	"regexp"

	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/normalize"
)

// Los estatus llegan ya normalizados; la coincidencia por frontera de
// palabra tolera calificativos al final ("SOLICITADO URGENTE").
var (
	transitPattern   = regexp.MustCompile(`\b(EN ENTREGA|EN PREPARACION|SOLICITADO|BACK OFFICE)\b`)
	deliveredPattern = regexp.MustCompile(`\bENTREGAD`)
)

// Classify reporta si un registro de entrega está en tránsito: estatus de
// tránsito reconocido, o entregado pero sin venta ligada.
func Classify(status, linkedSale string) bool {
	if transitPattern.MatchString(status) {
		return true
	}
	return deliveredPattern.MatchString(status) && normalize.Blank(linkedSale)
}

// VendorTotals son los conteos del mes de un ejecutivo sobre el feed de
// entregas.
type VendorTotals struct {
	Completed int
	InTransit int
}

// SplitByVendor agrega el feed de entregas por ejecutivo. Los registros
// Canc Error se descartan antes de clasificar y los registros sin clave de
// join se cuentan como omitidos. Varias filas con la misma clave cuentan
// una sola vez, y quedan en tránsito si cualquiera de ellas lo está; así un
// duplicado no puede voltear un tránsito verdadero a falso.
func SplitByVendor(deliveries []*domain.DeliveryRecord) (map[string]*VendorTotals, int) {
	type folioState struct {
		vendor    string
		inTransit bool
	}

	folios := make(map[string]*folioState)
	skipped := 0
	for _, d := range deliveries {
		if d.Status == domain.DeliveryCancError {
			continue
		}
		if d.Folio == "" {
			skipped++
			continue
		}
		state, ok := folios[d.Folio]
		if !ok {
			state = &folioState{vendor: d.Vendor}
			folios[d.Folio] = state
		}
		if Classify(d.Status, d.LinkedSale) {
			state.inTransit = true
		}
	}

	totals := make(map[string]*VendorTotals)
	for _, state := range folios {
		t, ok := totals[state.vendor]
		if !ok {
			t = &VendorTotals{}
			totals[state.vendor] = t
		}
		if state.inTransit {
			t.InTransit++
		} else {
			t.Completed++
		}
	}

	return totals, skipped
}
