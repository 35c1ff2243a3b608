package domain

import (
	"regexp"
	"time"

	"github.com/expcc/metas-cc-api/pkg/normalize"
)

// Claves de centro del contact center
const (
	CenterJV  = "JV"
	CenterCC2 = "CC2"
)

// SaleRecord es una venta del feed de ventas no conciliadas. Los campos de
// texto llegan crudos del origen; Executive y Folio ya vienen
// canonicalizados por el repositorio.
type SaleRecord struct {
	Folio       string    `json:"folio"`
	Executive   string    `json:"executive"`
	Center      string    `json:"center"`
	CenterKey   string    `json:"center_key"`
	CaptureDate time.Time `json:"capture_date"`
	Status      string    `json:"status"`
	Plan        string    `json:"plan"`
	Price       string    `json:"price"`
	Rent        string    `json:"rent"`

	// InTransit es la bandera de respaldo derivada del propio registro de
	// venta; el feed de entregas la sobreescribe para el mes rastreado.
	InTransit bool `json:"in_transit"`
}

// MonthKey devuelve la clave "yyyy-mm" del mes de captura.
func (s *SaleRecord) MonthKey() string {
	return s.CaptureDate.Format("2006-01")
}

var (
	saleTransitPattern   = regexp.MustCompile(`\b(EN ENTREGA|EN PREPARACION|SOLICITADO|BACK OFFICE|EN TRANSITO)\b`)
	saleDeliveredPattern = regexp.MustCompile(`\bENTREGAD`)
)

// TransitFallback clasifica la venta solo con sus propios campos: estatus de
// tránsito reconocido, o entregado pero sin plan, precio ni renta. Se usa
// cuando el feed de entregas no cubre el mes de la venta.
func (s *SaleRecord) TransitFallback() bool {
	if saleTransitPattern.MatchString(s.Status) {
		return true
	}
	return saleDeliveredPattern.MatchString(s.Status) &&
		normalize.Blank(s.Plan) && normalize.Blank(s.Price) && normalize.Blank(s.Rent)
}
