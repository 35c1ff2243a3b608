package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expcc/metas-cc-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		linkedSale string
		want       bool
	}{
		{
			name:   "estatus de tránsito exacto",
			status: "EN ENTREGA",
			want:   true,
		},
		{
			name:   "estatus con calificativo al final",
			status: "SOLICITADO URGENTE",
			want:   true,
		},
		{
			name:   "en preparación",
			status: "EN PREPARACION",
			want:   true,
		},
		{
			name:   "back office",
			status: "BACK OFFICE",
			want:   true,
		},
		{
			name:       "entregado sin venta ligada sigue en tránsito",
			status:     "ENTREGADO",
			linkedSale: "",
			want:       true,
		},
		{
			name:       "entregado con placeholder de venta",
			status:     "ENTREGADO",
			linkedSale: "nan",
			want:       true,
		},
		{
			name:       "entregado con venta ligada",
			status:     "ENTREGADO",
			linkedSale: "5540",
			want:       false,
		},
		{
			name:   "estatus desconocido no es tránsito",
			status: "FACTURADO",
			want:   false,
		},
		{
			name:   "coincidencia parcial dentro de otra palabra no cuenta",
			status: "PRESOLICITADOS",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status, tt.linkedSale))
		})
	}
}

func TestSplitByVendor(t *testing.T) {
	deliveries := []*domain.DeliveryRecord{
		{Folio: "100", Vendor: "ANA PEREZ", Status: "ENTREGADO", LinkedSale: "555"},
		{Folio: "101", Vendor: "ANA PEREZ", Status: "EN ENTREGA"},
		// duplicado del mismo folio ya entregado: el OR preserva el tránsito
		{Folio: "101", Vendor: "ANA PEREZ", Status: "ENTREGADO", LinkedSale: "556"},
		{Folio: "102", Vendor: "ANA PEREZ", Status: "ENTREGADO", LinkedSale: ""},
		{Folio: "103", Vendor: "LUIS SOTO", Status: domain.DeliveryCancError},
		{Folio: "", Vendor: "LUIS SOTO", Status: "SOLICITADO"},
		{Folio: "104", Vendor: "LUIS SOTO", Status: "ENTREGADO", LinkedSale: "557"},
	}

	totals, skipped := SplitByVendor(deliveries)

	assert.Equal(t, 1, skipped)

	ana := totals["ANA PEREZ"]
	assert.NotNil(t, ana)
	assert.Equal(t, 1, ana.Completed)
	assert.Equal(t, 2, ana.InTransit)

	// el folio Canc Error no cuenta ni como hecha ni como tránsito
	luis := totals["LUIS SOTO"]
	assert.NotNil(t, luis)
	assert.Equal(t, 1, luis.Completed)
	assert.Equal(t, 0, luis.InTransit)
}
