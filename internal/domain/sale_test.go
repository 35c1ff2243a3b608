package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitFallback(t *testing.T) {
	tests := []struct {
		name     string
		sale     SaleRecord
		expected bool
	}{
		{
			name:     "estatus en transito",
			sale:     SaleRecord{Status: "EN TRANSITO"},
			expected: true,
		},
		{
			name:     "estatus solicitado con calificativo",
			sale:     SaleRecord{Status: "SOLICITADO URGENTE"},
			expected: true,
		},
		{
			name:     "subcadena sin frontera de palabra",
			sale:     SaleRecord{Status: "PRESOLICITADOS"},
			expected: false,
		},
		{
			name:     "entregado sin plan ni precio ni renta",
			sale:     SaleRecord{Status: "ENTREGADO", Plan: "nan", Price: "", Rent: "none"},
			expected: true,
		},
		{
			name:     "entregado con plan",
			sale:     SaleRecord{Status: "ENTREGADO", Plan: "LIBRE 100"},
			expected: false,
		},
		{
			name:     "cancelado",
			sale:     SaleRecord{Status: "CANCELADO"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sale.TransitFallback())
		})
	}
}

func TestCanonicalExecutive(t *testing.T) {
	assert.Equal(t, "CESAR JAHACIEL ALONSO GARCIA", CanonicalExecutive(" César Jahaciel Alonso Garcíaa "))
	assert.Equal(t, "VICTOR BETANZOS FUENTES", CanonicalExecutive("Victor Betanzo Fuentes"))
	assert.Equal(t, "LOPEZ PEREZ", CanonicalExecutive("López   Pérez"))
	assert.Equal(t, "", CanonicalExecutive("   "))
}

func TestCanonicalCenterKey(t *testing.T) {
	assert.Equal(t, CenterJV, CanonicalCenterKey("Cd. Juárez Norte"))
	assert.Equal(t, CenterCC2, CanonicalCenterKey("Contact Center 2"))
	assert.Equal(t, CenterCC2, CanonicalCenterKey(""))
}
