package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadingZeroAverage(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		wantAvg    float64
		wantActive bool
	}{
		{
			name:       "ceros iniciales excluidos de suma y divisor",
			counts:     []int{0, 0, 5, 3},
			wantAvg:    4.0,
			wantActive: true,
		},
		{
			name:       "sin ceros iniciales promedia toda la ventana",
			counts:     []int{4, 6, 8},
			wantAvg:    6.0,
			wantActive: true,
		},
		{
			name:       "ceros posteriores al primer mes activo sí cuentan",
			counts:     []int{0, 6, 0, 0},
			wantAvg:    2.0,
			wantActive: true,
		},
		{
			name:       "ventana toda en cero",
			counts:     []int{0, 0, 0},
			wantAvg:    0,
			wantActive: false,
		},
		{
			name:       "ventana vacía",
			counts:     nil,
			wantAvg:    0,
			wantActive: false,
		},
		{
			name:       "un solo mes con ventas",
			counts:     []int{9},
			wantAvg:    9.0,
			wantActive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, active := LeadingZeroAverage(tt.counts)
			assert.Equal(t, tt.wantAvg, avg)
			assert.Equal(t, tt.wantActive, active)
		})
	}
}
