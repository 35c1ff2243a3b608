package quoting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/expcc/metas-cc-api/internal/domain"
)

func TestPolicyQuota(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		tenureDays int
		avg        float64
		want       int
	}{
		{
			name:       "antigüedad corta manda aunque el promedio sea alto",
			status:     domain.StatusActive,
			tenureDays: 10,
			avg:        20,
			want:       6,
		},
		{
			name:       "promedio alto recibe piso más uno",
			status:     domain.StatusActive,
			tenureDays: 100,
			avg:        7.8,
			want:       8,
		},
		{
			name:       "promedio medio recibe piso más dos",
			status:     domain.StatusActive,
			tenureDays: 100,
			avg:        6.2,
			want:       8,
		},
		{
			name:       "promedio bajo cae a la meta base",
			status:     domain.StatusActive,
			tenureDays: 100,
			avg:        3.0,
			want:       7,
		},
		{
			name:       "frontera exacta de promedio siete",
			status:     domain.StatusActive,
			tenureDays: 100,
			avg:        7.0,
			want:       8,
		},
		{
			name:       "frontera exacta de promedio seis",
			status:     domain.StatusActive,
			tenureDays: 100,
			avg:        6.0,
			want:       8,
		},
		{
			name:       "baja fuerza meta cero con cualquier promedio",
			status:     domain.StatusBaja,
			tenureDays: 300,
			avg:        12,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultPolicy.Quota(tt.status, tt.tenureDays, tt.avg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenureDays(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	start := time.Date(2026, time.June, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 40, TenureDays(start, monthStart))

	// inicio posterior al mes objetivo queda con piso en cero
	future := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, TenureDays(future, monthStart))
}

func TestIsNewHire(t *testing.T) {
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{
			name:  "ingreso tardío del mes objetivo",
			start: time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "ingreso temprano del mes objetivo",
			start: time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "ingreso de otro mes",
			start: time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultPolicy.IsNewHire(tt.start, monthStart))
		})
	}
}

func TestEffectiveStart(t *testing.T) {
	hire := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	firstSale := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	withHire := &domain.EmployeeProfile{Name: "ANA", HireDate: &hire}
	assert.Equal(t, &hire, EffectiveStart(withHire, &firstSale))

	withoutHire := &domain.EmployeeProfile{Name: "ANA"}
	assert.Equal(t, &firstSale, EffectiveStart(withoutHire, &firstSale))

	assert.Equal(t, &firstSale, EffectiveStart(nil, &firstSale))
	assert.Nil(t, EffectiveStart(nil, nil))
}
