package quoting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/expcc/metas-cc-api/internal/domain"
)

func saleOn(executive string, year int, month time.Month, day int) *domain.SaleRecord {
	return &domain.SaleRecord{
		Executive:   executive,
		CaptureDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildTally(t *testing.T) {
	window := []string{"2026-05", "2026-06", "2026-07"}
	sales := []*domain.SaleRecord{
		saleOn("ANA PEREZ", 2026, time.June, 3),
		saleOn("ANA PEREZ", 2026, time.June, 17),
		saleOn("ANA PEREZ", 2026, time.July, 8),
		saleOn("LUIS SOTO", 2026, time.May, 20),
		// fuera de la ventana, no debe contar
		saleOn("LUIS SOTO", 2026, time.August, 2),
	}

	tally := BuildTally(sales, window)

	assert.Equal(t, []int{0, 2, 1}, tally.Counts("ANA PEREZ"))
	assert.Equal(t, []int{1, 0, 0}, tally.Counts("LUIS SOTO"))

	// ejecutivo sin ventas en la ventana recibe fila densa de ceros
	assert.Equal(t, []int{0, 0, 0}, tally.Counts("DESCONOCIDO"))

	assert.Equal(t, []string{"ANA PEREZ", "LUIS SOTO"}, tally.Executives())

	assert.True(t, tally.SoldIn("ANA PEREZ", "2026-07"))
	assert.False(t, tally.SoldIn("LUIS SOTO", "2026-07"))
	assert.False(t, tally.SoldIn("LUIS SOTO", "2026-08"))
}
