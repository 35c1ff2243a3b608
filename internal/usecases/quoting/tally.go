package quoting

import (
	"sort"

	"github.com/expcc/metas-cc-api/internal/domain"
	"github.com/expcc/metas-cc-api/pkg/utils"
)

// Tally es la matriz densa (ejecutivo x mes) de conteos de venta. Todo mes
// de la ventana aparece para todo ejecutivo, con 0 explícito cuando no hubo
// ventas; el promedio con supresión de ceros iniciales depende de que la
// secuencia de meses sea contigua y completa.
type Tally struct {
	Months []string
	counts map[string][]int
}

// BuildTally agrupa las ventas por (ejecutivo, mes) sobre la ventana dada.
// Las ventas fuera de la ventana se ignoran.
func BuildTally(sales []*domain.SaleRecord, months []string) *Tally {
	index := make(map[string]int, len(months))
	for i, m := range months {
		index[m] = i
	}

	t := &Tally{
		Months: months,
		counts: make(map[string][]int),
	}

	for _, sale := range sales {
		pos, ok := index[utils.MonthKey(sale.CaptureDate)]
		if !ok {
			continue
		}
		row, ok := t.counts[sale.Executive]
		if !ok {
			row = make([]int, len(months))
			t.counts[sale.Executive] = row
		}
		row[pos]++
	}

	return t
}

// Counts devuelve la fila densa del ejecutivo; todo ceros si no tuvo ventas
// en la ventana.
func (t *Tally) Counts(executive string) []int {
	if row, ok := t.counts[executive]; ok {
		return row
	}
	return make([]int, len(t.Months))
}

// Executives devuelve los ejecutivos con al menos una venta en la ventana,
// en orden alfabético.
func (t *Tally) Executives() []string {
	names := make([]string, 0, len(t.counts))
	for name := range t.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SoldIn reporta si el ejecutivo tuvo ventas en el mes dado.
func (t *Tally) SoldIn(executive, month string) bool {
	row, ok := t.counts[executive]
	if !ok {
		return false
	}
	for i, m := range t.Months {
		if m == month {
			return row[i] > 0
		}
	}
	return false
}
