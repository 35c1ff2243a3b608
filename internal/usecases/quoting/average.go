package quoting

// LeadingZeroAverage calcula el promedio de meses activos de una fila densa
// de conteos mensuales. La corrida inicial de ceros se excluye de la suma y
// del divisor; los ceros posteriores al primer mes con ventas sí cuentan,
// porque un mes malo de alguien que ya vendía debe bajar el promedio.
//
// Devuelve active=false cuando toda la fila es cero; en ese caso el promedio
// es 0.
func LeadingZeroAverage(counts []int) (avg float64, active bool) {
	first := -1
	for i, c := range counts {
		if c != 0 {
			first = i
			break
		}
	}
	if first == -1 {
		return 0, false
	}

	sum := 0
	for _, c := range counts[first:] {
		sum += c
	}

	return float64(sum) / float64(len(counts)-first), true
}
