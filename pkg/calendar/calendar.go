// Package calendar calcula días hábiles equivalentes bajo la política del
// contact center: lunes a viernes cuentan 1.0, sábado 0.5, domingo 0 y los
// puentes fijos de México 0 (el feriado gana sobre el medio sábado).
package calendar

import (
	"fmt"
	"time"
)

// MonthKeyLayout es el formato de las claves de mes usadas en todo el
// sistema, p.ej. "2026-08".
const MonthKeyLayout = "2006-01"

// nthWeekdayOfMonth encuentra la n-ésima ocurrencia de un día de la semana
// en el mes: primera ocurrencia + 7*(n-1) días.
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	shift := (int(weekday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, shift+7*(n-1))
}

// Holidays devuelve el conjunto fijo de puentes de México para un año.
// La lista no es configurable a propósito.
func Holidays(year int) map[time.Time]bool {
	days := []time.Time{
		time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		nthWeekdayOfMonth(year, time.February, time.Monday, 1),
		nthWeekdayOfMonth(year, time.March, time.Monday, 3),
		time.Date(year, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.September, 16, 0, 0, 0, 0, time.UTC),
		nthWeekdayOfMonth(year, time.November, time.Monday, 3),
		time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
	}

	set := make(map[time.Time]bool, len(days))
	for _, d := range days {
		set[d] = true
	}

	return set
}

// truncate normaliza cualquier timestamp a medianoche UTC para comparar
// solo la fecha.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Equivalent devuelve los días hábiles equivalentes del rango [start, end]
// inclusive. Si end < start devuelve 0. Cuando el rango cruza de año, los
// puentes del nuevo año se agregan al conjunto.
func Equivalent(start, end time.Time) float64 {
	start = truncate(start)
	end = truncate(end)

	if end.Before(start) {
		return 0
	}

	holidays := Holidays(start.Year())
	year := start.Year()

	total := 0.0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Year() != year {
			year = d.Year()
			for h := range Holidays(year) {
				holidays[h] = true
			}
		}

		if holidays[d] {
			continue
		}

		switch d.Weekday() {
		case time.Saturday:
			total += 0.5
		case time.Sunday:
			// no suma
		default:
			total += 1.0
		}
	}

	return total
}

// MonthBounds devuelve el primer y último día del mes para una clave
// "yyyy-mm".
func MonthBounds(monthKey string) (time.Time, time.Time, error) {
	start, err := time.Parse(MonthKeyLayout, monthKey)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("clave de mes inválida %q: %w", monthKey, err)
	}

	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// MonthTotal devuelve los días hábiles equivalentes del mes completo.
func MonthTotal(monthKey string) (float64, error) {
	start, end, err := MonthBounds(monthKey)
	if err != nil {
		return 0, err
	}

	return Equivalent(start, end), nil
}

// ElapsedInMonth devuelve los días hábiles equivalentes desde el inicio del
// mes hasta asOf, recortado al fin de mes. Antes del inicio del mes es 0.
func ElapsedInMonth(monthKey string, asOf time.Time) (float64, error) {
	start, end, err := MonthBounds(monthKey)
	if err != nil {
		return 0, err
	}

	asOf = truncate(asOf)
	if asOf.Before(start) {
		return 0, nil
	}

	if asOf.After(end) {
		asOf = end
	}

	return Equivalent(start, asOf), nil
}

// RemainingInMonth devuelve los días hábiles equivalentes desde asOf (o el
// inicio del mes, lo que sea posterior) hasta el fin del mes, incluyendo el
// propio asOf. Después del fin de mes es 0.
func RemainingInMonth(monthKey string, asOf time.Time) (float64, error) {
	start, end, err := MonthBounds(monthKey)
	if err != nil {
		return 0, err
	}

	asOf = truncate(asOf)
	if asOf.After(end) {
		return 0, nil
	}

	if asOf.Before(start) {
		asOf = start
	}

	return Equivalent(asOf, end), nil
}

// RemainingForRate aplica la regla para dividir tasas: si lo único que
// queda es un sábado de medio crédito (0 < restante < 1) se trata como
// 1.0 para no inflar la venta diaria requerida.
func RemainingForRate(remaining float64) float64 {
	if remaining > 0 && remaining < 1 {
		return 1.0
	}

	return remaining
}
