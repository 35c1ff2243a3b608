package utils

import "time"

const monthKeyLayout = "2006-01"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthKey devuelve la clave "yyyy-mm" del mes al que pertenece la fecha.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey interpreta una clave "yyyy-mm" como el primer día del mes.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(monthKeyLayout, key)
}

// NextMonthKey devuelve la clave del mes siguiente.
func NextMonthKey(key string) (string, error) {
	start, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}

	return start.AddDate(0, 1, 0).Format(monthKeyLayout), nil
}
