package utils

import (
	"fmt"
	"time"
)

// DayBounds retorna o primeiro e o último milissegundo do dia de t, no fuso
// de t
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// ParseDateBoundary interpreta um limite de intervalo em RFC 3339, como
// data-hora local (2006-01-02T15:04:05) ou só como data local. Data sem
// horário vira o início do dia, ou o último milissegundo quando endOfDay
// estiver ligado.
func ParseDateBoundary(value string, endOfDay bool, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", value)
	}

	start, end := DayBounds(t)
	if endOfDay {
		return end, nil
	}
	return start, nil
}
