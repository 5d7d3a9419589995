// Package ledger agrupa utilidades de fechas para los registros financieros
// (vales, gastos, ingresos, folha): filtro por mes, rango de un día y parseo de fechas.
package ledger

import (
	"strings"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
)

// MonthLayout formato de mes aceptado en filtros y en la folha.
const MonthLayout = "2006-01"

// Period rango cerrado [Start, End] en una zona horaria.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del rango (ambos extremos incluidos).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// MonthRange convierte "YYYY-MM" en el primer y último instante de ese mes en loc.
func MonthRange(month string, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(month), loc)
	if err != nil {
		return Period{}, domain.Invalid("month", "formato esperado YYYY-MM")
	}
	return Period{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, nil
}

// DayRange devuelve el día calendario completo que contiene t en loc.
func DayRange(t time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// Noon normaliza t a las 12:00 del mismo día en loc.
func Noon(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

// MonthOf devuelve "YYYY-MM" del instante t en loc.
func MonthOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(MonthLayout)
}

// ParseDate acepta "YYYY-MM-DD" (medianoche en loc) o RFC3339 con zona explícita.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}
