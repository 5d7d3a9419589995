// Package timeentry calcula el valor de los turnos (almuerzo/cena) de un registro de ponto
// a partir de la configuración de pago del funcionario.
package timeentry

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Días usados para prorratear pagos semanales y mensuales.
const (
	workDaysPerWeek  = 6
	workDaysPerMonth = 26
)

// Values valores calculados de un día trabajado, redondeados a 2 decimales.
type Values struct {
	Lunch  decimal.Decimal
	Dinner decimal.Decimal
	Total  decimal.Decimal
}

// Compute calcula los valores del día. El fin de semana se evalúa en loc.
func Compute(s entity.ShiftSettings, date time.Time, loc *time.Location, workedLunch, workedDinner bool) Values {
	if loc == nil {
		loc = time.UTC
	}
	lunch, dinner := decimal.Zero, decimal.Zero

	if workedLunch {
		lunch = shiftValue(s.LunchPaymentType, valueOf(s.LunchValue), s.LunchStartTime, s.LunchEndTime)
	}
	if workedDinner {
		base := valueOf(s.DinnerWeekdayValue)
		if s.DinnerPaymentType != entity.PaymentMonth && IsWeekend(date.In(loc)) {
			base = valueOf(s.DinnerWeekendValue)
		}
		dinner = shiftValue(s.DinnerPaymentType, base, s.DinnerStartTime, s.DinnerEndTime)
	}

	lunch = lunch.Round(2)
	dinner = dinner.Round(2)
	return Values{Lunch: lunch, Dinner: dinner, Total: lunch.Add(dinner)}
}

func shiftValue(paymentType string, base decimal.Decimal, start, end string) decimal.Decimal {
	switch paymentType {
	case entity.PaymentHour:
		return Hours(start, end).Mul(base)
	case entity.PaymentWeek:
		return base.Div(decimal.NewFromInt(workDaysPerWeek))
	case entity.PaymentMonth:
		return base.Div(decimal.NewFromInt(workDaysPerMonth))
	default: // SHIFT, DAY o vacío
		return base
	}
}

// IsWeekend sábado o domingo.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Hours horas entre dos horarios "HH:MM". Si la salida no es posterior a la entrada
// el turno cruzó la medianoche y se suman 24h. Horarios vacíos o inválidos dan cero.
func Hours(start, end string) decimal.Decimal {
	s, ok1 := minutesOf(start)
	e, ok2 := minutesOf(end)
	if !ok1 || !ok2 {
		return decimal.Zero
	}
	if e <= s {
		e += 24 * 60
	}
	return decimal.NewFromInt(int64(e - s)).Div(decimal.NewFromInt(60))
}

// ValidClock indica si s tiene formato "HH:MM" (24h, 24:00 incluido).
func ValidClock(s string) bool {
	_, ok := minutesOf(s)
	return ok
}

func minutesOf(s string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return 0, false
	}
	hh, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	mm, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	if hh < 0 || mm < 0 || mm > 59 || hh > 24 || (hh == 24 && mm != 0) {
		return 0, false
	}
	return hh*60 + mm, true
}

func valueOf(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
