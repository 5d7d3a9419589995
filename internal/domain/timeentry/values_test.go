package timeentry_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/timeentry"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

var (
	martes = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	sabado = time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
)

func TestHours(t *testing.T) {
	assertDec(t, "4", timeentry.Hours("11:00", "15:00"))
	assertDec(t, "7", timeentry.Hours("17:00", "00:00"))
	assertDec(t, "7", timeentry.Hours("17:00", "24:00"))
	assertDec(t, "1.5", timeentry.Hours("18:30", "20:00"))
	assertDec(t, "0", timeentry.Hours("", "20:00"))
	assertDec(t, "0", timeentry.Hours("25:00", "20:00"))
}

func TestCompute_TurnoFijo(t *testing.T) {
	s := entity.ShiftSettings{
		LunchPaymentType:   entity.PaymentShift,
		LunchValue:         dec("60"),
		DinnerPaymentType:  entity.PaymentShift,
		DinnerWeekdayValue: dec("80"),
		DinnerWeekendValue: dec("100"),
	}
	v := timeentry.Compute(s, martes, time.UTC, true, true)
	assertDec(t, "60", v.Lunch)
	assertDec(t, "80", v.Dinner)
	assertDec(t, "140", v.Total)

	v = timeentry.Compute(s, sabado, time.UTC, false, true)
	assertDec(t, "0", v.Lunch)
	assertDec(t, "100", v.Dinner)
}

func TestCompute_PorHora(t *testing.T) {
	s := entity.ShiftSettings{
		LunchPaymentType: entity.PaymentHour,
		LunchValue:       dec("12.50"),
		LunchStartTime:   "11:00",
		LunchEndTime:     "15:30",
	}
	v := timeentry.Compute(s, martes, time.UTC, true, false)
	assertDec(t, "56.25", v.Lunch)
}

func TestCompute_SemanalYMensual(t *testing.T) {
	s := entity.ShiftSettings{
		LunchPaymentType:   entity.PaymentWeek,
		LunchValue:         dec("400"),
		DinnerPaymentType:  entity.PaymentMonth,
		DinnerWeekdayValue: dec("2600"),
		DinnerWeekendValue: dec("9999"),
	}
	v := timeentry.Compute(s, sabado, time.UTC, true, true)
	assertDec(t, "66.67", v.Lunch)
	assertDec(t, "100", v.Dinner) // mensual ignora el valor de fin de semana
	assertDec(t, "166.67", v.Total)
}

func TestCompute_ValoresNulos(t *testing.T) {
	v := timeentry.Compute(entity.ShiftSettings{}, martes, time.UTC, true, true)
	assert.True(t, v.Total.IsZero())
}

func TestValidClock(t *testing.T) {
	for _, ok := range []string{"00:00", "9:15", "23:59", "24:00"} {
		assert.True(t, timeentry.ValidClock(ok), ok)
	}
	for _, bad := range []string{"", "24:01", "12:60", "1200", "ab:cd", "12:5"} {
		assert.False(t, timeentry.ValidClock(bad), bad)
	}
}
