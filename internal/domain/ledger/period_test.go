package ledger_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

func TestMonthRange_FebreroBisiesto(t *testing.T) {
	p, err := ledger.MonthRange("2024-02", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), p.End)

	assert.True(t, p.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestMonthRange_Diciembre(t *testing.T) {
	p, err := ledger.MonthRange("2023-12", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999999999, time.UTC), p.End)
}

func TestMonthRange_ZonaDelNegocio(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	p, err := ledger.MonthRange("2024-02", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 3, 0, 0, 0, time.UTC), p.Start.UTC())
}

func TestMonthRange_FormatoInvalido(t *testing.T) {
	for _, m := range []string{"", "2024-2", "2024-13", "24-02", "2024/02", "2024-02-01"} {
		_, err := ledger.MonthRange(m, time.UTC)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "mes %q debe ser inválido", m)
	}
}

func TestDayRangeYNoon(t *testing.T) {
	ts := time.Date(2024, 5, 7, 18, 45, 0, 0, time.UTC)
	d := ledger.DayRange(ts, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), d.Start)
	assert.Equal(t, time.Date(2024, 5, 7, 23, 59, 59, 999999999, time.UTC), d.End)
	assert.Equal(t, time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC), ledger.Noon(ts, time.UTC))
}

func TestParseDate(t *testing.T) {
	d, err := ledger.ParseDate("2024-05-07", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), d)

	d, err = ledger.ParseDate("2024-05-07T10:00:00-03:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 7, 13, 0, 0, 0, time.UTC), d.UTC())

	_, err = ledger.ParseDate("07/05/2024", time.UTC)
	assert.Error(t, err)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2024-05", ledger.MonthOf(time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC), time.UTC))
}
