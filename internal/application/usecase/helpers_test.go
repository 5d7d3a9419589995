package usecase_test

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

// fixedClock 15/03/2024 15:00 en São Paulo.
func fixedClock(t *testing.T) ports.Clock {
	loc := saoPaulo(t)
	return ports.Clock{
		Now: func() time.Time { return time.Date(2024, 3, 15, 15, 0, 0, 0, loc) },
		Loc: loc,
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got)
}

func seedEmployee(t *testing.T, s *testutil.Store, id, name, salary string, active bool) *entity.Employee {
	t.Helper()
	e := &entity.Employee{
		ID:     id,
		Name:   name,
		Role:   entity.DefaultEmployeeRole,
		Salary: decimal.RequireFromString(salary),
		Active: active,
	}
	require.NoError(t, s.Employees().Create(context.Background(), e))
	return e
}
