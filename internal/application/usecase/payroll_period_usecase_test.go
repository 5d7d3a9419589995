package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func newPeriodUC(t *testing.T) (*usecase.PayrollPeriodUseCase, *testutil.Store) {
	s := testutil.NewStore()
	return usecase.NewPayrollPeriodUseCase(s.PayrollPeriods(), s.Tx(), fixedClock(t)), s
}

func seedShift(t *testing.T, s *testutil.Store, id, employeeID string, day time.Time, status, lunch, dinner string) {
	t.Helper()
	require.NoError(t, s.TimeEntries().Create(context.Background(), &entity.TimeEntry{
		ID:           id,
		EmployeeID:   employeeID,
		Date:         day,
		Status:       status,
		WorkedLunch:  lunch != "0",
		WorkedDinner: dinner != "0",
		LunchValue:   decimal.RequireFromString(lunch),
		DinnerValue:  decimal.RequireFromString(dinner),
	}))
}

func TestPayrollPeriodClose_LiquidaYDescuentaVales(t *testing.T) {
	uc, s := newPeriodUC(t)
	loc := saoPaulo(t)
	seedEmployee(t, s, "e1", "Ana", "0", true)
	seedEmployee(t, s, "e2", "Bruno", "0", false)

	seedShift(t, s, "t1", "e1", time.Date(2024, 3, 4, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "70")
	seedShift(t, s, "t2", "e1", time.Date(2024, 3, 10, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "0")
	seedShift(t, s, "t3", "e1", time.Date(2024, 3, 11, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "70")
	seedShift(t, s, "t4", "e2", time.Date(2024, 3, 5, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "70")
	seedPaidAdvance(t, s, "a1", "e1", "40", time.Date(2024, 2, 20, 10, 0, 0, 0, loc))

	out, err := uc.Close(context.Background(), admin, dto.ClosePayrollPeriodRequest{
		StartDate: "2024-03-04", EndDate: "2024-03-10", PeriodType: entity.PeriodWeekly,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodWeekly, out.PeriodType)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, loc), out.StartDate)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999999999, loc), out.EndDate)
	require.NotNil(t, out.CreatedByID)
	assert.Equal(t, "u-admin", *out.CreatedByID)

	require.Len(t, out.Payments, 1, "solo funcionarios activos")
	p := out.Payments[0]
	assert.Equal(t, "Ana", p.EmployeeName)
	assert.Equal(t, 2, p.DaysWorked)
	assertDec(t, "170", p.GrossAmount)
	assertDec(t, "40", p.Advances)
	assertDec(t, "130", p.NetAmount)
	assertDec(t, "130", out.TotalAmount)

	a, err := s.Advances().GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AdvanceStatusDiscounted, a.Status)
	require.NotNil(t, a.PaymentDate, "descontado conserva la fecha de pago")

	stored, err := uc.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Payments, 1)
}

func TestPayrollPeriodClose_ValeDescontadoNoSeCobraDosVeces(t *testing.T) {
	uc, s := newPeriodUC(t)
	loc := saoPaulo(t)
	seedEmployee(t, s, "e1", "Ana", "0", true)
	seedShift(t, s, "t1", "e1", time.Date(2024, 3, 4, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "0")
	seedShift(t, s, "t2", "e1", time.Date(2024, 3, 11, 12, 0, 0, 0, loc), entity.TimeEntryPresent, "50", "0")
	seedPaidAdvance(t, s, "a1", "e1", "20", time.Date(2024, 3, 1, 10, 0, 0, 0, loc))

	first, err := uc.Close(context.Background(), admin, dto.ClosePayrollPeriodRequest{StartDate: "2024-03-04", EndDate: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodCustom, first.PeriodType)
	assertDec(t, "30", first.TotalAmount)

	second, err := uc.Close(context.Background(), admin, dto.ClosePayrollPeriodRequest{StartDate: "2024-03-11", EndDate: "2024-03-11"})
	require.NoError(t, err)
	require.Len(t, second.Payments, 1)
	assertDec(t, "0", second.Payments[0].Advances)
	assertDec(t, "50", second.TotalAmount)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "orden por inicio descendente")
}

func TestPayrollPeriodClose_RangoInvertido(t *testing.T) {
	uc, s := newPeriodUC(t)
	seedEmployee(t, s, "e1", "Ana", "0", true)

	_, err := uc.Close(context.Background(), admin, dto.ClosePayrollPeriodRequest{StartDate: "2024-03-10", EndDate: "2024-03-04"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "endDate")

	_, err = uc.Close(context.Background(), admin, dto.ClosePayrollPeriodRequest{StartDate: "x", EndDate: "y"})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "startDate")
	assert.Contains(t, verr.Fields, "endDate")

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPayrollPeriodGet_Inexistente404(t *testing.T) {
	uc, _ := newPeriodUC(t)
	_, err := uc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
