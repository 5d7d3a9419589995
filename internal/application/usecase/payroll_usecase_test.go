package usecase_test

import (
	"context"
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

func newPayrollUC(t *testing.T) (*usecase.PayrollUseCase, *testutil.Store) {
	s := testutil.NewStore()
	return usecase.NewPayrollUseCase(s.Payroll(), s.Tx(), fixedClock(t)), s
}

func seedPaidAdvance(t *testing.T, s *testutil.Store, id, employeeID, amount string, paidAt time.Time) {
	t.Helper()
	require.NoError(t, s.Advances().Create(context.Background(), &entity.Advance{
		ID:          id,
		EmployeeID:  employeeID,
		Amount:      decimal.RequireFromString(amount),
		RequestDate: paidAt,
		Status:      entity.AdvanceStatusPaid,
		PaymentDate: &paidAt,
	}))
}

func TestPayrollGenerate_SumaValesPagadosDelMes(t *testing.T) {
	uc, s := newPayrollUC(t)
	loc := saoPaulo(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	seedEmployee(t, s, "e2", "Bruno", "1500", false)

	seedPaidAdvance(t, s, "a1", "e1", "100", time.Date(2024, 2, 1, 0, 0, 0, 0, loc))
	seedPaidAdvance(t, s, "a2", "e1", "50.25", time.Date(2024, 2, 29, 23, 59, 0, 0, loc))
	seedPaidAdvance(t, s, "a3", "e1", "999", time.Date(2024, 3, 1, 0, 0, 0, 0, loc))
	require.NoError(t, s.Advances().Create(context.Background(), &entity.Advance{
		ID: "a4", EmployeeID: "e1", Amount: decimal.NewFromInt(70), Status: entity.AdvanceStatusPending,
	}))

	out, err := uc.Generate(context.Background(), dto.GeneratePayrollRequest{Month: "2024-02"})
	require.NoError(t, err)
	require.Len(t, out, 1, "solo funcionarios activos")
	assert.Equal(t, "e1", out[0].EmployeeID)
	assertDec(t, "2000", out[0].BaseSalary)
	assertDec(t, "150.25", out[0].Advances)
	assertDec(t, "1849.75", out[0].NetSalary)
}

func TestPayrollGenerate_ConservaBonificacionesExistentes(t *testing.T) {
	uc, s := newPayrollUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	s.Payroll().Put(entity.PayrollEntry{
		ID: "p1", EmployeeID: "e1", Month: "2024-02",
		BaseSalary: decimal.NewFromInt(1800), Bonuses: decimal.NewFromInt(300), Deductions: decimal.NewFromInt(100),
	})

	out, err := uc.Generate(context.Background(), dto.GeneratePayrollRequest{Month: "2024-02"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
	assertDec(t, "2200", out[0].NetSalary)

	list, err := uc.List(context.Background(), dto.MonthQuery{Month: "2024-02"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPayrollUpdate_IgnoraNetoDelCliente(t *testing.T) {
	uc, s := newPayrollUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	s.Payroll().Put(entity.PayrollEntry{
		ID: "p1", EmployeeID: "e1", Month: "2024-02",
		BaseSalary: decimal.NewFromInt(2000), Advances: decimal.NewFromInt(200),
		NetSalary: decimal.NewFromInt(1800),
	})

	out, err := uc.Update(context.Background(), "p1", dto.UpdatePayrollRequest{
		Bonuses:   dec("150"),
		NetSalary: dec("99999"),
	})
	require.NoError(t, err)
	assertDec(t, "1950", out.NetSalary)
	assert.False(t, out.Paid)
	assert.Nil(t, out.PaymentDate)
}

func TestPayrollUpdate_PagoYDespago(t *testing.T) {
	uc, s := newPayrollUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	s.Payroll().Put(entity.PayrollEntry{ID: "p1", EmployeeID: "e1", Month: "2024-02", BaseSalary: decimal.NewFromInt(2000)})

	yes, no := true, false
	out, err := uc.Update(context.Background(), "p1", dto.UpdatePayrollRequest{Paid: &yes})
	require.NoError(t, err)
	require.NotNil(t, out.PaymentDate)
	assert.True(t, out.PaymentDate.Equal(fixedClock(t).Now()))

	out, err = uc.Update(context.Background(), "p1", dto.UpdatePayrollRequest{Paid: &no})
	require.NoError(t, err)
	assert.Nil(t, out.PaymentDate)
	assertDec(t, "2000", out.NetSalary)
}

func TestPayrollUpdate_Inexistente(t *testing.T) {
	uc, _ := newPayrollUC(t)
	_, err := uc.Update(context.Background(), "nope", dto.UpdatePayrollRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayrollList_MesInvalido(t *testing.T) {
	uc, _ := newPayrollUC(t)
	_, err := uc.List(context.Background(), dto.MonthQuery{Month: "2024-13"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
