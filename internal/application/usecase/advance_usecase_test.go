package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func newAdvanceUC(t *testing.T) (*usecase.AdvanceUseCase, *testutil.Store) {
	s := testutil.NewStore()
	return usecase.NewAdvanceUseCase(s.Advances(), s.Employees(), fixedClock(t)), s
}

func TestAdvanceCreate_QuedaPendiente(t *testing.T) {
	uc, s := newAdvanceUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)

	out, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("150.50")})
	require.NoError(t, err)
	assert.Equal(t, entity.AdvanceStatusPending, out.Status)
	assert.Nil(t, out.PaymentDate)
	assert.True(t, out.RequestDate.Equal(fixedClock(t).Now()))
	require.NotNil(t, out.Employee)
	assert.Equal(t, "Ana", out.Employee.Name)
}

func TestAdvanceCreate_FuncionarioInexistente(t *testing.T) {
	uc, _ := newAdvanceUC(t)
	_, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "nope", Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdvanceUpdate_PagoSinFechaUsaAhora(t *testing.T) {
	uc, s := newAdvanceUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	created, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("100")})
	require.NoError(t, err)

	paid := entity.AdvanceStatusPaid
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateAdvanceRequest{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, out.PaymentDate)
	assert.True(t, out.PaymentDate.Equal(fixedClock(t).Now()))
}

func TestAdvanceUpdate_PagoConFechaInformada(t *testing.T) {
	uc, s := newAdvanceUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	created, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("100")})
	require.NoError(t, err)

	paid, date := entity.AdvanceStatusPaid, "2024-03-10"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateAdvanceRequest{Status: &paid, PaymentDate: &date})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", out.PaymentDate.Format("2006-01-02"))
}

func TestAdvanceUpdate_DejarDeEstarPagadoBorraLaFecha(t *testing.T) {
	uc, s := newAdvanceUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	created, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("100")})
	require.NoError(t, err)

	paid := entity.AdvanceStatusPaid
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateAdvanceRequest{Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, out.PaymentDate)

	for _, status := range []string{entity.AdvanceStatusApproved, entity.AdvanceStatusRejected, entity.AdvanceStatusPending} {
		st, date := status, "2024-03-10"
		out, err = uc.Update(context.Background(), created.ID, dto.UpdateAdvanceRequest{Status: &st, PaymentDate: &date})
		require.NoError(t, err)
		assert.Nil(t, out.PaymentDate, status)

		stored, err := s.Advances().GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.PaymentDate, status)
	}
}

func TestAdvanceUpdateDelete_Inexistente404(t *testing.T) {
	uc, _ := newAdvanceUC(t)
	_, err := uc.Update(context.Background(), "nope", dto.UpdateAdvanceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "nope"), domain.ErrNotFound)
}

func TestAdvanceList_FiltraPorEstado(t *testing.T) {
	uc, s := newAdvanceUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	a, err := uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("10")})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: dec("20")})
	require.NoError(t, err)
	paid := entity.AdvanceStatusPaid
	_, err = uc.Update(context.Background(), a.ID, dto.UpdateAdvanceRequest{Status: &paid})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), dto.AdvanceListQuery{Status: entity.AdvanceStatusPaid})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}
