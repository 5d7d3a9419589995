package usecase_test

import (
	"context"
	"fmt"
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

func newEmployeeUC(t *testing.T) (*usecase.EmployeeUseCase, *testutil.Store) {
	s := testutil.NewStore()
	return usecase.NewEmployeeUseCase(s.Employees(), s.Advances(), fixedClock(t)), s
}

func TestEmployeeCreate_ValoresPorDefecto(t *testing.T) {
	uc, _ := newEmployeeUC(t)
	out, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{Name: "João Silva"})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultEmployeeRole, out.Role)
	assert.True(t, out.Active)
	assert.True(t, out.WorksDinner)
	assert.False(t, out.WorksLunch)
	assert.Equal(t, entity.PaymentShift, out.LunchPaymentType)
	assert.Equal(t, entity.PaymentShift, out.DinnerPaymentType)
	assertDec(t, "0", out.Salary)
	assert.True(t, out.HireDate.Equal(fixedClock(t).Now()))
}

func TestEmployeeCreate_FechaInvalida(t *testing.T) {
	uc, _ := newEmployeeUC(t)
	bad := "15/03/2024"
	_, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{Name: "Ana", HireDate: bad})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "hireDate")
}

func TestEmployeeGet_UltimosCincoVales(t *testing.T) {
	uc, s := newEmployeeUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, saoPaulo(t))
	for i := 0; i < 7; i++ {
		require.NoError(t, s.Advances().Create(context.Background(), &entity.Advance{
			ID:          fmt.Sprintf("a%d", i),
			EmployeeID:  "e1",
			Amount:      decimal.NewFromInt(10),
			RequestDate: base.AddDate(0, 0, i),
			Status:      entity.AdvanceStatusPending,
		}))
	}

	out, err := uc.Get(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, out.Advances, 5)
	assert.Equal(t, "a6", out.Advances[0].ID)
	assert.Equal(t, 7, out.Count.Advances)
}

func TestEmployeeUpdate_SoloCamposInformados(t *testing.T) {
	uc, s := newEmployeeUC(t)
	seedEmployee(t, s, "e1", "Ana", "2000", true)
	lunch := true
	out, err := uc.Update(context.Background(), "e1", dto.UpdateEmployeeRequest{
		Salary:             dec("2500"),
		ShiftSettingsInput: dto.ShiftSettingsInput{WorksLunch: &lunch, LunchValue: dec("45")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	assertDec(t, "2500", out.Salary)
	assert.True(t, out.WorksLunch)
	require.NotNil(t, out.LunchValue)
	assertDec(t, "45", *out.LunchValue)
}

func TestEmployeeDelete_Inexistente404(t *testing.T) {
	uc, _ := newEmployeeUC(t)
	err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.ErrEmployeeNotFound.Error(), err.Error())
}

func TestEmployeeList_OrdenYConteo(t *testing.T) {
	uc, s := newEmployeeUC(t)
	seedEmployee(t, s, "e2", "Bruno", "1000", true)
	seedEmployee(t, s, "e1", "Ana", "1000", false)
	require.NoError(t, s.Advances().Create(context.Background(), &entity.Advance{ID: "a1", EmployeeID: "e2", Status: entity.AdvanceStatusPending}))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, 1, list[1].Count.Advances)
}
