package http

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
)

func TestValidator_ReglasPropias(t *testing.T) {
	v := NewValidator()
	bad := "25:00"
	neg := decimal.RequireFromString("-1")

	err := v.Struct(&dto.CreateEmployeeRequest{
		Name:     "Ana Maria",
		Phone:    ptr("abc"),
		HireDate: "2024-02-30",
		ShiftSettingsInput: dto.ShiftSettingsInput{
			LunchStartTime: &bad,
			LunchValue:     &neg,
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"teléfono inválido"}, verr.Fields["phone"])
	assert.Equal(t, []string{"fecha inválida"}, verr.Fields["hireDate"])
	assert.Equal(t, []string{"formato esperado HH:MM"}, verr.Fields["lunchStartTime"])
	assert.Contains(t, verr.Fields, "lunchValue")
	assert.NotContains(t, verr.Fields, "name")
}

func TestValidator_EntradaValida(t *testing.T) {
	v := NewValidator()
	amount := decimal.RequireFromString("10.50")
	assert.NoError(t, v.Struct(&dto.CreateAdvanceRequest{EmployeeID: "e1", Amount: &amount, RequestDate: "2024-03-01"}))
	assert.NoError(t, v.Struct(&dto.MonthQuery{}))
	assert.NoError(t, v.Struct(&dto.MonthQuery{Month: "2024-12"}))
	assert.Error(t, v.Struct(&dto.MonthQuery{Month: "2024-1"}))
}

func ptr[T any](v T) *T { return &v }
