package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/internal/domain"
)

func TestVariantesSeReconocenComoSuTipo(t *testing.T) {
	assert.ErrorIs(t, domain.ErrEmployeeNotFound, domain.ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("crear vale: %w", domain.ErrEmployeeNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, domain.ErrEmailAlreadyExists, domain.ErrDuplicate)
	assert.ErrorIs(t, domain.ErrAccountLocked, domain.ErrForbidden)
	assert.ErrorIs(t, domain.ErrInvalidCredentials, domain.ErrUnauthorized)
	assert.False(t, errors.Is(domain.ErrEmployeeNotFound, domain.ErrDuplicate))
}

func TestValidationError(t *testing.T) {
	v := domain.NewValidationError()
	assert.NoError(t, v.OrNil())

	v.Add("amount", "es obligatorio")
	v.Add("employeeId", "es obligatorio")
	err := v.OrNil()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "datos inválidos: amount, employeeId", err.Error())

	var ve *domain.ValidationError
	assert.True(t, errors.As(domain.Invalid("month", "formato"), &ve))
	assert.Equal(t, []string{"formato"}, ve.Fields["month"])
}

func TestPermissionError(t *testing.T) {
	err := error(&domain.PermissionError{Reason: "solo administradores"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "solo administradores", err.Error())
}
