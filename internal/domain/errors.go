package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas). Son el conjunto cerrado de tipos
// que la capa HTTP traduce a status.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Variantes con mensaje propio; errors.Is las reconoce como su tipo base.
var (
	ErrEmployeeNotFound   error = &kindError{msg: "funcionario no encontrado", kind: ErrNotFound}
	ErrCategoryNotFound   error = &kindError{msg: "categoría no encontrada", kind: ErrNotFound}
	ErrUserNotFound       error = &kindError{msg: "usuario no encontrado", kind: ErrNotFound}
	ErrAdvanceNotFound    error = &kindError{msg: "vale no encontrado", kind: ErrNotFound}
	ErrPayrollNotFound    error = &kindError{msg: "entrada de folha no encontrada", kind: ErrNotFound}
	ErrExpenseNotFound    error = &kindError{msg: "gasto no encontrado", kind: ErrNotFound}
	ErrRevenueNotFound    error = &kindError{msg: "ingreso no encontrado", kind: ErrNotFound}
	ErrMenuItemNotFound   error = &kindError{msg: "ítem del cardápio no encontrado", kind: ErrNotFound}
	ErrTimeEntryNotFound  error = &kindError{msg: "registro de ponto no encontrado", kind: ErrNotFound}
	ErrPeriodNotFound     error = &kindError{msg: "período de pago no encontrado", kind: ErrNotFound}
	ErrCategoryNameTaken  error = &kindError{msg: "ya existe una categoría con ese nombre", kind: ErrDuplicate}
	ErrEmailAlreadyExists error = &kindError{msg: "el email ya está registrado", kind: ErrDuplicate}
	ErrInvalidCredentials error = &kindError{msg: "credenciales inválidas", kind: ErrUnauthorized}
	ErrAccountLocked      error = &kindError{msg: "cuenta bloqueada temporalmente por demasiados intentos fallidos", kind: ErrForbidden}
	ErrCannotDeleteSelf   error = &kindError{msg: "no puede eliminar su propio usuario", kind: ErrInvalidInput}
	ErrDuplicateTimeEntry error = &kindError{msg: "ya existe un registro de ponto para este funcionario en esta fecha", kind: ErrConflict}
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// ValidationError agrupa problemas por campo. Se compara como ErrInvalidInput.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError crea un error vacío listo para Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add registra un problema para el campo indicado.
func (e *ValidationError) Add(field, issue string) {
	e.Fields[field] = append(e.Fields[field], issue)
}

// HasErrors indica si hay al menos un campo con problemas.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil devuelve nil si no hay problemas; evita el clásico nil tipado.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "datos inválidos: " + strings.Join(names, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid construye un ValidationError de un solo campo.
func Invalid(field, issue string) error {
	v := NewValidationError()
	v.Add(field, issue)
	return v
}

// PermissionError es una negativa con motivo legible. Se compara como ErrForbidden.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string { return e.Reason }

func (e *PermissionError) Is(target error) bool {
	return target == ErrForbidden
}
