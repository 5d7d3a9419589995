package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

// TimeEntryFilter filtros de registros de ponto.
type TimeEntryFilter struct {
	EmployeeID string
	Period     *ledger.Period
}

// TimeEntryRepository puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(ctx context.Context, e *entity.TimeEntry) error
	GetByID(ctx context.Context, id string) (*entity.TimeEntry, error)
	// List ordena por fecha descendente y nombre del funcionario.
	List(ctx context.Context, f TimeEntryFilter) ([]*entity.TimeEntry, error)
	// FindForDay devuelve el registro del funcionario en ese día, excluyendo excludeID.
	FindForDay(ctx context.Context, employeeID string, day ledger.Period, excludeID string) (*entity.TimeEntry, error)
	Update(ctx context.Context, e *entity.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

// ShiftConfigRepository parámetros globales de turnos.
type ShiftConfigRepository interface {
	List(ctx context.Context) ([]*entity.ShiftConfig, error)
	// UpdateValue devuelve domain.ErrNotFound si no existe la configuración.
	UpdateValue(ctx context.Context, name string, value Money) error
	// Ensure crea la configuración si falta, sin tocar una existente.
	Ensure(ctx context.Context, c *entity.ShiftConfig) error
}
