package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// PayrollRepository puerto de persistencia para PayrollEntry.
type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (*entity.PayrollEntry, error)
	GetByEmployeeMonth(ctx context.Context, employeeID, month string) (*entity.PayrollEntry, error)
	// List filtra por mes si month no está vacío; orden createdAt descendente.
	List(ctx context.Context, month string) ([]*entity.PayrollEntry, error)
	// Upsert inserta o actualiza por (employeeId, month).
	Upsert(ctx context.Context, e *entity.PayrollEntry) error
	Update(ctx context.Context, e *entity.PayrollEntry) error
}
