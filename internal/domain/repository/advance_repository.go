package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// AdvanceFilter filtros de listado de vales; campos vacíos no filtran.
type AdvanceFilter struct {
	Status     string
	EmployeeID string
	Limit      int
}

// AdvanceRepository puerto de persistencia para Advance.
type AdvanceRepository interface {
	Create(ctx context.Context, a *entity.Advance) error
	GetByID(ctx context.Context, id string) (*entity.Advance, error)
	// List ordena por requestDate descendente e incluye el funcionario.
	List(ctx context.Context, f AdvanceFilter) ([]*entity.Advance, error)
	// ListPaidBetween vales PAID con paymentDate en [from, to].
	ListPaidBetween(ctx context.Context, from, to time.Time) ([]*entity.Advance, error)
	Update(ctx context.Context, a *entity.Advance) error
	// MarkDiscounted pasa a DISCOUNTED los vales PAID de ids; los demás no cambian.
	MarkDiscounted(ctx context.Context, ids []string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
