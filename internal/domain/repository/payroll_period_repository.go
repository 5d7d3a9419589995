package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// PayrollPeriodRepository puerto de persistencia para PayrollPeriod y sus pagos.
type PayrollPeriodRepository interface {
	// Create guarda el período junto con sus pagos.
	Create(ctx context.Context, p *entity.PayrollPeriod) error
	// GetByID incluye los pagos; nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.PayrollPeriod, error)
	// List ordena por startDate descendente e incluye los pagos.
	List(ctx context.Context) ([]*entity.PayrollPeriod, error)
}
