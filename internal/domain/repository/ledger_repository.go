package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	// List filtra por período si no es nil; orden date descendente.
	List(ctx context.Context, period *ledger.Period) ([]*entity.Expense, error)
	Update(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, id string) error
}

// RevenueRepository puerto de persistencia para Revenue.
type RevenueRepository interface {
	Create(ctx context.Context, r *entity.Revenue) error
	GetByID(ctx context.Context, id string) (*entity.Revenue, error)
	List(ctx context.Context, period *ledger.Period) ([]*entity.Revenue, error)
	Update(ctx context.Context, r *entity.Revenue) error
	Delete(ctx context.Context, id string) error
}
