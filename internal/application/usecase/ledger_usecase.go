package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos.
type ExpenseUseCase struct {
	repo  repository.ExpenseRepository
	clock ports.Clock
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, clock ports.Clock) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, clock: clock}
}

// List gastos del mes indicado, o todos.
func (uc *ExpenseUseCase) List(ctx context.Context, q dto.MonthQuery) ([]dto.ExpenseResponse, error) {
	period, err := monthPeriod(q.Month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, period)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := parseDateField("date", in.Date, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	e := &entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Description: in.Description,
		Amount:      *in.Amount,
		Date:        date,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := toExpenseResponse(e)
	return &out, nil
}

func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrExpenseNotFound
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Date != nil {
		if e.Date, err = parseDateField("date", *in.Date, uc.clock.Loc); err != nil {
			return nil, err
		}
	}
	if in.Notes != nil {
		e.Notes = in.Notes
	}
	e.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, notFound(err, domain.ErrExpenseNotFound)
	}
	out := toExpenseResponse(e)
	return &out, nil
}

func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.repo.Delete(ctx, id), domain.ErrExpenseNotFound)
}

// RevenueUseCase casos de uso de ingresos.
type RevenueUseCase struct {
	repo  repository.RevenueRepository
	clock ports.Clock
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(repo repository.RevenueRepository, clock ports.Clock) *RevenueUseCase {
	return &RevenueUseCase{repo: repo, clock: clock}
}

// List ingresos del mes indicado, o todos.
func (uc *RevenueUseCase) List(ctx context.Context, q dto.MonthQuery) ([]dto.RevenueResponse, error) {
	period, err := monthPeriod(q.Month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, period)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenueResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRevenueResponse(r))
	}
	return out, nil
}

func (uc *RevenueUseCase) Create(ctx context.Context, in dto.CreateRevenueRequest) (*dto.RevenueResponse, error) {
	date, err := parseDateField("date", in.Date, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	r := &entity.Revenue{
		ID:          uuid.New().String(),
		Source:      in.Source,
		Description: in.Description,
		Amount:      *in.Amount,
		Date:        date,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toRevenueResponse(r)
	return &out, nil
}

func (uc *RevenueUseCase) Update(ctx context.Context, id string, in dto.UpdateRevenueRequest) (*dto.RevenueResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRevenueNotFound
	}
	if in.Source != nil {
		r.Source = *in.Source
	}
	if in.Description != nil {
		r.Description = in.Description
	}
	if in.Amount != nil {
		r.Amount = *in.Amount
	}
	if in.Date != nil {
		if r.Date, err = parseDateField("date", *in.Date, uc.clock.Loc); err != nil {
			return nil, err
		}
	}
	if in.Notes != nil {
		r.Notes = in.Notes
	}
	r.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, notFound(err, domain.ErrRevenueNotFound)
	}
	out := toRevenueResponse(r)
	return &out, nil
}

func (uc *RevenueUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.repo.Delete(ctx, id), domain.ErrRevenueNotFound)
}
