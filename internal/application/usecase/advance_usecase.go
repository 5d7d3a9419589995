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

// AdvanceUseCase casos de uso de vales (adelantos de salario).
type AdvanceUseCase struct {
	advances  repository.AdvanceRepository
	employees repository.EmployeeRepository
	clock     ports.Clock
}

// NewAdvanceUseCase construye el caso de uso.
func NewAdvanceUseCase(advances repository.AdvanceRepository, employees repository.EmployeeRepository, clock ports.Clock) *AdvanceUseCase {
	return &AdvanceUseCase{advances: advances, employees: employees, clock: clock}
}

// List filtra por estado y funcionario; orden requestDate descendente.
func (uc *AdvanceUseCase) List(ctx context.Context, q dto.AdvanceListQuery) ([]dto.AdvanceResponse, error) {
	list, err := uc.advances.List(ctx, repository.AdvanceFilter{Status: q.Status, EmployeeID: q.EmployeeID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdvanceResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAdvanceResponse(a))
	}
	return out, nil
}

// Create registra un vale PENDING. El funcionario debe existir.
func (uc *AdvanceUseCase) Create(ctx context.Context, in dto.CreateAdvanceRequest) (*dto.AdvanceResponse, error) {
	emp, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	now := uc.clock.Now()
	requestDate := now
	if in.RequestDate != "" {
		if requestDate, err = parseDateField("requestDate", in.RequestDate, uc.clock.Loc); err != nil {
			return nil, err
		}
	}
	a := &entity.Advance{
		ID:          uuid.New().String(),
		EmployeeID:  emp.ID,
		Amount:      *in.Amount,
		RequestDate: requestDate,
		Status:      entity.AdvanceStatusPending,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.advances.Create(ctx, a); err != nil {
		return nil, err
	}
	a.Employee = &entity.EmployeeRef{ID: emp.ID, Name: emp.Name, Role: emp.Role}
	out := toAdvanceResponse(a)
	return &out, nil
}

// Update modifica monto, estado, fecha de pago o notas. Un vale que pasa a PAID
// sin fecha de pago queda con la fecha actual; uno que deja de estar pagado pierde la fecha.
func (uc *AdvanceUseCase) Update(ctx context.Context, id string, in dto.UpdateAdvanceRequest) (*dto.AdvanceResponse, error) {
	a, err := uc.advances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdvanceNotFound
	}
	now := uc.clock.Now()
	if in.Amount != nil {
		a.Amount = *in.Amount
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.PaymentDate != nil {
		t, err := parseDateField("paymentDate", *in.PaymentDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		a.PaymentDate = &t
	}
	switch a.Status {
	case entity.AdvanceStatusPaid:
		if a.PaymentDate == nil {
			a.PaymentDate = &now
		}
	case entity.AdvanceStatusDiscounted:
	default:
		a.PaymentDate = nil
	}
	if in.Notes != nil {
		a.Notes = in.Notes
	}
	a.UpdatedAt = now

	if err := uc.advances.Update(ctx, a); err != nil {
		return nil, notFound(err, domain.ErrAdvanceNotFound)
	}
	out := toAdvanceResponse(a)
	return &out, nil
}

// Delete elimina un vale.
func (uc *AdvanceUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.advances.Delete(ctx, id), domain.ErrAdvanceNotFound)
}
