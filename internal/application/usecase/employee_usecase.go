package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// recentAdvances vales que se muestran en el detalle de un funcionario.
const recentAdvances = 5

// EmployeeUseCase casos de uso CRUD para funcionarios.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	advances  repository.AdvanceRepository
	clock     ports.Clock
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository, advances repository.AdvanceRepository, clock ports.Clock) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, advances: advances, clock: clock}
}

// List lista todos los funcionarios por nombre, con el conteo de vales.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeListItemResponse, error) {
	list, err := uc.employees.List(ctx, repository.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeListItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, dto.EmployeeListItemResponse{
			EmployeeResponse: toEmployeeResponse(it.Employee),
			Count:            dto.EmployeeCountResponse{Advances: it.AdvancesCount},
		})
	}
	return out, nil
}

// Get devuelve el funcionario con sus últimos vales y conteos.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.EmployeeDetailResponse, error) {
	emp, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	advances, err := uc.advances.List(ctx, repository.AdvanceFilter{EmployeeID: id, Limit: recentAdvances})
	if err != nil {
		return nil, err
	}
	counts, err := uc.employees.Counts(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeDetailResponse{
		EmployeeResponse: toEmployeeResponse(emp),
		Advances:         make([]dto.AdvanceResponse, 0, len(advances)),
		Count:            dto.EmployeeCountResponse{Advances: counts.Advances, TimeEntries: counts.TimeEntries},
	}
	for _, a := range advances {
		out.Advances = append(out.Advances, toAdvanceResponse(a))
	}
	return out, nil
}

// Create da de alta un funcionario. Sin cargo usa "Funcionário"; sin fecha de
// contratación usa hoy; la cena se asume trabajada salvo que se indique lo contrario.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := uc.clock.Now()
	hire := now
	if in.HireDate != "" {
		t, err := parseDateField("hireDate", in.HireDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		hire = t
	}
	role := in.Role
	if role == "" {
		role = entity.DefaultEmployeeRole
	}
	salary := decimal.Zero
	if in.Salary != nil {
		salary = *in.Salary
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	emp := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      role,
		Phone:     emptyToNil(in.Phone),
		Document:  emptyToNil(in.Document),
		HireDate:  hire,
		Salary:    salary,
		Active:    active,
		Shifts:    defaultShifts(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyShiftInput(&emp.Shifts, in.ShiftSettingsInput)

	if err := uc.employees.Create(ctx, emp); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

// Update modifica solo los campos informados.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Role != nil {
		emp.Role = *in.Role
	}
	if in.Phone != nil {
		emp.Phone = emptyToNil(in.Phone)
	}
	if in.Document != nil {
		emp.Document = emptyToNil(in.Document)
	}
	if in.HireDate != nil {
		t, err := parseDateField("hireDate", *in.HireDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		emp.HireDate = t
	}
	if in.Salary != nil {
		emp.Salary = *in.Salary
	}
	if in.Active != nil {
		emp.Active = *in.Active
	}
	applyShiftInput(&emp.Shifts, in.ShiftSettingsInput)
	emp.UpdatedAt = uc.clock.Now()

	if err := uc.employees.Update(ctx, emp); err != nil {
		return nil, notFound(err, domain.ErrEmployeeNotFound)
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

// Delete elimina el funcionario y, en cascada, sus vales, folhas y pontos.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.employees.Delete(ctx, id), domain.ErrEmployeeNotFound)
}

func defaultShifts() entity.ShiftSettings {
	zero := decimal.Zero
	return entity.ShiftSettings{
		LunchPaymentType:   entity.PaymentShift,
		LunchValue:         &zero,
		WorksDinner:        true,
		DinnerPaymentType:  entity.PaymentShift,
		DinnerWeekdayValue: &zero,
		DinnerWeekendValue: &zero,
	}
}

func applyShiftInput(s *entity.ShiftSettings, in dto.ShiftSettingsInput) {
	if in.WorksLunch != nil {
		s.WorksLunch = *in.WorksLunch
	}
	if in.LunchPaymentType != nil {
		s.LunchPaymentType = *in.LunchPaymentType
	}
	if in.LunchValue != nil {
		v := *in.LunchValue
		s.LunchValue = &v
	}
	if in.LunchStartTime != nil {
		s.LunchStartTime = *in.LunchStartTime
	}
	if in.LunchEndTime != nil {
		s.LunchEndTime = *in.LunchEndTime
	}
	if in.WorksDinner != nil {
		s.WorksDinner = *in.WorksDinner
	}
	if in.DinnerPaymentType != nil {
		s.DinnerPaymentType = *in.DinnerPaymentType
	}
	if in.DinnerWeekdayValue != nil {
		v := *in.DinnerWeekdayValue
		s.DinnerWeekdayValue = &v
	}
	if in.DinnerWeekendValue != nil {
		v := *in.DinnerWeekendValue
		s.DinnerWeekendValue = &v
	}
	if in.DinnerStartTime != nil {
		s.DinnerStartTime = *in.DinnerStartTime
	}
	if in.DinnerEndTime != nil {
		s.DinnerEndTime = *in.DinnerEndTime
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
