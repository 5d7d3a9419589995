package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/permissions"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/domain/timeentry"
)

// TimeEntryUseCase registros de ponto con las reglas de permiso por rol y fecha.
type TimeEntryUseCase struct {
	entries   repository.TimeEntryRepository
	employees repository.EmployeeRepository
	clock     ports.Clock
}

// NewTimeEntryUseCase construye el caso de uso.
func NewTimeEntryUseCase(entries repository.TimeEntryRepository, employees repository.EmployeeRepository, clock ports.Clock) *TimeEntryUseCase {
	return &TimeEntryUseCase{entries: entries, employees: employees, clock: clock}
}

// List filtra por día, por rango (startDate y endDate juntos) o por funcionario.
func (uc *TimeEntryUseCase) List(ctx context.Context, actor *auth.Principal, q dto.TimeEntryQuery) ([]dto.TimeEntryResponse, error) {
	if err := permissions.CanAccessTimeEntries(actor.Role).Err(); err != nil {
		return nil, err
	}
	f := repository.TimeEntryFilter{EmployeeID: q.EmployeeID}
	if q.Date != "" {
		d, err := parseDateField("date", q.Date, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		day := ledger.DayRange(d, uc.clock.Loc)
		f.Period = &day
	}
	if q.StartDate != "" && q.EndDate != "" {
		start, err := parseDateField("startDate", q.StartDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		end, err := parseDateField("endDate", q.EndDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		f.Period = &ledger.Period{
			Start: ledger.DayRange(start, uc.clock.Loc).Start,
			End:   ledger.DayRange(end, uc.clock.Loc).End,
		}
	}
	list, err := uc.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TimeEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toTimeEntryResponse(e))
	}
	return out, nil
}

func (uc *TimeEntryUseCase) Get(ctx context.Context, actor *auth.Principal, id string) (*dto.TimeEntryResponse, error) {
	if err := permissions.CanAccessTimeEntries(actor.Role).Err(); err != nil {
		return nil, err
	}
	e, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrTimeEntryNotFound
	}
	out := toTimeEntryResponse(e)
	return &out, nil
}

// Create registra el ponto del día. La fecha se normaliza a mediodía; un MANAGER
// solo puede registrar hasta 2 días atrás; un funcionario tiene un solo registro por día.
func (uc *TimeEntryUseCase) Create(ctx context.Context, actor *auth.Principal, in dto.CreateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := permissions.CanAccessTimeEntries(actor.Role).Err(); err != nil {
		return nil, err
	}
	d, err := parseDateField("date", in.Date, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	date := ledger.Noon(d, uc.clock.Loc)
	now := uc.clock.Now()
	if err := permissions.CanCreateDatedRecord(actor.Role, date, now, uc.clock.Loc).Err(); err != nil {
		return nil, err
	}
	if err := uc.ensureFreeDay(ctx, in.EmployeeID, date, ""); err != nil {
		return nil, err
	}
	emp, err := uc.employees.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	status := in.Status
	if status == "" {
		status = entity.TimeEntryPresent
	}
	e := &entity.TimeEntry{
		ID:             uuid.New().String(),
		EmployeeID:     emp.ID,
		Date:           date,
		WorkedLunch:    in.WorkedLunch,
		WorkedDinner:   in.WorkedDinner,
		ClockInLunch:   emptyToNil(in.ClockInLunch),
		ClockOutLunch:  emptyToNil(in.ClockOutLunch),
		ClockInDinner:  emptyToNil(in.ClockInDinner),
		ClockOutDinner: emptyToNil(in.ClockOutDinner),
		Status:         status,
		Notes:          in.Notes,
		CreatedByID:    optString(actor.ID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	uc.price(e, emp)
	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	e.Employee = &entity.EmployeeRef{ID: emp.ID, Name: emp.Name, Role: emp.Role}
	out := toTimeEntryResponse(e)
	return &out, nil
}

// Update edita el registro. La ventana del MANAGER se evalúa sobre la fecha guardada
// y, si cambia, también sobre la nueva. Los valores se recalculan con la configuración
// vigente del funcionario.
func (uc *TimeEntryUseCase) Update(ctx context.Context, actor *auth.Principal, id string, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := permissions.CanAccessTimeEntries(actor.Role).Err(); err != nil {
		return nil, err
	}
	e, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrTimeEntryNotFound
	}
	now := uc.clock.Now()
	if err := permissions.CanEditDatedRecord(actor.Role, e.Date, now, uc.clock.Loc).Err(); err != nil {
		return nil, err
	}
	if in.Date != nil {
		d, err := parseDateField("date", *in.Date, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		date := ledger.Noon(d, uc.clock.Loc)
		if !date.Equal(e.Date) {
			if err := permissions.CanEditDatedRecord(actor.Role, date, now, uc.clock.Loc).Err(); err != nil {
				return nil, err
			}
			if err := uc.ensureFreeDay(ctx, e.EmployeeID, date, e.ID); err != nil {
				return nil, err
			}
			e.Date = date
		}
	}
	if in.WorkedLunch != nil {
		e.WorkedLunch = *in.WorkedLunch
	}
	if in.WorkedDinner != nil {
		e.WorkedDinner = *in.WorkedDinner
	}
	if in.ClockInLunch != nil {
		e.ClockInLunch = emptyToNil(in.ClockInLunch)
	}
	if in.ClockOutLunch != nil {
		e.ClockOutLunch = emptyToNil(in.ClockOutLunch)
	}
	if in.ClockInDinner != nil {
		e.ClockInDinner = emptyToNil(in.ClockInDinner)
	}
	if in.ClockOutDinner != nil {
		e.ClockOutDinner = emptyToNil(in.ClockOutDinner)
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Notes != nil {
		e.Notes = in.Notes
	}

	emp, err := uc.employees.GetByID(ctx, e.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	uc.price(e, emp)
	e.UpdatedByID = optString(actor.ID)
	e.UpdatedAt = now

	if err := uc.entries.Update(ctx, e); err != nil {
		return nil, notFound(err, domain.ErrTimeEntryNotFound)
	}
	out := toTimeEntryResponse(e)
	return &out, nil
}

// Delete solo ADMIN.
func (uc *TimeEntryUseCase) Delete(ctx context.Context, actor *auth.Principal, id string) error {
	if err := permissions.CanDeleteDatedRecord(actor.Role).Err(); err != nil {
		return err
	}
	return notFound(uc.entries.Delete(ctx, id), domain.ErrTimeEntryNotFound)
}

func (uc *TimeEntryUseCase) ensureFreeDay(ctx context.Context, employeeID string, date time.Time, excludeID string) error {
	existing, err := uc.entries.FindForDay(ctx, employeeID, ledger.DayRange(date, uc.clock.Loc), excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateTimeEntry
	}
	return nil
}

func (uc *TimeEntryUseCase) price(e *entity.TimeEntry, emp *entity.Employee) {
	v := timeentry.Compute(emp.Shifts, e.Date, uc.clock.Loc, e.WorkedLunch, e.WorkedDinner)
	e.LunchValue, e.DinnerValue, e.TotalValue = v.Lunch, v.Dinner, v.Total
}
