package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/payroll"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// PayrollPeriodUseCase cierre de pagos por turnos trabajados en un rango de fechas.
type PayrollPeriodUseCase struct {
	periods repository.PayrollPeriodRepository
	tx      repository.TxRunner
	clock   ports.Clock
}

// NewPayrollPeriodUseCase construye el caso de uso.
func NewPayrollPeriodUseCase(periods repository.PayrollPeriodRepository, tx repository.TxRunner, clock ports.Clock) *PayrollPeriodUseCase {
	return &PayrollPeriodUseCase{periods: periods, tx: tx, clock: clock}
}

func (uc *PayrollPeriodUseCase) List(ctx context.Context) ([]dto.PayrollPeriodResponse, error) {
	list, err := uc.periods.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollPeriodResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPayrollPeriodResponse(p))
	}
	return out, nil
}

func (uc *PayrollPeriodUseCase) Get(ctx context.Context, id string) (*dto.PayrollPeriodResponse, error) {
	p, err := uc.periods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPeriodNotFound
	}
	out := toPayrollPeriodResponse(p)
	return &out, nil
}

// Close liquida el período en una sola transacción: lee los registros de ponto del rango,
// los funcionarios activos y los vales PAID, guarda el período con sus pagos y marca
// DISCOUNTED los vales que se descontaron.
func (uc *PayrollPeriodUseCase) Close(ctx context.Context, actor *auth.Principal, in dto.ClosePayrollPeriodRequest) (*dto.PayrollPeriodResponse, error) {
	loc := uc.clock.Loc
	verr := domain.NewValidationError()
	start, err := ledger.ParseDate(in.StartDate, loc)
	if err != nil {
		verr.Add("startDate", "fecha inválida")
	}
	end, err := ledger.ParseDate(in.EndDate, loc)
	if err != nil {
		verr.Add("endDate", "fecha inválida")
	}
	if !verr.HasErrors() && ledger.DayRange(end, loc).End.Before(ledger.DayRange(start, loc).Start) {
		verr.Add("endDate", "debe ser igual o posterior a startDate")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	span := ledger.Period{Start: ledger.DayRange(start, loc).Start, End: ledger.DayRange(end, loc).End}

	periodType := in.PeriodType
	if periodType == "" {
		periodType = entity.PeriodCustom
	}
	now := uc.clock.Now()
	period := &entity.PayrollPeriod{
		ID:         uuid.New().String(),
		StartDate:  span.Start,
		EndDate:    span.End,
		PeriodType: periodType,
		CreatedAt:  now,
	}
	if actor != nil {
		period.CreatedByID = optString(actor.ID)
	}

	err = uc.tx.RunPayrollPeriod(ctx, func(tx repository.PayrollPeriodTx) error {
		entries, err := tx.TimeEntries.List(ctx, repository.TimeEntryFilter{Period: &span})
		if err != nil {
			return err
		}
		items, err := tx.Employees.List(ctx, repository.EmployeeFilter{ActiveOnly: true})
		if err != nil {
			return err
		}
		employees := make([]*entity.Employee, 0, len(items))
		for _, it := range items {
			employees = append(employees, it.Employee)
		}
		paid, err := tx.Advances.List(ctx, repository.AdvanceFilter{Status: entity.AdvanceStatusPaid})
		if err != nil {
			return err
		}

		res := payroll.ClosePeriod(employees, entries, paid)
		period.TotalAmount = res.Total
		period.Payments = res.Payments
		for i := range period.Payments {
			period.Payments[i].ID = uuid.New().String()
			period.Payments[i].PeriodID = period.ID
		}
		if err := tx.Periods.Create(ctx, period); err != nil {
			return err
		}
		return tx.Advances.MarkDiscounted(ctx, res.AdvanceIDs, now)
	})
	if err != nil {
		return nil, err
	}
	out := toPayrollPeriodResponse(period)
	return &out, nil
}
