package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/payroll"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// PayrollUseCase genera y ajusta la folha de pagamento mensual.
type PayrollUseCase struct {
	entries repository.PayrollRepository
	tx      repository.TxRunner
	clock   ports.Clock
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(entries repository.PayrollRepository, tx repository.TxRunner, clock ports.Clock) *PayrollUseCase {
	return &PayrollUseCase{entries: entries, tx: tx, clock: clock}
}

// List devuelve las entradas del mes (todas si month está vacío).
func (uc *PayrollUseCase) List(ctx context.Context, q dto.MonthQuery) ([]dto.PayrollEntryResponse, error) {
	if _, err := monthPeriod(q.Month, uc.clock.Loc); err != nil {
		return nil, err
	}
	list, err := uc.entries.List(ctx, q.Month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toPayrollResponse(e))
	}
	return out, nil
}

// Generate calcula la folha del mes para cada funcionario activo en una sola
// transacción: base = salario, vales = suma de vales PAID pagados en el mes.
// Bonificaciones y descuentos ya cargados se conservan.
func (uc *PayrollUseCase) Generate(ctx context.Context, in dto.GeneratePayrollRequest) ([]dto.PayrollEntryResponse, error) {
	period, err := ledger.MonthRange(in.Month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	var generated []*entity.PayrollEntry

	err = uc.tx.RunPayroll(ctx, func(tx repository.PayrollTx) error {
		employees, err := tx.Employees.List(ctx, repository.EmployeeFilter{ActiveOnly: true})
		if err != nil {
			return err
		}
		paid, err := tx.Advances.ListPaidBetween(ctx, period.Start, period.End)
		if err != nil {
			return err
		}
		byEmployee := make(map[string][]*entity.Advance)
		for _, a := range paid {
			byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
		}

		for _, it := range employees {
			emp := it.Employee
			entry, err := tx.Payroll.GetByEmployeeMonth(ctx, emp.ID, in.Month)
			if err != nil {
				return err
			}
			if entry == nil {
				entry = &entity.PayrollEntry{
					ID:         uuid.New().String(),
					EmployeeID: emp.ID,
					Month:      in.Month,
					Bonuses:    decimal.Zero,
					Deductions: decimal.Zero,
					CreatedAt:  now,
				}
			}
			entry.BaseSalary = emp.Salary
			entry.Advances = payroll.SumPaidAdvances(byEmployee[emp.ID], period.Start, period.End)
			entry.UpdatedAt = now
			payroll.Recompute(entry)

			if err := tx.Payroll.Upsert(ctx, entry); err != nil {
				return err
			}
			entry.Employee = &entity.EmployeeRef{ID: emp.ID, Name: emp.Name, Role: emp.Role}
			generated = append(generated, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.PayrollEntryResponse, 0, len(generated))
	for _, e := range generated {
		out = append(out, toPayrollResponse(e))
	}
	return out, nil
}

// Update aplica bonificaciones, descuentos y estado de pago. El neto siempre se
// recalcula en el servidor; un netSalary enviado por el cliente se ignora.
func (uc *PayrollUseCase) Update(ctx context.Context, id string, in dto.UpdatePayrollRequest) (*dto.PayrollEntryResponse, error) {
	entry, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrPayrollNotFound
	}
	adj := payroll.Adjustment{
		Bonuses:    in.Bonuses,
		Deductions: in.Deductions,
		Paid:       in.Paid,
		Notes:      in.Notes,
	}
	if in.PaymentDate != nil {
		var t time.Time
		if t, err = parseDateField("paymentDate", *in.PaymentDate, uc.clock.Loc); err != nil {
			return nil, err
		}
		adj.PaymentDate = &t
	}
	now := uc.clock.Now()
	payroll.Apply(entry, adj, now)
	entry.UpdatedAt = now

	if err := uc.entries.Update(ctx, entry); err != nil {
		return nil, notFound(err, domain.ErrPayrollNotFound)
	}
	out := toPayrollResponse(entry)
	return &out, nil
}
