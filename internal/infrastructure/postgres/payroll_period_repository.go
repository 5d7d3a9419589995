package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.PayrollPeriodRepository = (*PayrollPeriodRepo)(nil)

// PayrollPeriodRepo implementación del puerto PayrollPeriodRepository.
type PayrollPeriodRepo struct {
	db Querier
}

// NewPayrollPeriodRepository acepta el pool o una transacción.
func NewPayrollPeriodRepository(db Querier) *PayrollPeriodRepo {
	return &PayrollPeriodRepo{db: db}
}

const periodSelect = `
	SELECT id, start_date, end_date, period_type, total_amount, created_by_id, created_at
	FROM payroll_periods`

const periodPaymentSelect = `
	SELECT id, period_id, employee_id, employee_name, days_worked, lunch_shifts, dinner_shifts,
		lunch_total, dinner_total, gross_amount, advances, net_amount
	FROM period_payments`

func scanPeriod(row scanner) (*entity.PayrollPeriod, error) {
	var p entity.PayrollPeriod
	if err := row.Scan(&p.ID, &p.StartDate, &p.EndDate, &p.PeriodType, &p.TotalAmount, &p.CreatedByID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserta el período y sus pagos en un batch; usar dentro de una transacción.
func (r *PayrollPeriodRepo) Create(ctx context.Context, p *entity.PayrollPeriod) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payroll_periods (id, start_date, end_date, period_type, total_amount, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.StartDate, p.EndDate, p.PeriodType, p.TotalAmount, p.CreatedByID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payroll period: %w", err)
	}
	if len(p.Payments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, pay := range p.Payments {
		batch.Queue(`
			INSERT INTO period_payments (id, period_id, employee_id, employee_name, days_worked, lunch_shifts,
				dinner_shifts, lunch_total, dinner_total, gross_amount, advances, net_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			pay.ID, p.ID, pay.EmployeeID, pay.EmployeeName, pay.DaysWorked, pay.LunchShifts, pay.DinnerShifts,
			pay.LunchTotal, pay.DinnerTotal, pay.GrossAmount, pay.Advances, pay.NetAmount)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range p.Payments {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert period payment: %w", err)
		}
	}
	return nil
}

func (r *PayrollPeriodRepo) GetByID(ctx context.Context, id string) (*entity.PayrollPeriod, error) {
	p, err := scanPeriod(r.db.QueryRow(ctx, periodSelect+` WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll period: %w", err)
	}
	if err := r.attachPayments(ctx, []*entity.PayrollPeriod{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PayrollPeriodRepo) List(ctx context.Context) ([]*entity.PayrollPeriod, error) {
	rows, err := r.db.Query(ctx, periodSelect+` ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payroll periods: %w", err)
	}
	defer rows.Close()

	var list []*entity.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll period: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachPayments(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachPayments carga los pagos de todos los períodos en una sola consulta.
func (r *PayrollPeriodRepo) attachPayments(ctx context.Context, periods []*entity.PayrollPeriod) error {
	if len(periods) == 0 {
		return nil
	}
	ids := make([]string, 0, len(periods))
	byID := make(map[string]*entity.PayrollPeriod, len(periods))
	for _, p := range periods {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}
	rows, err := r.db.Query(ctx, periodPaymentSelect+` WHERE period_id = ANY($1) ORDER BY employee_name ASC`, ids)
	if err != nil {
		return fmt.Errorf("list period payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pay entity.PeriodPayment
		if err := rows.Scan(&pay.ID, &pay.PeriodID, &pay.EmployeeID, &pay.EmployeeName, &pay.DaysWorked,
			&pay.LunchShifts, &pay.DinnerShifts, &pay.LunchTotal, &pay.DinnerTotal, &pay.GrossAmount,
			&pay.Advances, &pay.NetAmount); err != nil {
			return fmt.Errorf("scan period payment: %w", err)
		}
		if p := byID[pay.PeriodID]; p != nil {
			p.Payments = append(p.Payments, pay)
		}
	}
	return rows.Err()
}
