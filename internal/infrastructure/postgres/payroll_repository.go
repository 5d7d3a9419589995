package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación del puerto PayrollRepository.
type PayrollRepo struct {
	db Querier
}

// NewPayrollRepository acepta el pool o una transacción.
func NewPayrollRepository(db Querier) *PayrollRepo {
	return &PayrollRepo{db: db}
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.month, p.base_salary, p.advances, p.bonuses, p.deductions, p.net_salary,
		p.paid, p.payment_date, p.notes, p.created_at, p.updated_at, e.id, e.name, e.role
	FROM payroll_entries p
	JOIN employees e ON e.id = p.employee_id`

func scanPayroll(row scanner) (*entity.PayrollEntry, error) {
	var (
		p   entity.PayrollEntry
		ref entity.EmployeeRef
	)
	err := row.Scan(&p.ID, &p.EmployeeID, &p.Month, &p.BaseSalary, &p.Advances, &p.Bonuses, &p.Deductions,
		&p.NetSalary, &p.Paid, &p.PaymentDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &ref.ID, &ref.Name, &ref.Role)
	if err != nil {
		return nil, err
	}
	p.Employee = &ref
	return &p, nil
}

func (r *PayrollRepo) get(ctx context.Context, where string, args ...any) (*entity.PayrollEntry, error) {
	p, err := scanPayroll(r.db.QueryRow(ctx, payrollSelect+" WHERE "+where, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll entry: %w", err)
	}
	return p, nil
}

func (r *PayrollRepo) GetByID(ctx context.Context, id string) (*entity.PayrollEntry, error) {
	return r.get(ctx, "p.id = $1", id)
}

func (r *PayrollRepo) GetByEmployeeMonth(ctx context.Context, employeeID, month string) (*entity.PayrollEntry, error) {
	return r.get(ctx, "p.employee_id = $1 AND p.month = $2", employeeID, month)
}

func (r *PayrollRepo) List(ctx context.Context, month string) ([]*entity.PayrollEntry, error) {
	query := payrollSelect + `
		WHERE ($1 = '' OR p.month = $1)
		ORDER BY p.created_at DESC`
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("list payroll: %w", err)
	}
	defer rows.Close()

	var list []*entity.PayrollEntry
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payroll entry: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Upsert por (employee_id, month). En conflicto solo se recalculan salario base,
// vales y neto; bonos, descuentos y estado de pago quedan como estaban.
func (r *PayrollRepo) Upsert(ctx context.Context, p *entity.PayrollEntry) error {
	query := `
		INSERT INTO payroll_entries (id, employee_id, month, base_salary, advances, bonuses, deductions,
			net_salary, paid, payment_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			advances    = EXCLUDED.advances,
			net_salary  = EXCLUDED.base_salary - EXCLUDED.advances + payroll_entries.bonuses - payroll_entries.deductions,
			updated_at  = EXCLUDED.updated_at
		RETURNING id, net_salary, created_at`
	err := r.db.QueryRow(ctx, query, p.ID, p.EmployeeID, p.Month, p.BaseSalary, p.Advances, p.Bonuses,
		p.Deductions, p.NetSalary, p.Paid, p.PaymentDate, p.Notes, p.CreatedAt, p.UpdatedAt).
		Scan(&p.ID, &p.NetSalary, &p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("upsert payroll entry: %w", err)
	}
	return nil
}

func (r *PayrollRepo) Update(ctx context.Context, p *entity.PayrollEntry) error {
	query := `
		UPDATE payroll_entries SET base_salary = $2, advances = $3, bonuses = $4, deductions = $5,
			net_salary = $6, paid = $7, payment_date = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, p.ID, p.BaseSalary, p.Advances, p.Bonuses, p.Deductions, p.NetSalary,
		p.Paid, p.PaymentDate, p.Notes, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
