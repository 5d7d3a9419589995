package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para los reportes mensuales.
type ReportRepo struct {
	db Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db Querier) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) total(ctx context.Context, op, query string, args ...any) (repository.Total, error) {
	var t repository.Total
	if err := r.db.QueryRow(ctx, query, args...).Scan(&t.Sum, &t.Count); err != nil {
		return t, fmt.Errorf("report.%s: %w", op, err)
	}
	return t, nil
}

func (r *ReportRepo) ExpenseTotal(ctx context.Context, p ledger.Period) (repository.Total, error) {
	return r.total(ctx, "ExpenseTotal",
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM expenses WHERE date BETWEEN $1 AND $2`, p.Start, p.End)
}

func (r *ReportRepo) RevenueTotal(ctx context.Context, p ledger.Period) (repository.Total, error) {
	return r.total(ctx, "RevenueTotal",
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM revenues WHERE date BETWEEN $1 AND $2`, p.Start, p.End)
}

// PayrollTotal suma el neto de la folha del mes, pagada o no.
func (r *ReportRepo) PayrollTotal(ctx context.Context, month string) (repository.Total, error) {
	return r.total(ctx, "PayrollTotal",
		`SELECT COALESCE(SUM(net_salary), 0), COUNT(*) FROM payroll_entries WHERE month = $1`, month)
}

func (r *ReportRepo) PaidAdvancesTotal(ctx context.Context, p ledger.Period) (repository.Total, error) {
	return r.total(ctx, "PaidAdvancesTotal", `
		SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM advances
		WHERE status = 'PAID' AND payment_date BETWEEN $1 AND $2`, p.Start, p.End)
}

func (r *ReportRepo) ExpensesByCategory(ctx context.Context, p ledger.Period) ([]repository.Total, error) {
	const query = `
	SELECT category         AS key,
	       SUM(amount)      AS total,
	       COUNT(*)         AS n
	FROM expenses
	WHERE date BETWEEN $1 AND $2
	GROUP BY category
	ORDER BY total DESC, key ASC`
	return r.groups(ctx, "ExpensesByCategory", query, p)
}

func (r *ReportRepo) RevenuesBySource(ctx context.Context, p ledger.Period) ([]repository.Total, error) {
	const query = `
	SELECT source           AS key,
	       SUM(amount)      AS total,
	       COUNT(*)         AS n
	FROM revenues
	WHERE date BETWEEN $1 AND $2
	GROUP BY source
	ORDER BY total DESC, key ASC`
	return r.groups(ctx, "RevenuesBySource", query, p)
}

func (r *ReportRepo) groups(ctx context.Context, op, query string, p ledger.Period) ([]repository.Total, error) {
	rows, err := r.db.Query(ctx, query, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("report.%s: %w", op, err)
	}
	defer rows.Close()

	var out []repository.Total
	for rows.Next() {
		var t repository.Total
		if err := rows.Scan(&t.Key, &t.Sum, &t.Count); err != nil {
			return nil, fmt.Errorf("report.%s scan: %w", op, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// EmployeesMonth funcionarios activos con sus vales pagados en el período y la folha del mes, si existe.
func (r *ReportRepo) EmployeesMonth(ctx context.Context, p ledger.Period, month string) ([]repository.EmployeeMonthRow, error) {
	const query = `
	SELECT e.id,
	       e.name,
	       e.role,
	       e.salary,
	       COALESCE(a.total, 0)                                   AS advances,
	       COALESCE(a.n, 0)                                       AS advances_count,
	       pe.net_salary,
	       pe.paid
	FROM employees e
	LEFT JOIN (
	    SELECT employee_id, SUM(amount) AS total, COUNT(*) AS n
	    FROM advances
	    WHERE status = 'PAID' AND payment_date BETWEEN $1 AND $2
	    GROUP BY employee_id
	) a ON a.employee_id = e.id
	LEFT JOIN payroll_entries pe ON pe.employee_id = e.id AND pe.month = $3
	WHERE e.active
	ORDER BY e.name ASC`

	rows, err := r.db.Query(ctx, query, p.Start, p.End, month)
	if err != nil {
		return nil, fmt.Errorf("report.EmployeesMonth: %w", err)
	}
	defer rows.Close()

	var out []repository.EmployeeMonthRow
	for rows.Next() {
		var row repository.EmployeeMonthRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Role,
			&row.Salary,
			&row.Advances,
			&row.AdvancesCount,
			&row.NetSalary,
			&row.Paid,
		); err != nil {
			return nil, fmt.Errorf("report.EmployeesMonth scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
