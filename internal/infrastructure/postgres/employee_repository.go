package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository.
type EmployeeRepo struct {
	db Querier
}

// NewEmployeeRepository acepta el pool o una transacción.
func NewEmployeeRepository(db Querier) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `e.id, e.name, e.role, e.phone, e.document, e.hire_date, e.salary, e.active,
	e.works_lunch, e.lunch_payment_type, e.lunch_value, e.lunch_start_time, e.lunch_end_time,
	e.works_dinner, e.dinner_payment_type, e.dinner_weekday_value, e.dinner_weekend_value,
	e.dinner_start_time, e.dinner_end_time, e.created_at, e.updated_at`

func employeeDest(e *entity.Employee) []any {
	s := &e.Shifts
	return []any{
		&e.ID, &e.Name, &e.Role, &e.Phone, &e.Document, &e.HireDate, &e.Salary, &e.Active,
		&s.WorksLunch, &s.LunchPaymentType, &s.LunchValue, &s.LunchStartTime, &s.LunchEndTime,
		&s.WorksDinner, &s.DinnerPaymentType, &s.DinnerWeekdayValue, &s.DinnerWeekendValue,
		&s.DinnerStartTime, &s.DinnerEndTime, &e.CreatedAt, &e.UpdatedAt,
	}
}

func employeeArgs(e *entity.Employee) []any {
	s := e.Shifts
	return []any{
		e.ID, e.Name, e.Role, e.Phone, e.Document, e.HireDate, e.Salary, e.Active,
		s.WorksLunch, s.LunchPaymentType, s.LunchValue, s.LunchStartTime, s.LunchEndTime,
		s.WorksDinner, s.DinnerPaymentType, s.DinnerWeekdayValue, s.DinnerWeekendValue,
		s.DinnerStartTime, s.DinnerEndTime,
	}
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, role, phone, document, hire_date, salary, active,
			works_lunch, lunch_payment_type, lunch_value, lunch_start_time, lunch_end_time,
			works_dinner, dinner_payment_type, dinner_weekday_value, dinner_weekend_value,
			dinner_start_time, dinner_end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	args := append(employeeArgs(e), e.CreatedAt, e.UpdatedAt)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees e WHERE e.id = $1`, id).Scan(employeeDest(&e)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter) ([]repository.EmployeeListItem, error) {
	query := `
		SELECT ` + employeeColumns + `, COALESCE(a.n, 0)
		FROM employees e
		LEFT JOIN (SELECT employee_id, COUNT(*) AS n FROM advances GROUP BY employee_id) a
			ON a.employee_id = e.id
		WHERE ($1::boolean = FALSE OR e.active)
		ORDER BY e.name ASC`
	rows, err := r.db.Query(ctx, query, f.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []repository.EmployeeListItem
	for rows.Next() {
		var (
			e entity.Employee
			n int
		)
		if err := rows.Scan(append(employeeDest(&e), &n)...); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, repository.EmployeeListItem{Employee: &e, AdvancesCount: n})
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Counts(ctx context.Context, id string) (repository.EmployeeCounts, error) {
	var c repository.EmployeeCounts
	query := `
		SELECT
			(SELECT COUNT(*) FROM advances WHERE employee_id = $1),
			(SELECT COUNT(*) FROM time_entries WHERE employee_id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&c.Advances, &c.TimeEntries); err != nil {
		return c, fmt.Errorf("count employee children: %w", err)
	}
	return c, nil
}

func (r *EmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM employees WHERE active`)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, role = $3, phone = $4, document = $5, hire_date = $6,
			salary = $7, active = $8, works_lunch = $9, lunch_payment_type = $10, lunch_value = $11,
			lunch_start_time = $12, lunch_end_time = $13, works_dinner = $14, dinner_payment_type = $15,
			dinner_weekday_value = $16, dinner_weekend_value = $17, dinner_start_time = $18,
			dinner_end_time = $19, updated_at = $20
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, append(employeeArgs(e), e.UpdatedAt)...)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete vales, folha y ponto se borran en cascada (FK ON DELETE CASCADE).
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "employees", id)
}
