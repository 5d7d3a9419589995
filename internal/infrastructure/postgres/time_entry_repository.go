package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.TimeEntryRepository   = (*TimeEntryRepo)(nil)
	_ repository.ShiftConfigRepository = (*ShiftConfigRepo)(nil)
)

// TimeEntryRepo implementación del puerto TimeEntryRepository.
type TimeEntryRepo struct {
	db Querier
}

// NewTimeEntryRepository construye el repositorio de ponto.
func NewTimeEntryRepository(db Querier) *TimeEntryRepo {
	return &TimeEntryRepo{db: db}
}

const timeEntrySelect = `
	SELECT t.id, t.employee_id, t.date, t.worked_lunch, t.worked_dinner, t.clock_in_lunch, t.clock_out_lunch,
		t.clock_in_dinner, t.clock_out_dinner, t.status, t.notes, t.lunch_value, t.dinner_value, t.total_value,
		t.created_by_id, t.updated_by_id, t.created_at, t.updated_at, e.id, e.name, e.role
	FROM time_entries t
	JOIN employees e ON e.id = t.employee_id`

func scanTimeEntry(row scanner) (*entity.TimeEntry, error) {
	var (
		t   entity.TimeEntry
		ref entity.EmployeeRef
	)
	err := row.Scan(&t.ID, &t.EmployeeID, &t.Date, &t.WorkedLunch, &t.WorkedDinner, &t.ClockInLunch,
		&t.ClockOutLunch, &t.ClockInDinner, &t.ClockOutDinner, &t.Status, &t.Notes, &t.LunchValue,
		&t.DinnerValue, &t.TotalValue, &t.CreatedByID, &t.UpdatedByID, &t.CreatedAt, &t.UpdatedAt,
		&ref.ID, &ref.Name, &ref.Role)
	if err != nil {
		return nil, err
	}
	t.Employee = &ref
	return &t, nil
}

func (r *TimeEntryRepo) Create(ctx context.Context, t *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (id, employee_id, date, worked_lunch, worked_dinner, clock_in_lunch,
			clock_out_lunch, clock_in_dinner, clock_out_dinner, status, notes, lunch_value, dinner_value,
			total_value, created_by_id, updated_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.Exec(ctx, query, t.ID, t.EmployeeID, t.Date, t.WorkedLunch, t.WorkedDinner, t.ClockInLunch,
		t.ClockOutLunch, t.ClockInDinner, t.ClockOutDinner, t.Status, t.Notes, t.LunchValue, t.DinnerValue,
		t.TotalValue, t.CreatedByID, t.UpdatedByID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepo) GetByID(ctx context.Context, id string) (*entity.TimeEntry, error) {
	t, err := scanTimeEntry(r.db.QueryRow(ctx, timeEntrySelect+` WHERE t.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return t, nil
}

func (r *TimeEntryRepo) List(ctx context.Context, f repository.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	from, to := periodArgs(f.Period)
	query := timeEntrySelect + `
		WHERE ($1 = '' OR t.employee_id = $1)
		  AND ($2::timestamptz IS NULL OR t.date BETWEEN $2 AND $3)
		ORDER BY t.date DESC, e.name ASC`
	rows, err := r.db.Query(ctx, query, f.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.TimeEntry
	for rows.Next() {
		t, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TimeEntryRepo) FindForDay(ctx context.Context, employeeID string, day ledger.Period, excludeID string) (*entity.TimeEntry, error) {
	query := timeEntrySelect + `
		WHERE t.employee_id = $1 AND t.date BETWEEN $2 AND $3 AND ($4 = '' OR t.id <> $4)
		LIMIT 1`
	t, err := scanTimeEntry(r.db.QueryRow(ctx, query, employeeID, day.Start, day.End, excludeID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find time entry for day: %w", err)
	}
	return t, nil
}

func (r *TimeEntryRepo) Update(ctx context.Context, t *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET employee_id = $2, date = $3, worked_lunch = $4, worked_dinner = $5,
			clock_in_lunch = $6, clock_out_lunch = $7, clock_in_dinner = $8, clock_out_dinner = $9,
			status = $10, notes = $11, lunch_value = $12, dinner_value = $13, total_value = $14,
			updated_by_id = $15, updated_at = $16
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, t.ID, t.EmployeeID, t.Date, t.WorkedLunch, t.WorkedDinner, t.ClockInLunch,
		t.ClockOutLunch, t.ClockInDinner, t.ClockOutDinner, t.Status, t.Notes, t.LunchValue, t.DinnerValue,
		t.TotalValue, t.UpdatedByID, t.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TimeEntryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "time_entries", id)
}

// ShiftConfigRepo parámetros globales de turnos.
type ShiftConfigRepo struct {
	db Querier
}

// NewShiftConfigRepository construye el repositorio de configuración de turnos.
func NewShiftConfigRepository(db Querier) *ShiftConfigRepo {
	return &ShiftConfigRepo{db: db}
}

func (r *ShiftConfigRepo) List(ctx context.Context) ([]*entity.ShiftConfig, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, value, created_at, updated_at
		FROM shift_configs ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list shift configs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShiftConfig
	for rows.Next() {
		var c entity.ShiftConfig
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Value, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shift config: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ShiftConfigRepo) UpdateValue(ctx context.Context, name string, value repository.Money) error {
	tag, err := r.db.Exec(ctx, `UPDATE shift_configs SET value = $2, updated_at = NOW() WHERE name = $1`, name, value)
	if err != nil {
		return fmt.Errorf("update shift config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShiftConfigRepo) Ensure(ctx context.Context, c *entity.ShiftConfig) error {
	query := `
		INSERT INTO shift_configs (id, name, description, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Description, c.Value, c.CreatedAt, c.UpdatedAt); err != nil {
		return fmt.Errorf("ensure shift config: %w", err)
	}
	return nil
}
