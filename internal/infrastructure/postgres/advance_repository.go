package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.AdvanceRepository = (*AdvanceRepo)(nil)

// AdvanceRepo implementación del puerto AdvanceRepository.
type AdvanceRepo struct {
	db Querier
}

// NewAdvanceRepository acepta el pool o una transacción.
func NewAdvanceRepository(db Querier) *AdvanceRepo {
	return &AdvanceRepo{db: db}
}

const advanceSelect = `
	SELECT a.id, a.employee_id, a.amount, a.request_date, a.status, a.payment_date, a.notes,
		a.created_at, a.updated_at, e.id, e.name, e.role
	FROM advances a
	JOIN employees e ON e.id = a.employee_id`

func scanAdvance(row scanner) (*entity.Advance, error) {
	var (
		a   entity.Advance
		ref entity.EmployeeRef
	)
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Amount, &a.RequestDate, &a.Status, &a.PaymentDate, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt, &ref.ID, &ref.Name, &ref.Role)
	if err != nil {
		return nil, err
	}
	a.Employee = &ref
	return &a, nil
}

func (r *AdvanceRepo) Create(ctx context.Context, a *entity.Advance) error {
	query := `
		INSERT INTO advances (id, employee_id, amount, request_date, status, payment_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, a.ID, a.EmployeeID, a.Amount, a.RequestDate, a.Status, a.PaymentDate,
		a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("insert advance: %w", err)
	}
	return nil
}

func (r *AdvanceRepo) GetByID(ctx context.Context, id string) (*entity.Advance, error) {
	a, err := scanAdvance(r.db.QueryRow(ctx, advanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get advance: %w", err)
	}
	return a, nil
}

func (r *AdvanceRepo) List(ctx context.Context, f repository.AdvanceFilter) ([]*entity.Advance, error) {
	query := advanceSelect + `
		WHERE ($1 = '' OR a.status = $1)
		  AND ($2 = '' OR a.employee_id = $2)
		ORDER BY a.request_date DESC
		LIMIT NULLIF($3::int, 0)`
	return r.query(ctx, "list advances", query, f.Status, f.EmployeeID, f.Limit)
}

func (r *AdvanceRepo) ListPaidBetween(ctx context.Context, from, to time.Time) ([]*entity.Advance, error) {
	query := advanceSelect + `
		WHERE a.status = 'PAID' AND a.payment_date BETWEEN $1 AND $2
		ORDER BY a.payment_date ASC`
	return r.query(ctx, "list paid advances", query, from, to)
}

func (r *AdvanceRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Advance, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var list []*entity.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan advance: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *AdvanceRepo) Update(ctx context.Context, a *entity.Advance) error {
	query := `
		UPDATE advances SET employee_id = $2, amount = $3, request_date = $4, status = $5,
			payment_date = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, a.ID, a.EmployeeID, a.Amount, a.RequestDate, a.Status, a.PaymentDate,
		a.Notes, a.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("update advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdvanceRepo) MarkDiscounted(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
		UPDATE advances SET status = 'DISCOUNTED', updated_at = $2
		WHERE id = ANY($1) AND status = 'PAID'`
	if _, err := r.db.Exec(ctx, query, ids, at); err != nil {
		return fmt.Errorf("mark advances discounted: %w", err)
	}
	return nil
}

func (r *AdvanceRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "advances", id)
}
