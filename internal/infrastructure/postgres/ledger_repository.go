package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
	_ repository.RevenueRepository = (*RevenueRepo)(nil)
)

// periodArgs nil => sin filtro de fechas.
func periodArgs(p *ledger.Period) (from, to *time.Time) {
	if p == nil {
		return nil, nil
	}
	return &p.Start, &p.End
}

const periodWhere = `($1::timestamptz IS NULL OR date BETWEEN $1 AND $2)`

// ExpenseRepo implementación del puerto ExpenseRepository.
type ExpenseRepo struct {
	db Querier
}

// NewExpenseRepository construye el repositorio de gastos.
func NewExpenseRepository(db Querier) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

const expenseColumns = `id, category, description, amount, date, notes, created_at, updated_at`

func scanExpense(row scanner) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	query := `INSERT INTO expenses (` + expenseColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.Exec(ctx, query, e.ID, e.Category, e.Description, e.Amount, e.Date, e.Notes, e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepo) List(ctx context.Context, period *ledger.Period) ([]*entity.Expense, error) {
	from, to := periodArgs(period)
	rows, err := r.db.Query(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE `+periodWhere+` ORDER BY date DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, description = $3, amount = $4, date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, e.ID, e.Category, e.Description, e.Amount, e.Date, e.Notes, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "expenses", id)
}

// RevenueRepo implementación del puerto RevenueRepository.
type RevenueRepo struct {
	db Querier
}

// NewRevenueRepository construye el repositorio de ingresos.
func NewRevenueRepository(db Querier) *RevenueRepo {
	return &RevenueRepo{db: db}
}

const revenueColumns = `id, source, description, amount, date, notes, created_at, updated_at`

func scanRevenue(row scanner) (*entity.Revenue, error) {
	var rv entity.Revenue
	if err := row.Scan(&rv.ID, &rv.Source, &rv.Description, &rv.Amount, &rv.Date, &rv.Notes, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *RevenueRepo) Create(ctx context.Context, rv *entity.Revenue) error {
	query := `INSERT INTO revenues (` + revenueColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.Exec(ctx, query, rv.ID, rv.Source, rv.Description, rv.Amount, rv.Date, rv.Notes, rv.CreatedAt, rv.UpdatedAt); err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

func (r *RevenueRepo) GetByID(ctx context.Context, id string) (*entity.Revenue, error) {
	rv, err := scanRevenue(r.db.QueryRow(ctx, `SELECT `+revenueColumns+` FROM revenues WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get revenue: %w", err)
	}
	return rv, nil
}

func (r *RevenueRepo) List(ctx context.Context, period *ledger.Period) ([]*entity.Revenue, error) {
	from, to := periodArgs(period)
	rows, err := r.db.Query(ctx, `SELECT `+revenueColumns+` FROM revenues WHERE `+periodWhere+` ORDER BY date DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()

	var list []*entity.Revenue
	for rows.Next() {
		rv, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

func (r *RevenueRepo) Update(ctx context.Context, rv *entity.Revenue) error {
	query := `
		UPDATE revenues SET source = $2, description = $3, amount = $4, date = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, rv.ID, rv.Source, rv.Description, rv.Amount, rv.Date, rv.Notes, rv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RevenueRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "revenues", id)
}
