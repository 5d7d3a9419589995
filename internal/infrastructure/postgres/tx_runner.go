package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayroll abre una transacción con los repos que usa la generación de la folha
// y hace Commit si fn no devuelve error; Rollback en cualquier otro caso.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(tx repository.PayrollTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(repository.PayrollTx{
		Employees: NewEmployeeRepository(tx),
		Advances:  NewAdvanceRepository(tx),
		Payroll:   NewPayrollRepository(tx),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayrollPeriod igual que RunPayroll, con los repos del cierre de un período.
func (r *TxRunner) RunPayrollPeriod(ctx context.Context, fn func(tx repository.PayrollPeriodTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(repository.PayrollPeriodTx{
		Employees:   NewEmployeeRepository(tx),
		Advances:    NewAdvanceRepository(tx),
		TimeEntries: NewTimeEntryRepository(tx),
		Periods:     NewPayrollPeriodRepository(tx),
	}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
