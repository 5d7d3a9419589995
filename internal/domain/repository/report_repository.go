package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

// EmployeeMonthRow fila del reporte de funcionarios de un mes.
type EmployeeMonthRow struct {
	ID            string
	Name          string
	Role          string
	Salary        Money
	Advances      Money
	AdvancesCount int
	NetSalary     *Money
	Paid          *bool
}

// ReportRepository consultas agregadas de solo lectura para reportes mensuales.
type ReportRepository interface {
	ExpenseTotal(ctx context.Context, p ledger.Period) (Total, error)
	RevenueTotal(ctx context.Context, p ledger.Period) (Total, error)
	PayrollTotal(ctx context.Context, month string) (Total, error)
	PaidAdvancesTotal(ctx context.Context, p ledger.Period) (Total, error)
	ExpensesByCategory(ctx context.Context, p ledger.Period) ([]Total, error)
	RevenuesBySource(ctx context.Context, p ledger.Period) ([]Total, error)
	EmployeesMonth(ctx context.Context, p ledger.Period, month string) ([]EmployeeMonthRow, error)
}
