package repository

import "context"

// PayrollTx repos atados a una misma transacción para generar la folha.
type PayrollTx struct {
	Employees EmployeeRepository
	Advances  AdvanceRepository
	Payroll   PayrollRepository
}

// PayrollPeriodTx repos atados a la transacción de cierre de un período de pago.
type PayrollPeriodTx struct {
	Employees   EmployeeRepository
	Advances    AdvanceRepository
	TimeEntries TimeEntryRepository
	Periods     PayrollPeriodRepository
}

// TxRunner ejecuta fn dentro de una transacción; Rollback si fn devuelve error.
type TxRunner interface {
	RunPayroll(ctx context.Context, fn func(tx PayrollTx) error) error
	RunPayrollPeriod(ctx context.Context, fn func(tx PayrollPeriodTx) error) error
}
