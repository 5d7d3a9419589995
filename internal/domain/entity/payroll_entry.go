package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollEntry liquidación mensual de un funcionario (única por funcionario y mes "YYYY-MM").
type PayrollEntry struct {
	ID          string
	EmployeeID  string
	Month       string
	BaseSalary  decimal.Decimal
	Advances    decimal.Decimal
	Bonuses     decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Employee *EmployeeRef
}
