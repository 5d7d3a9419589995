package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneratePayrollRequest entrada de POST /payroll: genera la folha del mes.
type GeneratePayrollRequest struct {
	Month string `json:"month" validate:"required,yearmonth"`
}

// UpdatePayrollRequest entrada de PUT /payroll/:id. netSalary se ignora: el servidor lo recalcula.
type UpdatePayrollRequest struct {
	Bonuses     *decimal.Decimal `json:"bonuses" validate:"omitempty,gte=0"`
	Deductions  *decimal.Decimal `json:"deductions" validate:"omitempty,gte=0"`
	Paid        *bool            `json:"paid"`
	PaymentDate *string          `json:"paymentDate" validate:"omitempty,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
	NetSalary   *decimal.Decimal `json:"netSalary" swaggerignore:"true"`
}

// PayrollEntryResponse salida de una entrada de folha.
type PayrollEntryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Month       string          `json:"month"`
	BaseSalary  decimal.Decimal `json:"baseSalary"`
	Advances    decimal.Decimal `json:"advances"`
	Bonuses     decimal.Decimal `json:"bonuses"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Employee    *EmployeeRef    `json:"employee,omitempty"`
}
