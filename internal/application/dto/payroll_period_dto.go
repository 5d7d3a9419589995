package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosePayrollPeriodRequest entrada de POST /payroll-periods. Las fechas se toman como
// días completos en la zona del negocio.
type ClosePayrollPeriodRequest struct {
	StartDate  string `json:"startDate" validate:"required,isodate"`
	EndDate    string `json:"endDate" validate:"required,isodate"`
	PeriodType string `json:"periodType" validate:"omitempty,oneof=WEEKLY BIWEEKLY MONTHLY CUSTOM"`
}

// PeriodPaymentResponse liquidación de un funcionario en el período.
type PeriodPaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	DaysWorked   int             `json:"daysWorked"`
	LunchShifts  int             `json:"lunchShifts"`
	DinnerShifts int             `json:"dinnerShifts"`
	LunchTotal   decimal.Decimal `json:"lunchTotal"`
	DinnerTotal  decimal.Decimal `json:"dinnerTotal"`
	GrossAmount  decimal.Decimal `json:"grossAmount"`
	Advances     decimal.Decimal `json:"advances"`
	NetAmount    decimal.Decimal `json:"netAmount"`
}

// PayrollPeriodResponse período cerrado con sus pagos.
type PayrollPeriodResponse struct {
	ID          string                  `json:"id"`
	StartDate   time.Time               `json:"startDate"`
	EndDate     time.Time               `json:"endDate"`
	PeriodType  string                  `json:"periodType"`
	TotalAmount decimal.Decimal         `json:"totalAmount"`
	CreatedByID *string                 `json:"createdById"`
	CreatedAt   time.Time               `json:"createdAt"`
	Payments    []PeriodPaymentResponse `json:"payments"`
}
