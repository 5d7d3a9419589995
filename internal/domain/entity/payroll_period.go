package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de período de pago.
const (
	PeriodWeekly   = "WEEKLY"
	PeriodBiweekly = "BIWEEKLY"
	PeriodMonthly  = "MONTHLY"
	PeriodCustom   = "CUSTOM"
)

// PayrollPeriod cierre de pagos por turnos trabajados entre StartDate y EndDate (ambos incluidos).
type PayrollPeriod struct {
	ID          string
	StartDate   time.Time
	EndDate     time.Time
	PeriodType  string
	TotalAmount decimal.Decimal
	CreatedByID *string
	CreatedAt   time.Time

	Payments []PeriodPayment
}

// PeriodPayment liquidación de un funcionario dentro de un período. EmployeeName queda
// congelado al momento del cierre.
type PeriodPayment struct {
	ID           string
	PeriodID     string
	EmployeeID   string
	EmployeeName string
	DaysWorked   int
	LunchShifts  int
	DinnerShifts int
	LunchTotal   decimal.Decimal
	DinnerTotal  decimal.Decimal
	GrossAmount  decimal.Decimal
	Advances     decimal.Decimal
	NetAmount    decimal.Decimal
}
