package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultEmployeeRole etiqueta de cargo cuando no se informa.
const DefaultEmployeeRole = "Funcionário"

// Tipos de pago de un turno.
const (
	PaymentHour  = "HOUR"
	PaymentShift = "SHIFT"
	PaymentDay   = "DAY"
	PaymentWeek  = "WEEK"
	PaymentMonth = "MONTH"
)

// ShiftSettings configuración de turnos almuerzo/cena de un funcionario.
type ShiftSettings struct {
	WorksLunch         bool
	LunchPaymentType   string
	LunchValue         *decimal.Decimal
	LunchStartTime     string // "HH:MM"
	LunchEndTime       string
	WorksDinner        bool
	DinnerPaymentType  string
	DinnerWeekdayValue *decimal.Decimal
	DinnerWeekendValue *decimal.Decimal
	DinnerStartTime    string
	DinnerEndTime      string
}

// Employee funcionario del restaurante.
type Employee struct {
	ID        string
	Name      string
	Role      string
	Phone     *string
	Document  *string
	HireDate  time.Time
	Salary    decimal.Decimal
	Active    bool
	Shifts    ShiftSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}
