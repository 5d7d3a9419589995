package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro de ponto.
const (
	TimeEntryPresent = "PRESENT"
	TimeEntryAbsent  = "ABSENT"
	TimeEntryLate    = "LATE"
	TimeEntryHalfDay = "HALF_DAY"
)

// TimeEntry registro diario de turnos trabajados por un funcionario.
type TimeEntry struct {
	ID             string
	EmployeeID     string
	Date           time.Time // normalizada a las 12:00 de la zona del negocio
	WorkedLunch    bool
	WorkedDinner   bool
	ClockInLunch   *string
	ClockOutLunch  *string
	ClockInDinner  *string
	ClockOutDinner *string
	Status         string
	Notes          *string
	LunchValue     decimal.Decimal
	DinnerValue    decimal.Decimal
	TotalValue     decimal.Decimal
	CreatedByID    *string
	UpdatedByID    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Employee *EmployeeRef
}

// ShiftConfig parámetro global de turnos (ej. valor por defecto de la cena).
type ShiftConfig struct {
	ID          string
	Name        string
	Description *string
	Value       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
