package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntryQuery filtros de GET /time-entries.
type TimeEntryQuery struct {
	Date       string `query:"date" validate:"omitempty,isodate"`
	EmployeeID string `query:"employeeId" validate:"omitempty,max=100"`
	StartDate  string `query:"startDate" validate:"omitempty,isodate"`
	EndDate    string `query:"endDate" validate:"omitempty,isodate"`
}

// CreateTimeEntryRequest entrada de POST /time-entries.
type CreateTimeEntryRequest struct {
	EmployeeID     string  `json:"employeeId" validate:"required,max=100"`
	Date           string  `json:"date" validate:"required,isodate"`
	WorkedLunch    bool    `json:"workedLunch"`
	WorkedDinner   bool    `json:"workedDinner"`
	ClockInLunch   *string `json:"clockInLunch" validate:"omitempty,clock"`
	ClockOutLunch  *string `json:"clockOutLunch" validate:"omitempty,clock"`
	ClockInDinner  *string `json:"clockInDinner" validate:"omitempty,clock"`
	ClockOutDinner *string `json:"clockOutDinner" validate:"omitempty,clock"`
	Status         string  `json:"status" validate:"omitempty,oneof=PRESENT ABSENT LATE HALF_DAY"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateTimeEntryRequest entrada de PUT /time-entries/:id.
type UpdateTimeEntryRequest struct {
	Date           *string `json:"date" validate:"omitempty,isodate"`
	WorkedLunch    *bool   `json:"workedLunch"`
	WorkedDinner   *bool   `json:"workedDinner"`
	ClockInLunch   *string `json:"clockInLunch" validate:"omitempty,clock"`
	ClockOutLunch  *string `json:"clockOutLunch" validate:"omitempty,clock"`
	ClockInDinner  *string `json:"clockInDinner" validate:"omitempty,clock"`
	ClockOutDinner *string `json:"clockOutDinner" validate:"omitempty,clock"`
	Status         *string `json:"status" validate:"omitempty,oneof=PRESENT ABSENT LATE HALF_DAY"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}

// TimeEntryResponse salida de un registro de ponto.
type TimeEntryResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employeeId"`
	Date           time.Time       `json:"date"`
	WorkedLunch    bool            `json:"workedLunch"`
	WorkedDinner   bool            `json:"workedDinner"`
	ClockInLunch   *string         `json:"clockInLunch"`
	ClockOutLunch  *string         `json:"clockOutLunch"`
	ClockInDinner  *string         `json:"clockInDinner"`
	ClockOutDinner *string         `json:"clockOutDinner"`
	Status         string          `json:"status"`
	Notes          *string         `json:"notes"`
	LunchValue     decimal.Decimal `json:"lunchValue"`
	DinnerValue    decimal.Decimal `json:"dinnerValue"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	CreatedByID    *string         `json:"createdById"`
	UpdatedByID    *string         `json:"updatedById"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Employee       *EmployeeRef    `json:"employee,omitempty"`
}

// ShiftConfigValue par nombre/valor en PUT /shift-config.
type ShiftConfigValue struct {
	Name  string           `json:"name" validate:"required,min=1,max=50"`
	Value *decimal.Decimal `json:"value" validate:"required,gte=0"`
}

// UpdateShiftConfigRequest entrada de PUT /shift-config.
type UpdateShiftConfigRequest struct {
	Configs []ShiftConfigValue `json:"configs" validate:"required,min=1,dive"`
}

// ShiftConfigResponse salida de una configuración de turno.
type ShiftConfigResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Value       decimal.Decimal `json:"value"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
