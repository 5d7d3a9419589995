package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftSettingsInput configuración de turnos; nil significa "no informado".
type ShiftSettingsInput struct {
	WorksLunch         *bool            `json:"worksLunch"`
	LunchPaymentType   *string          `json:"lunchPaymentType" validate:"omitempty,oneof=HOUR SHIFT DAY WEEK MONTH"`
	LunchValue         *decimal.Decimal `json:"lunchValue" validate:"omitempty,gte=0"`
	LunchStartTime     *string          `json:"lunchStartTime" validate:"omitempty,clock"`
	LunchEndTime       *string          `json:"lunchEndTime" validate:"omitempty,clock"`
	WorksDinner        *bool            `json:"worksDinner"`
	DinnerPaymentType  *string          `json:"dinnerPaymentType" validate:"omitempty,oneof=HOUR SHIFT DAY WEEK MONTH"`
	DinnerWeekdayValue *decimal.Decimal `json:"dinnerWeekdayValue" validate:"omitempty,gte=0"`
	DinnerWeekendValue *decimal.Decimal `json:"dinnerWeekendValue" validate:"omitempty,gte=0"`
	DinnerStartTime    *string          `json:"dinnerStartTime" validate:"omitempty,clock"`
	DinnerEndTime      *string          `json:"dinnerEndTime" validate:"omitempty,clock"`
}

// CreateEmployeeRequest entrada de POST /employees.
type CreateEmployeeRequest struct {
	Name     string           `json:"name" validate:"required,min=2,max=100,personname"`
	Role     string           `json:"role" validate:"omitempty,max=100"`
	Phone    *string          `json:"phone" validate:"omitempty,max=20,phone"`
	Document *string          `json:"document" validate:"omitempty,max=20"`
	HireDate string           `json:"hireDate" validate:"omitempty,isodate"`
	Salary   *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	Active   *bool            `json:"active"`
	ShiftSettingsInput
}

// UpdateEmployeeRequest entrada de PUT /employees/:id.
type UpdateEmployeeRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=2,max=100,personname"`
	Role     *string          `json:"role" validate:"omitempty,min=1,max=100"`
	Phone    *string          `json:"phone" validate:"omitempty,max=20,phone"`
	Document *string          `json:"document" validate:"omitempty,max=20"`
	HireDate *string          `json:"hireDate" validate:"omitempty,isodate"`
	Salary   *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	Active   *bool            `json:"active"`
	ShiftSettingsInput
}

// ShiftSettingsResponse configuración de turnos en respuestas.
type ShiftSettingsResponse struct {
	WorksLunch         bool             `json:"worksLunch"`
	LunchPaymentType   string           `json:"lunchPaymentType"`
	LunchValue         *decimal.Decimal `json:"lunchValue"`
	LunchStartTime     string           `json:"lunchStartTime,omitempty"`
	LunchEndTime       string           `json:"lunchEndTime,omitempty"`
	WorksDinner        bool             `json:"worksDinner"`
	DinnerPaymentType  string           `json:"dinnerPaymentType"`
	DinnerWeekdayValue *decimal.Decimal `json:"dinnerWeekdayValue"`
	DinnerWeekendValue *decimal.Decimal `json:"dinnerWeekendValue"`
	DinnerStartTime    string           `json:"dinnerStartTime,omitempty"`
	DinnerEndTime      string           `json:"dinnerEndTime,omitempty"`
}

// EmployeeResponse salida de un funcionario.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Phone     *string         `json:"phone"`
	Document  *string         `json:"document"`
	HireDate  time.Time       `json:"hireDate"`
	Salary    decimal.Decimal `json:"salary"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	ShiftSettingsResponse
}

// EmployeeCountResponse conteos de registros relacionados.
type EmployeeCountResponse struct {
	Advances    int `json:"advances"`
	TimeEntries int `json:"timeEntries,omitempty"`
}

// EmployeeListItemResponse funcionario en el listado, con conteo de vales.
type EmployeeListItemResponse struct {
	EmployeeResponse
	Count EmployeeCountResponse `json:"_count"`
}

// EmployeeDetailResponse funcionario con los últimos 5 vales y conteos.
type EmployeeDetailResponse struct {
	EmployeeResponse
	Advances []AdvanceResponse     `json:"advances"`
	Count    EmployeeCountResponse `json:"_count"`
}
