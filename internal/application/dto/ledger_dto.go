package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada de POST /expenses.
type CreateExpenseRequest struct {
	Category    string           `json:"category" validate:"required,max=100"`
	Description string           `json:"description" validate:"required,max=500"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Date        string           `json:"date" validate:"required,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateExpenseRequest entrada de PUT /expenses/:id.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Date        *string          `json:"date" validate:"omitempty,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateRevenueRequest entrada de POST /revenues.
type CreateRevenueRequest struct {
	Source      string           `json:"source" validate:"required,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Date        string           `json:"date" validate:"required,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateRevenueRequest entrada de PUT /revenues/:id.
type UpdateRevenueRequest struct {
	Source      *string          `json:"source" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Date        *string          `json:"date" validate:"omitempty,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// RevenueResponse salida de un ingreso.
type RevenueResponse struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
