package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvanceListQuery filtros de GET /advances.
type AdvanceListQuery struct {
	Status     string `query:"status" validate:"omitempty,oneof=PENDING APPROVED PAID REJECTED DISCOUNTED"`
	EmployeeID string `query:"employeeId" validate:"omitempty,max=100"`
}

// CreateAdvanceRequest entrada de POST /advances.
type CreateAdvanceRequest struct {
	EmployeeID  string           `json:"employeeId" validate:"required,max=100"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	RequestDate string           `json:"requestDate" validate:"omitempty,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateAdvanceRequest entrada de PUT /advances/:id; campos ausentes no se tocan.
type UpdateAdvanceRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Status      *string          `json:"status" validate:"omitempty,oneof=PENDING APPROVED PAID REJECTED"`
	PaymentDate *string          `json:"paymentDate" validate:"omitempty,isodate"`
	Notes       *string          `json:"notes" validate:"omitempty,max=1000"`
}

// AdvanceResponse salida de un vale.
type AdvanceResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	Amount      decimal.Decimal `json:"amount"`
	RequestDate time.Time       `json:"requestDate"`
	Status      string          `json:"status"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Employee    *EmployeeRef    `json:"employee,omitempty"`
}
