package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un vale (adelanto de salario).
const (
	AdvanceStatusPending  = "PENDING"
	AdvanceStatusApproved = "APPROVED"
	AdvanceStatusPaid     = "PAID"
	AdvanceStatusRejected = "REJECTED"
	// AdvanceStatusDiscounted vale PAID ya descontado en el cierre de un período de pago.
	AdvanceStatusDiscounted = "DISCOUNTED"
)

// Advance adelanto de dinero a un funcionario. PaymentDate no es nil cuando Status es PAID
// o DISCOUNTED, y es nil en cualquier otro estado.
type Advance struct {
	ID          string
	EmployeeID  string
	Amount      decimal.Decimal
	RequestDate time.Time
	Status      string
	PaymentDate *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Employee se completa en listados (join); nil en escrituras.
	Employee *EmployeeRef
}

// EmployeeRef vista mínima del funcionario embebida en otras lecturas.
type EmployeeRef struct {
	ID   string
	Name string
	Role string
}
