package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto del restaurante.
type Expense struct {
	ID          string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Revenue ingreso del restaurante.
type Revenue struct {
	ID          string
	Source      string
	Description *string
	Amount      decimal.Decimal
	Date        time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
