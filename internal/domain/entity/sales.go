package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de cobro derivado del estado textual que informa el PDV.
const (
	SalePaymentPaid      = "PAID"
	SalePaymentPending   = "PENDING"
	SalePaymentCancelled = "CANCELLED"
)

// Filtros de tipo de pedido.
const (
	OrderTypeCounter  = "COUNTER"
	OrderTypeTable    = "TABLE"
	OrderTypeDelivery = "DELIVERY"
)

// SalesOrder pedido sincronizado desde el PDV; ExternalID es único y es la clave del upsert.
type SalesOrder struct {
	ID            string
	ExternalID    string
	Origin        string
	OrderType     string
	ItemsCount    int
	Amount        decimal.Decimal
	Status        string
	PaymentStatus string
	OpenedAt      time.Time
	ClosedAt      *time.Time
	Duration      *int // segundos
	Unit          string
	TableNumber   *int
	IsCounter     bool
	IsDelivery    bool
	PaymentMethod *string
	SyncedAt      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
