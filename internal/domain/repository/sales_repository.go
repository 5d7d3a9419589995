package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

// SalesFilter filtros de pedidos; campos vacíos no filtran. OrderType es COUNTER, TABLE o DELIVERY.
type SalesFilter struct {
	Period    *ledger.Period
	Status    string
	OrderType string
	Limit     int
}

// SalesRepository puerto de persistencia para SalesOrder.
type SalesRepository interface {
	// Upsert inserta o actualiza por ExternalID y completa ID y CreatedAt de cada pedido.
	Upsert(ctx context.Context, orders []*entity.SalesOrder) error
	// List ordena por openedAt descendente.
	List(ctx context.Context, f SalesFilter) ([]*entity.SalesOrder, error)
}
