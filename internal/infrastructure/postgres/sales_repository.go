package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository.
type SalesRepo struct {
	db Querier
}

// NewSalesRepository construye el repositorio de pedidos.
func NewSalesRepository(db Querier) *SalesRepo {
	return &SalesRepo{db: db}
}

const salesSelect = `
	SELECT id, external_id, origin, order_type, items_count, amount, status, payment_status, opened_at,
		closed_at, duration, unit, table_number, is_counter, is_delivery, payment_method, synced_at,
		created_at, updated_at
	FROM sales_orders`

func scanSalesOrder(row scanner) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := row.Scan(&o.ID, &o.ExternalID, &o.Origin, &o.OrderType, &o.ItemsCount, &o.Amount, &o.Status,
		&o.PaymentStatus, &o.OpenedAt, &o.ClosedAt, &o.Duration, &o.Unit, &o.TableNumber, &o.IsCounter,
		&o.IsDelivery, &o.PaymentMethod, &o.SyncedAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Upsert envía todos los pedidos en un batch. En conflicto por external_id se pisan
// todos los campos menos id y created_at.
func (r *SalesRepo) Upsert(ctx context.Context, orders []*entity.SalesOrder) error {
	if len(orders) == 0 {
		return nil
	}
	query := `
		INSERT INTO sales_orders (id, external_id, origin, order_type, items_count, amount, status,
			payment_status, opened_at, closed_at, duration, unit, table_number, is_counter, is_delivery,
			payment_method, synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (external_id) DO UPDATE SET
			origin         = EXCLUDED.origin,
			order_type     = EXCLUDED.order_type,
			items_count    = EXCLUDED.items_count,
			amount         = EXCLUDED.amount,
			status         = EXCLUDED.status,
			payment_status = EXCLUDED.payment_status,
			opened_at      = EXCLUDED.opened_at,
			closed_at      = EXCLUDED.closed_at,
			duration       = EXCLUDED.duration,
			unit           = EXCLUDED.unit,
			table_number   = EXCLUDED.table_number,
			is_counter     = EXCLUDED.is_counter,
			is_delivery    = EXCLUDED.is_delivery,
			payment_method = EXCLUDED.payment_method,
			synced_at      = EXCLUDED.synced_at,
			updated_at     = EXCLUDED.updated_at
		RETURNING id, created_at`

	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(query, o.ID, o.ExternalID, o.Origin, o.OrderType, o.ItemsCount, o.Amount, o.Status,
			o.PaymentStatus, o.OpenedAt, o.ClosedAt, o.Duration, o.Unit, o.TableNumber, o.IsCounter,
			o.IsDelivery, o.PaymentMethod, o.SyncedAt, o.CreatedAt, o.UpdatedAt)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for _, o := range orders {
		if err := results.QueryRow().Scan(&o.ID, &o.CreatedAt); err != nil {
			return fmt.Errorf("upsert sales order %s: %w", o.ExternalID, err)
		}
	}
	return nil
}

func (r *SalesRepo) List(ctx context.Context, f repository.SalesFilter) ([]*entity.SalesOrder, error) {
	from, to := periodArgs(f.Period)
	query := salesSelect + `
		WHERE ($1::timestamptz IS NULL OR opened_at BETWEEN $1 AND $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4 = '' OR ($4 = 'COUNTER' AND is_counter)
		               OR ($4 = 'TABLE' AND NOT is_counter AND NOT is_delivery)
		               OR ($4 = 'DELIVERY' AND is_delivery))
		ORDER BY opened_at DESC
		LIMIT NULLIF($5::int, 0)`
	rows, err := r.db.Query(ctx, query, from, to, f.Status, f.OrderType, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrder
	for rows.Next() {
		o, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
