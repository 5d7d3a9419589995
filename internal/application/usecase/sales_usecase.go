package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/domain/sales"
)

// Valores por defecto de un pedido que llega incompleto.
const (
	defaultSaleOrigin    = "Desconhecido"
	defaultSaleOrderType = "Outros"
	defaultSaleStatus    = "Desconhecido"
)

var (
	weekdayLabels = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	hourLabels    = func() []string {
		out := make([]string, 24)
		for h := range out {
			out[h] = strconv.Itoa(h) + "h"
		}
		return out
	}()
)

// SalesUseCase pedidos sincronizados del PDV y sus estadísticas mensuales.
type SalesUseCase struct {
	orders      repository.SalesRepository
	defaultUnit string
	clock       ports.Clock
}

// NewSalesUseCase construye el caso de uso; defaultUnit es la unidad de los pedidos que no la informan.
func NewSalesUseCase(orders repository.SalesRepository, defaultUnit string, clock ports.Clock) *SalesUseCase {
	return &SalesUseCase{orders: orders, defaultUnit: defaultUnit, clock: clock}
}

// List filtra por rango (startDate y endDate juntos, prioridad sobre month), estado y tipo.
func (uc *SalesUseCase) List(ctx context.Context, q dto.SalesQuery) ([]dto.SalesOrderResponse, error) {
	loc := uc.clock.Loc
	verr := domain.NewValidationError()
	if q.StartDate != "" && q.EndDate == "" {
		verr.Add("endDate", "es obligatorio junto con startDate")
	}
	if q.EndDate != "" && q.StartDate == "" {
		verr.Add("startDate", "es obligatorio junto con endDate")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	f := repository.SalesFilter{Limit: q.Limit}
	if q.Status != "all" {
		f.Status = q.Status
	}
	if q.OrderType != "all" {
		f.OrderType = q.OrderType
	}
	period, err := monthPeriod(q.Month, loc)
	if err != nil {
		return nil, err
	}
	f.Period = period
	if q.StartDate != "" {
		start, err := parseDateField("startDate", q.StartDate, loc)
		if err != nil {
			return nil, err
		}
		end, err := parseDateField("endDate", q.EndDate, loc)
		if err != nil {
			return nil, err
		}
		f.Period = &ledger.Period{Start: start, End: ledger.DayRange(end, loc).End}
	}

	list, err := uc.orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toSalesOrderResponse(o))
	}
	return out, nil
}

// Sync inserta o actualiza los pedidos por externalId. Tipo, mesa, duración y estado de
// cobro se derivan del texto que envía el PDV. Un pedido inválido rechaza el lote entero.
func (uc *SalesUseCase) Sync(ctx context.Context, in dto.SyncSalesRequest) (*dto.SyncSalesResponse, error) {
	loc := uc.clock.Loc
	now := uc.clock.Now()
	verr := domain.NewValidationError()
	orders := make([]*entity.SalesOrder, 0, len(in.Orders))

	for i, s := range in.Orders {
		field := func(name string) string { return "orders[" + strconv.Itoa(i) + "]." + name }
		o := &entity.SalesOrder{
			ID:            uuid.New().String(),
			ExternalID:    strings.TrimSpace(string(s.ExternalID)),
			Origin:        orDefault(s.Origin, defaultSaleOrigin),
			OrderType:     orDefault(s.OrderType, defaultSaleOrderType),
			ItemsCount:    s.ItemsCount,
			Amount:        s.Amount,
			Status:        orDefault(s.Status, defaultSaleStatus),
			Unit:          orDefault(s.Unit, uc.defaultUnit),
			PaymentMethod: s.PaymentMethod,
			SyncedAt:      now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if o.ExternalID == "" {
			verr.Add(field("externalId"), "es obligatorio")
		}
		opened, err := ledger.ParseDate(s.OpenedAt, loc)
		if err != nil {
			verr.Add(field("openedAt"), "fecha inválida")
		}
		o.OpenedAt = opened
		if s.ClosedAt != nil && *s.ClosedAt != "" {
			closed, err := ledger.ParseDate(*s.ClosedAt, loc)
			if err != nil {
				verr.Add(field("closedAt"), "fecha inválida")
			}
			o.ClosedAt = &closed
		}
		if s.Duration != nil && *s.Duration != "" {
			secs, ok := sales.ParseDuration(string(*s.Duration))
			if !ok {
				verr.Add(field("duration"), "segundos o formato 6h 4m 24s")
			}
			o.Duration = secs
		}
		kind := sales.Classify(o.OrderType)
		o.IsCounter, o.IsDelivery, o.TableNumber = kind.IsCounter, kind.IsDelivery, kind.TableNumber
		o.PaymentStatus = sales.PaymentStatusFor(o.Status)
		orders = append(orders, o)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := uc.orders.Upsert(ctx, orders); err != nil {
		return nil, err
	}
	out := &dto.SyncSalesResponse{
		Message: dto.SyncMessage(len(orders)),
		Count:   len(orders),
		Orders:  make([]dto.SalesOrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, toSalesOrderResponse(o))
	}
	return out, nil
}

// Stats resumen del mes (el actual si month está vacío) y, con compare, la variación
// contra el mes anterior.
func (uc *SalesUseCase) Stats(ctx context.Context, q dto.SalesStatsQuery) (*dto.SalesStatsResponse, error) {
	loc := uc.clock.Loc
	now := uc.clock.Now()
	month := q.Month
	if month == "" {
		month = ledger.MonthOf(now, loc)
	}
	period, err := ledger.MonthRange(month, loc)
	if err != nil {
		return nil, err
	}
	current, err := uc.orders.List(ctx, repository.SalesFilter{Period: &period})
	if err != nil {
		return nil, err
	}
	st := sales.Summarize(current, period, now, loc)
	out := toSalesStatsResponse(st)

	if q.Compare {
		prev, err := ledger.MonthRange(ledger.MonthOf(period.Start.AddDate(0, -1, 0), loc), loc)
		if err != nil {
			return nil, err
		}
		previous, err := uc.orders.List(ctx, repository.SalesFilter{Period: &prev})
		if err != nil {
			return nil, err
		}
		c := sales.Compare(st, previous)
		out.Comparison = &dto.SalesComparison{
			TotalAmount:   c.TotalAmount,
			TotalOrders:   c.TotalOrders,
			AvgOrderValue: c.AvgOrderValue,
			AmountChange:  c.AmountChange,
			OrdersChange:  c.OrdersChange,
		}
	}
	return out, nil
}

func toSalesStatsResponse(st sales.Stats) *dto.SalesStatsResponse {
	out := &dto.SalesStatsResponse{}
	out.Period.StartDate = st.Period.Start
	out.Period.EndDate = st.Period.End
	out.Period.DaysInMonth = st.DaysInMonth
	out.Period.CurrentDay = st.CurrentDay

	out.Summary.TotalOrders = st.TotalOrders
	out.Summary.TotalAmount = st.TotalAmount
	out.Summary.TotalItems = st.TotalItems
	out.Summary.AvgOrderValue = st.AvgOrderValue
	out.Summary.AvgItemsPerOrder = st.AvgItemsPerOrder
	out.Summary.DailyAvg = st.DailyAvg
	out.Summary.MonthProjection = st.MonthProjection

	out.Payment.PaidOrders = st.Paid.Count
	out.Payment.PaidAmount = st.Paid.Amount
	out.Payment.PendingOrders = st.Pending.Count
	out.Payment.PendingAmount = st.Pending.Amount
	out.Payment.PaidPercentage = st.PaidPercentage

	share := func(b sales.Bucket) dto.SalesShare {
		return dto.SalesShare{Count: b.Count, Amount: b.Amount, Percentage: st.Share(b)}
	}
	out.OrderTypes.Counter = share(st.Counter)
	out.OrderTypes.Table = share(st.Table)
	out.OrderTypes.Delivery = share(st.Delivery)

	out.Timing.AvgDuration = st.AvgDuration
	out.Timing.AvgDurationFormatted = sales.FormatDuration(st.AvgDuration)

	out.Distribution.ByWeekday = series(weekdayLabels, st.ByWeekday[:])
	out.Distribution.ByHour = series(hourLabels, st.ByHour[:])
	out.Distribution.ByDay = make(map[string]dto.SalesBucket, len(st.ByDay))
	for day, b := range st.ByDay {
		out.Distribution.ByDay[day] = dto.SalesBucket{Count: b.Count, Amount: b.Amount}
	}

	out.TopTables = make([]dto.SalesTable, 0, len(st.TopTables))
	for _, t := range st.TopTables {
		out.TopTables = append(out.TopTables, dto.SalesTable{Table: t.Table, Count: t.Count, Amount: t.Amount})
	}
	return out
}

func series(labels []string, buckets []sales.Bucket) dto.SalesSeries {
	s := dto.SalesSeries{
		Labels:  labels,
		Orders:  make([]int, len(buckets)),
		Amounts: make([]decimal.Decimal, len(buckets)),
	}
	for i, b := range buckets {
		s.Orders[i] = b.Count
		s.Amounts[i] = b.Amount
	}
	return s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
