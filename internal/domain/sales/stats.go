package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

var hundred = decimal.NewFromInt(100)

// Bucket cantidad de pedidos y monto acumulado.
type Bucket struct {
	Count  int
	Amount decimal.Decimal
}

func (b *Bucket) add(o *entity.SalesOrder) {
	b.Count++
	b.Amount = b.Amount.Add(o.Amount)
}

// TableBucket acumulado de una mesa.
type TableBucket struct {
	Table int
	Bucket
}

// Stats resumen de un mes de pedidos. Horas, días y días de la semana se cuentan en la
// zona del negocio.
type Stats struct {
	Period      ledger.Period
	DaysInMonth int
	CurrentDay  int

	TotalOrders      int
	TotalAmount      decimal.Decimal
	TotalItems       int
	AvgOrderValue    decimal.Decimal
	AvgItemsPerOrder decimal.Decimal
	DailyAvg         decimal.Decimal
	MonthProjection  decimal.Decimal

	Paid           Bucket
	Pending        Bucket
	PaidPercentage decimal.Decimal

	Counter  Bucket
	Table    Bucket
	Delivery Bucket

	AvgDuration float64 // segundos, solo pedidos con duración > 0

	ByWeekday [7]Bucket // domingo = 0
	ByHour    [24]Bucket
	ByDay     map[string]Bucket // "YYYY-MM-DD"

	TopTables []TableBucket
}

// Comparison variación del mes contra el anterior; los porcentajes son 0 si el anterior no tuvo ventas.
type Comparison struct {
	TotalAmount   decimal.Decimal
	TotalOrders   int
	AvgOrderValue decimal.Decimal
	AmountChange  decimal.Decimal
	OrdersChange  decimal.Decimal
}

// Summarize calcula las estadísticas de orders dentro de month. now define el día en curso:
// si cae dentro del mes se proyecta desde ese día, si no el mes se toma completo.
func Summarize(orders []*entity.SalesOrder, month ledger.Period, now time.Time, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}
	st := Stats{
		Period:      month,
		DaysInMonth: month.End.In(loc).Day(),
		TotalAmount: decimal.Zero,
		ByDay:       map[string]Bucket{},
	}
	st.CurrentDay = st.DaysInMonth
	if month.Contains(now) {
		st.CurrentDay = now.In(loc).Day()
	}

	tables := map[int]*TableBucket{}
	var durationSum, durationN int
	for _, o := range orders {
		st.TotalOrders++
		st.TotalAmount = st.TotalAmount.Add(o.Amount)
		st.TotalItems += o.ItemsCount

		switch o.PaymentStatus {
		case entity.SalePaymentPaid:
			st.Paid.add(o)
		case entity.SalePaymentPending:
			st.Pending.add(o)
		}
		for _, t := range []struct {
			kind string
			b    *Bucket
		}{{entity.OrderTypeCounter, &st.Counter}, {entity.OrderTypeTable, &st.Table}, {entity.OrderTypeDelivery, &st.Delivery}} {
			if MatchesOrderType(o, t.kind) {
				t.b.add(o)
			}
		}
		if o.Duration != nil && *o.Duration > 0 {
			durationSum += *o.Duration
			durationN++
		}

		opened := o.OpenedAt.In(loc)
		st.ByWeekday[opened.Weekday()].add(o)
		st.ByHour[opened.Hour()].add(o)
		day := st.ByDay[opened.Format(time.DateOnly)]
		day.add(o)
		st.ByDay[opened.Format(time.DateOnly)] = day

		if o.TableNumber != nil && *o.TableNumber > 0 {
			tb := tables[*o.TableNumber]
			if tb == nil {
				tb = &TableBucket{Table: *o.TableNumber}
				tables[*o.TableNumber] = tb
			}
			tb.add(o)
		}
	}

	if st.TotalOrders > 0 {
		n := decimal.NewFromInt(int64(st.TotalOrders))
		st.AvgOrderValue = st.TotalAmount.Div(n).Round(2)
		st.AvgItemsPerOrder = decimal.NewFromInt(int64(st.TotalItems)).Div(n).Round(2)
		st.PaidPercentage = percent(st.Paid.Count, st.TotalOrders)
	}
	if st.CurrentDay > 0 {
		daily := st.TotalAmount.Div(decimal.NewFromInt(int64(st.CurrentDay)))
		st.DailyAvg = daily.Round(2)
		st.MonthProjection = daily.Mul(decimal.NewFromInt(int64(st.DaysInMonth))).Round(2)
	}
	if durationN > 0 {
		st.AvgDuration = float64(durationSum) / float64(durationN)
	}

	for _, tb := range tables {
		st.TopTables = append(st.TopTables, *tb)
	}
	sort.Slice(st.TopTables, func(i, j int) bool {
		if c := st.TopTables[i].Amount.Cmp(st.TopTables[j].Amount); c != 0 {
			return c > 0
		}
		return st.TopTables[i].Table < st.TopTables[j].Table
	})
	if len(st.TopTables) > 5 {
		st.TopTables = st.TopTables[:5]
	}
	return st
}

// Share porcentaje de pedidos de b sobre el total del mes.
func (st Stats) Share(b Bucket) decimal.Decimal {
	return percent(b.Count, st.TotalOrders)
}

// Compare contrasta el mes actual con los pedidos del mes anterior.
func Compare(current Stats, previous []*entity.SalesOrder) Comparison {
	c := Comparison{TotalAmount: decimal.Zero, TotalOrders: len(previous)}
	for _, o := range previous {
		c.TotalAmount = c.TotalAmount.Add(o.Amount)
	}
	if c.TotalOrders > 0 {
		c.AvgOrderValue = c.TotalAmount.Div(decimal.NewFromInt(int64(c.TotalOrders))).Round(2)
		c.OrdersChange = decimal.NewFromInt(int64(current.TotalOrders - c.TotalOrders)).
			Mul(hundred).Div(decimal.NewFromInt(int64(c.TotalOrders))).Round(2)
	}
	if c.TotalAmount.IsPositive() {
		c.AmountChange = current.TotalAmount.Sub(c.TotalAmount).Mul(hundred).Div(c.TotalAmount).Round(2)
	}
	return c
}

func percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole))).Round(2)
}
