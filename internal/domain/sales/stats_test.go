package sales_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/sales"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(n int) *int { return &n }

func order(amount string, opened time.Time, mutate func(o *entity.SalesOrder)) *entity.SalesOrder {
	o := &entity.SalesOrder{Amount: dec(amount), OpenedAt: opened, ItemsCount: 2, PaymentStatus: entity.SalePaymentPaid}
	if mutate != nil {
		mutate(o)
	}
	return o
}

func TestSummarize_MesEnCurso(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	month, err := ledger.MonthRange("2024-03", loc)
	require.NoError(t, err)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	// viernes 01/03 20h (local), domingo 03/03 13h, domingo 03/03 21h
	orders := []*entity.SalesOrder{
		order("100", time.Date(2024, 3, 1, 20, 0, 0, 0, loc), func(o *entity.SalesOrder) {
			o.TableNumber = intPtr(3)
			o.Duration = intPtr(3600)
		}),
		order("50", time.Date(2024, 3, 3, 13, 0, 0, 0, loc), func(o *entity.SalesOrder) {
			o.IsCounter = true
			o.PaymentStatus = entity.SalePaymentPending
			o.Duration = intPtr(1800)
		}),
		order("30", time.Date(2024, 3, 3, 21, 0, 0, 0, loc), func(o *entity.SalesOrder) {
			o.IsDelivery = true
			o.PaymentStatus = entity.SalePaymentCancelled
		}),
	}

	st := sales.Summarize(orders, month, now, loc)
	assert.Equal(t, 31, st.DaysInMonth)
	assert.Equal(t, 10, st.CurrentDay)
	assert.Equal(t, 3, st.TotalOrders)
	assert.Equal(t, 6, st.TotalItems)
	assert.True(t, dec("180").Equal(st.TotalAmount))
	assert.True(t, dec("60").Equal(st.AvgOrderValue))
	assert.True(t, dec("2").Equal(st.AvgItemsPerOrder))
	assert.True(t, dec("18").Equal(st.DailyAvg))
	assert.True(t, dec("558").Equal(st.MonthProjection))

	assert.Equal(t, 1, st.Paid.Count)
	assert.Equal(t, 1, st.Pending.Count)
	assert.True(t, dec("33.33").Equal(st.PaidPercentage), "%s", st.PaidPercentage)

	assert.Equal(t, 1, st.Counter.Count)
	assert.Equal(t, 1, st.Table.Count)
	assert.Equal(t, 1, st.Delivery.Count)
	assert.True(t, dec("33.33").Equal(st.Share(st.Table)))

	assert.InDelta(t, 2700, st.AvgDuration, 0.001)

	assert.Equal(t, 1, st.ByWeekday[time.Friday].Count)
	assert.Equal(t, 2, st.ByWeekday[time.Sunday].Count)
	assert.Equal(t, 1, st.ByHour[13].Count)
	assert.Equal(t, 1, st.ByHour[21].Count)
	assert.Equal(t, 2, st.ByDay["2024-03-03"].Count, "el día se toma en la zona del negocio")
	assert.True(t, dec("80").Equal(st.ByDay["2024-03-03"].Amount))

	require.Len(t, st.TopTables, 1)
	assert.Equal(t, 3, st.TopTables[0].Table)
}

func TestSummarize_MesCerradoUsaTodosLosDias(t *testing.T) {
	month, err := ledger.MonthRange("2024-02", time.UTC)
	require.NoError(t, err)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	st := sales.Summarize([]*entity.SalesOrder{order("290", time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC), nil)}, month, now, time.UTC)
	assert.Equal(t, 29, st.DaysInMonth)
	assert.Equal(t, 29, st.CurrentDay)
	assert.True(t, dec("10").Equal(st.DailyAvg))
	assert.True(t, dec("290").Equal(st.MonthProjection))
}

func TestSummarize_TopCincoMesasPorMonto(t *testing.T) {
	month, err := ledger.MonthRange("2024-03", time.UTC)
	require.NoError(t, err)
	opened := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	var orders []*entity.SalesOrder
	for table := 1; table <= 7; table++ {
		table := table
		orders = append(orders, order(decimal.NewFromInt(int64(table*10)).String(), opened, func(o *entity.SalesOrder) {
			o.TableNumber = intPtr(table)
		}))
	}
	st := sales.Summarize(orders, month, opened, time.UTC)
	require.Len(t, st.TopTables, 5)
	assert.Equal(t, 7, st.TopTables[0].Table)
	assert.Equal(t, 3, st.TopTables[4].Table)
}

func TestSummarize_SinPedidos(t *testing.T) {
	month, err := ledger.MonthRange("2024-03", time.UTC)
	require.NoError(t, err)
	st := sales.Summarize(nil, month, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Zero(t, st.TotalOrders)
	assert.True(t, st.TotalAmount.IsZero())
	assert.True(t, st.PaidPercentage.IsZero())
	assert.Empty(t, st.TopTables)
}

func TestCompare(t *testing.T) {
	current := sales.Stats{TotalOrders: 3, TotalAmount: dec("150")}
	prev := []*entity.SalesOrder{{Amount: dec("60")}, {Amount: dec("40")}}

	c := sales.Compare(current, prev)
	assert.Equal(t, 2, c.TotalOrders)
	assert.True(t, dec("100").Equal(c.TotalAmount))
	assert.True(t, dec("50").Equal(c.AvgOrderValue))
	assert.True(t, dec("50").Equal(c.AmountChange))
	assert.True(t, dec("50").Equal(c.OrdersChange))

	empty := sales.Compare(current, nil)
	assert.True(t, empty.AmountChange.IsZero())
	assert.True(t, empty.OrdersChange.IsZero())
}
