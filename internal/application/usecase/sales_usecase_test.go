package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func newSalesUC(t *testing.T) (*usecase.SalesUseCase, *testutil.Store) {
	s := testutil.NewStore()
	return usecase.NewSalesUseCase(s.Sales(), "Casa Centro", fixedClock(t)), s
}

func sale(externalID, orderType, status, amount, openedAt string) dto.SaleInput {
	return dto.SaleInput{
		ExternalID: dto.FlexString(externalID),
		OrderType:  orderType,
		Status:     status,
		Amount:     decimal.RequireFromString(amount),
		ItemsCount: 1,
		OpenedAt:   openedAt,
	}
}

func TestSalesSync_DerivaCamposYDefaults(t *testing.T) {
	uc, _ := newSalesUC(t)
	dur := dto.FlexString("1h 2m 3s")
	in := sale("1001", "Mesas/Comandas 7", "Fiado", "88.90", "2024-03-14T20:15:00-03:00")
	in.Duration = &dur

	out, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{in, {ExternalID: "1002", OpenedAt: "2024-03-14"}}})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "2 registro(s) sincronizado(s)", out.Message)

	mesa := out.Orders[0]
	require.NotNil(t, mesa.TableNumber)
	assert.Equal(t, 7, *mesa.TableNumber)
	assert.Equal(t, entity.SalePaymentPending, mesa.PaymentStatus)
	require.NotNil(t, mesa.Duration)
	assert.Equal(t, 3723, *mesa.Duration)
	assert.Equal(t, "Casa Centro", mesa.Unit)

	vacio := out.Orders[1]
	assert.Equal(t, "Desconhecido", vacio.Origin)
	assert.Equal(t, "Outros", vacio.OrderType)
	assert.Equal(t, "Desconhecido", vacio.Status)
	assert.Equal(t, entity.SalePaymentPaid, vacio.PaymentStatus)
	assert.Nil(t, vacio.Duration)
}

func TestSalesSync_UpsertPorExternalID(t *testing.T) {
	uc, _ := newSalesUC(t)
	first, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{
		sale("X1", "Balcão", "Aberto", "10", "2024-03-14"),
	}})
	require.NoError(t, err)

	second, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{
		sale("X1", "Balcão", "Cancelado", "12", "2024-03-14"),
	}})
	require.NoError(t, err)
	assert.Equal(t, first.Orders[0].ID, second.Orders[0].ID, "mismo externalId, mismo pedido")
	assert.Equal(t, entity.SalePaymentCancelled, second.Orders[0].PaymentStatus)

	list, err := uc.List(context.Background(), dto.SalesQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assertDec(t, "12", list[0].Amount)
	assert.True(t, list[0].IsCounter)
}

func TestSalesSync_LoteInvalidoNoGuardaNada(t *testing.T) {
	uc, s := newSalesUC(t)
	bad := sale("B2", "", "", "5", "ayer")
	dur := dto.FlexString("pronto")
	bad.Duration = &dur

	_, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{
		sale("B1", "", "", "5", "2024-03-14"), bad,
	}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "orders[1].openedAt")
	assert.Contains(t, verr.Fields, "orders[1].duration")

	list, err := s.Sales().List(context.Background(), repository.SalesFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSalesSync_ErrorDelRepositorio(t *testing.T) {
	uc, s := newSalesUC(t)
	s.FailSales = true
	_, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{sale("E1", "", "", "1", "2024-03-14")}})
	require.ErrorIs(t, err, testutil.ErrStoreDown)
}

func TestSalesList_Filtros(t *testing.T) {
	uc, _ := newSalesUC(t)
	_, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{
		sale("1", "Balcão", "Fechado", "10", "2024-03-01T12:00:00-03:00"),
		sale("2", "Mesas/Comandas 2", "Fechado", "20", "2024-03-10T12:00:00-03:00"),
		sale("3", "Delivery", "Fiado", "30", "2024-03-12T23:30:00-03:00"),
		sale("4", "Mesas/Comandas 4", "Fechado", "40", "2024-02-28T12:00:00-03:00"),
	}})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), dto.SalesQuery{Month: "2024-03"})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "3", list[0].ExternalID, "orden por apertura descendente")

	list, err = uc.List(context.Background(), dto.SalesQuery{StartDate: "2024-03-10", EndDate: "2024-03-12", Month: "2024-02"})
	require.NoError(t, err)
	assert.Len(t, list, 2, "el rango tiene prioridad y endDate incluye el día completo")

	list, err = uc.List(context.Background(), dto.SalesQuery{OrderType: entity.OrderTypeTable})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List(context.Background(), dto.SalesQuery{Status: "Fiado", OrderType: "all"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDelivery)

	list, err = uc.List(context.Background(), dto.SalesQuery{Status: "all", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.List(context.Background(), dto.SalesQuery{StartDate: "2024-03-10"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "endDate")
}

func TestSalesStats_MesActualYComparacion(t *testing.T) {
	uc, _ := newSalesUC(t)
	_, err := uc.Sync(context.Background(), dto.SyncSalesRequest{Orders: []dto.SaleInput{
		sale("1", "Mesas/Comandas 5", "Fechado", "100", "2024-03-02T20:00:00-03:00"),
		sale("2", "Balcão", "Fiado", "50", "2024-03-09T13:00:00-03:00"),
		sale("3", "Mesas/Comandas 1", "Fechado", "100", "2024-02-10T20:00:00-03:00"),
	}})
	require.NoError(t, err)

	out, err := uc.Stats(context.Background(), dto.SalesStatsQuery{Compare: true})
	require.NoError(t, err)
	loc := saoPaulo(t)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), out.Period.StartDate, "sin month usa el mes del reloj")
	assert.Equal(t, 31, out.Period.DaysInMonth)
	assert.Equal(t, 15, out.Period.CurrentDay)
	assert.Equal(t, 2, out.Summary.TotalOrders)
	assertDec(t, "150", out.Summary.TotalAmount)
	assertDec(t, "10", out.Summary.DailyAvg)
	assertDec(t, "310", out.Summary.MonthProjection)
	assert.Equal(t, 1, out.Payment.PendingOrders)
	assertDec(t, "50", out.Payment.PaidPercentage)
	assert.Equal(t, 1, out.OrderTypes.Counter.Count)
	assert.Len(t, out.Distribution.ByWeekday.Labels, 7)
	assert.Len(t, out.Distribution.ByHour.Orders, 24)
	assert.Equal(t, 1, out.Distribution.ByHour.Orders[20])
	require.Len(t, out.TopTables, 1)
	assert.Equal(t, 5, out.TopTables[0].Table)

	require.NotNil(t, out.Comparison)
	assert.Equal(t, 1, out.Comparison.TotalOrders)
	assertDec(t, "50", out.Comparison.AmountChange)
	assertDec(t, "100", out.Comparison.OrdersChange)

	feb, err := uc.Stats(context.Background(), dto.SalesStatsQuery{Month: "2024-02"})
	require.NoError(t, err)
	assert.Nil(t, feb.Comparison)
	assert.Equal(t, 29, feb.Period.CurrentDay)
}
