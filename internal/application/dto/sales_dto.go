package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SalesQuery filtros de GET /sales. startDate y endDate van juntos y tienen prioridad sobre month.
type SalesQuery struct {
	Month     string `query:"month" validate:"omitempty,yearmonth"`
	StartDate string `query:"startDate" validate:"omitempty,isodate"`
	EndDate   string `query:"endDate" validate:"omitempty,isodate"`
	Status    string `query:"status" validate:"omitempty,max=100"`
	OrderType string `query:"orderType" validate:"omitempty,oneof=all COUNTER TABLE DELIVERY"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// SalesStatsQuery filtros de GET /sales/stats; sin month se usa el mes en curso.
type SalesStatsQuery struct {
	Month   string `query:"month" validate:"omitempty,yearmonth"`
	Compare bool   `query:"compare"`
}

// FlexString acepta un string o un número JSON ("123" y 123 valen lo mismo).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// SaleInput un pedido tal como lo envía el sincronizador del PDV.
type SaleInput struct {
	ExternalID    FlexString      `json:"externalId" validate:"required,max=100"`
	Origin        string          `json:"origin" validate:"omitempty,max=100"`
	OrderType     string          `json:"orderType" validate:"omitempty,max=100"`
	ItemsCount    int             `json:"itemsCount" validate:"gte=0"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	Status        string          `json:"status" validate:"omitempty,max=100"`
	OpenedAt      string          `json:"openedAt" validate:"required,isodate"`
	ClosedAt      *string         `json:"closedAt" validate:"omitempty,isodate"`
	Duration      *FlexString     `json:"duration" validate:"omitempty,max=50"`
	Unit          string          `json:"unit" validate:"omitempty,max=100"`
	PaymentMethod *string         `json:"paymentMethod" validate:"omitempty,max=100"`
}

// SyncSalesRequest entrada de POST /sales: un pedido suelto o un arreglo de pedidos.
type SyncSalesRequest struct {
	Orders []SaleInput `json:"orders" validate:"required,min=1,max=500,dive"`
}

func (r *SyncSalesRequest) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &r.Orders)
	}
	var one SaleInput
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	r.Orders = []SaleInput{one}
	return nil
}

// SalesOrderResponse salida de un pedido.
type SalesOrderResponse struct {
	ID            string          `json:"id"`
	ExternalID    string          `json:"externalId"`
	Origin        string          `json:"origin"`
	OrderType     string          `json:"orderType"`
	ItemsCount    int             `json:"itemsCount"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	OpenedAt      time.Time       `json:"openedAt"`
	ClosedAt      *time.Time      `json:"closedAt"`
	Duration      *int            `json:"duration"`
	Unit          string          `json:"unit"`
	TableNumber   *int            `json:"tableNumber"`
	IsCounter     bool            `json:"isCounter"`
	IsDelivery    bool            `json:"isDelivery"`
	PaymentMethod *string         `json:"paymentMethod"`
	SyncedAt      time.Time       `json:"syncedAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SyncSalesResponse salida de POST /sales.
type SyncSalesResponse struct {
	Message string               `json:"message"`
	Count   int                  `json:"count"`
	Orders  []SalesOrderResponse `json:"orders"`
}

// SyncMessage "N registro(s) sincronizado(s)".
func SyncMessage(n int) string {
	return strconv.Itoa(n) + " registro(s) sincronizado(s)"
}

// SalesBucket cantidad y monto de un grupo de pedidos.
type SalesBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesShare grupo de pedidos con su porcentaje sobre el total.
type SalesShare struct {
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SalesSeries serie con etiquetas, pedidos y montos alineados por índice.
type SalesSeries struct {
	Labels  []string          `json:"labels"`
	Orders  []int             `json:"orders"`
	Amounts []decimal.Decimal `json:"amounts"`
}

// SalesTable acumulado de una mesa.
type SalesTable struct {
	Table  int             `json:"table"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// SalesStatsResponse salida de GET /sales/stats.
type SalesStatsResponse struct {
	Period struct {
		StartDate   time.Time `json:"startDate"`
		EndDate     time.Time `json:"endDate"`
		DaysInMonth int       `json:"daysInMonth"`
		CurrentDay  int       `json:"currentDay"`
	} `json:"period"`
	Summary struct {
		TotalOrders      int             `json:"totalOrders"`
		TotalAmount      decimal.Decimal `json:"totalAmount"`
		TotalItems       int             `json:"totalItems"`
		AvgOrderValue    decimal.Decimal `json:"avgOrderValue"`
		AvgItemsPerOrder decimal.Decimal `json:"avgItemsPerOrder"`
		DailyAvg         decimal.Decimal `json:"dailyAvg"`
		MonthProjection  decimal.Decimal `json:"monthProjection"`
	} `json:"summary"`
	Payment struct {
		PaidOrders     int             `json:"paidOrders"`
		PaidAmount     decimal.Decimal `json:"paidAmount"`
		PendingOrders  int             `json:"pendingOrders"`
		PendingAmount  decimal.Decimal `json:"pendingAmount"`
		PaidPercentage decimal.Decimal `json:"paidPercentage"`
	} `json:"payment"`
	OrderTypes struct {
		Counter  SalesShare `json:"counter"`
		Table    SalesShare `json:"table"`
		Delivery SalesShare `json:"delivery"`
	} `json:"orderTypes"`
	Timing struct {
		AvgDuration          float64 `json:"avgDuration"`
		AvgDurationFormatted string  `json:"avgDurationFormatted"`
	} `json:"timing"`
	Distribution struct {
		ByWeekday SalesSeries            `json:"byWeekday"`
		ByHour    SalesSeries            `json:"byHour"`
		ByDay     map[string]SalesBucket `json:"byDay"`
	} `json:"distribution"`
	TopTables  []SalesTable      `json:"topTables"`
	Comparison *SalesComparison `json:"comparison"`
}

// SalesComparison variación contra el mes anterior; los cambios van en porcentaje.
type SalesComparison struct {
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalOrders   int             `json:"totalOrders"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	AmountChange  decimal.Decimal `json:"amountChange"`
	OrdersChange  decimal.Decimal `json:"ordersChange"`
}
