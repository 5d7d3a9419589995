// Package sales reglas de los pedidos sincronizados del PDV y sus estadísticas mensuales.
package sales

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

var (
	reTableSuffix = regexp.MustCompile(`(\d+)$`)
	reHours       = regexp.MustCompile(`(\d+)h`)
	reMinutes     = regexp.MustCompile(`(\d+)m`)
	reSeconds     = regexp.MustCompile(`(\d+)s`)
)

// Kind clasificación de un pedido por su tipo textual.
type Kind struct {
	IsCounter   bool
	IsDelivery  bool
	TableNumber *int
}

// Classify "Balcão" ⇒ mostrador, "Delivery" ⇒ entrega; un número final es la mesa
// ("Mesas/Comandas 3" ⇒ 3).
func Classify(orderType string) Kind {
	lower := strings.ToLower(orderType)
	k := Kind{
		IsCounter:  strings.Contains(lower, "balcão"),
		IsDelivery: strings.Contains(lower, "delivery"),
	}
	if m := reTableSuffix.FindStringSubmatch(strings.TrimSpace(orderType)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			k.TableNumber = &n
		}
	}
	return k
}

// PaymentStatusFor "fiado" o "pendente" ⇒ PENDING, "cancel…" ⇒ CANCELLED, el resto PAID.
func PaymentStatusFor(status string) string {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "fiado"), strings.Contains(lower, "pendente"):
		return entity.SalePaymentPending
	case strings.Contains(lower, "cancel"):
		return entity.SalePaymentCancelled
	default:
		return entity.SalePaymentPaid
	}
}

// ParseDuration acepta segundos ("384", "384.6") o texto "6h 4m 24s". Vacío ⇒ nil, false.
func ParseDuration(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 {
			return nil, false
		}
		n := int(math.Round(f))
		return &n, true
	}
	h, hok := unit(reHours, s)
	m, mok := unit(reMinutes, s)
	sec, sok := unit(reSeconds, s)
	if !hok && !mok && !sok {
		return nil, false
	}
	n := h*3600 + m*60 + sec
	return &n, true
}

func unit(re *regexp.Regexp, s string) (int, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}

// FormatDuration "Xh Ym", o "Ym" por debajo de una hora.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0m"
	}
	total := int(seconds)
	h, m := total/3600, (total%3600)/60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// MatchesOrderType aplica el filtro COUNTER / TABLE / DELIVERY; vacío o "all" no filtra.
func MatchesOrderType(o *entity.SalesOrder, orderType string) bool {
	switch orderType {
	case entity.OrderTypeCounter:
		return o.IsCounter
	case entity.OrderTypeTable:
		return !o.IsCounter && !o.IsDelivery
	case entity.OrderTypeDelivery:
		return o.IsDelivery
	default:
		return true
	}
}
