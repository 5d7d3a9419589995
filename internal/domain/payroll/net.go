// Package payroll reglas de la folha de pagamento.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// NetSalary = base − vales + bonificaciones − descuentos.
func NetSalary(base, advances, bonuses, deductions decimal.Decimal) decimal.Decimal {
	return base.Sub(advances).Add(bonuses).Sub(deductions)
}

// Recompute vuelve a calcular NetSalary a partir de los valores guardados en e.
func Recompute(e *entity.PayrollEntry) {
	e.NetSalary = NetSalary(e.BaseSalary, e.Advances, e.Bonuses, e.Deductions)
}

// Adjustment cambios opcionales sobre una entrada; nil significa "mantener el valor guardado".
type Adjustment struct {
	Bonuses     *decimal.Decimal
	Deductions  *decimal.Decimal
	Paid        *bool
	PaymentDate *time.Time
	Notes       *string
}

// Apply mezcla el ajuste sobre e y recalcula el neto. Paid y PaymentDate quedan siempre
// coherentes: pagada ⇒ fecha (la informada, la ya guardada o now); no pagada ⇒ sin fecha.
func Apply(e *entity.PayrollEntry, adj Adjustment, now time.Time) {
	if adj.Bonuses != nil {
		e.Bonuses = *adj.Bonuses
	}
	if adj.Deductions != nil {
		e.Deductions = *adj.Deductions
	}
	if adj.Notes != nil {
		e.Notes = adj.Notes
	}

	paid := e.Paid
	if adj.Paid != nil {
		paid = *adj.Paid
	} else if adj.PaymentDate != nil {
		paid = true
	}
	switch {
	case !paid:
		e.PaymentDate = nil
	case adj.PaymentDate != nil:
		d := *adj.PaymentDate
		e.PaymentDate = &d
	case e.PaymentDate == nil:
		d := now
		e.PaymentDate = &d
	}
	e.Paid = paid

	Recompute(e)
}

// SumPaidAdvances suma los vales PAID cuyo pago cae en [from, to].
func SumPaidAdvances(advances []*entity.Advance, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, a := range advances {
		if a == nil || a.Status != entity.AdvanceStatusPaid || a.PaymentDate == nil {
			continue
		}
		if a.PaymentDate.Before(from) || a.PaymentDate.After(to) {
			continue
		}
		total = total.Add(a.Amount)
	}
	return total
}
