package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// PeriodResult pagos calculados para un período y los vales que quedan descontados.
type PeriodResult struct {
	Payments   []entity.PeriodPayment
	Total      decimal.Decimal
	AdvanceIDs []string
}

// ClosePeriod liquida a cada funcionario con los registros PRESENT del período:
// bruto = almuerzos + cenas, neto = max(0, bruto − vales PAID). Los funcionarios
// sin bruto ni vales quedan fuera; sus vales siguen pendientes de descuento.
// Los montos se redondean a centavos y el orden de employees se respeta.
func ClosePeriod(employees []*entity.Employee, entries []*entity.TimeEntry, advances []*entity.Advance) PeriodResult {
	byEmployee := make(map[string][]*entity.TimeEntry)
	for _, e := range entries {
		if e == nil || e.Status != entity.TimeEntryPresent {
			continue
		}
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}
	owed := make(map[string]decimal.Decimal)
	owedIDs := make(map[string][]string)
	for _, a := range advances {
		if a == nil || a.Status != entity.AdvanceStatusPaid {
			continue
		}
		owed[a.EmployeeID] = owed[a.EmployeeID].Add(a.Amount)
		owedIDs[a.EmployeeID] = append(owedIDs[a.EmployeeID], a.ID)
	}

	res := PeriodResult{Total: decimal.Zero}
	for _, emp := range employees {
		p := entity.PeriodPayment{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			LunchTotal:   decimal.Zero,
			DinnerTotal:  decimal.Zero,
		}
		for _, e := range byEmployee[emp.ID] {
			p.DaysWorked++
			if e.WorkedLunch {
				p.LunchShifts++
			}
			if e.WorkedDinner {
				p.DinnerShifts++
			}
			p.LunchTotal = p.LunchTotal.Add(e.LunchValue)
			p.DinnerTotal = p.DinnerTotal.Add(e.DinnerValue)
		}
		p.LunchTotal = p.LunchTotal.Round(2)
		p.DinnerTotal = p.DinnerTotal.Round(2)
		p.GrossAmount = p.LunchTotal.Add(p.DinnerTotal)
		p.Advances = owed[emp.ID].Round(2)
		if !p.GrossAmount.IsPositive() && !p.Advances.IsPositive() {
			continue
		}
		p.NetAmount = decimal.Max(decimal.Zero, p.GrossAmount.Sub(p.Advances))

		res.Payments = append(res.Payments, p)
		res.Total = res.Total.Add(p.NetAmount)
		res.AdvanceIDs = append(res.AdvanceIDs, owedIDs[emp.ID]...)
	}
	return res
}
