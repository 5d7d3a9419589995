package testutil

import (
	"context"
	"sort"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ReportRepo fake de repository.ReportRepository calculado sobre el Store.
type ReportRepo struct{ s *Store }

var _ repository.ReportRepository = (*ReportRepo)(nil)

func (s *Store) Reports() *ReportRepo { return &ReportRepo{s} }

func (r *ReportRepo) ExpenseTotal(_ context.Context, p ledger.Period) (repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := repository.Total{Sum: decimal.Zero}
	for _, e := range r.s.expenses {
		if p.Contains(e.Date) {
			t.Sum = t.Sum.Add(e.Amount)
			t.Count++
		}
	}
	return t, nil
}

func (r *ReportRepo) RevenueTotal(_ context.Context, p ledger.Period) (repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := repository.Total{Sum: decimal.Zero}
	for _, e := range r.s.revenues {
		if p.Contains(e.Date) {
			t.Sum = t.Sum.Add(e.Amount)
			t.Count++
		}
	}
	return t, nil
}

func (r *ReportRepo) PayrollTotal(_ context.Context, month string) (repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := repository.Total{Sum: decimal.Zero}
	for _, e := range r.s.payroll {
		if e.Month == month {
			t.Sum = t.Sum.Add(e.NetSalary)
			t.Count++
		}
	}
	return t, nil
}

func (r *ReportRepo) PaidAdvancesTotal(_ context.Context, p ledger.Period) (repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t := repository.Total{Sum: decimal.Zero}
	for _, a := range r.s.advances {
		if paidIn(a, p) {
			t.Sum = t.Sum.Add(a.Amount)
			t.Count++
		}
	}
	return t, nil
}

func (r *ReportRepo) ExpensesByCategory(_ context.Context, p ledger.Period) ([]repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g := map[string]*repository.Total{}
	for _, e := range r.s.expenses {
		if p.Contains(e.Date) {
			add(g, e.Category, e.Amount)
		}
	}
	return sorted(g), nil
}

func (r *ReportRepo) RevenuesBySource(_ context.Context, p ledger.Period) ([]repository.Total, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g := map[string]*repository.Total{}
	for _, e := range r.s.revenues {
		if p.Contains(e.Date) {
			add(g, e.Source, e.Amount)
		}
	}
	return sorted(g), nil
}

func (r *ReportRepo) EmployeesMonth(_ context.Context, p ledger.Period, month string) ([]repository.EmployeeMonthRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var rows []repository.EmployeeMonthRow
	for _, e := range r.s.employees {
		if !e.Active {
			continue
		}
		row := repository.EmployeeMonthRow{ID: e.ID, Name: e.Name, Role: e.Role, Salary: e.Salary, Advances: decimal.Zero}
		for _, a := range r.s.advances {
			if a.EmployeeID == e.ID && paidIn(a, p) {
				row.Advances = row.Advances.Add(a.Amount)
				row.AdvancesCount++
			}
		}
		for _, pe := range r.s.payroll {
			if pe.EmployeeID == e.ID && pe.Month == month {
				net, paid := pe.NetSalary, pe.Paid
				row.NetSalary, row.Paid = &net, &paid
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func paidIn(a entity.Advance, p ledger.Period) bool {
	return a.Status == entity.AdvanceStatusPaid && a.PaymentDate != nil && p.Contains(*a.PaymentDate)
}

func add(g map[string]*repository.Total, key string, v decimal.Decimal) {
	t, ok := g[key]
	if !ok {
		t = &repository.Total{Key: key, Sum: decimal.Zero}
		g[key] = t
	}
	t.Sum = t.Sum.Add(v)
	t.Count++
}

// sorted ordena por suma descendente, como el GROUP BY ... ORDER BY de Postgres.
func sorted(g map[string]*repository.Total) []repository.Total {
	out := make([]repository.Total, 0, len(g))
	for _, t := range g {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Sum.Cmp(out[j].Sum); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out
}
