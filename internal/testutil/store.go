// Package testutil repositorios en memoria para tests de casos de uso y handlers HTTP.
package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// Store base de datos en memoria compartida por todos los repos fake.
type Store struct {
	mu           sync.RWMutex
	employees    map[string]entity.Employee
	advances     map[string]entity.Advance
	payroll      map[string]entity.PayrollEntry
	expenses     map[string]entity.Expense
	revenues     map[string]entity.Revenue
	categories   map[string]entity.MenuCategory
	items        map[string]entity.MenuItem
	users        map[string]entity.User
	attempts     []entity.LoginAttempt
	audit        []entity.AuditLog
	timeEntries  map[string]entity.TimeEntry
	shiftConfigs map[string]entity.ShiftConfig
	periods      map[string]entity.PayrollPeriod
	sales        map[string]entity.SalesOrder // por ExternalID

	// FailAudit hace fallar Append; simula una bitácora caída.
	FailAudit bool
	// FailSales hace fallar el upsert de pedidos.
	FailSales bool
}

// ErrStoreDown error de infraestructura simulado.
var ErrStoreDown = errors.New("store: no disponible")

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		employees:    map[string]entity.Employee{},
		advances:     map[string]entity.Advance{},
		payroll:      map[string]entity.PayrollEntry{},
		expenses:     map[string]entity.Expense{},
		revenues:     map[string]entity.Revenue{},
		categories:   map[string]entity.MenuCategory{},
		items:        map[string]entity.MenuItem{},
		users:        map[string]entity.User{},
		timeEntries:  map[string]entity.TimeEntry{},
		shiftConfigs: map[string]entity.ShiftConfig{},
		periods:      map[string]entity.PayrollPeriod{},
		sales:        map[string]entity.SalesOrder{},
	}
}

// AuditLogs copia de la bitácora, en orden de inserción.
func (s *Store) AuditLogs() []entity.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.AuditLog(nil), s.audit...)
}

// LoginAttempts copia de los intentos registrados.
func (s *Store) LoginAttempts() []entity.LoginAttempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.LoginAttempt(nil), s.attempts...)
}

func (s *Store) employeeRef(id string) *entity.EmployeeRef {
	e, ok := s.employees[id]
	if !ok {
		return nil
	}
	return &entity.EmployeeRef{ID: e.ID, Name: e.Name, Role: e.Role}
}

func inPeriod(p *ledger.Period, t time.Time) bool {
	return p == nil || p.Contains(t)
}

// ── Employees ────────────────────────────────────────────────────────────────

// EmployeeRepo fake de repository.EmployeeRepository.
type EmployeeRepo struct{ s *Store }

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

func (s *Store) Employees() *EmployeeRepo { return &EmployeeRepo{s} }

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.employees[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EmployeeRepo) List(_ context.Context, f repository.EmployeeFilter) ([]repository.EmployeeListItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []repository.EmployeeListItem
	for _, e := range r.s.employees {
		if f.ActiveOnly && !e.Active {
			continue
		}
		n := 0
		for _, a := range r.s.advances {
			if a.EmployeeID == e.ID {
				n++
			}
		}
		e := e
		out = append(out, repository.EmployeeListItem{Employee: &e, AdvancesCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Employee.Name < out[j].Employee.Name })
	return out, nil
}

func (r *EmployeeRepo) Counts(_ context.Context, id string) (repository.EmployeeCounts, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var c repository.EmployeeCounts
	for _, a := range r.s.advances {
		if a.EmployeeID == id {
			c.Advances++
		}
	}
	for _, t := range r.s.timeEntries {
		if t.EmployeeID == id {
			c.TimeEntries++
		}
	}
	return c, nil
}

func (r *EmployeeRepo) CountActive(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, e := range r.s.employees {
		if e.Active {
			n++
		}
	}
	return n, nil
}

func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.employees[e.ID] = *e
	return nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.employees, id)
	for k, a := range r.s.advances {
		if a.EmployeeID == id {
			delete(r.s.advances, k)
		}
	}
	for k, p := range r.s.payroll {
		if p.EmployeeID == id {
			delete(r.s.payroll, k)
		}
	}
	for k, t := range r.s.timeEntries {
		if t.EmployeeID == id {
			delete(r.s.timeEntries, k)
		}
	}
	return nil
}

// ── Advances ─────────────────────────────────────────────────────────────────

// AdvanceRepo fake de repository.AdvanceRepository.
type AdvanceRepo struct{ s *Store }

var _ repository.AdvanceRepository = (*AdvanceRepo)(nil)

func (s *Store) Advances() *AdvanceRepo { return &AdvanceRepo{s} }

func (r *AdvanceRepo) Create(_ context.Context, a *entity.Advance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[a.EmployeeID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	c := *a
	c.Employee = nil
	r.s.advances[a.ID] = c
	return nil
}

func (r *AdvanceRepo) GetByID(_ context.Context, id string) (*entity.Advance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.advances[id]
	if !ok {
		return nil, nil
	}
	a.Employee = r.s.employeeRef(a.EmployeeID)
	return &a, nil
}

func (r *AdvanceRepo) List(_ context.Context, f repository.AdvanceFilter) ([]*entity.Advance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Advance
	for _, a := range r.s.advances {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.EmployeeID != "" && a.EmployeeID != f.EmployeeID {
			continue
		}
		a := a
		a.Employee = r.s.employeeRef(a.EmployeeID)
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestDate.After(out[j].RequestDate) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *AdvanceRepo) ListPaidBetween(_ context.Context, from, to time.Time) ([]*entity.Advance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Advance
	for _, a := range r.s.advances {
		if a.Status != entity.AdvanceStatusPaid || a.PaymentDate == nil {
			continue
		}
		if a.PaymentDate.Before(from) || a.PaymentDate.After(to) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	return out, nil
}

func (r *AdvanceRepo) Update(_ context.Context, a *entity.Advance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.advances[a.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *a
	c.Employee = nil
	r.s.advances[a.ID] = c
	return nil
}

func (r *AdvanceRepo) MarkDiscounted(_ context.Context, ids []string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		a, ok := r.s.advances[id]
		if !ok || a.Status != entity.AdvanceStatusPaid {
			continue
		}
		a.Status = entity.AdvanceStatusDiscounted
		a.UpdatedAt = at
		r.s.advances[id] = a
	}
	return nil
}

func (r *AdvanceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.advances[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.advances, id)
	return nil
}

// ── Payroll ──────────────────────────────────────────────────────────────────

// PayrollRepo fake de repository.PayrollRepository.
type PayrollRepo struct{ s *Store }

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

func (s *Store) Payroll() *PayrollRepo { return &PayrollRepo{s} }

// Put inserta una entrada tal cual; solo para preparar tests.
func (r *PayrollRepo) Put(e entity.PayrollEntry) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payroll[e.ID] = e
}

func (r *PayrollRepo) GetByID(_ context.Context, id string) (*entity.PayrollEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.payroll[id]
	if !ok {
		return nil, nil
	}
	e.Employee = r.s.employeeRef(e.EmployeeID)
	return &e, nil
}

func (r *PayrollRepo) GetByEmployeeMonth(_ context.Context, employeeID, month string) (*entity.PayrollEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.payroll {
		if e.EmployeeID == employeeID && e.Month == month {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *PayrollRepo) List(_ context.Context, month string) ([]*entity.PayrollEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.PayrollEntry
	for _, e := range r.s.payroll {
		if month != "" && e.Month != month {
			continue
		}
		e := e
		e.Employee = r.s.employeeRef(e.EmployeeID)
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *PayrollRepo) Upsert(_ context.Context, e *entity.PayrollEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, cur := range r.s.payroll {
		if cur.EmployeeID == e.EmployeeID && cur.Month == e.Month {
			e.ID = id
			e.CreatedAt = cur.CreatedAt
			break
		}
	}
	c := *e
	c.Employee = nil
	r.s.payroll[e.ID] = c
	return nil
}

func (r *PayrollRepo) Update(_ context.Context, e *entity.PayrollEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payroll[e.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *e
	c.Employee = nil
	r.s.payroll[e.ID] = c
	return nil
}

// TxRunner fake de repository.TxRunner; corre fn sobre el mismo Store sin aislamiento.
type TxRunner struct{ s *Store }

var _ repository.TxRunner = (*TxRunner)(nil)

func (s *Store) Tx() *TxRunner { return &TxRunner{s} }

func (t *TxRunner) RunPayroll(_ context.Context, fn func(tx repository.PayrollTx) error) error {
	return fn(repository.PayrollTx{
		Employees: t.s.Employees(),
		Advances:  t.s.Advances(),
		Payroll:   t.s.Payroll(),
	})
}

func (t *TxRunner) RunPayrollPeriod(_ context.Context, fn func(tx repository.PayrollPeriodTx) error) error {
	return fn(repository.PayrollPeriodTx{
		Employees:   t.s.Employees(),
		Advances:    t.s.Advances(),
		TimeEntries: t.s.TimeEntries(),
		Periods:     t.s.PayrollPeriods(),
	})
}

// PayrollPeriodRepo fake de repository.PayrollPeriodRepository.
type PayrollPeriodRepo struct{ s *Store }

var _ repository.PayrollPeriodRepository = (*PayrollPeriodRepo)(nil)

func (s *Store) PayrollPeriods() *PayrollPeriodRepo { return &PayrollPeriodRepo{s} }

func (r *PayrollPeriodRepo) Create(_ context.Context, p *entity.PayrollPeriod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *p
	c.Payments = append([]entity.PeriodPayment(nil), p.Payments...)
	r.s.periods[p.ID] = c
	return nil
}

func (r *PayrollPeriodRepo) GetByID(_ context.Context, id string) (*entity.PayrollPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.periods[id]
	if !ok {
		return nil, nil
	}
	p.Payments = append([]entity.PeriodPayment(nil), p.Payments...)
	return &p, nil
}

func (r *PayrollPeriodRepo) List(_ context.Context) ([]*entity.PayrollPeriod, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.PayrollPeriod
	for _, p := range r.s.periods {
		p := p
		p.Payments = append([]entity.PeriodPayment(nil), p.Payments...)
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// ── Expenses / Revenues ──────────────────────────────────────────────────────

// ExpenseRepo fake de repository.ExpenseRepository.
type ExpenseRepo struct{ s *Store }

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

func (s *Store) Expenses() *ExpenseRepo { return &ExpenseRepo{s} }

func (r *ExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.expenses[e.ID] = *e
	return nil
}

func (r *ExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.expenses[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *ExpenseRepo) List(_ context.Context, p *ledger.Period) ([]*entity.Expense, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Expense
	for _, e := range r.s.expenses {
		if !inPeriod(p, e.Date) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *ExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.expenses[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.expenses[e.ID] = *e
	return nil
}

func (r *ExpenseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.expenses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.expenses, id)
	return nil
}

// RevenueRepo fake de repository.RevenueRepository.
type RevenueRepo struct{ s *Store }

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

func (s *Store) Revenues() *RevenueRepo { return &RevenueRepo{s} }

func (r *RevenueRepo) Create(_ context.Context, e *entity.Revenue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.revenues[e.ID] = *e
	return nil
}

func (r *RevenueRepo) GetByID(_ context.Context, id string) (*entity.Revenue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.revenues[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *RevenueRepo) List(_ context.Context, p *ledger.Period) ([]*entity.Revenue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Revenue
	for _, e := range r.s.revenues {
		if !inPeriod(p, e.Date) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *RevenueRepo) Update(_ context.Context, e *entity.Revenue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.revenues[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.revenues[e.ID] = *e
	return nil
}

func (r *RevenueRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.revenues[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.revenues, id)
	return nil
}

// ── Menu ─────────────────────────────────────────────────────────────────────

// MenuCategoryRepo fake de repository.MenuCategoryRepository.
type MenuCategoryRepo struct{ s *Store }

var _ repository.MenuCategoryRepository = (*MenuCategoryRepo)(nil)

func (s *Store) MenuCategories() *MenuCategoryRepo { return &MenuCategoryRepo{s} }

func (r *MenuCategoryRepo) Create(_ context.Context, c *entity.MenuCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.categories {
		if cur.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *MenuCategoryRepo) GetByID(_ context.Context, id string) (*entity.MenuCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MenuCategoryRepo) List(_ context.Context, activeOnly bool) ([]*entity.MenuCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.MenuCategory
	for _, c := range r.s.categories {
		if activeOnly && !c.Active {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MenuCategoryRepo) Update(_ context.Context, c *entity.MenuCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, cur := range r.s.categories {
		if id != c.ID && cur.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *MenuCategoryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.categories, id)
	for k, it := range r.s.items {
		if it.CategoryID == id {
			delete(r.s.items, k)
		}
	}
	return nil
}

func (r *MenuCategoryRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.categories), nil
}

// MenuItemRepo fake de repository.MenuItemRepository.
type MenuItemRepo struct{ s *Store }

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

func (s *Store) MenuItems() *MenuItemRepo { return &MenuItemRepo{s} }

func (r *MenuItemRepo) Create(_ context.Context, i *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[i.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.s.items[i.ID] = *i
	return nil
}

func (r *MenuItemRepo) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *MenuItemRepo) List(_ context.Context, categoryID string, activeOnly bool) ([]*entity.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.MenuItem
	for _, i := range r.s.items {
		if categoryID != "" && i.CategoryID != categoryID {
			continue
		}
		if activeOnly && !i.Active {
			continue
		}
		i := i
		out = append(out, &i)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Order != out[b].Order {
			return out[a].Order < out[b].Order
		}
		return out[a].Name < out[b].Name
	})
	return out, nil
}

func (r *MenuItemRepo) Update(_ context.Context, i *entity.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[i.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.items[i.ID] = *i
	return nil
}

func (r *MenuItemRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

func (r *MenuItemRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo fake de repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (s *Store) Users() *UserRepo { return &UserRepo{s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.users {
		if cur.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, cur := range r.s.users {
		if id != u.ID && cur.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

// ── Security ─────────────────────────────────────────────────────────────────

// LoginAttemptRepo fake de repository.LoginAttemptRepository.
type LoginAttemptRepo struct{ s *Store }

var _ repository.LoginAttemptRepository = (*LoginAttemptRepo)(nil)

func (s *Store) LoginAttemptRepo() *LoginAttemptRepo { return &LoginAttemptRepo{s} }

func (r *LoginAttemptRepo) Record(_ context.Context, a *entity.LoginAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.attempts = append(r.s.attempts, *a)
	return nil
}

func (r *LoginAttemptRepo) CountFailedSince(_ context.Context, email, ip string, since time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, a := range r.s.attempts {
		if a.Success || a.CreatedAt.Before(since) {
			continue
		}
		if a.Email == email || a.IPAddress == ip {
			n++
		}
	}
	return n, nil
}

func (r *LoginAttemptRepo) DeleteBefore(_ context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.attempts[:0]
	var removed int64
	for _, a := range r.s.attempts {
		if a.CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.s.attempts = kept
	return removed, nil
}

func (r *LoginAttemptRepo) List(_ context.Context, f repository.LoginAttemptFilter) ([]*entity.LoginAttempt, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.LoginAttempt
	for i := len(r.s.attempts) - 1; i >= 0; i-- {
		a := r.s.attempts[i]
		if f.Email != "" && !strings.Contains(strings.ToLower(a.Email), strings.ToLower(f.Email)) {
			continue
		}
		if f.IPAddress != "" && a.IPAddress != f.IPAddress {
			continue
		}
		if f.Success != nil && a.Success != *f.Success {
			continue
		}
		all = append(all, &a)
	}
	return paginate(all, f.Page), len(all), nil
}

func (r *LoginAttemptRepo) StatsSince(_ context.Context, since time.Time) (repository.LoginStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var st repository.LoginStats
	for _, a := range r.s.attempts {
		if a.CreatedAt.Before(since) {
			continue
		}
		if a.Success {
			st.Successful++
		} else {
			st.Failed++
		}
	}
	return st, nil
}

// AuditLogRepo fake de repository.AuditLogRepository.
type AuditLogRepo struct{ s *Store }

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

func (s *Store) AuditLogRepo() *AuditLogRepo { return &AuditLogRepo{s} }

func (r *AuditLogRepo) Append(_ context.Context, l *entity.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailAudit {
		return ErrStoreDown
	}
	r.s.audit = append(r.s.audit, *l)
	return nil
}

func (r *AuditLogRepo) List(_ context.Context, f repository.AuditLogFilter) ([]*entity.AuditLog, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.AuditLog
	for i := len(r.s.audit) - 1; i >= 0; i-- {
		l := r.s.audit[i]
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.UserID != "" && (l.UserID == nil || *l.UserID != f.UserID) {
			continue
		}
		if f.From != nil && l.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && l.CreatedAt.After(*f.To) {
			continue
		}
		all = append(all, &l)
	}
	return paginate(all, f.Page), len(all), nil
}

func paginate[T any](all []T, p repository.Page) []T {
	if p.Limit <= 0 {
		return all
	}
	start := p.Offset()
	if start >= len(all) {
		return []T{}
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

// ── Time entries / shift config ──────────────────────────────────────────────

// TimeEntryRepo fake de repository.TimeEntryRepository.
type TimeEntryRepo struct{ s *Store }

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

func (s *Store) TimeEntries() *TimeEntryRepo { return &TimeEntryRepo{s} }

func (r *TimeEntryRepo) Create(_ context.Context, e *entity.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *e
	c.Employee = nil
	r.s.timeEntries[e.ID] = c
	return nil
}

func (r *TimeEntryRepo) GetByID(_ context.Context, id string) (*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.timeEntries[id]
	if !ok {
		return nil, nil
	}
	e.Employee = r.s.employeeRef(e.EmployeeID)
	return &e, nil
}

func (r *TimeEntryRepo) List(_ context.Context, f repository.TimeEntryFilter) ([]*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.TimeEntry
	for _, e := range r.s.timeEntries {
		if f.EmployeeID != "" && e.EmployeeID != f.EmployeeID {
			continue
		}
		if !inPeriod(f.Period, e.Date) {
			continue
		}
		e := e
		e.Employee = r.s.employeeRef(e.EmployeeID)
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *TimeEntryRepo) FindForDay(_ context.Context, employeeID string, day ledger.Period, excludeID string) (*entity.TimeEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, e := range r.s.timeEntries {
		if e.EmployeeID == employeeID && e.ID != excludeID && day.Contains(e.Date) {
			return &e, nil
		}
	}
	return nil, nil
}

func (r *TimeEntryRepo) Update(_ context.Context, e *entity.TimeEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.timeEntries[e.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *e
	c.Employee = nil
	r.s.timeEntries[e.ID] = c
	return nil
}

func (r *TimeEntryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.timeEntries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.timeEntries, id)
	return nil
}

// ShiftConfigRepo fake de repository.ShiftConfigRepository.
type ShiftConfigRepo struct{ s *Store }

var _ repository.ShiftConfigRepository = (*ShiftConfigRepo)(nil)

func (s *Store) ShiftConfigs() *ShiftConfigRepo { return &ShiftConfigRepo{s} }

func (r *ShiftConfigRepo) List(_ context.Context) ([]*entity.ShiftConfig, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ShiftConfig
	for _, c := range r.s.shiftConfigs {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ShiftConfigRepo) UpdateValue(_ context.Context, name string, value decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.shiftConfigs[name]
	if !ok {
		return domain.ErrNotFound
	}
	c.Value = value
	r.s.shiftConfigs[name] = c
	return nil
}

func (r *ShiftConfigRepo) Ensure(_ context.Context, c *entity.ShiftConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shiftConfigs[c.Name]; !ok {
		r.s.shiftConfigs[c.Name] = *c
	}
	return nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

// SalesRepo fake de repository.SalesRepository.
type SalesRepo struct{ s *Store }

var _ repository.SalesRepository = (*SalesRepo)(nil)

func (s *Store) Sales() *SalesRepo { return &SalesRepo{s} }

func (r *SalesRepo) Upsert(_ context.Context, orders []*entity.SalesOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailSales {
		return ErrStoreDown
	}
	for _, o := range orders {
		if cur, ok := r.s.sales[o.ExternalID]; ok {
			o.ID = cur.ID
			o.CreatedAt = cur.CreatedAt
		}
		r.s.sales[o.ExternalID] = *o
	}
	return nil
}

func (r *SalesRepo) List(_ context.Context, f repository.SalesFilter) ([]*entity.SalesOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.SalesOrder
	for _, o := range r.s.sales {
		if !inPeriod(f.Period, o.OpenedAt) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if !sales.MatchesOrderType(&o, f.OrderType) {
			continue
		}
		o := o
		out = append(out, &o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
