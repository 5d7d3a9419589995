package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/payroll"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func buildEntry() *entity.PayrollEntry {
	e := &entity.PayrollEntry{
		ID:         "p-1",
		EmployeeID: "e-1",
		Month:      "2024-02",
		BaseSalary: dec("2000.00"),
		Advances:   dec("300.00"),
		Bonuses:    dec("150.00"),
		Deductions: dec("50.00"),
	}
	payroll.Recompute(e)
	return e
}

func TestNetSalary(t *testing.T) {
	got := payroll.NetSalary(dec("2000"), dec("300"), dec("150"), dec("50"))
	assert.True(t, dec("1800").Equal(got), "2000-300+150-50 debe ser 1800, fue %s", got)
}

// El neto se mantiene para cualquier subconjunto de {bonuses, deductions} informado.
func TestApply_InvarianteDelNeto(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	casos := map[string]payroll.Adjustment{
		"nada":       {},
		"solo bonos": {Bonuses: ptr(dec("500"))},
		"solo desc":  {Deductions: ptr(dec("120.55"))},
		"ambos":      {Bonuses: ptr(dec("0")), Deductions: ptr(dec("0"))},
		"con pago":   {Paid: ptr(true)},
		"solo notas": {Notes: ptr("ajuste")},
	}
	for nombre, adj := range casos {
		t.Run(nombre, func(t *testing.T) {
			e := buildEntry()
			e.NetSalary = dec("999999") // valor corrupto que debe ser ignorado
			payroll.Apply(e, adj, now)

			want := e.BaseSalary.Sub(e.Advances).Add(e.Bonuses).Sub(e.Deductions)
			assert.True(t, want.Equal(e.NetSalary), "neto %s, esperado %s", e.NetSalary, want)
		})
	}
}

func TestApply_PagoYFechaJuntos(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	e := buildEntry()
	payroll.Apply(e, payroll.Adjustment{Paid: ptr(true)}, now)
	require.NotNil(t, e.PaymentDate)
	assert.True(t, e.Paid)
	assert.Equal(t, now, *e.PaymentDate)

	later := now.Add(48 * time.Hour)
	payroll.Apply(e, payroll.Adjustment{Bonuses: ptr(dec("1"))}, later)
	assert.Equal(t, now, *e.PaymentDate, "una entrada ya pagada conserva su fecha")

	payroll.Apply(e, payroll.Adjustment{Paid: ptr(false)}, later)
	assert.False(t, e.Paid)
	assert.Nil(t, e.PaymentDate)

	explicit := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	payroll.Apply(e, payroll.Adjustment{PaymentDate: &explicit}, later)
	assert.True(t, e.Paid, "informar fecha de pago marca la entrada como pagada")
	assert.Equal(t, explicit, *e.PaymentDate)
}

func TestSumPaidAdvances(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
	in := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	advances := []*entity.Advance{
		{Amount: dec("100"), Status: entity.AdvanceStatusPaid, PaymentDate: &in},
		{Amount: dec("50.50"), Status: entity.AdvanceStatusPaid, PaymentDate: &in},
		{Amount: dec("999"), Status: entity.AdvanceStatusPending},
		{Amount: dec("999"), Status: entity.AdvanceStatusPaid, PaymentDate: &out},
		{Amount: dec("999"), Status: entity.AdvanceStatusPaid},
		nil,
	}
	assert.True(t, dec("150.50").Equal(payroll.SumPaidAdvances(advances, from, to)))
}
