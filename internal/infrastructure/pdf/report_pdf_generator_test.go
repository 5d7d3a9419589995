package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
)

func TestMoney_FormatoBrasileno(t *testing.T) {
	g := NewMarotoReportGenerator(nil)
	assert.Equal(t, "R$ 1.234,50", g.money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", g.money(decimal.Zero))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "03/2024", monthLabel("2024-03"))
	assert.Equal(t, "basura", monthLabel("basura"))
}

func TestGenerateMonthlyReport(t *testing.T) {
	fixed := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)
	g := NewMarotoReportGenerator(func() time.Time { return fixed })

	net := decimal.RequireFromString("1350")
	report := ports.MonthlyReport{
		BusinessName: "Cantina da Nona",
		Overview: dto.OverviewReport{
			Month:     "2024-03",
			Revenue:   dto.TotalResponse{Total: decimal.RequireFromString("12000"), Count: 30},
			Expenses:  dto.TotalResponse{Total: decimal.RequireFromString("4000"), Count: 12},
			Payroll:   dto.TotalResponse{Total: net, Count: 1},
			Advances:  dto.TotalResponse{Total: decimal.RequireFromString("150"), Count: 1},
			Employees: 1,
			Profit:    decimal.RequireFromString("6650"),
		},
		Expenses: []dto.GroupTotalResponse{{Key: "Insumos", Total: decimal.RequireFromString("4000"), Count: 12}},
		Employees: []dto.EmployeeReportRow{{
			ID: "e-1", Name: "Maria", Role: "Garçom",
			Salary: decimal.RequireFromString("1500"), Advances: decimal.RequireFromString("150"), AdvancesCount: 1,
			Payroll: &dto.EmployeePayrollSummary{NetSalary: net, Paid: true},
		}},
	}

	out, err := g.GenerateMonthlyReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
