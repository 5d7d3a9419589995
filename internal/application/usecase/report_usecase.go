package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ReportUseCase reportes financieros mensuales.
type ReportUseCase struct {
	reports      repository.ReportRepository
	employees    repository.EmployeeRepository
	pdf          ports.ReportPDFGenerator
	businessName string
	clock        ports.Clock
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta PDF.
func NewReportUseCase(
	reports repository.ReportRepository,
	employees repository.EmployeeRepository,
	pdf ports.ReportPDFGenerator,
	businessName string,
	clock ports.Clock,
) *ReportUseCase {
	return &ReportUseCase{reports: reports, employees: employees, pdf: pdf, businessName: businessName, clock: clock}
}

// Report despacha por tipo; sin tipo devuelve el overview.
func (uc *ReportUseCase) Report(ctx context.Context, q dto.ReportQuery) (any, error) {
	period, err := ledger.MonthRange(q.Month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	switch q.Type {
	case dto.ReportExpensesByCategory:
		return uc.groups(uc.reports.ExpensesByCategory(ctx, period))
	case dto.ReportRevenuesBySource:
		return uc.groups(uc.reports.RevenuesBySource(ctx, period))
	case dto.ReportEmployees:
		return uc.employeesReport(ctx, period, q.Month)
	default:
		return uc.overview(ctx, period, q.Month)
	}
}

// Overview resumen: ingresos, gastos, folha, vales pagados y lucro
// (lucro = ingresos − gastos − folha).
func (uc *ReportUseCase) Overview(ctx context.Context, month string) (*dto.OverviewReport, error) {
	period, err := ledger.MonthRange(month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	return uc.overview(ctx, period, month)
}

func (uc *ReportUseCase) overview(ctx context.Context, p ledger.Period, month string) (*dto.OverviewReport, error) {
	revenue, err := uc.reports.RevenueTotal(ctx, p)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.reports.ExpenseTotal(ctx, p)
	if err != nil {
		return nil, err
	}
	payrollTotal, err := uc.reports.PayrollTotal(ctx, month)
	if err != nil {
		return nil, err
	}
	advances, err := uc.reports.PaidAdvancesTotal(ctx, p)
	if err != nil {
		return nil, err
	}
	active, err := uc.employees.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.OverviewReport{
		Month:     month,
		Revenue:   toTotal(revenue),
		Expenses:  toTotal(expenses),
		Payroll:   toTotal(payrollTotal),
		Advances:  toTotal(advances),
		Employees: active,
		Profit:    revenue.Sum.Sub(expenses.Sum).Sub(payrollTotal.Sum),
	}, nil
}

func (uc *ReportUseCase) groups(list []repository.Total, err error) ([]dto.GroupTotalResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.GroupTotalResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.GroupTotalResponse{Key: t.Key, Total: t.Sum, Count: t.Count})
	}
	return out, nil
}

func (uc *ReportUseCase) employeesReport(ctx context.Context, p ledger.Period, month string) ([]dto.EmployeeReportRow, error) {
	rows, err := uc.reports.EmployeesMonth(ctx, p, month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeReportRow, 0, len(rows))
	for _, r := range rows {
		row := dto.EmployeeReportRow{
			ID:            r.ID,
			Name:          r.Name,
			Role:          r.Role,
			Salary:        r.Salary,
			Advances:      r.Advances,
			AdvancesCount: r.AdvancesCount,
		}
		if r.NetSalary != nil {
			row.Payroll = &dto.EmployeePayrollSummary{NetSalary: *r.NetSalary, Paid: r.Paid != nil && *r.Paid}
		}
		out = append(out, row)
	}
	return out, nil
}

// MonthlyPDF arma el reporte completo del mes y lo renderiza como PDF.
func (uc *ReportUseCase) MonthlyPDF(ctx context.Context, q dto.MonthQuery) ([]byte, error) {
	period, err := ledger.MonthRange(q.Month, uc.clock.Loc)
	if err != nil {
		return nil, err
	}
	overview, err := uc.overview(ctx, period, q.Month)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.groups(uc.reports.ExpensesByCategory(ctx, period))
	if err != nil {
		return nil, err
	}
	revenues, err := uc.groups(uc.reports.RevenuesBySource(ctx, period))
	if err != nil {
		return nil, err
	}
	employees, err := uc.employeesReport(ctx, period, q.Month)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateMonthlyReport(ctx, ports.MonthlyReport{
		BusinessName: uc.businessName,
		Overview:     *overview,
		Expenses:     expenses,
		Revenues:     revenues,
		Employees:    employees,
	})
}

func toTotal(t repository.Total) dto.TotalResponse {
	return dto.TotalResponse{Total: t.Sum, Count: t.Count}
}
