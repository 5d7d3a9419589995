package ports

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

// MonthlyReport datos que se vuelcan en el PDF mensual.
type MonthlyReport struct {
	BusinessName string
	Overview     dto.OverviewReport
	Expenses     []dto.GroupTotalResponse
	Revenues     []dto.GroupTotalResponse
	Employees    []dto.EmployeeReportRow
}

// ReportPDFGenerator genera la representación PDF del reporte mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReport(ctx context.Context, r MonthlyReport) ([]byte, error)
}
