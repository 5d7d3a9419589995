package dto

import "github.com/shopspring/decimal"

// Tipos de reporte aceptados en ?type=.
const (
	ReportOverview           = "overview"
	ReportExpensesByCategory = "expenses-by-category"
	ReportRevenuesBySource   = "revenues-by-source"
	ReportEmployees          = "employees"
)

// ReportQuery entrada de GET /reports.
type ReportQuery struct {
	Month string `query:"month" validate:"required,yearmonth"`
	Type  string `query:"type" validate:"omitempty,oneof=overview expenses-by-category revenues-by-source employees"`
}

// MonthlyPDFQuery entrada de GET /reports/monthly.pdf.
type MonthlyPDFQuery struct {
	Month string `query:"month" validate:"required,yearmonth"`
}

// TotalResponse suma y cantidad.
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// OverviewReport resumen financiero del mes.
type OverviewReport struct {
	Month     string          `json:"month"`
	Revenue   TotalResponse   `json:"revenue"`
	Expenses  TotalResponse   `json:"expenses"`
	Payroll   TotalResponse   `json:"payroll"`
	Advances  TotalResponse   `json:"advances"`
	Employees int             `json:"employees"`
	Profit    decimal.Decimal `json:"profit"`
}

// GroupTotalResponse total agrupado por categoría o fuente.
type GroupTotalResponse struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// EmployeePayrollSummary folha del mes en el reporte de funcionarios.
type EmployeePayrollSummary struct {
	NetSalary decimal.Decimal `json:"netSalary"`
	Paid      bool            `json:"paid"`
}

// EmployeeReportRow fila del reporte de funcionarios.
type EmployeeReportRow struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Role          string                  `json:"role"`
	Salary        decimal.Decimal         `json:"salary"`
	Advances      decimal.Decimal         `json:"advances"`
	AdvancesCount int                     `json:"advancesCount"`
	Payroll       *EmployeePayrollSummary `json:"payroll"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Categories int    `json:"categories"`
	Items      int    `json:"items"`
	Timestamp  string `json:"timestamp"`
}
