package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// ReportHandler reportes mensuales en JSON y PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte del mes
// @Tags         reports
// @Produce      json
// @Param        month  query  string  true   "YYYY-MM"
// @Param        type   query  string  false  "overview | expenses-by-category | revenues-by-source | employees"
// @Success      200  {object}  dto.OverviewReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Report(c *fiber.Ctx, _ *APIContext, q *dto.ReportQuery) error {
	out, err := h.uc.Report(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month  query  string  true  "YYYY-MM"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly.pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx, _ *APIContext, q *dto.MonthlyPDFQuery) error {
	pdf, err := h.uc.MonthlyPDF(c.UserContext(), dto.MonthQuery{Month: q.Month})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="relatorio-%s.pdf"`, q.Month))
	return c.Send(pdf)
}

// HealthHandler estado del servicio y de la base.
type HealthHandler struct {
	uc *usecase.HealthUseCase
}

func NewHealthHandler(uc *usecase.HealthUseCase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

// Check responde 200 con conteos del cardápio, o 500 si la base no responde.
func (h *HealthHandler) Check(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.Check(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
