package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// PayrollHandler folha de pagamento mensual.
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

func (h *PayrollHandler) List(c *fiber.Ctx, _ *APIContext, q *dto.MonthQuery) error {
	list, err := h.uc.List(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Generate godoc
// @Summary      Generar la folha del mes
// @Description  Una entrada por funcionario activo; los vales PAGOS del mes se descuentan.
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GeneratePayrollRequest  true  "month YYYY-MM"
// @Success      201   {array}   dto.PayrollEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payroll [post]
func (h *PayrollHandler) Generate(c *fiber.Ctx, ac *APIContext, in *dto.GeneratePayrollRequest) error {
	list, err := h.uc.Generate(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = in.Month
	ac.Details = fiber.Map{"month": in.Month, "entries": len(list)}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// Update recalcula netSalary en el servidor; el netSalary enviado se ignora.
func (h *PayrollHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdatePayrollRequest) error {
	in.NetSalary = nil
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
