package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// PayrollPeriodHandler cierres de pago por turnos trabajados.
type PayrollPeriodHandler struct {
	uc *usecase.PayrollPeriodUseCase
}

func NewPayrollPeriodHandler(uc *usecase.PayrollPeriodUseCase) *PayrollPeriodHandler {
	return &PayrollPeriodHandler{uc: uc}
}

func (h *PayrollPeriodHandler) List(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *PayrollPeriodHandler) Get(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar un período de pago
// @Description  Suma los turnos PRESENT del rango por funcionario activo, descuenta los vales PAGOS y los marca DISCOUNTED.
// @Tags         payroll-periods
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClosePayrollPeriodRequest  true  "rango"
// @Success      201   {object}  dto.PayrollPeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payroll-periods [post]
func (h *PayrollPeriodHandler) Close(c *fiber.Ctx, ac *APIContext, in *dto.ClosePayrollPeriodRequest) error {
	out, err := h.uc.Close(c.UserContext(), ac.Principal, *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	ac.Details = fiber.Map{
		"startDate":   in.StartDate,
		"endDate":     in.EndDate,
		"payments":    len(out.Payments),
		"totalAmount": out.TotalAmount,
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
