package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// ExpenseHandler gastos del restaurante.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Produce      json
// @Param        month  query  string  false  "YYYY-MM"
// @Success      200  {array}   dto.ExpenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx, _ *APIContext, q *dto.MonthQuery) error {
	list, err := h.uc.List(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ExpenseHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateExpenseRequest) error {
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdateExpenseRequest) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "gasto eliminado"})
}

// RevenueHandler ingresos del restaurante.
type RevenueHandler struct {
	uc *usecase.RevenueUseCase
}

func NewRevenueHandler(uc *usecase.RevenueUseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

func (h *RevenueHandler) List(c *fiber.Ctx, _ *APIContext, q *dto.MonthQuery) error {
	list, err := h.uc.List(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *RevenueHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateRevenueRequest) error {
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *RevenueHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdateRevenueRequest) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *RevenueHandler) Delete(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "ingreso eliminado"})
}
