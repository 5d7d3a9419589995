package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// AdvanceHandler vales de funcionarios.
type AdvanceHandler struct {
	uc *usecase.AdvanceUseCase
}

func NewAdvanceHandler(uc *usecase.AdvanceUseCase) *AdvanceHandler {
	return &AdvanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar vales
// @Tags         advances
// @Produce      json
// @Param        status      query  string  false  "PENDING | APPROVED | PAID | REJECTED"
// @Param        employeeId  query  string  false  "funcionario"
// @Success      200  {array}   dto.AdvanceResponse
// @Router       /api/advances [get]
func (h *AdvanceHandler) List(c *fiber.Ctx, _ *APIContext, q *dto.AdvanceListQuery) error {
	list, err := h.uc.List(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *AdvanceHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateAdvanceRequest) error {
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AdvanceHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdateAdvanceRequest) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *AdvanceHandler) Delete(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "vale eliminado"})
}
