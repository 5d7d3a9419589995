package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// TimeEntryHandler registros de ponto. Las reglas de ventana por rol viven en el caso de uso.
type TimeEntryHandler struct {
	uc *usecase.TimeEntryUseCase
}

func NewTimeEntryHandler(uc *usecase.TimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{uc: uc}
}

func (h *TimeEntryHandler) List(c *fiber.Ctx, ac *APIContext, q *dto.TimeEntryQuery) error {
	list, err := h.uc.List(c.UserContext(), ac.Principal, *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *TimeEntryHandler) Get(c *fiber.Ctx, ac *APIContext, _ *NoInput) error {
	out, err := h.uc.Get(c.UserContext(), ac.Principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar ponto
// @Description  MANAGER solo puede registrar fechas de hasta 2 días atrás. Un registro por funcionario y día.
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeEntryRequest  true  "registro"
// @Success      201   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/time-entries [post]
func (h *TimeEntryHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateTimeEntryRequest) error {
	out, err := h.uc.Create(c.UserContext(), ac.Principal, *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TimeEntryHandler) Update(c *fiber.Ctx, ac *APIContext, in *dto.UpdateTimeEntryRequest) error {
	out, err := h.uc.Update(c.UserContext(), ac.Principal, c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *TimeEntryHandler) Delete(c *fiber.Ctx, ac *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), ac.Principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "registro eliminado"})
}

// ShiftConfigHandler valores de referencia por turno.
type ShiftConfigHandler struct {
	uc *usecase.ShiftConfigUseCase
}

func NewShiftConfigHandler(uc *usecase.ShiftConfigUseCase) *ShiftConfigHandler {
	return &ShiftConfigHandler{uc: uc}
}

func (h *ShiftConfigHandler) List(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *ShiftConfigHandler) Update(c *fiber.Ctx, ac *APIContext, in *dto.UpdateShiftConfigRequest) error {
	list, err := h.uc.Update(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = "shift-config"
	return c.JSON(list)
}
