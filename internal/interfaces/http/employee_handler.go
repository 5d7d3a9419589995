package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// EmployeeHandler CRUD de funcionarios.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler de funcionarios.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar funcionarios con conteo de vales
// @Tags         employees
// @Produce      json
// @Success      200  {array}   dto.EmployeeListItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Get devuelve el funcionario con sus últimos vales.
func (h *EmployeeHandler) Get(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear funcionario
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del funcionario"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateEmployeeRequest) error {
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdateEmployeeRequest) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "funcionario eliminado"})
}
