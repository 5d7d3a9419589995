package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// UserHandler administración de usuarios (solo ADMIN).
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) List(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *UserHandler) Get(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx, ac *APIContext, in *dto.CreateUserRequest) error {
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	ac.Details = fiber.Map{"email": out.Email, "role": out.Role}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *UserHandler) Update(c *fiber.Ctx, _ *APIContext, in *dto.UpdateUserRequest) error {
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete impide que un administrador se elimine a sí mismo.
func (h *UserHandler) Delete(c *fiber.Ctx, ac *APIContext, _ *NoInput) error {
	if err := h.uc.Delete(c.UserContext(), ac.Principal.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "usuario eliminado"})
}
