package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// MenuHandler cardápio: categorías, ítems y vista pública.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Public godoc
// @Summary      Cardápio público
// @Description  Categorías activas con sus ítems activos, ordenados por order. No requiere sesión.
// @Tags         menu
// @Produce      json
// @Success      200  {array}  dto.MenuCategoryResponse
// @Router       /api/menu/public [get]
func (h *MenuHandler) Public(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.Public(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *MenuHandler) ListCategories(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	list, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *MenuHandler) GetCategory(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *MenuHandler) CreateCategory(c *fiber.Ctx, ac *APIContext, in *dto.CreateMenuCategoryRequest) error {
	out, err := h.uc.CreateCategory(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MenuHandler) UpdateCategory(c *fiber.Ctx, _ *APIContext, in *dto.UpdateMenuCategoryRequest) error {
	out, err := h.uc.UpdateCategory(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteCategory borra la categoría y, en cascada, sus ítems.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "categoría eliminada"})
}

func (h *MenuHandler) ListItems(c *fiber.Ctx, _ *APIContext, q *dto.MenuItemListQuery) error {
	list, err := h.uc.ListItems(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *MenuHandler) GetItem(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	out, err := h.uc.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *MenuHandler) CreateItem(c *fiber.Ctx, ac *APIContext, in *dto.CreateMenuItemRequest) error {
	out, err := h.uc.CreateItem(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.ResourceID = out.ID
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MenuHandler) UpdateItem(c *fiber.Ctx, _ *APIContext, in *dto.UpdateMenuItemRequest) error {
	out, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *MenuHandler) DeleteItem(c *fiber.Ctx, _ *APIContext, _ *NoInput) error {
	if err := h.uc.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeletedResponse{Message: "ítem eliminado"})
}
