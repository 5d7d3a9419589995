package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// SalesHandler pedidos del PDV.
type SalesHandler struct {
	uc *usecase.SalesUseCase
}

func NewSalesHandler(uc *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func (h *SalesHandler) List(c *fiber.Ctx, _ *APIContext, q *dto.SalesQuery) error {
	list, err := h.uc.List(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// Sync godoc
// @Summary      Sincronizar pedidos
// @Description  Acepta un pedido o un arreglo; inserta o actualiza por externalId.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleInput  true  "pedido o arreglo de pedidos"
// @Success      201   {object}  dto.SyncSalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Sync(c *fiber.Ctx, ac *APIContext, in *dto.SyncSalesRequest) error {
	out, err := h.uc.Sync(c.UserContext(), *in)
	if err != nil {
		return err
	}
	ac.Details = fiber.Map{"count": out.Count}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *SalesHandler) Stats(c *fiber.Ctx, _ *APIContext, q *dto.SalesStatsQuery) error {
	out, err := h.uc.Stats(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
