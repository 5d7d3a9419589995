package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// SecurityHandler consulta de intentos de login y bitácora (solo ADMIN).
type SecurityHandler struct {
	uc *usecase.SecurityUseCase
}

func NewSecurityHandler(uc *usecase.SecurityUseCase) *SecurityHandler {
	return &SecurityHandler{uc: uc}
}

// LoginAttempts godoc
// @Summary      Intentos de login paginados, con estadísticas de 24h
// @Tags         security
// @Produce      json
// @Param        page       query  int     false  "página (1..)"
// @Param        limit      query  int     false  "tamaño de página (máx 100)"
// @Param        email      query  string  false  "filtro parcial"
// @Param        ipAddress  query  string  false  "filtro parcial"
// @Param        success    query  string  false  "true | false"
// @Success      200  {object}  dto.LoginAttemptListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/security/login-attempts [get]
func (h *SecurityHandler) LoginAttempts(c *fiber.Ctx, _ *APIContext, q *dto.LoginAttemptQuery) error {
	out, err := h.uc.LoginAttempts(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *SecurityHandler) Logs(c *fiber.Ctx, _ *APIContext, q *dto.AuditLogQuery) error {
	out, err := h.uc.Logs(c.UserContext(), *q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
