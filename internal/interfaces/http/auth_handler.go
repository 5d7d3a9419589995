package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

type authService interface {
	Login(ctx context.Context, in dto.LoginRequest, client auth.ClientInfo) (*dto.LoginResponse, error)
	SessionTTL() time.Duration
}

// AuthHandler login, logout y sesión actual.
type AuthHandler struct {
	uc           authService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler construye el handler de auth. secureCookie activa el flag Secure (producción).
func NewAuthHandler(uc authService, cookieName string, secureCookie bool) *AuthHandler {
	if cookieName == "" {
		cookieName = "session_token"
	}
	return &AuthHandler{uc: uc, cookieName: cookieName, secureCookie: secureCookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx, ac *APIContext, in *dto.LoginRequest) error {
	out, err := h.uc.Login(c.UserContext(), *in, ac.Client())
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		MaxAge:   int(h.uc.SessionTTL().Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	// Con el principal fijado, Secure escribe la fila LOGIN.
	ac.Principal = &auth.Principal{ID: out.User.ID, Name: out.User.Name, Email: out.User.Email, Role: out.User.Role}
	ac.ResourceID = out.User.ID
	ac.Details = fiber.Map{"email": out.User.Email}
	return c.JSON(out)
}

// Logout borra la cookie de sesión. Si había sesión queda la fila LOGOUT.
func (h *AuthHandler) Logout(c *fiber.Ctx, ac *APIContext, _ *NoInput) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if ac.Principal != nil {
		ac.ResourceID = ac.Principal.ID
	}
	return c.JSON(fiber.Map{"message": "sesión finalizada"})
}

// Session devuelve el principal de la sesión actual.
func (h *AuthHandler) Session(c *fiber.Ctx, ac *APIContext, _ *NoInput) error {
	p := ac.Principal
	return c.JSON(dto.SessionResponse{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role})
}
