package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

// LocalPrincipal clave de c.Locals donde queda el principal autenticado.
const LocalPrincipal = "principal"

// sessionToken lee el token de la cookie de sesión o, si no está, del header Bearer.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return tok
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthMiddleware exige una sesión válida y deja el principal en c.Locals.
// Para rutas fuera de Secure (ej. /metrics).
func AuthMiddleware(g *Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := sessionToken(c, g.cookieName)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "sesión requerida"})
		}
		p, err := g.sessions.ParseSession(tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireRole autoriza por rol; debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "la sesión no tiene rol"})
		}
		if !hasRole(role, roles) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "acceso denegado"})
		}
		return c.Next()
	}
}

func hasRole(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// GetPrincipal devuelve el principal del contexto, o nil.
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// GetUserID devuelve el id del usuario autenticado, o "".
func GetUserID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.ID
	}
	return ""
}

// GetRole devuelve el rol del usuario autenticado, o "".
func GetRole(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.Role
	}
	return ""
}

// clientIP X-Forwarded-For (primer salto) → X-Real-IP → dirección remota.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return c.IP()
}
