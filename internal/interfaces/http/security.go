package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"

	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// contentSecurityPolicy CSP aplicada a todas las respuestas salvo /docs.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline' 'unsafe-eval'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data: blob: https:",
	"font-src 'self' data:",
	"connect-src 'self'",
	"frame-ancestors 'none'",
	"base-uri 'self'",
	"form-action 'self'",
}, "; ")

// SecurityHeaders cabeceras de seguridad vía helmet. HSTS solo en producción.
func SecurityHeaders(production bool) fiber.Handler {
	cfg := helmet.Config{
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/docs")
		},
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		PermissionPolicy:      "camera=(), microphone=(), geolocation=(), payment=()",
	}
	if production {
		cfg.HSTSMaxAge = 31536000
		cfg.HSTSPreloadEnabled = true
	} else {
		cfg.HSTSExcludeSubdomains = true
	}
	return helmet.New(cfg)
}

// suspiciousPaths rutas típicas de escáneres; se responden con 404 sin llegar al router.
var suspiciousPaths = []string{
	"/.env",
	"/.git",
	"/wp-admin",
	"/wp-login",
	"/phpmyadmin",
	"/.htaccess",
	"/config.php",
	"/admin.php",
}

// BlockSuspiciousPaths corta accesos a rutas de escáneres y los registra.
func BlockSuspiciousPaths(log *logger.Logger) fiber.Handler {
	log = log.Named("security")
	return func(c *fiber.Ctx) error {
		path := strings.ToLower(c.Path())
		for _, p := range suspiciousPaths {
			if strings.Contains(path, p) {
				log.Warn().Str("path", c.Path()).Str("ip", clientIP(c)).Msg("acceso a ruta sospechosa")
				return c.Status(fiber.StatusNotFound).SendString("Not Found")
			}
		}
		return c.Next()
	}
}
