package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

func TestSecurityHeaders_PresentesEnLasRespuestas(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Contains(t, resp.Header.Get("Permissions-Policy"), "camera=()")
}

func TestBlockSuspiciousPaths(t *testing.T) {
	env := newTestEnv(t)
	for _, p := range []string{"/.env", "/.git/config", "/wp-admin/setup.php", "/PhpMyAdmin/index.php"} {
		resp, body := env.do(t, http.MethodGet, p, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
		assert.Equal(t, "Not Found", string(body), p)
	}
}

func TestMetrics_SoloAdminYExponeContadores(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/health", "", nil)

	resp, _ := env.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := env.do(t, http.MethodGet, "/metrics", token(t, entity.RoleManager), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, body).Code)

	resp, body = env.do(t, http.MethodGet, "/metrics", token(t, entity.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `restaurante_api_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestMetrics_CuentaAccesosDenegados(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/users", token(t, entity.RoleManager), nil)

	_, body := env.do(t, http.MethodGet, "/metrics", token(t, entity.RoleAdmin), nil)
	assert.Contains(t, string(body), "restaurante_api_security_access_denied_total 1")
}

func TestAuthMiddleware_CookieDeSesion(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token(t, entity.RoleAdmin)})

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
