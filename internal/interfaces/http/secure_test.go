package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

func TestSecure_SinSesionDevuelve401SinAuditoria(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "UNAUTHORIZED", errBody.Code)
	assert.NotEmpty(t, errBody.Error)
	assert.Empty(t, env.store.AuditLogs())
}

func TestSecure_TokenInvalidoDevuelve401(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/advances", "no-es-un-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSecure_RolInsuficienteRegistraAccessDenied(t *testing.T) {
	env := newTestEnv(t)
	seedEmployee(t, env.store, "e1", "Carla Souza", "2000")

	resp, body := env.do(t, http.MethodDelete, "/api/employees/e1", token(t, entity.RoleManager), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, body).Code)

	// el handler no corrió
	resp, _ = env.do(t, http.MethodGet, "/api/employees/e1", token(t, entity.RoleManager), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	row := lastAudit(t, env.store)
	assert.Equal(t, entity.AuditAccessDenied, row.Action)
	assert.Equal(t, "/api/employees/e1", row.Resource)
	require.NotNil(t, row.UserID)
	assert.Equal(t, "u-manager", *row.UserID)
	require.NotNil(t, row.Details)
	assert.Contains(t, *row.Details, `"requiredRoles":["ADMIN"]`)
}

func TestSecure_ValidacionDevuelveDetallesPorCampo(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/expenses", token(t, entity.RoleAdmin), map[string]any{
		"description": "Compra",
		"amount":      -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "VALIDATION_ERROR", errBody.Code)
	assert.Contains(t, errBody.Details, "category")
	assert.Contains(t, errBody.Details, "date")
	assert.Contains(t, errBody.Details, "amount")
	assert.NotContains(t, errBody.Details, "description")
	assert.Empty(t, env.store.AuditLogs())
}

func TestSecure_JSONMalformadoDevuelve400(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/expenses", token(t, entity.RoleAdmin), `{"category":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Details, "body")
}

func TestSecure_QueryInvalidaDevuelve400(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/expenses?month=2024-13", token(t, entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, body).Details, "month")
}

func TestSecure_EscrituraExitosaQuedaAuditada(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/expenses", token(t, entity.RoleManager), map[string]any{
		"category":    "Insumos",
		"description": "<script>alert(1)</script>Verduras",
		"amount":      "150.50",
		"date":        "2024-03-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	out := decode[dto.ExpenseResponse](t, body)
	assert.Equal(t, "Verduras", out.Description)

	row := lastAudit(t, env.store)
	assert.Equal(t, entity.AuditCreateExpense, row.Action)
	assert.Equal(t, "/api/expenses", row.Resource)
	require.NotNil(t, row.ResourceID)
	assert.Equal(t, out.ID, *row.ResourceID)
	require.NotNil(t, row.UserEmail)
	assert.Equal(t, "gerente@rest.com", *row.UserEmail)
	require.NotNil(t, row.Details)
	assert.Contains(t, *row.Details, `"category":"Insumos"`)
}

func TestSecure_LecturaNoSeAudita(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/api/expenses", token(t, entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, env.store.AuditLogs())
}

func TestSecure_PasswordNoLlegaALaBitacora(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPut, "/api/users/u-manager", token(t, entity.RoleAdmin), map[string]any{
		"password": "nueva-clave-123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	row := lastAudit(t, env.store)
	assert.Equal(t, entity.AuditUpdateUser, row.Action)
	require.NotNil(t, row.Details)
	assert.NotContains(t, *row.Details, "nueva-clave-123")
	assert.NotContains(t, *row.Details, "password")
}

func TestSecure_FalloDeAuditoriaNoAfectaLaRespuesta(t *testing.T) {
	env := newTestEnv(t)
	env.store.FailAudit = true

	resp, body := env.do(t, http.MethodPost, "/api/revenues", token(t, entity.RoleAdmin), map[string]any{
		"source": "Salão",
		"amount": 980,
		"date":   "2024-03-14",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Empty(t, env.store.AuditLogs())
}

func TestSecure_NoEncontradoDevuelve404(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/api/employees/no-existe", token(t, entity.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}

func TestSecure_ErrorInternoNoFiltraDetalles(t *testing.T) {
	env := newTestEnv(t)
	env.pinger.err = assert.AnError

	resp, body := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "error interno del servidor", errBody.Error)
	assert.NotContains(t, string(body), assert.AnError.Error())
}
