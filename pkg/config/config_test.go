package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/pkg/config"
)

func TestLoad_SinSecretoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8*60, cfg.JWT.Expiration)
	assert.Equal(t, "session_token", cfg.JWT.CookieName)
	assert.Equal(t, 5, cfg.Security.MaxFailedLogins)
	assert.Equal(t, 15*time.Minute, cfg.Security.LockoutWindow)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto-de-prueba")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SECURITY_API_RATE_LIMIT", "no-numero")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 100, cfg.Security.APIRateLimit, "un entero inválido cae al valor por defecto")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "rest", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/rest?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestAppConfig_LocationInvalidaCaeAUTC(t *testing.T) {
	assert.Equal(t, time.UTC, config.AppConfig{Timezone: "No/Existe"}.Location())
}
