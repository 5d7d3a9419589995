package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("no debe aparecer")
	l.Named("auth").Warn().Str("email", "a@b.c").Msg("intento fallido")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "auth", entry["component"])
	assert.Equal(t, "intento fallido", entry["message"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "ruido", Output: &buf})
	l.Debug().Msg("oculto")
	assert.Empty(t, buf.String())
	l.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
