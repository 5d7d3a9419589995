package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	id := jwt.Identity{UserID: "u-1", Email: "ana@rest.com", Name: "Ana", Role: "MANAGER"}
	tok, err := jwt.Generate(secret, "restaurante-api", id, time.Hour, time.Now())
	require.NoError(t, err)

	got, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "x", jwt.Identity{UserID: "u-1"}, time.Minute, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = jwt.Parse(secret, tok)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "x", jwt.Identity{UserID: "u-1"}, time.Hour, time.Now())
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "x", jwt.Identity{UserID: "u-1"}, time.Hour, time.Now())
	assert.Error(t, err)
}
