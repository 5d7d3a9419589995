package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/testutil"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

var client = auth.ClientInfo{IP: "10.0.0.7", UserAgent: "go-test"}

func setup(t *testing.T) (*auth.AuthUseCase, *testutil.Store) {
	t.Helper()
	s := testutil.NewStore()
	hash, err := auth.HashPassword("correcta", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: "u1", Name: "Ana", Email: "ana@rest.com", PasswordHash: hash, Role: entity.RoleManager,
	}))
	uc := auth.NewAuthUseCase(s.Users(), s.LoginAttemptRepo(), auth.Config{
		Secret:     "secreto-de-prueba",
		Issuer:     "restaurante-api",
		BcryptCost: bcrypt.MinCost,
	}, ports.SystemClock(time.UTC), logger.Nop())
	return uc, s
}

func TestLogin_ExitosoEmiteSesion(t *testing.T) {
	uc, s := setup(t)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: " ANA@rest.com ", Password: "correcta"}, client)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@rest.com", out.User.Email)

	p, err := uc.ParseSession(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, entity.RoleManager, p.Role)

	attempts := s.LoginAttempts()
	require.Len(t, attempts, 1)
	assert.True(t, attempts[0].Success)
	require.NotNil(t, attempts[0].UserAgent)
	assert.Equal(t, "go-test", *attempts[0].UserAgent)
}

func TestLogin_CredencialesInvalidasRegistranFallo(t *testing.T) {
	uc, s := setup(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@rest.com", Password: "mala"}, client)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@rest.com", Password: "x"}, client)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	attempts := s.LoginAttempts()
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].Success)
}

func TestLogin_BloqueoTrasCincoFallos(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@rest.com", Password: "mala"}, client)
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@rest.com", Password: "correcta"}, client)
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Misma IP, otro email: también bloqueado.
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "otro@rest.com", Password: "x"}, client)
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogin_FallosFueraDeVentanaNoBloquean(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()
	old := time.Now().Add(-20 * time.Minute)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.LoginAttemptRepo().Record(ctx, &entity.LoginAttempt{
			ID: string(rune('a' + i)), Email: "ana@rest.com", IPAddress: client.IP, CreatedAt: old,
		}))
	}
	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@rest.com", Password: "correcta"}, client)
	assert.NoError(t, err)
}

func TestLogin_PodaIntentosDeMasDe24h(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()
	require.NoError(t, s.LoginAttemptRepo().Record(ctx, &entity.LoginAttempt{
		ID: "viejo", Email: "x@rest.com", IPAddress: "9.9.9.9", CreatedAt: time.Now().Add(-25 * time.Hour),
	}))

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@rest.com", Password: "correcta"}, client)
	require.NoError(t, err)

	for _, a := range s.LoginAttempts() {
		assert.NotEqual(t, "viejo", a.ID)
	}
}

func TestParseSession_TokenInvalido(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.ParseSession("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
