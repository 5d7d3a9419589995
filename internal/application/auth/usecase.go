package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// Config parámetros de sesión y de la política de bloqueo.
type Config struct {
	Secret            string
	Issuer            string
	SessionTTL        time.Duration
	BcryptCost        int
	MaxFailedAttempts int
	LockoutWindow     time.Duration
	AttemptsTTL       time.Duration
}

func (c Config) withDefaults() Config {
	if c.SessionTTL <= 0 {
		c.SessionTTL = 8 * time.Hour
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
	if c.MaxFailedAttempts <= 0 {
		c.MaxFailedAttempts = 5
	}
	if c.LockoutWindow <= 0 {
		c.LockoutWindow = 15 * time.Minute
	}
	if c.AttemptsTTL <= 0 {
		c.AttemptsTTL = 24 * time.Hour
	}
	return c
}

// Principal identidad autenticada derivada de la sesión.
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// ClientInfo datos del cliente que origina la petición.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// AuthUseCase login con bloqueo por intentos, emisión y validación de sesiones.
type AuthUseCase struct {
	users    repository.UserRepository
	attempts repository.LoginAttemptRepository
	cfg      Config
	clock    ports.Clock
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	attempts repository.LoginAttemptRepository,
	cfg Config,
	clock ports.Clock,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{users: users, attempts: attempts, cfg: cfg.withDefaults(), clock: clock, log: log}
}

// Login verifica email/password. Con 5 fallos en 15 minutos (por email o IP) devuelve
// ErrAccountLocked; ante email inexistente o password incorrecta, ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, client ClientInfo) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	now := uc.clock.Now()

	failed, err := uc.attempts.CountFailedSince(ctx, email, client.IP, now.Add(-uc.cfg.LockoutWindow))
	if err != nil {
		return nil, err
	}
	if failed >= uc.cfg.MaxFailedAttempts {
		uc.log.Warn().Str("email", email).Str("ip", client.IP).Msg("login bloqueado por intentos fallidos")
		return nil, domain.ErrAccountLocked
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		uc.recordAttempt(ctx, email, client, false, now)
		uc.log.Warn().Str("email", email).Str("ip", client.IP).Msg("credenciales inválidas")
		return nil, domain.ErrInvalidCredentials
	}

	uc.recordAttempt(ctx, email, client, true, now)

	expiresAt := now.Add(uc.cfg.SessionTTL)
	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Identity{
		UserID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role,
	}, uc.cfg.SessionTTL, now)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("email", email).Str("ip", client.IP).Msg("login exitoso")
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: ToUserResponse(user)}, nil
}

// ParseSession valida el token y devuelve el principal. Token inválido o sin rol ⇒ ErrUnauthorized.
func (uc *AuthUseCase) ParseSession(token string) (*Principal, error) {
	id, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil || id.Role == "" {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{ID: id.UserID, Name: id.Name, Email: id.Email, Role: id.Role}, nil
}

// SessionTTL duración de la sesión, usada para la cookie.
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return uc.cfg.SessionTTL
}

// HashPassword aplica bcrypt con el costo configurado.
func (uc *AuthUseCase) HashPassword(password string) (string, error) {
	return HashPassword(password, uc.cfg.BcryptCost)
}

// recordAttempt registra el intento y poda los antiguos. Un fallo aquí no bloquea el login.
func (uc *AuthUseCase) recordAttempt(ctx context.Context, email string, client ClientInfo, success bool, now time.Time) {
	attempt := &entity.LoginAttempt{
		ID:        uuid.New().String(),
		Email:     email,
		IPAddress: client.IP,
		Success:   success,
		CreatedAt: now,
	}
	if client.UserAgent != "" {
		ua := client.UserAgent
		attempt.UserAgent = &ua
	}
	if err := uc.attempts.Record(ctx, attempt); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo registrar el intento de login")
		return
	}
	if _, err := uc.attempts.DeleteBefore(ctx, now.Add(-uc.cfg.AttemptsTTL)); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron podar intentos antiguos")
	}
}

// NormalizeEmail minúsculas y sin espacios.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword bcrypt con el costo indicado.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ToUserResponse mapea la entidad sin exponer el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
