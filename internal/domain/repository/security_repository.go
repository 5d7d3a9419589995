package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// Page paginación 1-based.
type Page struct {
	Page  int
	Limit int
}

// Offset filas a saltar.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// LoginAttemptFilter filtros de la vista de intentos de login.
type LoginAttemptFilter struct {
	Email     string // contiene, sin distinguir mayúsculas
	IPAddress string
	Success   *bool
	Page      Page
}

// LoginStats éxitos y fallos en una ventana.
type LoginStats struct {
	Successful int
	Failed     int
}

// LoginAttemptRepository registro de intentos de login (solo inserción y lectura).
type LoginAttemptRepository interface {
	Record(ctx context.Context, a *entity.LoginAttempt) error
	// CountFailedSince cuenta fallos desde since cuyo email O ip coincidan.
	CountFailedSince(ctx context.Context, email, ip string, since time.Time) (int, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
	List(ctx context.Context, f LoginAttemptFilter) ([]*entity.LoginAttempt, int, error)
	StatsSince(ctx context.Context, since time.Time) (LoginStats, error)
}

// AuditLogFilter filtros de la vista de auditoría.
type AuditLogFilter struct {
	Action string
	UserID string
	From   *time.Time
	To     *time.Time
	Page   Page
}

// AuditLogRepository bitácora de auditoría (solo inserción y lectura).
type AuditLogRepository interface {
	Append(ctx context.Context, l *entity.AuditLog) error
	List(ctx context.Context, f AuditLogFilter) ([]*entity.AuditLog, int, error)
}
