package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.LoginAttemptRepository = (*LoginAttemptRepo)(nil)
	_ repository.AuditLogRepository     = (*AuditLogRepo)(nil)
)

// LoginAttemptRepo intentos de login; solo inserción, lectura y purga.
type LoginAttemptRepo struct {
	db Querier
}

// NewLoginAttemptRepository construye el repositorio de intentos de login.
func NewLoginAttemptRepository(db Querier) *LoginAttemptRepo {
	return &LoginAttemptRepo{db: db}
}

func (r *LoginAttemptRepo) Record(ctx context.Context, a *entity.LoginAttempt) error {
	query := `
		INSERT INTO login_attempts (id, email, ip_address, success, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.Exec(ctx, query, a.ID, a.Email, a.IPAddress, a.Success, a.UserAgent, a.CreatedAt); err != nil {
		return fmt.Errorf("insert login attempt: %w", err)
	}
	return nil
}

func (r *LoginAttemptRepo) CountFailedSince(ctx context.Context, email, ip string, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM login_attempts
		WHERE NOT success AND created_at >= $3 AND (email = $1 OR ip_address = $2)`
	return countRows(ctx, r.db, query, email, ip, since)
}

func (r *LoginAttemptRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM login_attempts WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("prune login attempts: %w", err)
	}
	return tag.RowsAffected(), nil
}

const attemptWhere = `
	WHERE ($1 = '' OR email ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR ip_address = $2)
	  AND ($3::boolean IS NULL OR success = $3)`

func (r *LoginAttemptRepo) List(ctx context.Context, f repository.LoginAttemptFilter) ([]*entity.LoginAttempt, int, error) {
	total, err := countRows(ctx, r.db, `SELECT COUNT(*) FROM login_attempts`+attemptWhere, f.Email, f.IPAddress, f.Success)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, email, ip_address, success, user_agent, created_at
		FROM login_attempts` + attemptWhere + `
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(ctx, query, f.Email, f.IPAddress, f.Success, f.Page.Limit, f.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list login attempts: %w", err)
	}
	defer rows.Close()

	var list []*entity.LoginAttempt
	for rows.Next() {
		var a entity.LoginAttempt
		if err := rows.Scan(&a.ID, &a.Email, &a.IPAddress, &a.Success, &a.UserAgent, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan login attempt: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}

func (r *LoginAttemptRepo) StatsSince(ctx context.Context, since time.Time) (repository.LoginStats, error) {
	var s repository.LoginStats
	query := `
		SELECT COUNT(*) FILTER (WHERE success), COUNT(*) FILTER (WHERE NOT success)
		FROM login_attempts WHERE created_at >= $1`
	if err := r.db.QueryRow(ctx, query, since).Scan(&s.Successful, &s.Failed); err != nil {
		return s, fmt.Errorf("login stats: %w", err)
	}
	return s, nil
}

// AuditLogRepo bitácora de auditoría; solo inserción y lectura.
type AuditLogRepo struct {
	db Querier
}

// NewAuditLogRepository construye el repositorio de auditoría.
func NewAuditLogRepository(db Querier) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

func (r *AuditLogRepo) Append(ctx context.Context, l *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, user_email, action, resource, resource_id, details,
			ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query, l.ID, l.UserID, l.UserEmail, l.Action, l.Resource, l.ResourceID, l.Details,
		l.IPAddress, l.UserAgent, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

const auditWhere = `
	WHERE ($1 = '' OR action = $1)
	  AND ($2 = '' OR user_id = $2)
	  AND ($3::timestamptz IS NULL OR created_at >= $3)
	  AND ($4::timestamptz IS NULL OR created_at <= $4)`

func (r *AuditLogRepo) List(ctx context.Context, f repository.AuditLogFilter) ([]*entity.AuditLog, int, error) {
	total, err := countRows(ctx, r.db, `SELECT COUNT(*) FROM audit_logs`+auditWhere, f.Action, f.UserID, f.From, f.To)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, user_email, action, resource, resource_id, details, ip_address, user_agent, created_at
		FROM audit_logs` + auditWhere + `
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6`
	rows, err := r.db.Query(ctx, query, f.Action, f.UserID, f.From, f.To, f.Page.Limit, f.Page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		err := rows.Scan(&l.ID, &l.UserID, &l.UserEmail, &l.Action, &l.Resource, &l.ResourceID, &l.Details,
			&l.IPAddress, &l.UserAgent, &l.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}
