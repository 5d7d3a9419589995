package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

const (
	defaultSecurityPageSize = 50
	loginStatsWindow        = 24 * time.Hour
)

// AuditEntry datos de una acción auditada. Campos vacíos se guardan como NULL.
type AuditEntry struct {
	UserID     string
	UserEmail  string
	Action     string
	Resource   string
	ResourceID string
	Details    string
	IPAddress  string
	UserAgent  string
}

// SecurityUseCase bitácora de auditoría e intentos de login.
type SecurityUseCase struct {
	attempts repository.LoginAttemptRepository
	audit    repository.AuditLogRepository
	clock    ports.Clock
}

// NewSecurityUseCase construye el caso de uso.
func NewSecurityUseCase(attempts repository.LoginAttemptRepository, audit repository.AuditLogRepository, clock ports.Clock) *SecurityUseCase {
	return &SecurityUseCase{attempts: attempts, audit: audit, clock: clock}
}

// Record agrega una fila a la bitácora.
func (uc *SecurityUseCase) Record(ctx context.Context, e AuditEntry) error {
	return uc.audit.Append(ctx, &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     optString(e.UserID),
		UserEmail:  optString(e.UserEmail),
		Action:     e.Action,
		Resource:   e.Resource,
		ResourceID: optString(e.ResourceID),
		Details:    optString(e.Details),
		IPAddress:  optString(e.IPAddress),
		UserAgent:  optString(e.UserAgent),
		CreatedAt:  uc.clock.Now(),
	})
}

// LoginAttempts página de intentos con estadísticas de las últimas 24h.
func (uc *SecurityUseCase) LoginAttempts(ctx context.Context, q dto.LoginAttemptQuery) (*dto.LoginAttemptListResponse, error) {
	q.DefaultPage(defaultSecurityPageSize)
	f := repository.LoginAttemptFilter{
		Email:     q.Email,
		IPAddress: q.IPAddress,
		Page:      repository.Page{Page: q.Page, Limit: q.Limit},
	}
	if q.Success != "" {
		ok := q.Success == "true"
		f.Success = &ok
	}
	list, total, err := uc.attempts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	stats, err := uc.attempts.StatsSince(ctx, uc.clock.Now().Add(-loginStatsWindow))
	if err != nil {
		return nil, err
	}
	out := &dto.LoginAttemptListResponse{
		Attempts:   make([]dto.LoginAttemptResponse, 0, len(list)),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
		Stats:      dto.LoginStatsResponse{Successful: stats.Successful, Failed: stats.Failed},
	}
	for _, a := range list {
		out.Attempts = append(out.Attempts, dto.LoginAttemptResponse{
			ID:        a.ID,
			Email:     a.Email,
			IPAddress: a.IPAddress,
			Success:   a.Success,
			UserAgent: a.UserAgent,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

// Logs página de la bitácora. startDate/endDate cubren días completos en la zona del negocio.
func (uc *SecurityUseCase) Logs(ctx context.Context, q dto.AuditLogQuery) (*dto.AuditLogListResponse, error) {
	q.DefaultPage(defaultSecurityPageSize)
	f := repository.AuditLogFilter{
		Action: q.Action,
		UserID: q.UserID,
		Page:   repository.Page{Page: q.Page, Limit: q.Limit},
	}
	if q.StartDate != "" {
		t, err := parseDateField("startDate", q.StartDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		from := ledger.DayRange(t, uc.clock.Loc).Start
		f.From = &from
	}
	if q.EndDate != "" {
		t, err := parseDateField("endDate", q.EndDate, uc.clock.Loc)
		if err != nil {
			return nil, err
		}
		to := ledger.DayRange(t, uc.clock.Loc).End
		f.To = &to
	}
	list, total, err := uc.audit.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.AuditLogListResponse{
		Logs:       make([]dto.AuditLogResponse, 0, len(list)),
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}
	for _, l := range list {
		out.Logs = append(out.Logs, dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			UserEmail:  l.UserEmail,
			Action:     l.Action,
			Resource:   l.Resource,
			ResourceID: l.ResourceID,
			Details:    l.Details,
			IPAddress:  l.IPAddress,
			UserAgent:  l.UserAgent,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out, nil
}
