package dto

import "time"

// LoginAttemptQuery filtros de GET /security/login-attempts.
type LoginAttemptQuery struct {
	PageRequest
	Email     string `query:"email" validate:"omitempty,max=255"`
	IPAddress string `query:"ipAddress" validate:"omitempty,max=64"`
	Success   string `query:"success" validate:"omitempty,oneof=true false"`
}

// LoginAttemptResponse salida de un intento de login.
type LoginAttemptResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IPAddress string    `json:"ipAddress"`
	Success   bool      `json:"success"`
	UserAgent *string   `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginStatsResponse éxitos y fallos de las últimas 24h.
type LoginStatsResponse struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// LoginAttemptListResponse página de intentos con estadísticas.
type LoginAttemptListResponse struct {
	Attempts   []LoginAttemptResponse `json:"attempts"`
	Pagination Pagination             `json:"pagination"`
	Stats      LoginStatsResponse     `json:"stats"`
}

// AuditLogQuery filtros de GET /security/logs.
type AuditLogQuery struct {
	PageRequest
	Action    string `query:"action" validate:"omitempty,max=100"`
	UserID    string `query:"userId" validate:"omitempty,max=100"`
	StartDate string `query:"startDate" validate:"omitempty,isodate"`
	EndDate   string `query:"endDate" validate:"omitempty,isodate"`
}

// AuditLogResponse salida de una entrada de auditoría.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"userId"`
	UserEmail  *string   `json:"userEmail"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID *string   `json:"resourceId"`
	Details    *string   `json:"details"`
	IPAddress  *string   `json:"ipAddress"`
	UserAgent  *string   `json:"userAgent"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuditLogListResponse página de auditoría.
type AuditLogListResponse struct {
	Logs       []AuditLogResponse `json:"logs"`
	Pagination Pagination         `json:"pagination"`
}
