package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

type sessionParser interface {
	ParseSession(token string) (*auth.Principal, error)
}

type auditRecorder interface {
	Record(ctx context.Context, e usecase.AuditEntry) error
}

// Guard dependencias compartidas por todos los handlers envueltos con Secure.
type Guard struct {
	sessions   sessionParser
	audit      auditRecorder
	validator  *Validator
	log        *logger.Logger
	cookieName string
	metrics    *Metrics
}

// NewGuard construye el guard. metrics puede ser nil.
func NewGuard(sessions sessionParser, audit auditRecorder, v *Validator, log *logger.Logger, cookieName string, metrics *Metrics) *Guard {
	if cookieName == "" {
		cookieName = "session_token"
	}
	return &Guard{sessions: sessions, audit: audit, validator: v, log: log.Named("http"), cookieName: cookieName, metrics: metrics}
}

// SecureOptions configuración de un endpoint.
type SecureOptions struct {
	Public      bool     // no exige sesión
	Roles       []string // vacío = cualquier usuario autenticado
	AuditAction string   // acción registrada tras una escritura exitosa
}

// NoInput indica que el endpoint no tiene esquema de entrada.
type NoInput struct{}

// APIContext contexto de la petición entregado al handler.
type APIContext struct {
	Principal *auth.Principal
	IP        string
	UserAgent string

	// El handler puede fijarlos para la auditoría; por defecto :id y la entrada validada.
	ResourceID string
	Details    any
}

// Client datos del cliente para el caso de uso de auth.
func (a *APIContext) Client() auth.ClientInfo {
	return auth.ClientInfo{IP: a.IP, UserAgent: a.UserAgent}
}

// SecureHandler handler con principal y entrada ya validada.
type SecureHandler[T any] func(c *fiber.Ctx, ac *APIContext, in *T) error

// Secure envuelve h con sesión, rol, validación de entrada, auditoría y traducción de errores.
func Secure[T any](g *Guard, opts SecureOptions, h SecureHandler[T]) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				g.log.Error().Str("stack", string(debug.Stack())).Msg("panic en handler")
				err = writeError(c, g.log, fmt.Errorf("panic: %v", r))
			}
		}()

		ac := &APIContext{IP: clientIP(c), UserAgent: c.Get(fiber.HeaderUserAgent)}

		if tok := sessionToken(c, g.cookieName); tok != "" {
			if p, perr := g.sessions.ParseSession(tok); perr == nil {
				ac.Principal = p
				c.Locals(LocalPrincipal, p)
			}
		}
		if ac.Principal == nil && !opts.Public {
			return writeError(c, g.log, domain.ErrUnauthorized)
		}
		if ac.Principal != nil && !hasRole(ac.Principal.Role, opts.Roles) {
			g.recordDenied(c, ac, opts.Roles)
			return writeError(c, g.log, &domain.PermissionError{Reason: "permisos insuficientes para esta operación"})
		}

		in := new(T)
		if _, none := any(in).(*NoInput); !none {
			if err := g.bind(c, in); err != nil {
				return writeError(c, g.log, err)
			}
		}

		if err := h(c, ac, in); err != nil {
			return writeError(c, g.log, err)
		}

		if opts.AuditAction != "" && ac.Principal != nil && isWrite(c.Method()) {
			g.recordAction(c, ac, opts.AuditAction, in)
		}
		return nil
	}
}

// bind JSON del body en escrituras (body vacío = {}), query string en lecturas;
// luego limpia strings y valida.
func (g *Guard) bind(c *fiber.Ctx, in any) error {
	if isWrite(c.Method()) && c.Method() != fiber.MethodDelete {
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 {
			body = []byte("{}")
		}
		if err := json.Unmarshal(body, in); err != nil {
			return domain.Invalid("body", "JSON inválido")
		}
	} else if err := c.QueryParser(in); err != nil {
		return domain.Invalid("query", "parámetros inválidos")
	}
	sanitize(in)
	return g.validator.Struct(in)
}

func isWrite(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}

func (g *Guard) recordAction(c *fiber.Ctx, ac *APIContext, action string, in any) {
	resourceID := ac.ResourceID
	if resourceID == "" {
		resourceID = c.Params("id")
	}
	details := ac.Details
	if details == nil {
		if _, none := in.(*NoInput); !none {
			details = in
		}
	}
	g.record(c, usecase.AuditEntry{
		UserID:     ac.Principal.ID,
		UserEmail:  ac.Principal.Email,
		Action:     action,
		Resource:   c.Path(),
		ResourceID: resourceID,
		Details:    detailsJSON(details),
		IPAddress:  ac.IP,
		UserAgent:  ac.UserAgent,
	})
}

func (g *Guard) recordDenied(c *fiber.Ctx, ac *APIContext, roles []string) {
	g.metrics.accessDenied()
	g.record(c, usecase.AuditEntry{
		UserID:    ac.Principal.ID,
		UserEmail: ac.Principal.Email,
		Action:    entity.AuditAccessDenied,
		Resource:  c.Path(),
		Details: detailsJSON(map[string]any{
			"method":        c.Method(),
			"role":          ac.Principal.Role,
			"requiredRoles": roles,
		}),
		IPAddress: ac.IP,
		UserAgent: ac.UserAgent,
	})
}

// record escribe en la bitácora; un fallo solo se registra en el log.
func (g *Guard) record(c *fiber.Ctx, e usecase.AuditEntry) {
	if err := g.audit.Record(c.UserContext(), e); err != nil {
		g.metrics.auditFailed()
		g.log.Error().Err(err).Str("action", e.Action).Str("resource", e.Resource).Msg("no se pudo registrar auditoría")
	}
}

// detailsJSON serializa v sin la clave "password".
func detailsJSON(v any) string {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	var m map[string]any
	if json.Unmarshal(raw, &m) == nil {
		if _, ok := m["password"]; ok {
			delete(m, "password")
			raw, _ = json.Marshal(m)
		}
	}
	return string(raw)
}
