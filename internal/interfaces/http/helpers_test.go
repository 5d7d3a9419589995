package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	apphttp "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/internal/testutil"
	pkgjwt "github.com/jhoicas/restaurante-api/pkg/jwt"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

const (
	testSecret   = "secreto-de-prueba"
	testIssuer   = "restaurante-api"
	testPassword = "correcta"
)

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

type fakePDF struct{}

func (fakePDF) GenerateMonthlyReport(context.Context, ports.MonthlyReport) ([]byte, error) {
	return []byte("%PDF-1.4 prueba"), nil
}

type testEnv struct {
	app    *fiber.App
	store  *testutil.Store
	pinger *fakePinger
}

// newTestEnv arma la app completa sobre el store en memoria. Los casos de uso ven
// el 15/03/2024 15:00 (São Paulo); las sesiones se firman con la hora real.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	clock := ports.Clock{Now: func() time.Time { return time.Date(2024, 3, 15, 15, 0, 0, 0, loc) }, Loc: loc}

	s := testutil.NewStore()
	log := logger.Nop()
	seedUser(t, s, "u-admin", "Admin", "admin@rest.com", entity.RoleAdmin)
	seedUser(t, s, "u-manager", "Gerente", "gerente@rest.com", entity.RoleManager)

	authUC := auth.NewAuthUseCase(s.Users(), s.LoginAttemptRepo(), auth.Config{
		Secret:     testSecret,
		Issuer:     testIssuer,
		BcryptCost: bcrypt.MinCost,
	}, ports.SystemClock(loc), log)
	security := usecase.NewSecurityUseCase(s.LoginAttemptRepo(), s.AuditLogRepo(), clock)
	menu := usecase.NewMenuUseCase(s.MenuCategories(), s.MenuItems(), clock)
	pinger := &fakePinger{}
	metrics := apphttp.NewMetrics()

	app := apphttp.NewApp(apphttp.RouterDeps{
		AppName:      "restaurante-api-test",
		Log:          log,
		Guard:        apphttp.NewGuard(authUC, security, apphttp.NewValidator(), log, "session_token", metrics),
		Metrics:      metrics,
		Auth:         authUC,
		Employees:    usecase.NewEmployeeUseCase(s.Employees(), s.Advances(), clock),
		Advances:     usecase.NewAdvanceUseCase(s.Advances(), s.Employees(), clock),
		Payroll:      usecase.NewPayrollUseCase(s.Payroll(), s.Tx(), clock),
		Periods:      usecase.NewPayrollPeriodUseCase(s.PayrollPeriods(), s.Tx(), clock),
		Sales:        usecase.NewSalesUseCase(s.Sales(), "Restaurante Teste", clock),
		Expenses:     usecase.NewExpenseUseCase(s.Expenses(), clock),
		Revenues:     usecase.NewRevenueUseCase(s.Revenues(), clock),
		Menu:         menu,
		Users:        usecase.NewUserUseCase(s.Users(), bcrypt.MinCost, clock),
		Security:     security,
		TimeEntries:  usecase.NewTimeEntryUseCase(s.TimeEntries(), s.Employees(), clock),
		ShiftConfigs: usecase.NewShiftConfigUseCase(s.ShiftConfigs(), clock),
		Reports:      usecase.NewReportUseCase(s.Reports(), s.Employees(), fakePDF{}, "Restaurante Teste", clock),
		Health:       usecase.NewHealthUseCase(pinger, menu, clock),
	})
	return &testEnv{app: app, store: s, pinger: pinger}
}

func seedUser(t *testing.T, s *testutil.Store, id, name, email, role string) {
	t.Helper()
	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.Users().Create(context.Background(), &entity.User{
		ID: id, Name: name, Email: email, PasswordHash: hash, Role: role,
	}))
}

func seedEmployee(t *testing.T, s *testutil.Store, id, name, salary string) {
	t.Helper()
	require.NoError(t, s.Employees().Create(context.Background(), &entity.Employee{
		ID:     id,
		Name:   name,
		Role:   entity.DefaultEmployeeRole,
		Salary: decimal.RequireFromString(salary),
		Active: true,
	}))
}

// token firma una sesión válida para el usuario sembrado con ese rol.
func token(t *testing.T, role string) string {
	t.Helper()
	id := pkgjwt.Identity{UserID: "u-admin", Email: "admin@rest.com", Name: "Admin", Role: role}
	if role == entity.RoleManager {
		id = pkgjwt.Identity{UserID: "u-manager", Email: "gerente@rest.com", Name: "Gerente", Role: role}
	}
	tok, err := pkgjwt.Generate(testSecret, testIssuer, id, time.Hour, time.Now())
	require.NoError(t, err)
	return tok
}

// do lanza la petición; body puede ser string (JSON crudo) o cualquier valor serializable.
func (e *testEnv) do(t *testing.T, method, path, tok string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if tok != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

// lastAudit devuelve la última fila de la bitácora.
func lastAudit(t *testing.T, s *testutil.Store) entity.AuditLog {
	t.Helper()
	logs := s.AuditLogs()
	require.NotEmpty(t, logs)
	return logs[len(logs)-1]
}
