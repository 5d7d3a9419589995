package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	version, err := postgres.Migrate(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Uint("version", version).Msg("esquema actualizado")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clock := ports.SystemClock(cfg.App.Location())

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	advanceRepo := postgres.NewAdvanceRepository(pool)
	attemptRepo := postgres.NewLoginAttemptRepository(pool)
	shiftRepo := postgres.NewShiftConfigRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, attemptRepo, auth.Config{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		SessionTTL:        time.Duration(cfg.JWT.Expiration) * time.Minute,
		BcryptCost:        cfg.Security.BcryptCost,
		MaxFailedAttempts: cfg.Security.MaxFailedLogins,
		LockoutWindow:     cfg.Security.LockoutWindow,
		AttemptsTTL:       cfg.Security.AttemptsTTL,
	}, clock, log.Named("auth"))
	securityUC := usecase.NewSecurityUseCase(attemptRepo, postgres.NewAuditLogRepository(pool), clock)
	menuUC := usecase.NewMenuUseCase(postgres.NewMenuCategoryRepository(pool), postgres.NewMenuItemRepository(pool), clock)
	shiftUC := usecase.NewShiftConfigUseCase(shiftRepo, clock)

	if err := shiftUC.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("configuración de turnos por defecto")
	}

	metrics := httpRouter.NewMetrics()
	limiter := httpRouter.NewRateLimiter(httpRouter.RateLimitConfig{
		Auth:       httpRouter.RateRule{Requests: cfg.Security.AuthRateLimit, Window: cfg.Security.AuthRateWindow},
		PublicMenu: httpRouter.RateRule{Requests: cfg.Security.MenuRateLimit, Window: time.Minute},
		Write:      httpRouter.RateRule{Requests: cfg.Security.WriteRateLimit, Window: time.Minute},
		API:        httpRouter.RateRule{Requests: cfg.Security.APIRateLimit, Window: time.Minute},
	}, log, metrics)
	done := make(chan struct{})
	limiter.StartCleanup(5*time.Minute, 30*time.Minute, done)

	// PDF: reporte mensual con montos en formato pt-BR
	pdfGenerator := infrapdf.NewMarotoReportGenerator(clock.Now)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		Production:   cfg.App.IsProduction(),
		SwaggerFile:  cfg.HTTP.SwaggerFile,
		Log:          log,
		Guard:        httpRouter.NewGuard(authUC, securityUC, httpRouter.NewValidator(), log, cfg.JWT.CookieName, metrics),
		Metrics:      metrics,
		RateLimiter:  limiter,
		Auth:         authUC,
		Employees:    usecase.NewEmployeeUseCase(employeeRepo, advanceRepo, clock),
		Advances:     usecase.NewAdvanceUseCase(advanceRepo, employeeRepo, clock),
		Payroll:      usecase.NewPayrollUseCase(postgres.NewPayrollRepository(pool), txRunner, clock),
		Periods:      usecase.NewPayrollPeriodUseCase(postgres.NewPayrollPeriodRepository(pool), txRunner, clock),
		Sales:        usecase.NewSalesUseCase(postgres.NewSalesRepository(pool), cfg.App.Business, clock),
		Expenses:     usecase.NewExpenseUseCase(postgres.NewExpenseRepository(pool), clock),
		Revenues:     usecase.NewRevenueUseCase(postgres.NewRevenueRepository(pool), clock),
		Menu:         menuUC,
		Users:        usecase.NewUserUseCase(userRepo, cfg.Security.BcryptCost, clock),
		Security:     securityUC,
		TimeEntries:  usecase.NewTimeEntryUseCase(postgres.NewTimeEntryRepository(pool), employeeRepo, clock),
		ShiftConfigs: shiftUC,
		Reports:      usecase.NewReportUseCase(postgres.NewReportRepository(pool), employeeRepo, pdfGenerator, cfg.App.Business, clock),
		Health:       usecase.NewHealthUseCase(pool, menuUC, clock),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(done)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
