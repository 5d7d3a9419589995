package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	Production   bool
	SwaggerFile  string
	Log          *logger.Logger
	Guard        *Guard
	Metrics      *Metrics
	RateLimiter  *RateLimiter
	Auth         authService
	Employees    *usecase.EmployeeUseCase
	Advances     *usecase.AdvanceUseCase
	Payroll      *usecase.PayrollUseCase
	Periods      *usecase.PayrollPeriodUseCase
	Sales        *usecase.SalesUseCase
	Expenses     *usecase.ExpenseUseCase
	Revenues     *usecase.RevenueUseCase
	Menu         *usecase.MenuUseCase
	Users        *usecase.UserUseCase
	Security     *usecase.SecurityUseCase
	TimeEntries  *usecase.TimeEntryUseCase
	ShiftConfigs *usecase.ShiftConfigUseCase
	Reports      *usecase.ReportUseCase
	Health       *usecase.HealthUseCase
}

// NewApp crea la app Fiber con la cadena de middlewares y todas las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    1 << 20,
		ErrorHandler: ErrorHandler(deps.Log),
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !deps.Production}))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(BlockSuspiciousPaths(deps.Log))
	app.Use(SecurityHeaders(deps.Production))
	if deps.RateLimiter != nil {
		app.Use(deps.RateLimiter.Handler())
	}

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Restaurante API",
			}))
		}
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	g := deps.Guard
	admin := []string{entity.RoleAdmin}
	staff := []string{entity.RoleAdmin, entity.RoleManager}

	app.Get("/health", Secure(g, SecureOptions{Public: true}, NewHealthHandler(deps.Health).Check))
	if deps.Metrics != nil {
		app.Get("/metrics", AuthMiddleware(g), RequireRole(entity.RoleAdmin), deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.Auth, g.cookieName, deps.Production)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", Secure(g, SecureOptions{Public: true, AuditAction: entity.AuditLogin}, authHandler.Login))
	authGroup.Post("/logout", Secure(g, SecureOptions{Public: true, AuditAction: entity.AuditLogout}, authHandler.Logout))
	authGroup.Get("/session", Secure(g, SecureOptions{}, authHandler.Session))

	// Employees (DELETE solo ADMIN)
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.Employees)
	employees.Get("/", Secure(g, SecureOptions{}, employeeHandler.List))
	employees.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditCreateEmployee}, employeeHandler.Create))
	employees.Get("/:id", Secure(g, SecureOptions{}, employeeHandler.Get))
	employees.Put("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateEmployee}, employeeHandler.Update))
	employees.Delete("/:id", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditDeleteEmployee}, employeeHandler.Delete))

	// Advances
	advances := api.Group("/advances")
	advanceHandler := NewAdvanceHandler(deps.Advances)
	advances.Get("/", Secure(g, SecureOptions{}, advanceHandler.List))
	advances.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditCreateAdvance}, advanceHandler.Create))
	advances.Put("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateAdvance}, advanceHandler.Update))
	advances.Delete("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditDeleteAdvance}, advanceHandler.Delete))

	// Payroll
	payroll := api.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.Payroll)
	payroll.Get("/", Secure(g, SecureOptions{}, payrollHandler.List))
	payroll.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditGeneratePayroll}, payrollHandler.Generate))
	payroll.Put("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdatePayroll}, payrollHandler.Update))

	// Payroll periods: cierre por turnos trabajados
	periods := api.Group("/payroll-periods")
	periodHandler := NewPayrollPeriodHandler(deps.Periods)
	periods.Get("/", Secure(g, SecureOptions{}, periodHandler.List))
	periods.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditClosePayrollPeriod}, periodHandler.Close))
	periods.Get("/:id", Secure(g, SecureOptions{}, periodHandler.Get))

	// Expenses / Revenues
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.Expenses)
	expenses.Get("/", Secure(g, SecureOptions{}, expenseHandler.List))
	expenses.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditCreateExpense}, expenseHandler.Create))
	expenses.Put("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateExpense}, expenseHandler.Update))
	expenses.Delete("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditDeleteExpense}, expenseHandler.Delete))

	revenues := api.Group("/revenues")
	revenueHandler := NewRevenueHandler(deps.Revenues)
	revenues.Get("/", Secure(g, SecureOptions{}, revenueHandler.List))
	revenues.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditCreateRevenue}, revenueHandler.Create))
	revenues.Put("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateRevenue}, revenueHandler.Update))
	revenues.Delete("/:id", Secure(g, SecureOptions{AuditAction: entity.AuditDeleteRevenue}, revenueHandler.Delete))

	// Menu (público solo /menu/public; borrar categorías solo ADMIN)
	menu := api.Group("/menu")
	menuHandler := NewMenuHandler(deps.Menu)
	menu.Get("/public", Secure(g, SecureOptions{Public: true}, menuHandler.Public))
	menu.Get("/categories", Secure(g, SecureOptions{}, menuHandler.ListCategories))
	menu.Post("/categories", Secure(g, SecureOptions{AuditAction: entity.AuditCreateMenuCategory}, menuHandler.CreateCategory))
	menu.Get("/categories/:id", Secure(g, SecureOptions{}, menuHandler.GetCategory))
	menu.Put("/categories/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateMenuCategory}, menuHandler.UpdateCategory))
	menu.Delete("/categories/:id", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditDeleteMenuCategory}, menuHandler.DeleteCategory))
	menu.Get("/items", Secure(g, SecureOptions{}, menuHandler.ListItems))
	menu.Post("/items", Secure(g, SecureOptions{AuditAction: entity.AuditCreateMenuItem}, menuHandler.CreateItem))
	menu.Get("/items/:id", Secure(g, SecureOptions{}, menuHandler.GetItem))
	menu.Put("/items/:id", Secure(g, SecureOptions{AuditAction: entity.AuditUpdateMenuItem}, menuHandler.UpdateItem))
	menu.Delete("/items/:id", Secure(g, SecureOptions{AuditAction: entity.AuditDeleteMenuItem}, menuHandler.DeleteItem))

	// Users (solo ADMIN)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.Users)
	users.Get("/", Secure(g, SecureOptions{Roles: admin}, userHandler.List))
	users.Post("/", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditCreateUser}, userHandler.Create))
	users.Get("/:id", Secure(g, SecureOptions{Roles: admin}, userHandler.Get))
	users.Put("/:id", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditUpdateUser}, userHandler.Update))
	users.Delete("/:id", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditDeleteUser}, userHandler.Delete))

	// Security (solo ADMIN)
	security := api.Group("/security")
	securityHandler := NewSecurityHandler(deps.Security)
	security.Get("/login-attempts", Secure(g, SecureOptions{Roles: admin}, securityHandler.LoginAttempts))
	security.Get("/logs", Secure(g, SecureOptions{Roles: admin}, securityHandler.Logs))

	// Time entries: el rol se filtra antes de leer el body; la ventana por fecha la aplica el caso de uso
	timeEntries := api.Group("/time-entries")
	timeEntryHandler := NewTimeEntryHandler(deps.TimeEntries)
	timeEntries.Get("/", Secure(g, SecureOptions{Roles: staff}, timeEntryHandler.List))
	timeEntries.Post("/", Secure(g, SecureOptions{Roles: staff, AuditAction: entity.AuditCreateTimeEntry}, timeEntryHandler.Create))
	timeEntries.Get("/:id", Secure(g, SecureOptions{Roles: staff}, timeEntryHandler.Get))
	timeEntries.Put("/:id", Secure(g, SecureOptions{Roles: staff, AuditAction: entity.AuditUpdateTimeEntry}, timeEntryHandler.Update))
	timeEntries.Delete("/:id", Secure(g, SecureOptions{Roles: staff, AuditAction: entity.AuditDeleteTimeEntry}, timeEntryHandler.Delete))

	// Shift config (lectura para cualquier sesión, escritura ADMIN)
	shiftHandler := NewShiftConfigHandler(deps.ShiftConfigs)
	api.Get("/shift-config", Secure(g, SecureOptions{}, shiftHandler.List))
	api.Put("/shift-config", Secure(g, SecureOptions{Roles: admin, AuditAction: entity.AuditUpdateShiftConfig}, shiftHandler.Update))

	// Sales (sincronización del PDV)
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.Sales)
	sales.Get("/", Secure(g, SecureOptions{}, salesHandler.List))
	sales.Post("/", Secure(g, SecureOptions{AuditAction: entity.AuditSyncSales}, salesHandler.Sync))
	sales.Get("/stats", Secure(g, SecureOptions{}, salesHandler.Stats))

	// Reports
	reportHandler := NewReportHandler(deps.Reports)
	api.Get("/reports", Secure(g, SecureOptions{}, reportHandler.Report))
	api.Get("/reports/monthly.pdf", Secure(g, SecureOptions{}, reportHandler.MonthlyPDF))
}
