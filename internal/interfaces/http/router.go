package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obra-admin/internal/application/auth"
	"github.com/jhoicas/obra-admin/internal/application/crud"
	"github.com/jhoicas/obra-admin/internal/application/dashboard"
	"github.com/jhoicas/obra-admin/internal/application/inventory"
	"github.com/jhoicas/obra-admin/internal/application/reports"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/infrastructure/metrics"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Pages páginas CRUD por módulo.
type Pages struct {
	Projects         *crud.Page[entity.Project]
	Inventory        *crud.Page[entity.InventoryItem]
	Finances         *crud.Page[entity.FinanceEntry]
	Employees        *crud.Page[entity.Employee]
	Tenders          *crud.Page[entity.Tender]
	Drawings         *crud.Page[entity.Drawing]
	DailyReports     *crud.Page[entity.DailyReport]
	MaterialRequests *crud.Page[entity.MaterialRequest]
	MoneyRequests    *crud.Page[entity.MoneyRequest]
	Users            *crud.Page[entity.User]
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions  *auth.SessionService
	Decider   *access.Decider
	Pages     Pages
	Stock     *inventory.StockUseCase
	Dashboard *dashboard.DashboardUseCase
	ReportPDF *reports.PDFUseCase
	Metrics   *metrics.Collectors
	Cookie    CookieConfig
	Log       *logger.Logger
}

// Router registra las rutas del servicio.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
	}
	app.Use(SessionMiddleware(deps.Sessions, deps.Cookie.Name, deps.Log))

	// Públicas
	authHandler := NewAuthHandler(deps.Sessions, deps.Cookie)
	app.Post(LoginPath, authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get(NotFoundPath, NotFound)

	// Sesión: cualquier usuario autenticado. Se registra antes del grupo con guard
	// porque "sesion" no es un módulo.
	app.Get("/app/sesion", RequireSession(), authHandler.Session)

	// Rutas de módulo (guard por rol)
	appGroup := app.Group("/app", RouteGuard(deps.Decider, deps.Metrics, deps.Log))

	if deps.Dashboard != nil {
		appGroup.Get("/dashboard", NewDashboardHandler(deps.Dashboard).GetSummary)
	}

	p := deps.Pages
	mount(appGroup.Group("/proyectos"), p.Projects)

	inv := appGroup.Group("/inventario")
	if deps.Stock != nil {
		invHandler := NewInventoryHandler(deps.Stock)
		inv.Post("/:id/ajuste", invHandler.Adjust)
		inv.Get("/:id/ajustes", invHandler.History)
	}
	mount(inv, p.Inventory)

	mount(appGroup.Group("/finanzas"), p.Finances)
	mount(appGroup.Group("/rrhh"), p.Employees)
	mount(appGroup.Group("/licitaciones"), p.Tenders)
	mount(appGroup.Group("/planos"), p.Drawings)

	rep := appGroup.Group("/reportes")
	if deps.ReportPDF != nil {
		rep.Get("/:id/pdf", NewReportHandler(deps.ReportPDF).DownloadPDF)
	}
	mount(rep, p.DailyReports)

	mount(appGroup.Group("/solicitudes/materiales"), p.MaterialRequests)
	mount(appGroup.Group("/solicitudes/dinero"), p.MoneyRequests)
	mount(appGroup.Group("/usuarios"), p.Users)

	app.Use(NotFound)
}

func mount[T crud.Record](r fiber.Router, page *crud.Page[T]) {
	if page == nil {
		return
	}
	NewResourceHandler(page).Mount(r)
}
