package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/obra-admin/docs"
	"github.com/jhoicas/obra-admin/internal/application/auth"
	"github.com/jhoicas/obra-admin/internal/application/crud"
	"github.com/jhoicas/obra-admin/internal/application/dashboard"
	"github.com/jhoicas/obra-admin/internal/application/inventory"
	"github.com/jhoicas/obra-admin/internal/application/reports"
	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/internal/infrastructure/api"
	"github.com/jhoicas/obra-admin/internal/infrastructure/memory"
	"github.com/jhoicas/obra-admin/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/obra-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/obra-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/obra-admin/internal/infrastructure/secure"
	httpRouter "github.com/jhoicas/obra-admin/internal/interfaces/http"
	"github.com/jhoicas/obra-admin/pkg/config"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("api", cfg.API.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	// Tabla de permisos y navegación: los desajustes no impiden arrancar.
	permissions := access.DefaultPermissions()
	navigation := access.DefaultNavigation()
	for _, inc := range access.CheckConsistency(permissions, navigation) {
		log.Warn().
			Str("role", string(inc.Role)).
			Str("module", string(inc.Module)).
			Str("kind", inc.Kind).
			Str("path", inc.Path).
			Msg("permisos y navegación no coinciden")
	}
	decider := access.NewDecider(permissions)

	ctx := context.Background()

	// Almacén de sesiones
	var (
		sessionRepo repository.SessionRepository
		auditRepo   repository.StockAdjustmentRepository
	)
	switch cfg.Session.Store {
	case "postgres":
		if cfg.Session.Key == "" {
			log.Warn().Msg("SESSION_KEY vacío: las sesiones persistidas no sobrevivirán un reinicio")
		}
		sealer, err := secure.NewSealer(cfg.Session.Key)
		if err != nil {
			log.Fatal().Err(err).Msg("cifrador de sesiones")
		}
		if cfg.DB.Migrate {
			version, err := postgres.Migrate(cfg.DB.ConnectionString())
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Uint("version", version).Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		sessionRepo = postgres.NewSessionRepository(pool, sealer)
		auditRepo = postgres.NewStockAdjustmentRepository(pool)
	default:
		sessionRepo = memory.NewSessionRepository()
		auditRepo = memory.NewStockAdjustmentRepository()
	}

	collectors := metrics.New()
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, api.WithObserver(collectors))

	projectsRes := api.NewResource[entity.Project](client, api.ResourceProjects)
	inventoryRes := api.NewResource[entity.InventoryItem](client, api.ResourceInventory)
	financesRes := api.NewResource[entity.FinanceEntry](client, api.ResourceFinances)
	employeesRes := api.NewResource[entity.Employee](client, api.ResourceEmployees)
	tendersRes := api.NewResource[entity.Tender](client, api.ResourceTenders)
	drawingsRes := api.NewResource[entity.Drawing](client, api.ResourceDrawings)
	reportsRes := api.NewResource[entity.DailyReport](client, api.ResourceDailyReports)
	materialRes := api.NewResource[entity.MaterialRequest](client, api.ResourceMaterialRequests)
	moneyRes := api.NewResource[entity.MoneyRequest](client, api.ResourceMoneyRequests)
	usersRes := api.NewResource[entity.User](client, api.ResourceUsers)

	views := crud.NewViewStore()
	validator := crud.NewValidator()
	pages := httpRouter.Pages{
		Projects:         crud.NewPage[entity.Project](projectsRes, views, validator, log),
		Inventory:        crud.NewPage[entity.InventoryItem](inventoryRes, views, validator, log),
		Finances:         crud.NewPage[entity.FinanceEntry](financesRes, views, validator, log),
		Employees:        crud.NewPage[entity.Employee](employeesRes, views, validator, log),
		Tenders:          crud.NewPage[entity.Tender](tendersRes, views, validator, log),
		Drawings:         crud.NewPage[entity.Drawing](drawingsRes, views, validator, log),
		DailyReports:     crud.NewPage[entity.DailyReport](reportsRes, views, validator, log),
		MaterialRequests: crud.NewPage[entity.MaterialRequest](materialRes, views, validator, log),
		MoneyRequests:    crud.NewPage[entity.MoneyRequest](moneyRes, views, validator, log),
		Users:            crud.NewPage[entity.User](usersRes, views, validator, log),
	}

	sessions := auth.NewSessionService(client, sessionRepo, views, navigation, auth.SessionConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
	}, log)

	stockUC := inventory.NewStockUseCase(pages.Inventory, auditRepo, log)
	dashboardUC := dashboard.NewDashboardUseCase(dashboard.Sources{
		Projects:         projectsRes,
		Inventory:        inventoryRes,
		Finances:         financesRes,
		Employees:        employeesRes,
		Tenders:          tendersRes,
		MaterialRequests: materialRes,
		MoneyRequests:    moneyRes,
	}, decider, log)
	reportPDFUC := reports.NewPDFUseCase(reportsRes, projectsRes, infrapdf.NewMarotoReportGenerator(cfg.App.Name), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Obra Admin API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(collectors.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:  sessions,
		Decider:   decider,
		Pages:     pages,
		Stock:     stockUC,
		Dashboard: dashboardUC,
		ReportPDF: reportPDFUC,
		Metrics:   collectors,
		Cookie:    httpRouter.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
		Log:       log,
	})

	// Purga periódica de sesiones vencidas
	purgeCtx, stopPurge := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				n, err := sessions.Purge(purgeCtx)
				if err != nil {
					log.Error().Err(err).Msg("purga de sesiones")
					continue
				}
				if n > 0 {
					log.Info().Int64("deleted", n).Msg("sesiones vencidas purgadas")
				}
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopPurge()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
