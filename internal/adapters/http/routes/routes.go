package routes

import (
	"intia-api/internal/adapters/http/handlers"
	"intia-api/internal/adapters/http/middleware"
	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/config"
	"intia-api/internal/core/services"
	"intia-api/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Setup configures all routes for the application.
// gatherer backs /metrics; pass nil to leave the endpoint out.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, m *metrics.Metrics, gatherer prometheus.Gatherer) {
	// Initialize repositories
	branchRepo := repositories.NewBranchRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	transactor := repositories.NewTransactor(db)

	// Initialize services
	branchService := services.NewBranchService(branchRepo)
	clientService := services.NewClientService(transactor, clientRepo, branchRepo, policyRepo, m)
	policyService := services.NewPolicyService(policyRepo, clientRepo, branchRepo, m)
	statsService := services.NewStatsService(statsRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	branchHandler := handlers.NewBranchHandler(branchService)
	clientHandler := handlers.NewClientHandler(clientService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	statsHandler := handlers.NewStatsHandler(statsService)

	if m != nil {
		app.Use(middleware.Metrics(m))
	}

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", middleware.NoCacheHeaders(), healthHandler.HealthCheck)

	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	setupBranchRoutes(app.Group("/branches"), branchHandler)
	setupClientRoutes(app.Group("/clients"), clientHandler)
	setupPolicyRoutes(app.Group("/policies"), policyHandler)
	setupStatsRoutes(app.Group("/admin-stats"), statsHandler)
}

// setupBranchRoutes configures branch registry routes
func setupBranchRoutes(router fiber.Router, h *handlers.BranchHandler) {
	router.Get("/", h.List)
	router.Post("/", h.Create)
}

// setupClientRoutes configures client directory routes (actor scoped)
func setupClientRoutes(router fiber.Router, h *handlers.ClientHandler) {
	router.Use(middleware.Actor())
	router.Use(middleware.PrivateCacheHeaders())

	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Patch("/:id", h.Update)
	router.Delete("/:id", h.Remove)
}

// setupPolicyRoutes configures policy ledger routes
func setupPolicyRoutes(router fiber.Router, h *handlers.PolicyHandler) {
	router.Post("/", h.Create)
	router.Get("/", h.List)
	router.Get("/:id", h.Get)
	router.Patch("/:id", h.Update)
	router.Delete("/:id", h.Remove)
}

// setupStatsRoutes configures admin dashboard routes
func setupStatsRoutes(router fiber.Router, h *handlers.StatsHandler) {
	router.Use(middleware.NoCacheHeaders())
	router.Get("/overview", h.Overview)
}
