package main

import (
	"log"
	"strings"

	"distribuidora-backend/internal/admin"
	"distribuidora-backend/internal/audit"
	"distribuidora-backend/internal/auth"
	"distribuidora-backend/internal/central"
	"distribuidora-backend/internal/config"
	"distribuidora-backend/internal/dashboard"
	"distribuidora-backend/internal/database"
	"distribuidora-backend/internal/inventory"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Colaborador de estoque: API da matriz quando configurada, senão o
	// Postgres local.
	var backend stock.Backend
	if cfg.CentralAPIURL != "" {
		backend = central.New(cfg.CentralAPIURL, cfg.CentralAPIKey)
		log.Println("Backend de estoque: matriz em", cfg.CentralAPIURL)
	} else {
		backend = stock.NewGormBackend(database.DB)
		log.Println("Backend de estoque: Postgres local")
	}
	inventory.UseBackend(backend)
	admin.UseBackend(backend)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado do servidor",
			})
		},
	})

	// CORS origins vêm como string separada por vírgula
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Super admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	// Gestão de filiais
	adminRoutes.Post("/branches", admin.CreateBranchHandler())
	adminRoutes.Get("/branches", admin.ListBranchesHandler())
	adminRoutes.Get("/branches/:id", admin.GetBranchHandler())
	adminRoutes.Put("/branches/:id", admin.UpdateBranchHandler())
	adminRoutes.Delete("/branches/:id", admin.DeleteBranchHandler())
	adminRoutes.Post("/branches/:id/admin", admin.CreateBranchAdminHandler())
	adminRoutes.Get("/branches/:id/admins", admin.ListBranchAdminsHandler())

	// Rotas comuns (autenticadas)

	// Itens de estoque
	protected.Get("/stock-items", inventory.ListStockItemsHandler())
	protected.Post("/stock-items", inventory.CreateStockItemHandler())
	protected.Put("/stock-items/:id/field", inventory.UpdateStockItemFieldHandler())
	protected.Delete("/stock-items/:id", inventory.DeleteStockItemHandler())

	// Grupos e resumo
	protected.Delete("/stock-groups", inventory.DeleteStockGroupHandler())
	protected.Get("/stock-summary", inventory.StockSummaryHandler())
	protected.Get("/stock-export", inventory.ExportStockHandler())

	// Categorias declaradas
	protected.Get("/stock-categories", inventory.ListStockCategoriesHandler())
	protected.Post("/stock-categories", inventory.CreateStockCategoryHandler())
	protected.Delete("/stock-categories/:id", inventory.DeleteStockCategoryHandler())

	// Dashboard
	protected.Get("/dashboard/stock-chart", dashboard.StockChartHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Servidor ouvindo na porta", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
