package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	BatchUC     *inventory.BatchUseCase
	MovementUC  *inventory.MovementUseCase
	DashboardUC *analytics.DashboardUseCase

	JWTSecret          string
	Revocation         RevocationChecker // nil deshabilita la verificación de revocación
	LoginRatePerMinute int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)

	// Auth (público)
	app.Post("/auth/login", LoginRateLimit(deps.LoginRatePerMinute), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Revocation))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Users: lectura de la lista para cualquier usuario; el resto solo admin
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	admin := RequireAccess(entity.AccessAdmin)
	users.Get("/", userHandler.List)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Post("/", admin, userHandler.Create)
	users.Put("/", admin, userHandler.Update)
	users.Put("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/", categoryHandler.Update)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/supplier/:supplierId", productHandler.ListBySupplier)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/", productHandler.Update)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/", supplierHandler.Update)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Batches: POST genera el movimiento de entrada
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Post("/", batchHandler.Create)
	batches.Put("/", batchHandler.Update)
	batches.Put("/:id", batchHandler.Update)
	batches.Delete("/:id", batchHandler.Delete)

	movements := protected.Group("/movement")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", movementHandler.Create)
	movements.Put("/", movementHandler.Update)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	dash := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/total-products", dashboardHandler.TotalProducts)
	dash.Get("/total-amount", dashboardHandler.TotalAmount)
	dash.Get("/expiring-batches", dashboardHandler.ExpiringBatches)
	dash.Get("/low-stock", dashboardHandler.LowStock)
	dash.Get("/stock-summary", dashboardHandler.StockSummary)
	dash.Get("/stock-summary/pdf", dashboardHandler.StockSummaryPDF)
}
