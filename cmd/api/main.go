package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Revocación de tokens: Redis si está configurado; si no, logout sin efecto.
	var tokens auth.TokenStore = cache.NoopTokenStore{}
	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		tokens = cache.NewRedisTokenStore(client)
	} else {
		log.Warn().Msg("REDIS_URL vacío: el logout no revoca tokens")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.BcryptCost)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	batchUC := inventory.NewBatchUseCase(txRunner, batchRepo, supplierRepo, log)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(
		dashboardRepo,
		infrapdf.NewMarotoStockReport(cfg.App.Name),
		appanalytics.Defaults{
			ExpiringDays:      cfg.Dashboard.ExpiringDays,
			LowStockThreshold: cfg.Dashboard.LowStockThreshold,
		},
	)
	authUC := auth.NewAuthUseCase(userRepo, tokens, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		hctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(hctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		UserUC:             userUC,
		CategoryUC:         categoryUC,
		ProductUC:          productUC,
		SupplierUC:         supplierUC,
		BatchUC:            batchUC,
		MovementUC:         movementUC,
		DashboardUC:        dashboardUC,
		JWTSecret:          cfg.JWT.Secret,
		Revocation:         tokens,
		LoginRatePerMinute: cfg.Auth.LoginRatePerMinute,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
