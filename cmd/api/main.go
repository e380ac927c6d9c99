package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Panaderia-api/internal/application/auth"
	"github.com/jhoicas/Panaderia-api/internal/application/catalog"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/application/reports"
	infrapdf "github.com/jhoicas/Panaderia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Panaderia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Panaderia-api/internal/interfaces/http"
	"github.com/jhoicas/Panaderia-api/pkg/config"
	"github.com/jhoicas/Panaderia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos atados al pool (lecturas y catálogo). Los repos transaccionales
	// los construye el TxRunner por cada operación del motor.
	ingredientRepo := postgres.NewIngredientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	txRunner := postgres.NewTxRunner(pool, time.Duration(cfg.Inventory.LockTimeoutMS)*time.Millisecond)

	transactionUC := inventory.NewTransactionUseCase(
		txRunner,
		ingredientRepo, productRepo, supplierRepo, sellerRepo, recipeRepo,
		inventory.Config{AllowRecipelessProduction: cfg.Inventory.AllowRecipelessProduction},
		nil,
	)
	ledgerUC := inventory.NewLedgerUseCase(saleRepo, purchaseRepo, productionRepo)

	ingredientUC := catalog.NewIngredientUseCase(ingredientRepo)
	productUC := catalog.NewProductUseCase(productRepo)
	recipeUC := catalog.NewRecipeUseCase(recipeRepo, productRepo, ingredientRepo)
	supplierUC := catalog.NewSupplierUseCase(supplierRepo)
	sellerUC := catalog.NewSellerUseCase(sellerRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

	ticketGen := infrapdf.NewSaleTicketGenerator(cfg.App.Name, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransactionUC: transactionUC,
		LedgerUC:      ledgerUC,
		IngredientUC:  ingredientUC,
		ProductUC:     productUC,
		RecipeUC:      recipeUC,
		SupplierUC:    supplierUC,
		SellerUC:      sellerUC,
		ReportUC:      reportUC,
		AuthUC:        authUC,
		TicketGen:     ticketGen,
		JWTSecret:     cfg.JWT.Secret,
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
