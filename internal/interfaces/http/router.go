package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Panaderia-api/internal/application/auth"
	"github.com/jhoicas/Panaderia-api/internal/application/catalog"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/application/reports"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransactionUC *inventory.TransactionUseCase
	LedgerUC      *inventory.LedgerUseCase
	IngredientUC  *catalog.IngredientUseCase
	ProductUC     *catalog.ProductUseCase
	RecipeUC      *catalog.RecipeUseCase
	SupplierUC    *catalog.SupplierUseCase
	SellerUC      *catalog.SellerUseCase
	ReportUC      *reports.ReportUseCase
	AuthUC        *auth.AuthUseCase
	TicketGen     *pdf.SaleTicketGenerator
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(entity.RoleAdmin, entity.RolePanadero, entity.RoleVendedor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Insumos (catálogo; edición solo admin)
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", anyRole, ingredientHandler.List)
	ingredients.Get("/:id", anyRole, ingredientHandler.GetByID)
	ingredients.Post("/", adminOnly, ingredientHandler.Create)
	ingredients.Put("/:id", adminOnly, ingredientHandler.Update)

	// Productos y recetas
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Get("/:id/recipe", anyRole, recipeHandler.List)
	products.Post("/:id/recipe", adminOnly, recipeHandler.AddLine)
	products.Delete("/:id/recipe/:lineId", adminOnly, recipeHandler.RemoveLine)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", anyRole, supplierHandler.List)
	suppliers.Get("/:id", anyRole, supplierHandler.GetByID)
	suppliers.Post("/", adminOnly, supplierHandler.Create)
	suppliers.Put("/:id", adminOnly, supplierHandler.Update)

	// Vendedores
	sellers := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellers.Get("/", anyRole, sellerHandler.List)
	sellers.Get("/:id", anyRole, sellerHandler.GetByID)
	sellers.Post("/", adminOnly, sellerHandler.Create)
	sellers.Put("/:id", adminOnly, sellerHandler.Update)

	// Motor de transacciones y libro
	txHandler := NewTransactionHandler(deps.TransactionUC)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.TicketGen)

	sales := protected.Group("/sales")
	sales.Post("/", RequireRole(entity.RoleAdmin, entity.RoleVendedor), txHandler.SubmitSale)
	sales.Get("/", anyRole, ledgerHandler.ListSales)
	sales.Get("/:id", anyRole, ledgerHandler.GetSale)
	sales.Get("/:id/ticket", anyRole, ledgerHandler.GetSaleTicket)

	purchases := protected.Group("/purchases")
	purchases.Post("/", RequireRole(entity.RoleAdmin, entity.RolePanadero), txHandler.SubmitPurchase)
	purchases.Get("/", anyRole, ledgerHandler.ListPurchases)
	purchases.Get("/:id", anyRole, ledgerHandler.GetPurchase)

	productions := protected.Group("/productions")
	productions.Post("/", RequireRole(entity.RoleAdmin, entity.RolePanadero), txHandler.SubmitProduction)
	productions.Get("/", anyRole, ledgerHandler.ListProductions)
	productions.Get("/:id", anyRole, ledgerHandler.GetProduction)

	// Reportes (solo admin)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/daily-revenue", adminOnly, reportHandler.DailyRevenue)
	reportsGroup.Get("/top-products", adminOnly, reportHandler.TopProducts)
	reportsGroup.Get("/low-stock", adminOnly, reportHandler.LowStock)
}
