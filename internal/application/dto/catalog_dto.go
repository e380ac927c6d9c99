package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Insumos ───────────────────────────────────────────────────────────────────

// CreateIngredientRequest alta de insumo. Cantidades como string: el parser
// del motor es tolerante (vacío o ilegible cuenta como cero).
type CreateIngredientRequest struct {
	Name         string `json:"name"`
	InitialStock string `json:"initial_stock"`
	UnitCost     string `json:"unit_cost"`
}

// UpdateIngredientRequest edición de insumo. El stock no se edita por aquí.
type UpdateIngredientRequest struct {
	Name     string `json:"name"`
	UnitCost string `json:"unit_cost"`
}

// IngredientResponse representación de un insumo.
type IngredientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IngredientListResponse lista paginada de insumos.
type IngredientListResponse struct {
	Items  []IngredientResponse `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductRequest alta de producto. Kind: PAN (fabricado) o BEBIDA
// (reventa). El tipo es fijo después del alta.
type CreateProductRequest struct {
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	InitialStock string `json:"initial_stock"`
	UnitCost     string `json:"unit_cost"`
	UnitPrice    string `json:"unit_price"`
}

// UpdateProductRequest edición de producto. Ni Kind ni Stock se editan.
type UpdateProductRequest struct {
	Name      string `json:"name"`
	UnitCost  string `json:"unit_cost"`
	UnitPrice string `json:"unit_price"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Stock     decimal.Decimal `json:"stock"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// CreateRecipeLineRequest agrega una línea a la receta de un producto PAN.
type CreateRecipeLineRequest struct {
	IngredientID    string `json:"ingredient_id"`
	QuantityPerUnit string `json:"quantity_per_unit"`
}

// RecipeLineResponse línea de receta.
type RecipeLineResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	IngredientID    string          `json:"ingredient_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplierRequest alta de proveedor. Category: INSUMOS o BEBIDAS.
type CreateSupplierRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// UpdateSupplierRequest edición de contacto. La categoría no cambia.
type UpdateSupplierRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items  []SupplierResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ── Vendedores ────────────────────────────────────────────────────────────────

// CreateSellerRequest alta de vendedor.
type CreateSellerRequest struct {
	Name string `json:"name"`
}

// SellerResponse representación de un vendedor.
type SellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SellerListResponse lista paginada de vendedores.
type SellerListResponse struct {
	Items  []SellerResponse `json:"items"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
