package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store *memStore
	data  *memRefData
	uc    *TransactionUseCase
}

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	store := newMemStore()
	data := newMemRefData()
	uc := NewTransactionUseCase(
		&memTxRunner{store: store},
		&memIngredientRepo{d: data},
		&memProductRepo{d: data},
		&memSupplierRepo{d: data},
		&memSellerRepo{d: data},
		&memRecipeRepo{d: data},
		cfg,
		func() time.Time { return fixedNow },
	)
	return &fixture{store: store, data: data, uc: uc}
}

func (f *fixture) addIngredient(id string, stock string) {
	f.data.ingredients[id] = &entity.Ingredient{ID: id, Name: id}
	f.store.setStock(entity.IngredientRef(id), dec(stock))
}

func (f *fixture) addProduct(id, kind string, stock, price string) {
	f.data.products[id] = &entity.Product{ID: id, Name: id, Kind: kind, UnitPrice: dec(price)}
	f.store.setStock(entity.ProductRef(id), dec(stock))
}

func (f *fixture) addRecipeLine(productID, ingredientID, perUnit string) {
	f.data.recipes[productID] = append(f.data.recipes[productID], &entity.RecipeLine{
		ProductID: productID, IngredientID: ingredientID, QuantityPerUnit: dec(perUnit),
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

// El mismo producto dos veces en el carrito (3 y 2) debe comportarse igual
// que una sola línea de 5: un solo débito, sin descontar doble.
func TestSubmitSale_ConsolidaLineasDuplicadas(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.sellers["s1"] = &entity.Seller{ID: "s1", Name: "Marta"}
	f.addProduct("q", entity.ProductKindBebida, "10", "5.00")

	receipt, err := f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		SellerID: "s1",
		Lines: []dto.SaleLineRequest{
			{ProductID: "q", Quantity: "3"},
			{ProductID: "q", Quantity: "2"},
		},
	})
	require.NoError(t, err)

	assert.True(t, f.store.stock(entity.ProductRef("q")).Equal(dec("5")))
	require.Len(t, receipt.Lines, 1)
	assert.True(t, receipt.Lines[0].Quantity.Equal(dec("5")))
	assert.True(t, receipt.Total.Equal(dec("25.00")), "total = 5 × 5.00")
	require.Len(t, f.store.sales, 1)
	require.Len(t, f.store.saleLines[receipt.SaleID], 1)
}

// Un faltante en una línea rechaza toda la venta, incluidas las líneas que
// sí alcanzaban, sin tocar el stock ni escribir en el libro.
func TestSubmitSale_FaltanteRechazaTodo(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.sellers["s1"] = &entity.Seller{ID: "s1"}
	f.addProduct("pan", entity.ProductKindPan, "20", "1.00")
	f.addProduct("cola", entity.ProductKindBebida, "1", "4.50")

	_, err := f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		SellerID: "s1",
		Lines: []dto.SaleLineRequest{
			{ProductID: "pan", Quantity: "2"},
			{ProductID: "cola", Quantity: "3"},
		},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortfall *domain.ShortfallError
	require.ErrorAs(t, err, &shortfall)
	require.Len(t, shortfall.Items, 1)
	assert.Equal(t, entity.ProductRef("cola"), shortfall.Items[0].Ref)
	assert.True(t, shortfall.Items[0].Available.Equal(dec("1")))
	assert.True(t, shortfall.Items[0].Required.Equal(dec("3")))

	// Atomicidad: nada cambió.
	assert.True(t, f.store.stock(entity.ProductRef("pan")).Equal(dec("20")))
	assert.True(t, f.store.stock(entity.ProductRef("cola")).Equal(dec("1")))
	assert.Empty(t, f.store.sales)
}

// Filas en cero, negativas o ilegibles se descartan en silencio; si no queda
// ninguna, la operación es vacía.
func TestSubmitSale_OperacionVacia(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.sellers["s1"] = &entity.Seller{ID: "s1"}
	f.addProduct("pan", entity.ProductKindPan, "20", "1.00")

	_, err := f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		SellerID: "s1",
		Lines: []dto.SaleLineRequest{
			{ProductID: "pan", Quantity: "0"},
			{ProductID: "pan", Quantity: "-3"},
			{ProductID: "pan", Quantity: "no-numerico"},
		},
	})
	require.ErrorIs(t, err, domain.ErrEmptyOperation)
	assert.True(t, f.store.stock(entity.ProductRef("pan")).Equal(dec("20")))
}

func TestSubmitSale_VendedorRequerido(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.addProduct("pan", entity.ProductKindPan, "20", "1.00")

	_, err := f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		Lines: []dto.SaleLineRequest{{ProductID: "pan", Quantity: "1"}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
		SellerID: "fantasma",
		Lines:    []dto.SaleLineRequest{{ProductID: "pan", Quantity: "1"}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos ventas concurrentes del mismo producto, cada una satisfacible por sí
// sola pero no juntas: exactamente una confirma y la otra recibe faltante.
// Nunca ambas (sobreventa) ni ninguna.
func TestSubmitSale_ConcurrenciaSinSobreventa(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.sellers["s1"] = &entity.Seller{ID: "s1"}
	f.addProduct("pan", entity.ProductKindPan, "5", "1.00")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.uc.SubmitSale(context.Background(), dto.SubmitSaleRequest{
				SellerID: "s1",
				Lines:    []dto.SaleLineRequest{{ProductID: "pan", Quantity: "4"}},
			})
		}(i)
	}
	wg.Wait()

	var okCount, shortCount int
	for _, err := range results {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			shortCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una venta debe confirmar")
	assert.Equal(t, 1, shortCount, "la otra debe rechazarse por faltante")
	assert.True(t, f.store.stock(entity.ProductRef("pan")).Equal(dec("1")))
	assert.Len(t, f.store.sales, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: P stock=0, receta {I: 2/unidad}, I.stock=10. Producir 5 →
// P.stock=5, I.stock=0. Luego producir 1 más → faltante {I, 0, 2} sin efecto.
func TestSubmitProduction_ConsumeRecetaYLuegoRechaza(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.addProduct("p", entity.ProductKindPan, "0", "2.00")
	f.addIngredient("harina", "10")
	f.addRecipeLine("p", "harina", "2")

	receipt, err := f.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "p", Quantity: "5",
	})
	require.NoError(t, err)
	assert.True(t, f.store.stock(entity.ProductRef("p")).Equal(dec("5")))
	assert.True(t, f.store.stock(entity.IngredientRef("harina")).Equal(dec("0")))
	require.Len(t, receipt.Consumed, 1)
	assert.True(t, receipt.Consumed[0].Quantity.Equal(dec("10")))

	_, err = f.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "p", Quantity: "1",
	})
	var shortfall *domain.ShortfallError
	require.ErrorAs(t, err, &shortfall)
	require.Len(t, shortfall.Items, 1)
	assert.Equal(t, entity.IngredientRef("harina"), shortfall.Items[0].Ref)
	assert.True(t, shortfall.Items[0].Available.Equal(dec("0")))
	assert.True(t, shortfall.Items[0].Required.Equal(dec("2")))

	assert.True(t, f.store.stock(entity.ProductRef("p")).Equal(dec("5")))
	assert.True(t, f.store.stock(entity.IngredientRef("harina")).Equal(dec("0")))
	assert.Len(t, f.store.productions, 1)
}

// Producir N con receta {A: 2, B: 0.5} debita exactamente 2N de A y 0.5N de
// B, sin perder precisión decimal, y acredita N al producto.
func TestSubmitProduction_ExpansionDecimalExacta(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.addProduct("p", entity.ProductKindPan, "0", "2.00")
	f.addIngredient("a", "100")
	f.addIngredient("b", "100")
	f.addRecipeLine("p", "a", "2")
	f.addRecipeLine("p", "b", "0.5")

	_, err := f.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "p", Quantity: "7",
	})
	require.NoError(t, err)
	assert.True(t, f.store.stock(entity.ProductRef("p")).Equal(dec("7")))
	assert.True(t, f.store.stock(entity.IngredientRef("a")).Equal(dec("86")))
	assert.True(t, f.store.stock(entity.IngredientRef("b")).Equal(dec("96.5")))
}

func TestSubmitProduction_ProductoDeReventa(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.addProduct("cola", entity.ProductKindBebida, "0", "4.50")

	_, err := f.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "cola", Quantity: "3",
	})
	require.ErrorIs(t, err, domain.ErrNotManufactured)
}

// Política configurable: sin receta, la producción sale gratis si
// AllowRecipelessProduction está activo; si no, ErrNoRecipe.
func TestSubmitProduction_PoliticaSinReceta(t *testing.T) {
	permisive := newFixture(t, Config{AllowRecipelessProduction: true})
	permisive.addProduct("p", entity.ProductKindPan, "0", "2.00")
	receipt, err := permisive.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "p", Quantity: "4",
	})
	require.NoError(t, err)
	assert.Empty(t, receipt.Consumed)
	assert.True(t, permisive.store.stock(entity.ProductRef("p")).Equal(dec("4")))

	strict := newFixture(t, Config{AllowRecipelessProduction: false})
	strict.addProduct("p", entity.ProductKindPan, "0", "2.00")
	_, err = strict.uc.SubmitProduction(context.Background(), dto.SubmitProductionRequest{
		ProductID: "p", Quantity: "4",
	})
	require.ErrorIs(t, err, domain.ErrNoRecipe)
	assert.True(t, strict.store.stock(entity.ProductRef("p")).Equal(dec("0")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: compra de 20 de insumo I a 1.50 → I.stock +20, compra con total 30.00.
func TestSubmitPurchase_AcreditaInsumo(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.suppliers["molino"] = &entity.Supplier{ID: "molino", Category: entity.SupplierCategoryInsumos}
	f.addIngredient("harina", "5")

	receipt, err := f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "molino",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindIngredient, TargetID: "harina", Quantity: "20", UnitPrice: "1.50"},
		},
	})
	require.NoError(t, err)
	assert.True(t, f.store.stock(entity.IngredientRef("harina")).Equal(dec("25")))
	assert.True(t, receipt.Total.Equal(dec("30.00")))
	require.Len(t, f.store.purchases, 1)
	assert.True(t, f.store.purchases[0].Total.Equal(dec("30.00")))
}

// Un proveedor de INSUMOS no puede vender productos terminados, y viceversa.
func TestSubmitPurchase_CategoriaProveedor(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.suppliers["molino"] = &entity.Supplier{ID: "molino", Category: entity.SupplierCategoryInsumos}
	f.data.suppliers["gaseosas"] = &entity.Supplier{ID: "gaseosas", Category: entity.SupplierCategoryBebidas}
	f.addIngredient("harina", "0")
	f.addProduct("cola", entity.ProductKindBebida, "0", "4.50")

	_, err := f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "molino",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindProduct, TargetID: "cola", Quantity: "10", UnitPrice: "2.00"},
		},
	})
	require.ErrorIs(t, err, domain.ErrSupplierCategory)

	_, err = f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "gaseosas",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindIngredient, TargetID: "harina", Quantity: "10", UnitPrice: "0.80"},
		},
	})
	require.ErrorIs(t, err, domain.ErrSupplierCategory)
	assert.True(t, f.store.stock(entity.IngredientRef("harina")).Equal(dec("0")))
	assert.Empty(t, f.store.purchases)
}

// Filas con cantidad ilegible valen cero y se ignoran; un precio ilegible
// vale cero pero la fila sigue siendo válida.
func TestSubmitPurchase_FilasIndulgentes(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.suppliers["molino"] = &entity.Supplier{ID: "molino", Category: entity.SupplierCategoryInsumos}
	f.addIngredient("harina", "0")
	f.addIngredient("azucar", "0")

	receipt, err := f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "molino",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindIngredient, TargetID: "harina", Quantity: "???", UnitPrice: "1.00"},
			{Kind: entity.StockKindIngredient, TargetID: "azucar", Quantity: "8", UnitPrice: "basura"},
		},
	})
	require.NoError(t, err)
	assert.True(t, f.store.stock(entity.IngredientRef("harina")).Equal(dec("0")), "fila ilegible descartada")
	assert.True(t, f.store.stock(entity.IngredientRef("azucar")).Equal(dec("8")))
	assert.True(t, receipt.Total.Equal(dec("0")), "precio ilegible vale cero")

	_, err = f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "molino",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindIngredient, TargetID: "harina", Quantity: "x", UnitPrice: "1"},
		},
	})
	require.ErrorIs(t, err, domain.ErrEmptyOperation)
}

// La fecha de la compra admite fecha sin hora: se combina con la hora actual.
func TestSubmitPurchase_FechaSinHora(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})
	f.data.suppliers["molino"] = &entity.Supplier{ID: "molino", Category: entity.SupplierCategoryInsumos}
	f.addIngredient("harina", "0")

	receipt, err := f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{
		SupplierID: "molino",
		OccurredOn: "2025-03-01",
		Lines: []dto.PurchaseLineRequest{
			{Kind: entity.StockKindIngredient, TargetID: "harina", Quantity: "1", UnitPrice: "1"},
		},
	})
	require.NoError(t, err)
	want := time.Date(2025, 3, 1, fixedNow.Hour(), fixedNow.Minute(), fixedNow.Second(), 0, time.UTC)
	assert.Equal(t, want, receipt.Date)
}

func TestSubmitPurchase_ProveedorRequerido(t *testing.T) {
	f := newFixture(t, Config{AllowRecipelessProduction: true})

	_, err := f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.SubmitPurchase(context.Background(), dto.SubmitPurchaseRequest{SupplierID: "nadie"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
