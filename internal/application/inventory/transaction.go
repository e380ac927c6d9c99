package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// Config opciones de política del motor.
type Config struct {
	// AllowRecipelessProduction permite producir un producto PAN sin líneas
	// de receta (consumo cero de insumos), como hacía el sistema original.
	// En false, producir sin receta devuelve ErrNoRecipe.
	AllowRecipelessProduction bool
}

// TransactionUseCase es el coordinador de transacciones de inventario:
// ventas, compras y producciones. Cada operación resuelve sus deltas netos,
// bloquea las filas afectadas en orden canónico (SELECT FOR UPDATE), valida
// disponibilidad y confirma deltas más registro del libro en una sola
// transacción de BD, o rechaza sin efecto parcial alguno.
type TransactionUseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	productRepo    repository.ProductRepository
	supplierRepo   repository.SupplierRepository
	sellerRepo     repository.SellerRepository
	recipeRepo     repository.RecipeRepository
	cfg            Config
	clock          Clock
}

// NewTransactionUseCase construye el coordinador. clock nil usa time.Now.
func NewTransactionUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	sellerRepo repository.SellerRepository,
	recipeRepo repository.RecipeRepository,
	cfg Config,
	clock Clock,
) *TransactionUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &TransactionUseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
		sellerRepo:     sellerRepo,
		recipeRepo:     recipeRepo,
		cfg:            cfg,
		clock:          clock,
	}
}

// collectShortfalls compara cada débito contra la cantidad bloqueada.
// Si algo falta devuelve la lista completa de faltantes: una línea sin stock
// rechaza también las líneas que sí alcanzaban.
func collectShortfalls(debits []Line, locked map[entity.StockRef]decimal.Decimal) []domain.Shortfall {
	var shortfalls []domain.Shortfall
	for _, d := range debits {
		available := locked[d.Ref]
		if available.LessThan(d.Quantity) {
			shortfalls = append(shortfalls, domain.Shortfall{
				Ref:       d.Ref,
				Available: available,
				Required:  d.Quantity,
			})
		}
	}
	return shortfalls
}

// applyDeltas aplica todos los deltas netos de la operación sobre las filas
// ya bloqueadas, en orden canónico.
func applyDeltas(stockRepo repository.StockRepository, deltas map[entity.StockRef]decimal.Decimal, refs []entity.StockRef) error {
	for _, ref := range refs {
		if err := stockRepo.ApplyDelta(ref, deltas[ref]); err != nil {
			return err
		}
	}
	return nil
}

// SubmitSale registra una venta: debita el stock de cada producto vendido y
// escribe cabecera y líneas en el libro de ventas. Líneas duplicadas del
// mismo producto se consolidan sumando cantidades antes de validar.
func (uc *TransactionUseCase) SubmitSale(ctx context.Context, in dto.SubmitSaleRequest) (*dto.SaleReceipt, error) {
	if in.SellerID == "" {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.sellerRepo.GetByID(in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}

	raw := make([]Line, 0, len(in.Lines))
	for _, ln := range in.Lines {
		if ln.ProductID == "" {
			continue
		}
		raw = append(raw, Line{Ref: entity.ProductRef(ln.ProductID), Quantity: ParseQuantity(ln.Quantity)})
	}
	debits := MergeLines(raw)
	if len(debits) == 0 {
		return nil, domain.ErrEmptyOperation
	}

	// Validación referencial y captura de precios, fuera de la tx (solo lectura).
	productsByID := make(map[string]*entity.Product, len(debits))
	for _, d := range debits {
		product, err := uc.productRepo.GetByID(d.Ref.ID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		productsByID[d.Ref.ID] = product
	}

	now := uc.clock()
	deltas, refs := NetDeltas(nil, debits)

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		SellerID:  in.SellerID,
		Date:      now,
		CreatedAt: now,
	}
	lines := make([]*entity.SaleLine, 0, len(debits))
	var total decimal.Decimal
	for _, d := range debits {
		price := productsByID[d.Ref.ID].UnitPrice
		subtotal := d.Quantity.Mul(price)
		total = total.Add(subtotal)
		lines = append(lines, &entity.SaleLine{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: d.Ref.ID,
			Quantity:  d.Quantity,
			UnitPrice: price,
			Subtotal:  subtotal,
		})
	}
	sale.Total = total

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		_ repository.ProductionRepository,
	) error {
		locked, err := stockRepo.LockAndGet(refs)
		if err != nil {
			return err
		}
		if shortfalls := collectShortfalls(debits, locked); len(shortfalls) > 0 {
			return &domain.ShortfallError{Items: shortfalls}
		}
		if err := applyDeltas(stockRepo, deltas, refs); err != nil {
			return err
		}
		return saleRepo.Create(sale, lines)
	})
	if err != nil {
		return nil, err
	}

	receipt := &dto.SaleReceipt{
		SaleID:   sale.ID,
		SellerID: sale.SellerID,
		Date:     sale.Date,
		Total:    sale.Total,
	}
	for _, ln := range lines {
		receipt.Lines = append(receipt.Lines, dto.ReceiptLine{
			Kind:      entity.StockKindProduct,
			TargetID:  ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			Subtotal:  ln.Subtotal,
		})
	}
	return receipt, nil
}

// SubmitPurchase registra una compra a proveedor: acredita stock de insumos
// o productos según las líneas. Una compra solo acredita, así que nunca se
// rechaza por faltante; igual bloquea las filas para serializar con otras
// operaciones en vuelo.
func (uc *TransactionUseCase) SubmitPurchase(ctx context.Context, in dto.SubmitPurchaseRequest) (*dto.PurchaseReceipt, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.clock()
	date := ResolveOccurredOn(in.OccurredOn, now)
	purchaseID := uuid.New().String()

	// Las líneas de compra quedan itemizadas como llegaron (los precios
	// pueden diferir entre líneas); los deltas sí se consolidan por entidad.
	var credits []Line
	var lines []*entity.PurchaseLine
	var total decimal.Decimal
	for _, ln := range in.Lines {
		qty := ParseQuantity(ln.Quantity)
		if !qty.IsPositive() || ln.TargetID == "" {
			continue
		}
		var ref entity.StockRef
		switch ln.Kind {
		case entity.StockKindIngredient:
			if supplier.Category != entity.SupplierCategoryInsumos {
				return nil, domain.ErrSupplierCategory
			}
			ingredient, err := uc.ingredientRepo.GetByID(ln.TargetID)
			if err != nil {
				return nil, err
			}
			if ingredient == nil {
				return nil, domain.ErrNotFound
			}
			ref = ingredient.Ref()
		case entity.StockKindProduct:
			if supplier.Category != entity.SupplierCategoryBebidas {
				return nil, domain.ErrSupplierCategory
			}
			product, err := uc.productRepo.GetByID(ln.TargetID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			ref = product.Ref()
		default:
			return nil, domain.ErrInvalidInput
		}

		price := ParseQuantity(ln.UnitPrice)
		if price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotal := qty.Mul(price)
		total = total.Add(subtotal)
		credits = append(credits, Line{Ref: ref, Quantity: qty})
		lines = append(lines, &entity.PurchaseLine{
			ID:         uuid.New().String(),
			PurchaseID: purchaseID,
			Ref:        ref,
			Quantity:   qty,
			UnitPrice:  price,
			Subtotal:   subtotal,
		})
	}
	credits = MergeLines(credits)
	if len(credits) == 0 {
		return nil, domain.ErrEmptyOperation
	}

	deltas, refs := NetDeltas(credits, nil)
	purchase := &entity.Purchase{
		ID:         purchaseID,
		SupplierID: in.SupplierID,
		Date:       date,
		Total:      total,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ProductionRepository,
	) error {
		if _, err := stockRepo.LockAndGet(refs); err != nil {
			return err
		}
		if err := applyDeltas(stockRepo, deltas, refs); err != nil {
			return err
		}
		return purchaseRepo.Create(purchase, lines)
	})
	if err != nil {
		return nil, err
	}

	receipt := &dto.PurchaseReceipt{
		PurchaseID: purchase.ID,
		SupplierID: purchase.SupplierID,
		Date:       purchase.Date,
		Total:      purchase.Total,
	}
	for _, ln := range lines {
		receipt.Lines = append(receipt.Lines, dto.ReceiptLine{
			Kind:      ln.Ref.Kind,
			TargetID:  ln.Ref.ID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
			Subtotal:  ln.Subtotal,
		})
	}
	return receipt, nil
}

// SubmitProduction registra una tanda: acredita el producto fabricado y
// debita los insumos según su receta (cantidad × cantidadPorUnidad), todo en
// la misma transacción.
func (uc *TransactionUseCase) SubmitProduction(ctx context.Context, in dto.SubmitProductionRequest) (*dto.ProductionReceipt, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty := ParseQuantity(in.Quantity)
	if !qty.IsPositive() {
		return nil, domain.ErrEmptyOperation
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsManufactured() {
		return nil, domain.ErrNotManufactured
	}

	recipe, err := uc.recipeRepo.RequirementsFor(in.ProductID)
	if err != nil {
		return nil, err
	}
	if len(recipe) == 0 && !uc.cfg.AllowRecipelessProduction {
		return nil, domain.ErrNoRecipe
	}

	now := uc.clock()
	date := ResolveOccurredOn(in.OccurredOn, now)
	credits := []Line{{Ref: product.Ref(), Quantity: qty}}
	debits := ExpandRecipe(qty, recipe)
	deltas, refs := NetDeltas(credits, debits)

	production := &entity.Production{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  qty,
		Date:      date,
		CreatedAt: now,
	}
	consumptions := make([]*entity.ProductionConsumption, 0, len(debits))
	for _, d := range debits {
		consumptions = append(consumptions, &entity.ProductionConsumption{
			ID:           uuid.New().String(),
			ProductionID: production.ID,
			IngredientID: d.Ref.ID,
			Quantity:     d.Quantity,
		})
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
		productionRepo repository.ProductionRepository,
	) error {
		locked, err := stockRepo.LockAndGet(refs)
		if err != nil {
			return err
		}
		if shortfalls := collectShortfalls(debits, locked); len(shortfalls) > 0 {
			return &domain.ShortfallError{Items: shortfalls}
		}
		if err := applyDeltas(stockRepo, deltas, refs); err != nil {
			return err
		}
		return productionRepo.Create(production, consumptions)
	})
	if err != nil {
		return nil, err
	}

	receipt := &dto.ProductionReceipt{
		ProductionID: production.ID,
		ProductID:    production.ProductID,
		Quantity:     production.Quantity,
		Date:         production.Date,
	}
	for _, c := range consumptions {
		receipt.Consumed = append(receipt.Consumed, dto.ReceiptLine{
			Kind:     entity.StockKindIngredient,
			TargetID: c.IngredientID,
			Quantity: c.Quantity,
		})
	}
	return receipt, nil
}
