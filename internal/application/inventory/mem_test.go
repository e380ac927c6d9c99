package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// Fakes en memoria para el motor. El stock usa un mutex por entidad,
// adquirido en orden canónico, para emular los bloqueos de fila de la
// implementación PostgreSQL y poder probar operaciones concurrentes.

type memStore struct {
	mu    sync.Mutex
	qty   map[entity.StockRef]decimal.Decimal
	locks map[entity.StockRef]*sync.Mutex

	sales       []*entity.Sale
	saleLines   map[string][]*entity.SaleLine
	purchases   []*entity.Purchase
	productions []*entity.Production
}

func newMemStore() *memStore {
	return &memStore{
		qty:       make(map[entity.StockRef]decimal.Decimal),
		locks:     make(map[entity.StockRef]*sync.Mutex),
		saleLines: make(map[string][]*entity.SaleLine),
	}
}

func (s *memStore) setStock(ref entity.StockRef, q decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qty[ref] = q
}

func (s *memStore) stock(ref entity.StockRef) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qty[ref]
}

func (s *memStore) lockOf(ref entity.StockRef) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[ref] == nil {
		s.locks[ref] = &sync.Mutex{}
	}
	return s.locks[ref]
}

// memTx agrupa el estado de una "transacción": bloqueos sostenidos y deltas
// preparados que solo se aplican si el callback termina sin error.
type memTx struct {
	store  *memStore
	held   []entity.StockRef
	staged map[entity.StockRef]decimal.Decimal

	sale        *entity.Sale
	saleLines   []*entity.SaleLine
	purchase    *entity.Purchase
	production  *entity.Production
}

func (tx *memTx) holds(ref entity.StockRef) bool {
	for _, h := range tx.held {
		if h == ref {
			return true
		}
	}
	return false
}

type memStockRepo struct{ tx *memTx }

func (r *memStockRepo) Get(ref entity.StockRef) (decimal.Decimal, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.qty[ref]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	return q, nil
}

func (r *memStockRepo) LockAndGet(refs []entity.StockRef) (map[entity.StockRef]decimal.Decimal, error) {
	sorted := make([]entity.StockRef, len(refs))
	copy(sorted, refs)
	entity.SortRefs(sorted)

	out := make(map[entity.StockRef]decimal.Decimal, len(sorted))
	for _, ref := range sorted {
		if _, err := r.Get(ref); err != nil {
			return nil, err
		}
		r.tx.store.lockOf(ref).Lock()
		r.tx.held = append(r.tx.held, ref)
		q, err := r.Get(ref)
		if err != nil {
			return nil, err
		}
		out[ref] = q
	}
	return out, nil
}

func (r *memStockRepo) ApplyDelta(ref entity.StockRef, delta decimal.Decimal) error {
	if !r.tx.holds(ref) {
		return domain.ErrNotLocked
	}
	r.tx.staged[ref] = r.tx.staged[ref].Add(delta)
	return nil
}

type memSaleRepo struct{ tx *memTx }

func (r *memSaleRepo) Create(sale *entity.Sale, lines []*entity.SaleLine) error {
	r.tx.sale = sale
	r.tx.saleLines = lines
	return nil
}

func (r *memSaleRepo) GetByID(string) (*entity.Sale, []*entity.SaleLine, error) {
	return nil, nil, domain.ErrNotFound
}
func (r *memSaleRepo) ListByDateRange(*time.Time, *time.Time, int, int) ([]*entity.Sale, error) {
	return nil, nil
}
func (r *memSaleRepo) ListLines(string) ([]*entity.SaleLine, error) { return nil, nil }

type memPurchaseRepo struct{ tx *memTx }

func (r *memPurchaseRepo) Create(p *entity.Purchase, _ []*entity.PurchaseLine) error {
	r.tx.purchase = p
	return nil
}
func (r *memPurchaseRepo) GetByID(string) (*entity.Purchase, []*entity.PurchaseLine, error) {
	return nil, nil, domain.ErrNotFound
}
func (r *memPurchaseRepo) ListByDateRange(*time.Time, *time.Time, int, int) ([]*entity.Purchase, error) {
	return nil, nil
}

type memProductionRepo struct{ tx *memTx }

func (r *memProductionRepo) Create(p *entity.Production, _ []*entity.ProductionConsumption) error {
	r.tx.production = p
	return nil
}
func (r *memProductionRepo) GetByID(string) (*entity.Production, []*entity.ProductionConsumption, error) {
	return nil, nil, domain.ErrNotFound
}
func (r *memProductionRepo) ListByDateRange(*time.Time, *time.Time, int, int) ([]*entity.Production, error) {
	return nil, nil
}

type memTxRunner struct{ store *memStore }

func (rn *memTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productionRepo repository.ProductionRepository,
) error) error {
	tx := &memTx{store: rn.store, staged: make(map[entity.StockRef]decimal.Decimal)}
	err := fn(&memStockRepo{tx: tx}, &memSaleRepo{tx: tx}, &memPurchaseRepo{tx: tx}, &memProductionRepo{tx: tx})
	if err == nil {
		// Commit: aplicar deltas y registros del libro antes de soltar los bloqueos.
		rn.store.mu.Lock()
		for ref, delta := range tx.staged {
			rn.store.qty[ref] = rn.store.qty[ref].Add(delta)
		}
		if tx.sale != nil {
			rn.store.sales = append(rn.store.sales, tx.sale)
			rn.store.saleLines[tx.sale.ID] = tx.saleLines
		}
		if tx.purchase != nil {
			rn.store.purchases = append(rn.store.purchases, tx.purchase)
		}
		if tx.production != nil {
			rn.store.productions = append(rn.store.productions, tx.production)
		}
		rn.store.mu.Unlock()
	}
	for i := len(tx.held) - 1; i >= 0; i-- {
		rn.store.lockOf(tx.held[i]).Unlock()
	}
	return err
}

// Repositorios de referencia en memoria.

type memRefData struct {
	ingredients map[string]*entity.Ingredient
	products    map[string]*entity.Product
	suppliers   map[string]*entity.Supplier
	sellers     map[string]*entity.Seller
	recipes     map[string][]*entity.RecipeLine
}

func newMemRefData() *memRefData {
	return &memRefData{
		ingredients: make(map[string]*entity.Ingredient),
		products:    make(map[string]*entity.Product),
		suppliers:   make(map[string]*entity.Supplier),
		sellers:     make(map[string]*entity.Seller),
		recipes:     make(map[string][]*entity.RecipeLine),
	}
}

type memIngredientRepo struct{ d *memRefData }

func (r *memIngredientRepo) Create(i *entity.Ingredient) error { r.d.ingredients[i.ID] = i; return nil }
func (r *memIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return r.d.ingredients[id], nil
}
func (r *memIngredientRepo) List(int, int) ([]*entity.Ingredient, error) { return nil, nil }
func (r *memIngredientRepo) Update(*entity.Ingredient) error             { return nil }
func (r *memIngredientRepo) Delete(string) error                         { return nil }

type memProductRepo struct{ d *memRefData }

func (r *memProductRepo) Create(p *entity.Product) error              { r.d.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error)  { return r.d.products[id], nil }
func (r *memProductRepo) List(int, int) ([]*entity.Product, error)    { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                { return nil }
func (r *memProductRepo) Delete(string) error                         { return nil }

type memSupplierRepo struct{ d *memRefData }

func (r *memSupplierRepo) Create(s *entity.Supplier) error             { r.d.suppliers[s.ID] = s; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.d.suppliers[id], nil }
func (r *memSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (r *memSupplierRepo) Update(*entity.Supplier) error               { return nil }

type memSellerRepo struct{ d *memRefData }

func (r *memSellerRepo) Create(s *entity.Seller) error             { r.d.sellers[s.ID] = s; return nil }
func (r *memSellerRepo) GetByID(id string) (*entity.Seller, error) { return r.d.sellers[id], nil }
func (r *memSellerRepo) List(int, int) ([]*entity.Seller, error)   { return nil, nil }
func (r *memSellerRepo) Update(*entity.Seller) error               { return nil }

type memRecipeRepo struct{ d *memRefData }

func (r *memRecipeRepo) RequirementsFor(productID string) ([]*entity.RecipeLine, error) {
	return r.d.recipes[productID], nil
}
func (r *memRecipeRepo) Create(line *entity.RecipeLine) error {
	r.d.recipes[line.ProductID] = append(r.d.recipes[line.ProductID], line)
	return nil
}
func (r *memRecipeRepo) ListByProduct(productID string) ([]*entity.RecipeLine, error) {
	return r.d.recipes[productID], nil
}
func (r *memRecipeRepo) Delete(string) error { return nil }
