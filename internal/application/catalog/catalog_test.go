package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeIngredientRepo struct {
	items map[string]*entity.Ingredient
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{items: make(map[string]*entity.Ingredient)}
}

func (r *fakeIngredientRepo) Create(i *entity.Ingredient) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	r.items[i.ID] = i
	return nil
}
func (r *fakeIngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return r.items[id], nil
}
func (r *fakeIngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeIngredientRepo) Update(i *entity.Ingredient) error {
	r.items[i.ID] = i
	return nil
}
func (r *fakeIngredientRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	r.items[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.items[id], nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeRecipeRepo struct {
	lines map[string]*entity.RecipeLine
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{lines: make(map[string]*entity.RecipeLine)}
}

func (r *fakeRecipeRepo) RequirementsFor(productID string) ([]*entity.RecipeLine, error) {
	var out []*entity.RecipeLine
	for _, l := range r.lines {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeRecipeRepo) Create(l *entity.RecipeLine) error {
	for _, ex := range r.lines {
		if ex.ProductID == l.ProductID && ex.IngredientID == l.IngredientID {
			return domain.ErrDuplicate
		}
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	r.lines[l.ID] = l
	return nil
}
func (r *fakeRecipeRepo) ListByProduct(productID string) ([]*entity.RecipeLine, error) {
	return r.RequirementsFor(productID)
}
func (r *fakeRecipeRepo) Delete(id string) error {
	delete(r.lines, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestIngredientCreate_ParseoIndulgente(t *testing.T) {
	uc := NewIngredientUseCase(newFakeIngredientRepo())

	// Stock inicial ilegible cuenta como cero, no como error.
	out, err := uc.Create(dto.CreateIngredientRequest{
		Name:         "Harina",
		InitialStock: "abc",
		UnitCost:     "1,50",
	})
	require.NoError(t, err)
	assert.True(t, out.Stock.IsZero(), "stock ilegible debe quedar en cero")
	assert.True(t, out.UnitCost.Equal(decimal.RequireFromString("1.5")),
		"coma decimal debe aceptarse")
}

func TestIngredientCreate_NombreRequerido(t *testing.T) {
	uc := NewIngredientUseCase(newFakeIngredientRepo())

	_, err := uc.Create(dto.CreateIngredientRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_TipoInvalido(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Croissant", Kind: "POSTRE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaStockNiTipo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Pan francés", Kind: entity.ProductKindPan,
		InitialStock: "10", UnitPrice: "500",
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{UnitPrice: "600"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductKindPan, updated.Kind)
	assert.True(t, updated.Stock.Equal(decimal.NewFromInt(10)),
		"el update de catálogo no debe mutar stock")
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromInt(600)))
}

func TestRecipeAddLine_SoloProductosPan(t *testing.T) {
	productRepo := newFakeProductRepo()
	ingredientRepo := newFakeIngredientRepo()
	recipeRepo := newFakeRecipeRepo()
	uc := NewRecipeUseCase(recipeRepo, productRepo, ingredientRepo)

	bebida := &entity.Product{Name: "Gaseosa", Kind: entity.ProductKindBebida}
	require.NoError(t, productRepo.Create(bebida))

	_, err := uc.AddLine(bebida.ID, dto.CreateRecipeLineRequest{
		IngredientID: "x", QuantityPerUnit: "1",
	})
	assert.ErrorIs(t, err, domain.ErrNotManufactured,
		"una BEBIDA no puede tener receta")
}

func TestRecipeAddLine_CantidadPositivaYDuplicados(t *testing.T) {
	productRepo := newFakeProductRepo()
	ingredientRepo := newFakeIngredientRepo()
	recipeRepo := newFakeRecipeRepo()
	uc := NewRecipeUseCase(recipeRepo, productRepo, ingredientRepo)

	pan := &entity.Product{Name: "Pan integral", Kind: entity.ProductKindPan}
	require.NoError(t, productRepo.Create(pan))
	harina := &entity.Ingredient{Name: "Harina"}
	require.NoError(t, ingredientRepo.Create(harina))

	// Cantidad no positiva se rechaza.
	_, err := uc.AddLine(pan.ID, dto.CreateRecipeLineRequest{
		IngredientID: harina.ID, QuantityPerUnit: "0",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Alta válida.
	line, err := uc.AddLine(pan.ID, dto.CreateRecipeLineRequest{
		IngredientID: harina.ID, QuantityPerUnit: "0.25",
	})
	require.NoError(t, err)
	assert.True(t, line.QuantityPerUnit.Equal(decimal.RequireFromString("0.25")))

	// El mismo insumo no puede repetirse en la receta.
	_, err = uc.AddLine(pan.ID, dto.CreateRecipeLineRequest{
		IngredientID: harina.ID, QuantityPerUnit: "0.5",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
