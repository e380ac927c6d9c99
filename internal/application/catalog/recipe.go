package catalog

import (
	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// RecipeUseCase edición de recetas (lista de materiales de productos PAN).
type RecipeUseCase struct {
	recipeRepo     repository.RecipeRepository
	productRepo    repository.ProductRepository
	ingredientRepo repository.IngredientRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(recipeRepo repository.RecipeRepository, productRepo repository.ProductRepository, ingredientRepo repository.IngredientRepository) *RecipeUseCase {
	return &RecipeUseCase{recipeRepo: recipeRepo, productRepo: productRepo, ingredientRepo: ingredientRepo}
}

// AddLine agrega una línea a la receta de un producto PAN. El insumo debe
// existir y la cantidad por unidad ser positiva.
func (uc *RecipeUseCase) AddLine(productID string, in dto.CreateRecipeLineRequest) (*dto.RecipeLineResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsManufactured() {
		return nil, domain.ErrNotManufactured
	}
	ing, err := uc.ingredientRepo.GetByID(in.IngredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	qty := inventory.ParseQuantity(in.QuantityPerUnit)
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	line := &entity.RecipeLine{
		ProductID:       productID,
		IngredientID:    in.IngredientID,
		QuantityPerUnit: qty,
	}
	if err := uc.recipeRepo.Create(line); err != nil {
		return nil, err
	}
	return toRecipeLineResponse(line), nil
}

// ListByProduct lista la receta de un producto.
func (uc *RecipeUseCase) ListByProduct(productID string) ([]dto.RecipeLineResponse, error) {
	lines, err := uc.recipeRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, *toRecipeLineResponse(l))
	}
	return out, nil
}

// RemoveLine elimina una línea de receta.
func (uc *RecipeUseCase) RemoveLine(lineID string) error {
	return uc.recipeRepo.Delete(lineID)
}

func toRecipeLineResponse(l *entity.RecipeLine) *dto.RecipeLineResponse {
	return &dto.RecipeLineResponse{
		ID:              l.ID,
		ProductID:       l.ProductID,
		IngredientID:    l.IngredientID,
		QuantityPerUnit: l.QuantityPerUnit,
	}
}
