package catalog

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// IngredientUseCase CRUD de insumos (dato de referencia; el stock solo lo
// muta el motor de transacciones).
type IngredientUseCase struct {
	repo repository.IngredientRepository
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository) *IngredientUseCase {
	return &IngredientUseCase{repo: repo}
}

// Create da de alta un insumo. El stock inicial se parsea con la misma
// tolerancia del motor (ilegible cuenta como cero).
func (uc *IngredientUseCase) Create(in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ing := &entity.Ingredient{
		Name:      in.Name,
		Stock:     inventory.ParseQuantity(in.InitialStock),
		UnitCost:  inventory.ParseQuantity(in.UnitCost),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ing.Stock.IsNegative() || ing.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

// GetByID obtiene un insumo. nil si no existe.
func (uc *IngredientUseCase) GetByID(id string) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	return toIngredientResponse(ing), nil
}

// List lista insumos paginados.
func (uc *IngredientUseCase) List(limit, offset int) (*dto.IngredientListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.IngredientListResponse{Items: make([]dto.IngredientResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, ing := range list {
		out.Items = append(out.Items, *toIngredientResponse(ing))
	}
	return out, nil
}

// Update edita nombre y costo. nil si el insumo no existe.
func (uc *IngredientUseCase) Update(id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	if in.Name != "" {
		ing.Name = in.Name
	}
	if in.UnitCost != "" {
		cost := inventory.ParseQuantity(in.UnitCost)
		if cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.UnitCost = cost
	}
	ing.UpdatedAt = time.Now()
	if err := uc.repo.Update(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing), nil
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Stock:     i.Stock,
		UnitCost:  i.UnitCost,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
