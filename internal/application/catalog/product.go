package catalog

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Kind (PAN/BEBIDA) es fijo desde el alta;
// el stock solo lo muta el motor de transacciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.ProductKindPan && in.Kind != entity.ProductKindBebida {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		Name:      in.Name,
		Kind:      in.Kind,
		Stock:     inventory.ParseQuantity(in.InitialStock),
		UnitCost:  inventory.ParseQuantity(in.UnitCost),
		UnitPrice: inventory.ParseQuantity(in.UnitPrice),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Stock.IsNegative() || p.UnitCost.IsNegative() || p.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Update edita nombre, costo y precio. nil si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.UnitCost != "" {
		cost := inventory.ParseQuantity(in.UnitCost)
		if cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.UnitCost = cost
	}
	if in.UnitPrice != "" {
		price := inventory.ParseQuantity(in.UnitPrice)
		if price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.UnitPrice = price
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Kind:      p.Kind,
		Stock:     p.Stock,
		UnitCost:  p.UnitCost,
		UnitPrice: p.UnitPrice,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
