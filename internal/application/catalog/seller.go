package catalog

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// SellerUseCase CRUD de vendedores de mostrador.
type SellerUseCase struct {
	repo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{repo: repo}
}

// Create da de alta un vendedor.
func (uc *SellerUseCase) Create(in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Seller{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSellerResponse(s), nil
}

// GetByID obtiene un vendedor. nil si no existe.
func (uc *SellerUseCase) GetByID(id string) (*dto.SellerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSellerResponse(s), nil
}

// List lista vendedores paginados.
func (uc *SellerUseCase) List(limit, offset int) (*dto.SellerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SellerListResponse{Items: make([]dto.SellerResponse, 0, len(list)), Limit: limit, Offset: offset}
	for _, s := range list {
		out.Items = append(out.Items, *toSellerResponse(s))
	}
	return out, nil
}

// Update edita el nombre. nil si el vendedor no existe.
func (uc *SellerUseCase) Update(id string, name string) (*dto.SellerResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if name != "" {
		s.Name = name
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSellerResponse(s), nil
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	return &dto.SellerResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
