package repository

import "github.com/jhoicas/Panaderia-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para vendedores.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	List(limit, offset int) ([]*entity.Seller, error)
	Update(seller *entity.Seller) error
}
