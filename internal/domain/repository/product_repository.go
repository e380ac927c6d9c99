package repository

import "github.com/jhoicas/Panaderia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
// El stock no se actualiza por aquí: solo vía StockRepository dentro del
// motor de transacciones.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
