package repository

import "github.com/jhoicas/Panaderia-api/internal/domain/entity"

// IngredientRepository define el puerto de persistencia para insumos.
// El stock no se actualiza por aquí: solo vía StockRepository dentro del
// motor de transacciones.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	List(limit, offset int) ([]*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	Delete(id string) error
}
