package repository

import "github.com/jhoicas/Panaderia-api/internal/domain/entity"

// RecipeRepository define el puerto del catálogo de recetas. De solo lectura
// para el motor de inventario; la edición de recetas es dato de referencia.
type RecipeRepository interface {
	// RequirementsFor devuelve las líneas de receta de un producto de tipo
	// PAN, en orden estable por insumo. Lista vacía si no tiene receta.
	RequirementsFor(productID string) ([]*entity.RecipeLine, error)

	Create(line *entity.RecipeLine) error
	ListByProduct(productID string) ([]*entity.RecipeLine, error)
	Delete(id string) error
}
