package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del catálogo de recetas sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// RequirementsFor devuelve las líneas de receta de un producto en orden
// estable por insumo. Lista vacía (no error) si el producto no tiene receta.
func (r *RecipeRepo) RequirementsFor(productID string) ([]*entity.RecipeLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, product_id, ingredient_id, quantity_per_unit
		FROM recipe_lines WHERE product_id = $1 ORDER BY ingredient_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("recipe requirements: %w", err)
	}
	defer rows.Close()
	var lines []*entity.RecipeLine
	for rows.Next() {
		var l entity.RecipeLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.IngredientID, &l.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// Create agrega una línea de receta. Un insumo aparece a lo sumo una vez por
// producto (constraint único producto+insumo).
func (r *RecipeRepo) Create(line *entity.RecipeLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO recipe_lines (id, product_id, ingredient_id, quantity_per_unit)
		VALUES ($1, $2, $3, $4)`,
		line.ID, line.ProductID, line.IngredientID, line.QuantityPerUnit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe line: %w", err)
	}
	return nil
}

// ListByProduct lista la receta de un producto.
func (r *RecipeRepo) ListByProduct(productID string) ([]*entity.RecipeLine, error) {
	return r.RequirementsFor(productID)
}

// Delete elimina una línea de receta por ID.
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipe_lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe line: %w", err)
	}
	return nil
}
