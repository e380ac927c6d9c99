package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación del puerto IngredientRepository sobre
// PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo insumo. El stock inicia en lo indicado (alta de
// referencia, fuera del motor transaccional).
func (r *IngredientRepo) Create(ingredient *entity.Ingredient) error {
	if ingredient.ID == "" {
		ingredient.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ingredients (id, name, stock, unit_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Stock, ingredient.UnitCost,
		ingredient.CreatedAt, ingredient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, stock, unit_cost, created_at, updated_at
		FROM ingredients WHERE id = $1`
	var i entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Name, &i.Stock, &i.UnitCost, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &i, nil
}

// List lista insumos con paginación, por nombre.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, stock, unit_cost, created_at, updated_at
		FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Stock, &i.UnitCost, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza nombre y costo. El stock no se toca por aquí: solo el
// motor de transacciones lo muta.
func (r *IngredientRepo) Update(ingredient *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, unit_cost = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.UnitCost, ingredient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *IngredientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}
