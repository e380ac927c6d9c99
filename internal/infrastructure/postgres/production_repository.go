package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del libro de producciones sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador del libro de producciones.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create persiste la tanda y sus consumos de insumo en la misma tx que los
// deltas de stock.
func (r *ProductionRepo) Create(production *entity.Production, consumptions []*entity.ProductionConsumption) error {
	if production.ID == "" {
		production.ID = uuid.New().String()
	}
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO productions (id, product_id, quantity, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		production.ID, production.ProductID, production.Quantity, production.Date, production.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	for _, c := range consumptions {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.ProductionID = production.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO production_consumptions (id, production_id, ingredient_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			c.ID, c.ProductionID, c.IngredientID, c.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert production consumption: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una tanda con sus consumos.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, []*entity.ProductionConsumption, error) {
	ctx := context.Background()
	var p entity.Production
	err := r.q.QueryRow(ctx, `
		SELECT id, product_id, quantity, date, created_at
		FROM productions WHERE id = $1`, id,
	).Scan(&p.ID, &p.ProductID, &p.Quantity, &p.Date, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get production: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, production_id, ingredient_id, quantity
		FROM production_consumptions WHERE production_id = $1 ORDER BY ingredient_id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list production consumptions: %w", err)
	}
	defer rows.Close()
	var consumptions []*entity.ProductionConsumption
	for rows.Next() {
		var c entity.ProductionConsumption
		if err := rows.Scan(&c.ID, &c.ProductionID, &c.IngredientID, &c.Quantity); err != nil {
			return nil, nil, fmt.Errorf("scan production consumption: %w", err)
		}
		consumptions = append(consumptions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &p, consumptions, nil
}

// ListByDateRange lista tandas del rango, más recientes primero.
func (r *ProductionRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Production, error) {
	query := `
		SELECT id, product_id, quantity, date, created_at
		FROM productions
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
