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

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador de vendedores.
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste un nuevo vendedor.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO sellers (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`,
		seller.ID, seller.Name, seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	var s entity.Seller
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, created_at, updated_at
		FROM sellers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// List lista vendedores con paginación, por nombre.
func (r *SellerRepo) List(limit, offset int) ([]*entity.Seller, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, created_at, updated_at
		FROM sellers ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza el nombre del vendedor.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sellers SET name = $2, updated_at = $3 WHERE id = $1`,
		seller.ID, seller.Name, seller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}
