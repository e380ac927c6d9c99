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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del libro de compras sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador del libro de compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste cabecera y líneas en la misma tx que los deltas de stock.
// Cada línea guarda el tipo de destino (INSUMO o PRODUCTO) y su ID.
func (r *PurchaseRepo) Create(purchase *entity.Purchase, lines []*entity.PurchaseLine) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchases (id, supplier_id, date, total, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		purchase.ID, purchase.SupplierID, purchase.Date, purchase.Total, purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, line := range lines {
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		line.PurchaseID = purchase.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_lines (id, purchase_id, target_kind, target_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, line.PurchaseID, line.Ref.Kind, line.Ref.ID, line.Quantity, line.UnitPrice, line.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert purchase line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con sus líneas.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, []*entity.PurchaseLine, error) {
	ctx := context.Background()
	var p entity.Purchase
	err := r.q.QueryRow(ctx, `
		SELECT id, supplier_id, date, total, created_at
		FROM purchases WHERE id = $1`, id,
	).Scan(&p.ID, &p.SupplierID, &p.Date, &p.Total, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get purchase: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, purchase_id, target_kind, target_id, quantity, unit_price, subtotal
		FROM purchase_lines WHERE purchase_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.PurchaseLine
	for rows.Next() {
		var l entity.PurchaseLine
		if err := rows.Scan(&l.ID, &l.PurchaseID, &l.Ref.Kind, &l.Ref.ID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, nil, fmt.Errorf("scan purchase line: %w", err)
		}
		lines = append(lines, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &p, lines, nil
}

// ListByDateRange lista compras del rango, más recientes primero.
func (r *PurchaseRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, supplier_id, date, total, created_at
		FROM purchases
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.Date, &p.Total, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
