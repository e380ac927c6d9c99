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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL. Solo inserta
// dentro de la tx del motor; no hay update ni delete en el libro.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste cabecera y líneas en la misma tx que los deltas de stock.
func (r *SaleRepo) Create(sale *entity.Sale, lines []*entity.SaleLine) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (id, seller_id, date, total, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		sale.ID, sale.SellerID, sale.Date, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, line := range lines {
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		line.SaleID = sale.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, []*entity.SaleLine, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), `
		SELECT id, seller_id, date, total, created_at
		FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.SellerID, &s.Date, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.ListLines(id)
	if err != nil {
		return nil, nil, err
	}
	return &s, lines, nil
}

// ListByDateRange lista ventas del rango, más recientes primero. from/to nil
// abren el rango por ese lado.
func (r *SaleRepo) ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, seller_id, date, total, created_at
		FROM sales
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Date, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListLines obtiene las líneas de una venta.
func (r *SaleRepo) ListLines(saleID string) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}
