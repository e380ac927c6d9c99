package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reporte de solo lectura sobre el estado confirmado.
// No participa en el protocolo de bloqueo del motor.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar el pool.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DailyRevenue ingreso total de ventas por día dentro del rango.
func (r *ReportRepo) DailyRevenue(from, to time.Time) ([]*repository.DailyRevenueRow, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT date_trunc('day', date) AS day, COALESCE(SUM(total), 0)
		FROM sales
		WHERE date >= $1 AND date <= $2
		GROUP BY day
		ORDER BY day`, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily revenue: %w", err)
	}
	defer rows.Close()
	var out []*repository.DailyRevenueRow
	for rows.Next() {
		var row repository.DailyRevenueRow
		if err := rows.Scan(&row.Day, &row.Total); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

// TopProducts productos más vendidos por unidades dentro del rango.
func (r *ReportRepo) TopProducts(from, to time.Time, limit int) ([]*repository.TopProductRow, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT p.id, p.name, COALESCE(SUM(sl.quantity), 0), COALESCE(SUM(sl.subtotal), 0)
		FROM sale_lines sl
		JOIN sales s ON s.id = sl.sale_id
		JOIN products p ON p.id = sl.product_id
		WHERE s.date >= $1 AND s.date <= $2
		GROUP BY p.id, p.name
		ORDER BY SUM(sl.quantity) DESC
		LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var out []*repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Units, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

// LowStock insumos y productos con stock por debajo del umbral, peor primero.
func (r *ReportRepo) LowStock(threshold decimal.Decimal) ([]*repository.LowStockRow, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT 'INSUMO' AS kind, id, name, stock FROM ingredients WHERE stock < $1
		UNION ALL
		SELECT 'PRODUCTO' AS kind, id, name, stock FROM products WHERE stock < $1
		ORDER BY stock, name`, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var out []*repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		var kind, id string
		if err := rows.Scan(&kind, &id, &row.Name, &row.Stock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		row.Ref = entity.StockRef{Kind: kind, ID: id}
		out = append(out, &row)
	}
	return out, rows.Err()
}
