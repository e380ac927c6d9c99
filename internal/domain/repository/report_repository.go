package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// DailyRevenueRow ingreso total de ventas de un día.
type DailyRevenueRow struct {
	Day   time.Time
	Total decimal.Decimal
}

// TopProductRow producto más vendido en un rango (unidades y recaudo).
type TopProductRow struct {
	ProductID string
	Name      string
	Units     decimal.Decimal
	Revenue   decimal.Decimal
}

// LowStockRow entidad con stock por debajo del umbral pedido.
type LowStockRow struct {
	Ref   entity.StockRef
	Name  string
	Stock decimal.Decimal
}

// ReportRepository define el puerto de reportes de solo lectura. Consume el
// estado ya confirmado del libro; no participa en el protocolo de consistencia
// del motor.
type ReportRepository interface {
	DailyRevenue(from, to time.Time) ([]*DailyRevenueRow, error)
	TopProducts(from, to time.Time, limit int) ([]*TopProductRow, error)
	LowStock(threshold decimal.Decimal) ([]*LowStockRow, error)
}
