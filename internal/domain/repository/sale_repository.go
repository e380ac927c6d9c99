package repository

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// SaleRepository define el puerto del libro de ventas. Las ventas se crean
// una sola vez dentro del commit del motor y nunca se actualizan ni borran.
type SaleRepository interface {
	// Create persiste cabecera y líneas. Debe ejecutarse en la misma
	// transacción que los deltas de stock.
	Create(sale *entity.Sale, lines []*entity.SaleLine) error
	GetByID(id string) (*entity.Sale, []*entity.SaleLine, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
	ListLines(saleID string) ([]*entity.SaleLine, error)
}
