package repository

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// PurchaseRepository define el puerto del libro de compras. Solo inserción
// dentro del commit del motor; nunca update ni delete.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase, lines []*entity.PurchaseLine) error
	GetByID(id string) (*entity.Purchase, []*entity.PurchaseLine, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Purchase, error)
}
