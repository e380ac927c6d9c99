package repository

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// ProductionRepository define el puerto del libro de producciones. Solo
// inserción dentro del commit del motor; nunca update ni delete.
type ProductionRepository interface {
	Create(production *entity.Production, consumptions []*entity.ProductionConsumption) error
	GetByID(id string) (*entity.Production, []*entity.ProductionConsumption, error)
	ListByDateRange(from, to *time.Time, limit, offset int) ([]*entity.Production, error)
}
