package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre los deltas de
// stock y el registro en el libro: o se confirma todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		productionRepo repository.ProductionRepository,
	) error) error
}

// Clock provee "ahora". Se inyecta para que el motor sea determinista en
// tests; en producción es time.Now.
type Clock func() time.Time
