package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// StockRepository define el puerto de stock del motor de transacciones.
// Una implementación vive dentro del alcance de una transacción de BD: los
// bloqueos adquiridos con LockAndGet se mantienen hasta el Commit/Rollback.
type StockRepository interface {
	// Get lee la cantidad actual sin bloquear. ErrNotFound si no existe.
	Get(ref entity.StockRef) (decimal.Decimal, error)

	// LockAndGet bloquea en exclusiva todas las entidades referenciadas, en
	// orden canónico (tipo, luego ID), y devuelve sus cantidades actuales.
	// ErrNotFound si alguna no existe; ErrLockTimeout si la contención impide
	// adquirir los bloqueos a tiempo.
	LockAndGet(refs []entity.StockRef) (map[entity.StockRef]decimal.Decimal, error)

	// ApplyDelta suma el delta (positivo acredita, negativo debita) a una
	// entidad previamente bloqueada con LockAndGet en esta misma transacción.
	// ErrNotLocked si no se bloqueó antes.
	ApplyDelta(ref entity.StockRef, delta decimal.Decimal) error
}
