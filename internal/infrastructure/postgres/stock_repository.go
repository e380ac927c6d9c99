package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL, atada a una
// transacción. Lleva registro de qué filas bloqueó (SELECT FOR UPDATE) para
// rechazar deltas sobre filas no bloqueadas en esta misma tx.
type StockRepo struct {
	q      Querier
	locked map[entity.StockRef]bool
}

// NewStockRepository construye el adaptador de stock. Pasar la tx del motor.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q, locked: make(map[entity.StockRef]bool)}
}

// stockTable devuelve la tabla según el tipo de entidad.
func stockTable(ref entity.StockRef) (string, error) {
	switch ref.Kind {
	case entity.StockKindIngredient:
		return "ingredients", nil
	case entity.StockKindProduct:
		return "products", nil
	default:
		return "", fmt.Errorf("tipo de stock desconocido %q: %w", ref.Kind, domain.ErrInvalidInput)
	}
}

// Get lee la cantidad actual sin bloquear.
func (r *StockRepo) Get(ref entity.StockRef) (decimal.Decimal, error) {
	table, err := stockTable(ref)
	if err != nil {
		return decimal.Zero, err
	}
	var qty decimal.Decimal
	err = r.q.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT stock FROM %s WHERE id = $1`, table), ref.ID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("get stock: %w", err)
	}
	return qty, nil
}

// LockAndGet bloquea las filas en orden canónico (tipo, luego ID) y devuelve
// las cantidades actuales. El orden fijo evita interbloqueos entre
// operaciones concurrentes que tocan conjuntos solapados de entidades.
func (r *StockRepo) LockAndGet(refs []entity.StockRef) (map[entity.StockRef]decimal.Decimal, error) {
	sorted := make([]entity.StockRef, len(refs))
	copy(sorted, refs)
	entity.SortRefs(sorted)

	out := make(map[entity.StockRef]decimal.Decimal, len(sorted))
	for _, ref := range sorted {
		table, err := stockTable(ref)
		if err != nil {
			return nil, err
		}
		var qty decimal.Decimal
		err = r.q.QueryRow(context.Background(),
			fmt.Sprintf(`SELECT stock FROM %s WHERE id = $1 FOR UPDATE`, table), ref.ID,
		).Scan(&qty)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrNotFound
			}
			if isLockNotAvailable(err) {
				return nil, domain.ErrLockTimeout
			}
			return nil, fmt.Errorf("lock stock %s/%s: %w", ref.Kind, ref.ID, err)
		}
		r.locked[ref] = true
		out[ref] = qty
	}
	return out, nil
}

// ApplyDelta suma el delta firmado a una fila ya bloqueada en esta tx.
func (r *StockRepo) ApplyDelta(ref entity.StockRef, delta decimal.Decimal) error {
	if !r.locked[ref] {
		return domain.ErrNotLocked
	}
	table, err := stockTable(ref)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(),
		fmt.Sprintf(`UPDATE %s SET stock = stock + $2, updated_at = now() WHERE id = $1`, table),
		ref.ID, delta,
	)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	return nil
}
