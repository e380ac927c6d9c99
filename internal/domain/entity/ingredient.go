package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un insumo de producción (harina, levadura, etc.).
// Stock nunca puede quedar negativo; solo lo muta el motor de transacciones.
type Ingredient struct {
	ID        string
	Name      string
	Stock     decimal.Decimal
	UnitCost  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref devuelve la referencia de stock del insumo.
func (i *Ingredient) Ref() StockRef { return IngredientRef(i.ID) }
