package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production registra una tanda de producción: acredita Quantity unidades del
// producto y debita los insumos según su receta. Inmutable una vez confirmada.
type Production struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal // > 0
	Date      time.Time
	CreatedAt time.Time
}

// ProductionConsumption es el consumo de un insumo dentro de una tanda:
// Quantity = unidades producidas × cantidad por unidad de la receta.
type ProductionConsumption struct {
	ID           string
	ProductionID string
	IngredientID string
	Quantity     decimal.Decimal
}
