package entity

import "github.com/shopspring/decimal"

// RecipeLine es una línea de la receta (lista de materiales) de un producto
// de tipo PAN: cuánto insumo consume producir una unidad. Un producto BEBIDA
// no tiene líneas de receta.
type RecipeLine struct {
	ID              string
	ProductID       string
	IngredientID    string
	QuantityPerUnit decimal.Decimal // > 0
}
