package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// Line es una línea ya resuelta de una operación: entidad con stock y
// cantidad positiva.
type Line struct {
	Ref      entity.StockRef
	Quantity decimal.Decimal
}

// ParseQuantity interpreta una cantidad enviada por el caller con la política
// de indulgencia del formulario original: vacío, no numérico o ilegible vale
// cero (la fila se descarta después), en vez de abortar toda la operación.
// Acepta coma decimal además de punto.
func ParseQuantity(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MergeLines filtra y consolida las líneas crudas de una operación:
// descarta cantidades <= 0 y suma las líneas duplicadas de la misma entidad
// (el mismo producto dos veces en un carrito cuenta una sola vez con la
// cantidad total). Conserva el orden de primera aparición.
func MergeLines(lines []Line) []Line {
	totals := make(map[entity.StockRef]decimal.Decimal, len(lines))
	var order []entity.StockRef
	for _, ln := range lines {
		if !ln.Quantity.IsPositive() {
			continue
		}
		if _, seen := totals[ln.Ref]; !seen {
			order = append(order, ln.Ref)
		}
		totals[ln.Ref] = totals[ln.Ref].Add(ln.Quantity)
	}
	merged := make([]Line, 0, len(order))
	for _, ref := range order {
		merged = append(merged, Line{Ref: ref, Quantity: totals[ref]})
	}
	return merged
}

// ExpandRecipe calcula el consumo de insumos de producir qty unidades:
// qty × cantidadPorUnidad por cada línea de receta, en el orden de la receta.
// La multiplicación decimal no pierde precisión frente a la escala almacenada.
func ExpandRecipe(qty decimal.Decimal, recipe []*entity.RecipeLine) []Line {
	consumption := make([]Line, 0, len(recipe))
	for _, rl := range recipe {
		consumption = append(consumption, Line{
			Ref:      entity.IngredientRef(rl.IngredientID),
			Quantity: qty.Mul(rl.QuantityPerUnit),
		})
	}
	return consumption
}

// NetDeltas arma el mapa de deltas netos firmados de una operación a partir
// de los créditos y débitos ya consolidados. Devuelve también la lista de
// referencias afectadas en orden canónico de bloqueo.
func NetDeltas(credits, debits []Line) (map[entity.StockRef]decimal.Decimal, []entity.StockRef) {
	deltas := make(map[entity.StockRef]decimal.Decimal, len(credits)+len(debits))
	for _, ln := range credits {
		deltas[ln.Ref] = deltas[ln.Ref].Add(ln.Quantity)
	}
	for _, ln := range debits {
		deltas[ln.Ref] = deltas[ln.Ref].Sub(ln.Quantity)
	}
	refs := make([]entity.StockRef, 0, len(deltas))
	for ref := range deltas {
		refs = append(refs, ref)
	}
	entity.SortRefs(refs)
	return deltas, refs
}
