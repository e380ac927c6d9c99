package entity

import "sort"

// Tipos de entidad con stock.
const (
	StockKindIngredient = "INSUMO"
	StockKindProduct    = "PRODUCTO"
)

// StockRef identifica una entidad con stock (insumo o producto).
// Es comparable, así que sirve como clave de mapa en el motor de inventario.
type StockRef struct {
	Kind string // INSUMO | PRODUCTO
	ID   string
}

// IngredientRef construye la referencia de stock de un insumo.
func IngredientRef(id string) StockRef { return StockRef{Kind: StockKindIngredient, ID: id} }

// ProductRef construye la referencia de stock de un producto.
func ProductRef(id string) StockRef { return StockRef{Kind: StockKindProduct, ID: id} }

// Less define el orden canónico de bloqueo: primero por tipo, luego por ID.
// Todas las operaciones adquieren bloqueos en este orden para evitar
// interbloqueos entre operaciones concurrentes con conjuntos solapados.
func (r StockRef) Less(other StockRef) bool {
	if r.Kind != other.Kind {
		return r.Kind < other.Kind
	}
	return r.ID < other.ID
}

// SortRefs ordena las referencias en el orden canónico de bloqueo.
func SortRefs(refs []StockRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}
