package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto.
const (
	ProductKindPan    = "PAN"    // fabricación propia, consume insumos según receta
	ProductKindBebida = "BEBIDA" // reventa, se compra terminado a proveedores
)

// Product representa un producto vendible. Los de tipo PAN se producen a
// partir de insumos (receta); los de tipo BEBIDA se compran para reventa y no
// tienen receta.
type Product struct {
	ID        string
	Name      string
	Kind      string // PAN | BEBIDA
	Stock     decimal.Decimal
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal // precio de venta
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref devuelve la referencia de stock del producto.
func (p *Product) Ref() StockRef { return ProductRef(p.ID) }

// IsManufactured indica si el producto se fabrica (tipo PAN).
func (p *Product) IsManufactured() bool { return p.Kind == ProductKindPan }
