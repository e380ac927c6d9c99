package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es la cabecera de una compra a proveedor (insumos o productos de
// reventa). Inmutable una vez confirmada.
type Purchase struct {
	ID         string
	SupplierID string
	Date       time.Time
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// PurchaseLine es una línea de compra: referencia a un insumo o a un producto
// (según Ref.Kind), con cantidad y precio unitario pactado.
type PurchaseLine struct {
	ID         string
	PurchaseID string
	Ref        StockRef
	Quantity   decimal.Decimal // > 0
	UnitPrice  decimal.Decimal // >= 0
	Subtotal   decimal.Decimal
}
