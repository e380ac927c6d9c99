package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es la cabecera de una venta. Inmutable una vez confirmada: las
// correcciones se modelan como transacciones compensatorias nuevas, nunca
// editando la original.
type Sale struct {
	ID        string
	SellerID  string
	Date      time.Time
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SaleLine es una línea de venta. UnitPrice se congela con el precio del
// producto al momento de confirmar, para que el libro no dependa de precios
// futuros.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal // > 0
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
