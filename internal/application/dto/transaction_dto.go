package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Las cantidades y precios de las operaciones llegan como string y se parsean
// con indulgencia (ilegible = cero, la fila se ignora), igual que los
// formularios del sistema original.

// SaleLineRequest línea de venta: producto y cantidad.
type SaleLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// SubmitSaleRequest body para POST /api/sales.
type SubmitSaleRequest struct {
	SellerID string            `json:"seller_id"`
	Lines    []SaleLineRequest `json:"lines"`
}

// PurchaseLineRequest línea de compra: insumo o producto según Kind.
type PurchaseLineRequest struct {
	Kind      string `json:"kind"` // INSUMO | PRODUCTO
	TargetID  string `json:"target_id"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// SubmitPurchaseRequest body para POST /api/purchases.
type SubmitPurchaseRequest struct {
	SupplierID string                `json:"supplier_id"`
	Lines      []PurchaseLineRequest `json:"lines"`
	OccurredOn string                `json:"occurred_on,omitempty"` // fecha u hora opcional, parse indulgente
}

// SubmitProductionRequest body para POST /api/productions.
type SubmitProductionRequest struct {
	ProductID  string `json:"product_id"`
	Quantity   string `json:"quantity"`
	OccurredOn string `json:"occurred_on,omitempty"`
}

// ReceiptLine línea confirmada en un recibo.
type ReceiptLine struct {
	Kind      string          `json:"kind"`
	TargetID  string          `json:"target_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleReceipt respuesta de una venta confirmada.
type SaleReceipt struct {
	SaleID   string          `json:"sale_id"`
	SellerID string          `json:"seller_id"`
	Date     time.Time       `json:"date"`
	Total    decimal.Decimal `json:"total"`
	Lines    []ReceiptLine   `json:"lines"`
}

// PurchaseReceipt respuesta de una compra confirmada.
type PurchaseReceipt struct {
	PurchaseID string          `json:"purchase_id"`
	SupplierID string          `json:"supplier_id"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Lines      []ReceiptLine   `json:"lines"`
}

// ProductionReceipt respuesta de una producción confirmada.
type ProductionReceipt struct {
	ProductionID string          `json:"production_id"`
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	Consumed     []ReceiptLine   `json:"consumed"`
}
