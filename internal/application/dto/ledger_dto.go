package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleSummary cabecera de venta para listados del libro.
type SaleSummary struct {
	SaleID   string          `json:"sale_id"`
	SellerID string          `json:"seller_id"`
	Date     time.Time       `json:"date"`
	Total    decimal.Decimal `json:"total"`
}

// SaleListResponse listado paginado del libro de ventas.
type SaleListResponse struct {
	Items  []SaleSummary `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// PurchaseSummary cabecera de compra para listados del libro.
type PurchaseSummary struct {
	PurchaseID string          `json:"purchase_id"`
	SupplierID string          `json:"supplier_id"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
}

// PurchaseListResponse listado paginado del libro de compras.
type PurchaseListResponse struct {
	Items  []PurchaseSummary `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ProductionSummary cabecera de tanda para listados del libro.
type ProductionSummary struct {
	ProductionID string          `json:"production_id"`
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
}

// ProductionListResponse listado paginado del libro de producciones.
type ProductionListResponse struct {
	Items  []ProductionSummary `json:"items"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
