package dto

import "github.com/shopspring/decimal"

// DailyRevenueItem ingreso de un día.
type DailyRevenueItem struct {
	Day   string          `json:"day"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// DailyRevenueResponse reporte de ingresos por día.
type DailyRevenueResponse struct {
	From  string             `json:"from"`
	To    string             `json:"to"`
	Items []DailyRevenueItem `json:"items"`
}

// TopProductItem producto más vendido en el rango.
type TopProductItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Units     decimal.Decimal `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopProductsResponse reporte de productos más vendidos.
type TopProductsResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Items []TopProductItem `json:"items"`
}

// LowStockItem entidad bajo el umbral de stock.
type LowStockItem struct {
	Kind  string          `json:"kind"` // INSUMO | PRODUCTO
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Stock decimal.Decimal `json:"stock"`
}

// LowStockResponse reporte de stock bajo.
type LowStockResponse struct {
	Threshold decimal.Decimal `json:"threshold"`
	Items     []LowStockItem  `json:"items"`
}
