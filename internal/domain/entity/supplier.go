package entity

import "time"

// Categorías de proveedor. Un proveedor de INSUMOS solo puede aparecer en
// compras de insumos; uno de BEBIDAS solo en compras de productos.
const (
	SupplierCategoryInsumos = "INSUMOS"
	SupplierCategoryBebidas = "BEBIDAS"
)

// Supplier representa un proveedor.
type Supplier struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Category  string // INSUMOS | BEBIDAS
	CreatedAt time.Time
	UpdatedAt time.Time
}
