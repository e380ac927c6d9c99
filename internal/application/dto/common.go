package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ShortfallItem faltante de stock de una línea rechazada.
type ShortfallItem struct {
	Kind      string `json:"kind"` // INSUMO | PRODUCTO
	ID        string `json:"id"`
	Available string `json:"available"`
	Required  string `json:"required"`
}

// ShortfallResponse cuerpo de rechazo por stock insuficiente: la operación
// completa se descarta y se devuelve la lista itemizada de faltantes.
type ShortfallResponse struct {
	Code      string          `json:"code"` // INSUFFICIENT_STOCK
	Message   string          `json:"message"`
	Shortfall []ShortfallItem `json:"shortfall"`
}
