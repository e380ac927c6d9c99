package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
)

// Shortfall describe una línea rechazada por falta de stock: qué entidad,
// cuánto había disponible y cuánto se necesitaba.
type Shortfall struct {
	Ref       entity.StockRef
	Available decimal.Decimal
	Required  decimal.Decimal
}

// ShortfallError agrupa todos los faltantes de una operación. La operación
// completa se rechaza: una línea sin stock bloquea también las líneas que sí
// alcanzaban (todo o nada).
type ShortfallError struct {
	Items []Shortfall
}

func (e *ShortfallError) Error() string {
	var b strings.Builder
	b.WriteString("stock insuficiente:")
	for _, s := range e.Items {
		fmt.Fprintf(&b, " %s %s (disponible %s, requerido %s);",
			s.Ref.Kind, s.Ref.ID, s.Available.String(), s.Required.String())
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *ShortfallError) Unwrap() error { return ErrInsufficientStock }
