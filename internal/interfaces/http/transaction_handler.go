package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/domain"
)

// TransactionHandler maneja las tres operaciones del motor de inventario:
// venta, compra y producción. Cada una valida y confirma de forma atómica.
type TransactionHandler struct {
	uc *inventory.TransactionUseCase
}

// NewTransactionHandler construye el handler de transacciones.
func NewTransactionHandler(uc *inventory.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// SubmitSale registra una venta: debita stock de productos y asienta en el
// libro. 409 con faltantes itemizados si no alcanza el stock.
func (h *TransactionHandler) SubmitSale(c *fiber.Ctx) error {
	var in dto.SubmitSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.SubmitSale(c.Context(), in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// SubmitPurchase registra una compra a proveedor: acredita stock de insumos
// o productos según la categoría del proveedor.
func (h *TransactionHandler) SubmitPurchase(c *fiber.Ctx) error {
	var in dto.SubmitPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.SubmitPurchase(c.Context(), in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// SubmitProduction registra una tanda: expande la receta, debita insumos y
// acredita el producto fabricado.
func (h *TransactionHandler) SubmitProduction(c *fiber.Ctx) error {
	var in dto.SubmitProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.SubmitProduction(c.Context(), in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// transactionError traduce los errores del motor a respuestas HTTP. El
// rechazo por faltante devuelve la lista completa de faltantes para que el
// cliente corrija la operación entera.
func transactionError(c *fiber.Ctx, err error) error {
	var shortfall *domain.ShortfallError
	if errors.As(err, &shortfall) {
		resp := dto.ShortfallResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "stock insuficiente, la operación completa fue rechazada",
			Shortfall: make([]dto.ShortfallItem, 0, len(shortfall.Items)),
		}
		for _, item := range shortfall.Items {
			resp.Shortfall = append(resp.Shortfall, dto.ShortfallItem{
				Kind:      item.Ref.Kind,
				ID:        item.Ref.ID,
				Available: item.Available.String(),
				Required:  item.Required.String(),
			})
		}
		return c.Status(fiber.StatusConflict).JSON(resp)
	}
	switch {
	case errors.Is(err, domain.ErrEmptyOperation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_OPERATION", Message: "la operación no tiene líneas válidas"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la operación inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entidad referenciada no existe"})
	case errors.Is(err, domain.ErrSupplierCategory):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SUPPLIER_CATEGORY", Message: "la línea no corresponde a la categoría del proveedor"})
	case errors.Is(err, domain.ErrNotManufactured):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_MANUFACTURED", Message: "solo productos de tipo PAN se producen"})
	case errors.Is(err, domain.ErrNoRecipe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RECIPE", Message: "el producto no tiene receta registrada"})
	case errors.Is(err, domain.ErrLockTimeout):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "LOCK_TIMEOUT", Message: "inventario ocupado, reintente la operación"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
