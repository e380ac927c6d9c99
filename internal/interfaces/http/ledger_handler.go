package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/domain"
	"github.com/jhoicas/Panaderia-api/internal/infrastructure/pdf"
)

// LedgerHandler consultas de solo lectura del libro de operaciones.
type LedgerHandler struct {
	uc        *inventory.LedgerUseCase
	ticketGen *pdf.SaleTicketGenerator
}

// NewLedgerHandler construye el handler del libro.
func NewLedgerHandler(uc *inventory.LedgerUseCase, ticketGen *pdf.SaleTicketGenerator) *LedgerHandler {
	return &LedgerHandler{uc: uc, ticketGen: ticketGen}
}

func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetSale devuelve una venta con sus líneas.
func (h *LedgerHandler) GetSale(c *fiber.Ctx) error {
	receipt, err := h.uc.GetSale(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// ListSales lista ventas por rango de fechas (query: from, to, limit, offset).
func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from := inventory.ParseDateParam(c.Query("from"))
	to := inventory.ParseDateParam(c.Query("to"))
	out, err := h.uc.ListSales(from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetSaleTicket genera el ticket PDF de una venta.
func (h *LedgerHandler) GetSaleTicket(c *fiber.Ctx) error {
	receipt, err := h.uc.GetSale(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.ticketGen.GenerateSaleTicket(c.Context(), receipt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+receipt.SaleID+`.pdf"`)
	return c.Send(bytes)
}

// GetPurchase devuelve una compra con sus líneas.
func (h *LedgerHandler) GetPurchase(c *fiber.Ctx) error {
	receipt, err := h.uc.GetPurchase(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// ListPurchases lista compras por rango de fechas.
func (h *LedgerHandler) ListPurchases(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from := inventory.ParseDateParam(c.Query("from"))
	to := inventory.ParseDateParam(c.Query("to"))
	out, err := h.uc.ListPurchases(from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProduction devuelve una tanda con sus consumos.
func (h *LedgerHandler) GetProduction(c *fiber.Ctx) error {
	receipt, err := h.uc.GetProduction(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(receipt)
}

// ListProductions lista tandas por rango de fechas.
func (h *LedgerHandler) ListProductions(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from := inventory.ParseDateParam(c.Query("from"))
	to := inventory.ParseDateParam(c.Query("to"))
	out, err := h.uc.ListProductions(from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
