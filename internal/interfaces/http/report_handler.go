package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/application/inventory"
	"github.com/jhoicas/Panaderia-api/internal/application/reports"
)

// ReportHandler reportes de solo lectura (protegido, solo admin).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// reportRange resuelve el rango pedido; sin parámetros usa los últimos 30 días.
func reportRange(c *fiber.Ctx) (from, to time.Time) {
	now := time.Now()
	to = now
	from = now.AddDate(0, 0, -30)
	if t := inventory.ParseDateParam(c.Query("from")); t != nil {
		from = *t
	}
	if t := inventory.ParseDateParam(c.Query("to")); t != nil {
		to = *t
	}
	return from, to
}

// DailyRevenue ingresos por día.
func (h *ReportHandler) DailyRevenue(c *fiber.Ctx) error {
	from, to := reportRange(c)
	out, err := h.uc.DailyRevenue(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts productos más vendidos.
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	from, to := reportRange(c)
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.TopProducts(from, to, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock entidades bajo el umbral (query: threshold, parse indulgente).
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := inventory.ParseQuantity(c.Query("threshold", "5"))
	out, err := h.uc.LowStock(threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
