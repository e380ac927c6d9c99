package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Panaderia-api/internal/application/catalog"
	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain"
)

// RecipeHandler maneja la edición de recetas de productos PAN.
type RecipeHandler struct {
	uc *catalog.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *catalog.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// AddLine agrega una línea a la receta del producto.
func (h *RecipeHandler) AddLine(c *fiber.Ctx) error {
	var in dto.CreateRecipeLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddLine(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o insumo no encontrado"})
		case domain.ErrNotManufactured:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_MANUFACTURED", Message: "solo productos PAN tienen receta"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_per_unit debe ser positivo"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el insumo ya está en la receta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista la receta de un producto.
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveLine elimina una línea de receta.
func (h *RecipeHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveLine(c.Params("lineId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
