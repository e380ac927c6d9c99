package inventory

import (
	"time"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain/entity"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el libro de operaciones
// confirmadas. Usa repos atados al pool; no abre transacciones.
type LedgerUseCase struct {
	saleRepo       repository.SaleRepository
	purchaseRepo   repository.PurchaseRepository
	productionRepo repository.ProductionRepository
}

// NewLedgerUseCase construye el caso de uso de consulta del libro.
func NewLedgerUseCase(saleRepo repository.SaleRepository, purchaseRepo repository.PurchaseRepository, productionRepo repository.ProductionRepository) *LedgerUseCase {
	return &LedgerUseCase{saleRepo: saleRepo, purchaseRepo: purchaseRepo, productionRepo: productionRepo}
}

// ParseDateParam interpreta un parámetro de fecha de query string. Acepta
// fecha sola o timestamp; vacío o ilegible devuelve nil (rango abierto).
func ParseDateParam(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// GetSale devuelve una venta confirmada con sus líneas.
func (uc *LedgerUseCase) GetSale(id string) (*dto.SaleReceipt, error) {
	sale, lines, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	receipt := &dto.SaleReceipt{
		SaleID:   sale.ID,
		SellerID: sale.SellerID,
		Date:     sale.Date,
		Total:    sale.Total,
		Lines:    make([]dto.ReceiptLine, 0, len(lines)),
	}
	for _, l := range lines {
		receipt.Lines = append(receipt.Lines, dto.ReceiptLine{
			Kind:      entity.StockKindProduct,
			TargetID:  l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return receipt, nil
}

// ListSales lista cabeceras de venta en un rango de fechas.
func (uc *LedgerUseCase) ListSales(from, to *time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleSummary, 0, len(sales)), Limit: limit, Offset: offset}
	for _, s := range sales {
		out.Items = append(out.Items, dto.SaleSummary{SaleID: s.ID, SellerID: s.SellerID, Date: s.Date, Total: s.Total})
	}
	return out, nil
}

// GetPurchase devuelve una compra confirmada con sus líneas.
func (uc *LedgerUseCase) GetPurchase(id string) (*dto.PurchaseReceipt, error) {
	purchase, lines, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	receipt := &dto.PurchaseReceipt{
		PurchaseID: purchase.ID,
		SupplierID: purchase.SupplierID,
		Date:       purchase.Date,
		Total:      purchase.Total,
		Lines:      make([]dto.ReceiptLine, 0, len(lines)),
	}
	for _, l := range lines {
		receipt.Lines = append(receipt.Lines, dto.ReceiptLine{
			Kind:      l.Ref.Kind,
			TargetID:  l.Ref.ID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return receipt, nil
}

// ListPurchases lista cabeceras de compra en un rango de fechas.
func (uc *LedgerUseCase) ListPurchases(from, to *time.Time, limit, offset int) (*dto.PurchaseListResponse, error) {
	purchases, err := uc.purchaseRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{Items: make([]dto.PurchaseSummary, 0, len(purchases)), Limit: limit, Offset: offset}
	for _, p := range purchases {
		out.Items = append(out.Items, dto.PurchaseSummary{PurchaseID: p.ID, SupplierID: p.SupplierID, Date: p.Date, Total: p.Total})
	}
	return out, nil
}

// GetProduction devuelve una tanda confirmada con sus consumos.
func (uc *LedgerUseCase) GetProduction(id string) (*dto.ProductionReceipt, error) {
	production, consumptions, err := uc.productionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	receipt := &dto.ProductionReceipt{
		ProductionID: production.ID,
		ProductID:    production.ProductID,
		Quantity:     production.Quantity,
		Date:         production.Date,
		Consumed:     make([]dto.ReceiptLine, 0, len(consumptions)),
	}
	for _, c := range consumptions {
		receipt.Consumed = append(receipt.Consumed, dto.ReceiptLine{
			Kind:     entity.StockKindIngredient,
			TargetID: c.IngredientID,
			Quantity: c.Quantity,
		})
	}
	return receipt, nil
}

// ListProductions lista cabeceras de tandas en un rango de fechas.
func (uc *LedgerUseCase) ListProductions(from, to *time.Time, limit, offset int) (*dto.ProductionListResponse, error) {
	productions, err := uc.productionRepo.ListByDateRange(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductionListResponse{Items: make([]dto.ProductionSummary, 0, len(productions)), Limit: limit, Offset: offset}
	for _, p := range productions {
		out.Items = append(out.Items, dto.ProductionSummary{ProductionID: p.ID, ProductID: p.ProductID, Quantity: p.Quantity, Date: p.Date})
	}
	return out, nil
}
