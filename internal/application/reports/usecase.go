package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Panaderia-api/internal/application/dto"
	"github.com/jhoicas/Panaderia-api/internal/domain/repository"
)

// ReportUseCase reportes de solo lectura sobre el libro confirmado.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// DailyRevenue ingresos por día en [from, to].
func (uc *ReportUseCase) DailyRevenue(from, to time.Time) (*dto.DailyRevenueResponse, error) {
	rows, err := uc.repo.DailyRevenue(from, to)
	if err != nil {
		return nil, err
	}
	out := &dto.DailyRevenueResponse{
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Items: make([]dto.DailyRevenueItem, 0, len(rows)),
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.DailyRevenueItem{
			Day:   r.Day.Format("2006-01-02"),
			Total: r.Total,
		})
	}
	return out, nil
}

// TopProducts productos más vendidos por unidades en [from, to].
func (uc *ReportUseCase) TopProducts(from, to time.Time, limit int) (*dto.TopProductsResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.TopProducts(from, to, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.TopProductsResponse{
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Items: make([]dto.TopProductItem, 0, len(rows)),
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.TopProductItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			Units:     r.Units,
			Revenue:   r.Revenue,
		})
	}
	return out, nil
}

// LowStock insumos y productos por debajo del umbral.
func (uc *ReportUseCase) LowStock(threshold decimal.Decimal) (*dto.LowStockResponse, error) {
	rows, err := uc.repo.LowStock(threshold)
	if err != nil {
		return nil, err
	}
	out := &dto.LowStockResponse{
		Threshold: threshold,
		Items:     make([]dto.LowStockItem, 0, len(rows)),
	}
	for _, r := range rows {
		out.Items = append(out.Items, dto.LowStockItem{
			Kind:  r.Ref.Kind,
			ID:    r.Ref.ID,
			Name:  r.Name,
			Stock: r.Stock,
		})
	}
	return out, nil
}
