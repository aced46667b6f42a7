package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

// InventorySummary totales que acompañan al reporte general.
type InventorySummary struct {
	TotalProducts int
	LowStockCount int
	TotalValue    decimal.Decimal // Σ price × quantity
}

// PDFGenerator dibuja los reportes. Lo implementa infrastructure/pdf.
type PDFGenerator interface {
	LowStockPDF(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
	InventoryPDF(ctx context.Context, products []*entity.Product, summary InventorySummary, generatedAt time.Time) ([]byte, error)
}
