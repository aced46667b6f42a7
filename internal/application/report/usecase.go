package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// UseCase genera los reportes PDF a partir del estado actual de productos.
// No hay caché: cada llamada consulta y dibuja de nuevo.
type UseCase struct {
	productRepo repository.ProductRepository
	generator   PDFGenerator
	log         *logger.Logger
	now         func() time.Time
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(productRepo repository.ProductRepository, generator PDFGenerator, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{productRepo: productRepo, generator: generator, log: log.Named("reports"), now: time.Now}
}

// LowStockReport PDF con los productos bajo el umbral. Devuelve bytes y nombre de archivo.
func (uc *UseCase) LowStockReport(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.ListLowStock(ctx, entity.LowStockThreshold)
	if err != nil {
		return nil, "", err
	}
	at := uc.now()
	pdf, err := uc.generator.LowStockPDF(ctx, products, at)
	if err != nil || len(pdf) == 0 {
		uc.log.Error().Err(err).Msg("reporte de inventario bajo")
		return []byte{}, "", domain.ErrReportGeneration
	}
	return pdf, fmt.Sprintf("Reporte_Inventario_Bajo_%s.pdf", at.Format("20060102")), nil
}

// InventoryReport PDF con todos los productos activos y el resumen de totales.
func (uc *UseCase) InventoryReport(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}
	at := uc.now()
	pdf, err := uc.generator.InventoryPDF(ctx, products, Summarize(products), at)
	if err != nil || len(pdf) == 0 {
		uc.log.Error().Err(err).Msg("reporte general de inventario")
		return []byte{}, "", domain.ErrReportGeneration
	}
	return pdf, fmt.Sprintf("Reporte_Inventario_%s.pdf", at.Format("20060102")), nil
}

// Summarize calcula los totales del reporte general.
func Summarize(products []*entity.Product) InventorySummary {
	s := InventorySummary{TotalProducts: len(products), TotalValue: decimal.Zero}
	for _, p := range products {
		if p.IsLowStock() {
			s.LowStockCount++
		}
		s.TotalValue = s.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return s
}
