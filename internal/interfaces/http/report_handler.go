package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/report"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// ReportHandler descarga de reportes PDF.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// LowStockPDF godoc
// @Summary      Reporte PDF de inventario bajo
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.Envelope
// @Router       /api/reports/low-stock-pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	return h.send(c, h.uc.LowStockReport)
}

// InventoryPDF godoc
// @Summary      Reporte PDF general de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.Envelope
// @Router       /api/reports/inventory-pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	return h.send(c, h.uc.InventoryReport)
}

func (h *ReportHandler) send(c *fiber.Ctx, build func(ctx context.Context) ([]byte, string, error)) error {
	pdf, filename, err := build(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(pdf)
}
