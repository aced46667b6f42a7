package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-system/internal/application/report"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return []*entity.Product{
		{ID: "1", Name: "Monitor Samsung 27\"", Description: "Monitor LED 27 pulgadas Full HD con puertos HDMI", Price: decimal.RequireFromString("4599.00"), Quantity: 2, Category: "Electrónica", IsActive: true, CreatedAt: created},
		{ID: "2", Name: "Laptop HP Pavilion", Description: "Laptop", Price: decimal.RequireFromString("12999.00"), Quantity: 15, Category: "Electrónica", IsActive: true, CreatedAt: created},
	}
}

func TestMarotoPDFGenerator_LowStockPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	out, err := g.LowStockPDF(context.Background(), sampleProducts()[:1], time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_LowStockPDF_Empty(t *testing.T) {
	out, err := NewMarotoPDFGenerator().LowStockPDF(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_InventoryPDF(t *testing.T) {
	products := sampleProducts()
	out, err := NewMarotoPDFGenerator().InventoryPDF(context.Background(), products, report.Summarize(products), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "$12,999.00", g.formatMoney(decimal.RequireFromString("12999")))
	assert.Equal(t, "$899.50", g.formatMoney(decimal.RequireFromString("899.5")))
	assert.Equal(t, "$1,234,567.89", g.formatMoney(decimal.RequireFromString("1234567.891")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 30))
	assert.Equal(t, "", truncate("", 30))
	long := "Monitor LED 27 pulgadas Full HD con puertos HDMI"
	got := truncate(long, 30)
	assert.Len(t, []rune(got), 30)
	assert.Equal(t, "Monitor LED 27 pulgadas Ful...", got)
	assert.Equal(t, "Audífonos inalámbricos con ...", truncate("Audífonos inalámbricos con cancelación de ruido", 30))
}
