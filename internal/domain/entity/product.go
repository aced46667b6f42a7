package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold umbral fijo: un producto tiene inventario bajo si Quantity < 5.
const LowStockThreshold = 5

// Product representa un producto del inventario.
// El borrado es lógico: IsActive=false conserva la fila pero la oculta de todas las lecturas.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// IsLowStock indica si la cantidad está por debajo del umbral.
func (p *Product) IsLowStock() bool {
	return IsLowStockQuantity(p.Quantity)
}

// IsLowStockQuantity aplica la regla de inventario bajo a una cantidad.
func IsLowStockQuantity(qty int) bool {
	return qty < LowStockThreshold
}

// CrossesLowStock indica si pasar de previous a current cruza el umbral hacia abajo (>=5 → <5).
func CrossesLowStock(previous, current int) bool {
	return !IsLowStockQuantity(previous) && IsLowStockQuantity(current)
}
