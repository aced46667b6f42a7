package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price" validate:"gte=0.01"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Category    string          `json:"category" validate:"required,max=100"`
}

// UpdateProductRequest reemplaza todos los campos mutables del producto.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price" validate:"gte=0.01"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Category    string          `json:"category" validate:"required,max=100"`
}

// ProductQuery filtros opcionales del listado.
type ProductQuery struct {
	SearchTerm string `query:"searchTerm"`
	Category   string `query:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	IsLowStock  bool            `json:"is_low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}
