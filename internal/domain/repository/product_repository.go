package repository

import (
	"context"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas excluyen productos inactivos (borrado lógico).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetActiveByID(ctx context.Context, id string) (*entity.Product, error)
	// GetActiveByIDForUpdate igual que GetActiveByID pero bloquea la fila dentro de una transacción.
	GetActiveByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// SoftDelete marca el producto como inactivo. Devuelve false si no existía activo.
	SoftDelete(ctx context.Context, id string) (bool, error)
	// Search filtra por subcadena (nombre o descripción, sin distinguir mayúsculas) y categoría exacta.
	Search(ctx context.Context, term, category string) ([]*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	// ListLowStock productos con quantity < threshold, ordenados por cantidad ascendente.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	// Categories categorías distintas de productos activos, en orden alfabético.
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// ProductTxRunner ejecuta fn con un ProductRepository atado a una transacción.
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(repo ProductRepository) error) error
}
