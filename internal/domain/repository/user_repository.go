package repository

import (
	"context"

	"github.com/jhoicas/inventario-system/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas por email y username no distinguen mayúsculas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// ListActiveByRole devuelve los usuarios activos con el rol indicado.
	ListActiveByRole(ctx context.Context, role string) ([]*entity.User, error)
}
