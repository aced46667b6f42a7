// Package bootstrap carga los datos iniciales del sistema: el administrador por defecto y,
// opcionalmente, un catálogo de productos de ejemplo.
package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-system/internal/application/auth"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// Admin credenciales del administrador inicial.
type Admin struct {
	Username string
	Email    string
	Password string
}

// DefaultAdmin administrador creado en una base vacía.
var DefaultAdmin = Admin{Username: "admin", Email: "admin@sistema.com", Password: "Admin123!"}

// SampleProduct fila del catálogo de ejemplo.
type SampleProduct struct {
	Name        string
	Description string
	Price       string
	Quantity    int
	Category    string
}

// SampleProducts catálogo de ejemplo; tres de los cinco arrancan con inventario bajo.
var SampleProducts = []SampleProduct{
	{"Laptop HP Pavilion", "Laptop HP Pavilion 15.6\", Intel Core i5, 8GB RAM, 512GB SSD", "12999.00", 15, "Electrónica"},
	{"Mouse Logitech MX Master", "Mouse inalámbrico ergonómico", "1899.00", 3, "Accesorios"},
	{"Teclado Mecánico Redragon", "Teclado mecánico RGB switches blue", "899.00", 8, "Accesorios"},
	{"Monitor Samsung 27\"", "Monitor LED 27 pulgadas Full HD", "4599.00", 2, "Electrónica"},
	{"Audífonos Sony WH-1000XM4", "Audífonos inalámbricos con cancelación de ruido", "6499.00", 4, "Audio"},
}

// Seeder escribe los datos iniciales a través de los puertos de repositorio.
type Seeder struct {
	users    repository.UserRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(users repository.UserRepository, products repository.ProductRepository, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{users: users, products: products, log: log.Named("seed")}
}

// SeedAdmin crea el administrador si no existe un usuario con ese email. Devuelve true si lo creó.
func (s *Seeder) SeedAdmin(ctx context.Context, admin Admin) (bool, error) {
	if strings.TrimSpace(admin.Email) == "" {
		admin = DefaultAdmin
	}
	email := auth.NormalizeEmail(admin.Email)
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("buscar administrador: %w", err)
	}
	if existing != nil {
		return false, nil
	}
	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return false, fmt.Errorf("hash administrador: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     admin.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdministrador,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return false, fmt.Errorf("crear administrador: %w", err)
	}
	s.log.Info().Str("email", email).Msg("administrador inicial creado")
	return true, nil
}

// SeedProducts inserta el catálogo solo si la tabla de productos está vacía. Devuelve cuántos insertó.
func (s *Seeder) SeedProducts(ctx context.Context, catalog []SampleProduct) (int, error) {
	n, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for _, sp := range catalog {
		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			return 0, fmt.Errorf("precio %q: %w", sp.Name, err)
		}
		p := &entity.Product{
			ID:          uuid.New().String(),
			Name:        sp.Name,
			Description: sp.Description,
			Price:       price,
			Quantity:    sp.Quantity,
			Category:    sp.Category,
			IsActive:    true,
			CreatedAt:   now,
		}
		if err := s.products.Create(ctx, p); err != nil {
			return 0, fmt.Errorf("crear producto %q: %w", sp.Name, err)
		}
	}
	s.log.Info().Int("count", len(catalog)).Msg("productos de ejemplo cargados")
	return len(catalog), nil
}

// Run ejecuta el seeding completo.
func (s *Seeder) Run(ctx context.Context, admin Admin, withProducts bool) error {
	if _, err := s.SeedAdmin(ctx, admin); err != nil {
		return err
	}
	if withProducts {
		if _, err := s.SeedProducts(ctx, SampleProducts); err != nil {
			return err
		}
	}
	return nil
}
