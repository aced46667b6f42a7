package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/application/usecase"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/internal/infrastructure/memory"
)

// fixture casos de uso cableados sobre el almacén en memoria.
type fixture struct {
	store          *memory.Store
	users          *memory.UserRepo
	products       *memory.ProductRepo
	notifications  repository.NotificationRepository
	notificationUC *usecase.NotificationUseCase
	productUC      *usecase.ProductUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, nil)
}

// newFixtureWith permite envolver el repositorio de notificaciones (p. ej. para inyectar fallos).
func newFixtureWith(t *testing.T, wrap func(repository.NotificationRepository) repository.NotificationRepository) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore()}
	f.users = memory.NewUserRepository(f.store)
	f.products = memory.NewProductRepository(f.store)
	f.notifications = memory.NewNotificationRepository(f.store)
	if wrap != nil {
		f.notifications = wrap(f.notifications)
	}
	f.notificationUC = usecase.NewNotificationUseCase(f.notifications, f.users, nil)
	f.productUC = usecase.NewProductUseCase(f.products, memory.NewTxRunner(f.store), f.notificationUC, nil)
	return f
}

func (f *fixture) addUser(t *testing.T, username, role string, active bool) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) unread(t *testing.T, userID string) []dto.NotificationResponse {
	t.Helper()
	list, err := f.notificationUC.ListUnreadByUser(context.Background(), userID)
	require.NoError(t, err)
	return list
}

func productIn(name string, qty int, category string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        name,
		Description: "descripción de " + name,
		Price:       decimal.RequireFromString("10.50"),
		Quantity:    qty,
		Category:    category,
	}
}

func updateIn(name string, qty int, category string) dto.UpdateProductRequest {
	return dto.UpdateProductRequest(productIn(name, qty, category))
}

// failingNotifications falla Create para los destinatarios marcados.
type failingNotifications struct {
	repository.NotificationRepository
	failFor map[string]bool
}

func (r *failingNotifications) Create(ctx context.Context, n *entity.Notification) error {
	if r.failFor[n.UserID] {
		return errors.New("insert falló")
	}
	return r.NotificationRepository.Create(ctx, n)
}

// allFailing falla cualquier operación de escritura.
type allFailing struct {
	repository.NotificationRepository
}

func (allFailing) Create(context.Context, *entity.Notification) error {
	return errors.New("base de datos caída")
}

var errUUIDSyntax = errors.New("invalid input syntax for type uuid")

// uuidColumnProducts se comporta como una tabla con id UUID: un id mal formado es un error de la base.
type uuidColumnProducts struct {
	repository.ProductRepository
	badIDCalls int
}

func (r *uuidColumnProducts) check(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		r.badIDCalls++
		return errUUIDSyntax
	}
	return nil
}

func (r *uuidColumnProducts) GetActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	return r.ProductRepository.GetActiveByID(ctx, id)
}

func (r *uuidColumnProducts) GetActiveByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	return r.ProductRepository.GetActiveByIDForUpdate(ctx, id)
}

func (r *uuidColumnProducts) SoftDelete(ctx context.Context, id string) (bool, error) {
	if err := r.check(id); err != nil {
		return false, err
	}
	return r.ProductRepository.SoftDelete(ctx, id)
}

type uuidColumnTx struct {
	repo *uuidColumnProducts
}

func (t uuidColumnTx) RunProduct(_ context.Context, fn func(repo repository.ProductRepository) error) error {
	return fn(t.repo)
}

// uuidColumnNotifications igual que uuidColumnProducts para notificaciones.
type uuidColumnNotifications struct {
	repository.NotificationRepository
	badIDCalls int
}

func (r *uuidColumnNotifications) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.badIDCalls++
		return nil, errUUIDSyntax
	}
	return r.NotificationRepository.GetByID(ctx, id)
}

func (r *uuidColumnNotifications) MarkAsRead(ctx context.Context, id string) (*entity.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.badIDCalls++
		return nil, errUUIDSyntax
	}
	return r.NotificationRepository.MarkAsRead(ctx, id)
}
