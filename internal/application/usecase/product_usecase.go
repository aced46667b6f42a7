package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// AdminNotifier contrato mínimo para avisar a los administradores (lo implementa *NotificationUseCase).
type AdminNotifier interface {
	NotifyAdministrators(ctx context.Context, message, notifType string) (FanOutResult, error)
}

// LowStockMessage mensaje de alerta automática por inventario bajo.
func LowStockMessage(name string, qty int) string {
	return fmt.Sprintf("Alerta: El producto '%s' tiene inventario bajo (%d unidades)", name, qty)
}

// RestockReportMessage mensaje del reporte manual de reabastecimiento.
func RestockReportMessage(name string, qty int) string {
	return fmt.Sprintf("Reporte de empleado: El producto '%s' requiere reabastecimiento (Stock actual: %d unidades)", name, qty)
}

// ProductUseCase CRUD de productos con detección de inventario bajo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	tx       repository.ProductTxRunner
	notifier AdminNotifier
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx repository.ProductTxRunner, notifier AdminNotifier, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, tx: tx, notifier: notifier, log: log.Named("products")}
}

// List productos activos ordenados por nombre; searchTerm filtra nombre/descripción sin distinguir
// mayúsculas y category filtra por coincidencia exacta.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(ctx, strings.TrimSpace(q.SearchTerm), strings.TrimSpace(q.Category))
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock productos activos con cantidad bajo el umbral.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx, entity.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID obtiene un producto activo. ErrProductNotFound si no existe o está inactivo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrProductNotFound
	}
	p, err := uc.repo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(p), nil
}

// Create persiste un producto activo. Si nace con inventario bajo se avisa a los administradores.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, actorUserID string) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Category, in.Price, in.Quantity); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    strings.TrimSpace(in.Category),
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("actor_id", actorUserID).Msg("producto creado")

	if product.IsLowStock() {
		uc.notifyAdmins(ctx, product.ID, LowStockMessage(product.Name, product.Quantity))
	}
	return toProductResponse(product), nil
}

// Update reemplaza los campos mutables. Solo se avisa cuando la cantidad cruza el umbral
// (de >=5 a <5); si ya estaba bajo no se repite el aviso.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !isValidID(id) {
		return nil, domain.ErrProductNotFound
	}
	if err := validateProductFields(in.Name, in.Category, in.Price, in.Quantity); err != nil {
		return nil, err
	}
	var (
		updated *entity.Product
		crossed bool
	)
	err := uc.tx.RunProduct(ctx, func(repo repository.ProductRepository) error {
		product, err := repo.GetActiveByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		previous := product.Quantity
		now := time.Now().UTC()

		product.Name = strings.TrimSpace(in.Name)
		product.Description = in.Description
		product.Price = in.Price
		product.Quantity = in.Quantity
		product.Category = strings.TrimSpace(in.Category)
		product.UpdatedAt = &now
		if err := repo.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		crossed = entity.CrossesLowStock(previous, product.Quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if crossed {
		uc.notifyAdmins(ctx, updated.ID, LowStockMessage(updated.Name, updated.Quantity))
	}
	return toProductResponse(updated), nil
}

// Delete borrado lógico. ErrProductNotFound si no existe o ya estaba inactivo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return domain.ErrProductNotFound
	}
	ok, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotFound
	}
	return nil
}

// ReportLowStock cualquier usuario autenticado puede pedir reabastecimiento.
// El aviso se envía siempre que el producto exista, sin mirar la cantidad actual.
func (uc *ProductUseCase) ReportLowStock(ctx context.Context, productID, reporterUserID string) error {
	if !isValidID(productID) {
		return domain.ErrProductNotFound
	}
	p, err := uc.repo.GetActiveByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	uc.log.Info().Str("product_id", p.ID).Str("reporter_id", reporterUserID).Msg("reporte de reabastecimiento")
	uc.notifyAdmins(ctx, p.ID, RestockReportMessage(p.Name, p.Quantity))
	return nil
}

// Categories categorías distintas de productos activos, en orden alfabético.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	cats, err := uc.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// notifyAdmins no falla la operación de producto: los errores del fan-out solo se registran.
func (uc *ProductUseCase) notifyAdmins(ctx context.Context, productID, message string) {
	if uc.notifier == nil {
		return
	}
	res, err := uc.notifier.NotifyAdministrators(ctx, message, entity.NotificationWarning)
	if err != nil {
		uc.log.Error().Err(err).Str("product_id", productID).Msg("fan-out de inventario bajo fallido")
		return
	}
	if res.Failed > 0 {
		uc.log.Warn().Str("product_id", productID).Int("failed", res.Failed).Int("recipients", res.Recipients).
			Msg("fan-out de inventario bajo parcial")
	}
}

// minPrice la columna guarda dos decimales; un precio menor se redondearía a 0.
var minPrice = decimal.New(1, -2)

func validateProductFields(name, category string, price decimal.Decimal, qty int) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" || price.LessThan(minPrice) || qty < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// isValidID los ids son UUID; cualquier otro valor no puede existir.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		IsLowStock:  p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
