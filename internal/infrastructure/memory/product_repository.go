package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.ProductTxRunner   = (*TxRunner)(nil)
)

// ProductRepo productos en memoria. Las lecturas ignoran los inactivos.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio sobre el Store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrInvalidInput
	}
	r.s.products[product.ID] = copyProduct(product)
	return nil
}

func (r *ProductRepo) GetActiveByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	return copyProduct(p), nil
}

// GetActiveByIDForUpdate la exclusión la da TxRunner.
func (r *ProductRepo) GetActiveByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetActiveByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[product.ID]
	if !ok || !p.IsActive {
		return domain.ErrProductNotFound
	}
	r.s.products[product.ID] = copyProduct(product)
	return nil
}

func (r *ProductRepo) SoftDelete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok || !p.IsActive {
		return false, nil
	}
	now := time.Now().UTC()
	p.IsActive = false
	p.UpdatedAt = &now
	return true, nil
}

func (r *ProductRepo) Search(_ context.Context, term, category string) ([]*entity.Product, error) {
	t := fold(term)
	c := fold(category)
	list := r.filter(func(p *entity.Product) bool {
		if t != "" && !strings.Contains(fold(p.Name), t) && !strings.Contains(fold(p.Description), t) {
			return false
		}
		if c != "" && fold(p.Category) != c {
			return false
		}
		return true
	})
	sortByName(list)
	return list, nil
}

func (r *ProductRepo) ListActive(_ context.Context) ([]*entity.Product, error) {
	list := r.filter(func(*entity.Product) bool { return true })
	sortByName(list)
	return list, nil
}

func (r *ProductRepo) ListLowStock(_ context.Context, threshold int) ([]*entity.Product, error) {
	list := r.filter(func(p *entity.Product) bool { return p.Quantity < threshold })
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity < list[j].Quantity
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *ProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	for _, p := range r.filter(func(*entity.Product) bool { return true }) {
		seen[p.Category] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats, nil
}

// Count cuenta todas las filas, activas o no.
func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

// filter recorre solo productos activos.
func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if p.IsActive && keep(p) {
			list = append(list, copyProduct(p))
		}
	}
	return list
}

func sortByName(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

// TxRunner serializa las transacciones de producto con un mutex.
type TxRunner struct {
	s    *Store
	repo *ProductRepo
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s, repo: NewProductRepository(s)}
}

func (t *TxRunner) RunProduct(_ context.Context, fn func(repo repository.ProductRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()
	return fn(t.repo)
}
