package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-system/internal/domain"
	"github.com/jhoicas/inventario-system/internal/domain/entity"
	"github.com/jhoicas/inventario-system/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, quantity, category, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository acepta el pool o una transacción.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Quantity, p.Category, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetActiveByID obtiene un producto activo; nil si no existe o fue eliminado.
func (r *ProductRepo) GetActiveByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active`, id)
}

// GetActiveByIDForUpdate bloquea la fila hasta el fin de la transacción.
func (r *ProductRepo) GetActiveByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active FOR UPDATE`, id)
}

// Update reemplaza los campos editables de un producto activo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, quantity = $5, category = $6, updated_at = $7
		WHERE id = $1 AND is_active`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Quantity, p.Category, p.UpdatedAt)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// SoftDelete pone is_active=false. Un segundo borrado no afecta filas.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return false, nil
		}
		return false, fmt.Errorf("soft delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Search subcadena literal en nombre o descripción y categoría exacta, sin distinguir mayúsculas.
// strpos en lugar de ILIKE: % y _ del término no actúan como comodines. Los filtros vacíos no aplican.
func (r *ProductRepo) Search(ctx context.Context, term, category string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active
		  AND ($1 = '' OR strpos(lower(name), lower($1)) > 0 OR strpos(lower(description), lower($1)) > 0)
		  AND ($2 = '' OR lower(category) = lower($2))
		ORDER BY name`
	return r.list(ctx, query, term, category)
}

// ListActive todos los productos activos ordenados por nombre.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE is_active ORDER BY name`)
}

// ListLowStock productos activos con quantity < threshold.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_active AND quantity < $1 ORDER BY quantity, name`, threshold)
}

// Categories categorías distintas de productos activos, en orden de bytes (igual que el adaptador en memoria).
func (r *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM products WHERE is_active ORDER BY category COLLATE "C"`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	cats := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Count total de filas en products, incluidas las inactivas.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isMissingRow(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
