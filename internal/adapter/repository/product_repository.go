package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrSKUAlreadyExists = errors.New("já existe um produto com este SKU")
)

const productColumns = `id, sku, name, cost_price, sale_price, stock_quantity, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	var exists bool
	err := r.q(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE sku = $1)`, p.SKU).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar SKU: %w", err)
	}
	if exists {
		return ErrSKUAlreadyExists
	}

	_, err = r.q(ctx).Exec(ctx,
		`INSERT INTO products (id, sku, name, cost_price, sale_price, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.SKU, p.Name, p.CostPrice, p.SalePrice, p.StockQuantity, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.CostPrice, &p.SalePrice,
		&p.StockQuantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	p, err := scanProduct(r.q(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// FindBySKU implementa product.Repository.FindBySKU
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	p, err := scanProduct(r.q(ctx).QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por SKU: %w", err)
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE products SET sku = $2, name = $3, cost_price = $4, sale_price = $5,
			stock_quantity = $6, updated_at = $7
		WHERE id = $1`,
		p.ID, p.SKU, p.Name, p.CostPrice, p.SalePrice, p.StockQuantity, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock implementa product.Repository.AdjustStock.
// O decremento é condicional: a linha só é atualizada quando o estoque
// resultante não fica negativo, o que serve de guarda contra venda acima
// do estoque mesmo com requisições concorrentes.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + $2, updated_at = $3
		WHERE id = $1 AND stock_quantity + $2 >= 0`,
		id, delta, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao ajustar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q(ctx).QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("erro ao verificar produto: %w", err)
		}
		if !exists {
			return ErrProductNotFound
		}
		return product.ErrInsufficientStock
	}
	return nil
}
