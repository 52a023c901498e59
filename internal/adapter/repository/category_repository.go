package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrCategoryNotFound      = errors.New("categoria não encontrada")
	ErrCategoryAlreadyExists = errors.New("já existe uma categoria com este nome")
)

// CategoryRepository implementa a interface finance.CategoryRepository
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) finance.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa finance.CategoryRepository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *finance.Category) error {
	var exists bool
	err := r.q(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM financial_categories WHERE name = $1)`, c.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar categoria: %w", err)
	}
	if exists {
		return ErrCategoryAlreadyExists
	}

	_, err = r.q(ctx).Exec(ctx,
		`INSERT INTO financial_categories (id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Type, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}
	return nil
}

// FindByID implementa finance.CategoryRepository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*finance.Category, error) {
	var c finance.Category
	err := r.q(ctx).QueryRow(ctx,
		`SELECT id, name, type, created_at, updated_at FROM financial_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}
	return &c, nil
}

// List implementa finance.CategoryRepository.List
func (r *CategoryRepository) List(ctx context.Context) ([]*finance.Category, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT id, name, type, created_at, updated_at FROM financial_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []*finance.Category
	for rows.Next() {
		var c finance.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Update implementa finance.CategoryRepository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *finance.Category) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE financial_categories SET name = $2, type = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Type, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete implementa finance.CategoryRepository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM financial_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover categoria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
