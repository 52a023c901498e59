package finance

import (
	"context"
	"time"
)

// EntryFilter define os filtros de listagem de lançamentos
type EntryFilter struct {
	Type     EntryType
	Status   EntryStatus
	Category string
	From     *time.Time
	To       *time.Time
}

// EntryRepository define a interface para operações de repositório de lançamentos
type EntryRepository interface {
	// Create cria um novo lançamento
	Create(ctx context.Context, e *Entry) error

	// FindByID busca um lançamento pelo ID
	FindByID(ctx context.Context, id string) (*Entry, error)

	// FindBySaleID busca o lançamento vinculado a uma venda
	FindBySaleID(ctx context.Context, saleID string) (*Entry, error)

	// List lista os lançamentos com filtros e paginação
	List(ctx context.Context, filter EntryFilter, limit, offset int) ([]*Entry, error)

	// Count conta os lançamentos que satisfazem o filtro
	Count(ctx context.Context, filter EntryFilter) (int, error)

	// Update atualiza um lançamento existente
	Update(ctx context.Context, e *Entry) error

	// Delete remove um lançamento
	Delete(ctx context.Context, id string) error

	// DeleteBySaleID remove o lançamento vinculado a uma venda
	DeleteBySaleID(ctx context.Context, saleID string) error

	// MarkPaidBySaleIDs marca como pagos os lançamentos vinculados às vendas
	MarkPaidBySaleIDs(ctx context.Context, saleIDs []string, paymentDate time.Time) error
}

// CategoryRepository define a interface para operações de repositório de categorias
type CategoryRepository interface {
	// Create cria uma nova categoria
	Create(ctx context.Context, c *Category) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*Category, error)

	// List lista todas as categorias ordenadas por nome
	List(ctx context.Context) ([]*Category, error)

	// Update atualiza uma categoria existente
	Update(ctx context.Context, c *Category) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error
}
