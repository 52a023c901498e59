package sale

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create cria uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// Count conta o total de vendas
	Count(ctx context.Context) (int, error)

	// FindByPeriod lista as vendas com data dentro do intervalo informado
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*Sale, error)

	// FindByReseller lista as vendas de um revendedor filtradas por status
	FindByReseller(ctx context.Context, resellerID string, status PaymentStatus) ([]*Sale, error)

	// Update atualiza os dados de uma venda existente
	Update(ctx context.Context, s *Sale) error

	// Delete remove uma venda
	Delete(ctx context.Context, id string) error

	// MarkPaid marca as vendas informadas como pagas
	MarkPaid(ctx context.Context, ids []string) error
}
