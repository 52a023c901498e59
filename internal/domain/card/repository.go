package card

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a interface para operações de repositório de cartões de crédito
type Repository interface {
	// Create cria um novo cartão
	Create(ctx context.Context, c *CreditCard) error

	// FindByID busca um cartão pelo ID
	FindByID(ctx context.Context, id string) (*CreditCard, error)

	// List lista os cartões com paginação
	List(ctx context.Context, limit, offset int) ([]*CreditCard, error)

	// Count conta o total de cartões cadastrados
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um cartão existente
	Update(ctx context.Context, c *CreditCard) error

	// Delete remove um cartão
	Delete(ctx context.Context, id string) error

	// AdjustBalance soma delta ao saldo corrente do cartão
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}
