package account

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository define a interface para operações de repositório de contas bancárias
type Repository interface {
	// Create cria uma nova conta bancária
	Create(ctx context.Context, a *BankAccount) error

	// FindByID busca uma conta pelo ID
	FindByID(ctx context.Context, id string) (*BankAccount, error)

	// FindFirst retorna a primeira conta disponível, ordenada por nome
	FindFirst(ctx context.Context) (*BankAccount, error)

	// List lista as contas com paginação
	List(ctx context.Context, limit, offset int) ([]*BankAccount, error)

	// Count conta o total de contas cadastradas
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de uma conta existente
	Update(ctx context.Context, a *BankAccount) error

	// Delete remove uma conta
	Delete(ctx context.Context, id string) error

	// AdjustBalance soma delta (positivo ou negativo) ao saldo da conta
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error
}
