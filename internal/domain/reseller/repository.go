package reseller

import "context"

// Repository define a interface para operações de repositório de revendedores
type Repository interface {
	// Create cria um novo revendedor
	Create(ctx context.Context, r *Reseller) error

	// FindByID busca um revendedor pelo ID
	FindByID(ctx context.Context, id string) (*Reseller, error)

	// List lista os revendedores com paginação
	List(ctx context.Context, limit, offset int) ([]*Reseller, error)

	// Count conta o total de revendedores
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um revendedor existente
	Update(ctx context.Context, r *Reseller) error

	// Delete remove um revendedor
	Delete(ctx context.Context, id string) error
}
