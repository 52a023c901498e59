package product

import "context"

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindBySKU busca um produto pelo SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// List lista os produtos com paginação
	List(ctx context.Context, limit, offset int) ([]*Product, error)

	// Count conta o total de produtos
	Count(ctx context.Context) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// AdjustStock soma delta ao estoque do produto. Para decrementos a
	// atualização é condicional: retorna ErrInsufficientStock quando o
	// estoque disponível é menor que o decremento pedido.
	AdjustStock(ctx context.Context, id string, delta int) error
}
