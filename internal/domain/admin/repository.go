package admin

import "context"

// Repository define a interface para operações de repositório de administradores
type Repository interface {
	// Create cria um novo administrador
	Create(ctx context.Context, a *Admin) error

	// FindByEmail busca um administrador pelo email
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// ExistsByEmail verifica se o email está na lista de permissão
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count conta quantos administradores existem
	Count(ctx context.Context) (int, error)
}
