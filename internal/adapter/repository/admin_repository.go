package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/admin"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// Erros específicos do repositório
var (
	ErrAdminNotFound      = errors.New("administrador não encontrado")
	ErrEmailAlreadyExists = errors.New("já existe um administrador com este email")
)

// AdminRepository implementa a interface admin.Repository
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository cria uma nova instância de AdminRepository
func NewAdminRepository(db *pgxpool.Pool) admin.Repository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa admin.Repository.Create
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	exists, err := r.ExistsByEmail(ctx, a.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	_, err = r.q(ctx).Exec(ctx,
		`INSERT INTO admins (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}
	return nil
}

// FindByEmail implementa admin.Repository.FindByEmail
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var a admin.Admin
	err := r.q(ctx).QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("erro ao buscar administrador: %w", err)
	}
	return &a, nil
}

// ExistsByEmail implementa admin.Repository.ExistsByEmail
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}
	return exists, nil
}

// Count implementa admin.Repository.Count
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar administradores: %w", err)
	}
	return count, nil
}
