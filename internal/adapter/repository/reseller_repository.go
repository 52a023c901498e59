package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/reseller"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrResellerNotFound é retornado quando o revendedor não existe
var ErrResellerNotFound = errors.New("revendedor não encontrado")

const resellerColumns = `id, name, email, whatsapp, commission_rate, created_at, updated_at`

// ResellerRepository implementa a interface reseller.Repository
type ResellerRepository struct {
	db *pgxpool.Pool
}

// NewResellerRepository cria uma nova instância de ResellerRepository
func NewResellerRepository(db *pgxpool.Pool) reseller.Repository {
	return &ResellerRepository{db: db}
}

func (r *ResellerRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa reseller.Repository.Create
func (r *ResellerRepository) Create(ctx context.Context, rs *reseller.Reseller) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO resellers (id, name, email, whatsapp, commission_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rs.ID, rs.Name, rs.Email, rs.WhatsApp, rs.CommissionRate, rs.CreatedAt, rs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar revendedor: %w", err)
	}
	return nil
}

func scanReseller(row pgx.Row) (*reseller.Reseller, error) {
	var rs reseller.Reseller
	err := row.Scan(&rs.ID, &rs.Name, &rs.Email, &rs.WhatsApp, &rs.CommissionRate,
		&rs.CreatedAt, &rs.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

// FindByID implementa reseller.Repository.FindByID
func (r *ResellerRepository) FindByID(ctx context.Context, id string) (*reseller.Reseller, error) {
	rs, err := scanReseller(r.q(ctx).QueryRow(ctx,
		`SELECT `+resellerColumns+` FROM resellers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResellerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar revendedor: %w", err)
	}
	return rs, nil
}

// List implementa reseller.Repository.List
func (r *ResellerRepository) List(ctx context.Context, limit, offset int) ([]*reseller.Reseller, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+resellerColumns+` FROM resellers ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar revendedores: %w", err)
	}
	defer rows.Close()

	var resellers []*reseller.Reseller
	for rows.Next() {
		rs, err := scanReseller(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler revendedor: %w", err)
		}
		resellers = append(resellers, rs)
	}
	return resellers, rows.Err()
}

// Count implementa reseller.Repository.Count
func (r *ResellerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM resellers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar revendedores: %w", err)
	}
	return count, nil
}

// Update implementa reseller.Repository.Update
func (r *ResellerRepository) Update(ctx context.Context, rs *reseller.Reseller) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE resellers SET name = $2, email = $3, whatsapp = $4,
			commission_rate = $5, updated_at = $6
		WHERE id = $1`,
		rs.ID, rs.Name, rs.Email, rs.WhatsApp, rs.CommissionRate, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar revendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResellerNotFound
	}
	return nil
}

// Delete implementa reseller.Repository.Delete
func (r *ResellerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM resellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover revendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResellerNotFound
	}
	return nil
}
