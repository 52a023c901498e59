package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/card"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrCreditCardNotFound é retornado quando o cartão não existe
var ErrCreditCardNotFound = errors.New("cartão de crédito não encontrado")

const creditCardColumns = `id, name, card_limit, current_balance, closing_day, due_day, created_at, updated_at`

// CreditCardRepository implementa a interface card.Repository
type CreditCardRepository struct {
	db *pgxpool.Pool
}

// NewCreditCardRepository cria uma nova instância de CreditCardRepository
func NewCreditCardRepository(db *pgxpool.Pool) card.Repository {
	return &CreditCardRepository{db: db}
}

func (r *CreditCardRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa card.Repository.Create
func (r *CreditCardRepository) Create(ctx context.Context, c *card.CreditCard) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO credit_cards (id, name, card_limit, current_balance, closing_day, due_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, c.Limit, c.CurrentBalance, c.ClosingDay, c.DueDay, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar cartão de crédito: %w", err)
	}
	return nil
}

func scanCreditCard(row pgx.Row) (*card.CreditCard, error) {
	var c card.CreditCard
	err := row.Scan(&c.ID, &c.Name, &c.Limit, &c.CurrentBalance, &c.ClosingDay,
		&c.DueDay, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByID implementa card.Repository.FindByID
func (r *CreditCardRepository) FindByID(ctx context.Context, id string) (*card.CreditCard, error) {
	c, err := scanCreditCard(r.q(ctx).QueryRow(ctx,
		`SELECT `+creditCardColumns+` FROM credit_cards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCreditCardNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cartão de crédito: %w", err)
	}
	return c, nil
}

// List implementa card.Repository.List
func (r *CreditCardRepository) List(ctx context.Context, limit, offset int) ([]*card.CreditCard, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+creditCardColumns+` FROM credit_cards ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cartões de crédito: %w", err)
	}
	defer rows.Close()

	var cards []*card.CreditCard
	for rows.Next() {
		c, err := scanCreditCard(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cartão de crédito: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Count implementa card.Repository.Count
func (r *CreditCardRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM credit_cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar cartões de crédito: %w", err)
	}
	return count, nil
}

// Update implementa card.Repository.Update
func (r *CreditCardRepository) Update(ctx context.Context, c *card.CreditCard) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE credit_cards SET name = $2, card_limit = $3, current_balance = $4,
			closing_day = $5, due_day = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, c.Limit, c.CurrentBalance, c.ClosingDay, c.DueDay, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar cartão de crédito: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCreditCardNotFound
	}
	return nil
}

// Delete implementa card.Repository.Delete
func (r *CreditCardRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover cartão de crédito: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCreditCardNotFound
	}
	return nil
}

// AdjustBalance implementa card.Repository.AdjustBalance
func (r *CreditCardRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE credit_cards SET current_balance = current_balance + $2, updated_at = $3 WHERE id = $1`,
		id, delta, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao ajustar saldo do cartão: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCreditCardNotFound
	}
	return nil
}
