package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrBankAccountNotFound é retornado quando a conta não existe
var ErrBankAccountNotFound = errors.New("conta bancária não encontrada")

const bankAccountColumns = `id, name, balance, created_at, updated_at`

// BankAccountRepository implementa a interface account.Repository
type BankAccountRepository struct {
	db *pgxpool.Pool
}

// NewBankAccountRepository cria uma nova instância de BankAccountRepository
func NewBankAccountRepository(db *pgxpool.Pool) account.Repository {
	return &BankAccountRepository{db: db}
}

func (r *BankAccountRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa account.Repository.Create
func (r *BankAccountRepository) Create(ctx context.Context, a *account.BankAccount) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO bank_accounts (id, name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Name, a.Balance, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar conta bancária: %w", err)
	}
	return nil
}

func scanBankAccount(row pgx.Row) (*account.BankAccount, error) {
	var a account.BankAccount
	err := row.Scan(&a.ID, &a.Name, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID implementa account.Repository.FindByID
func (r *BankAccountRepository) FindByID(ctx context.Context, id string) (*account.BankAccount, error) {
	a, err := scanBankAccount(r.q(ctx).QueryRow(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("erro ao buscar conta bancária: %w", err)
	}
	return a, nil
}

// FindFirst implementa account.Repository.FindFirst
func (r *BankAccountRepository) FindFirst(ctx context.Context) (*account.BankAccount, error) {
	a, err := scanBankAccount(r.q(ctx).QueryRow(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY name LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrNoAccounts
		}
		return nil, fmt.Errorf("erro ao buscar conta bancária: %w", err)
	}
	return a, nil
}

// List implementa account.Repository.List
func (r *BankAccountRepository) List(ctx context.Context, limit, offset int) ([]*account.BankAccount, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas bancárias: %w", err)
	}
	defer rows.Close()

	var accounts []*account.BankAccount
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conta bancária: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Count implementa account.Repository.Count
func (r *BankAccountRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM bank_accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar contas bancárias: %w", err)
	}
	return count, nil
}

// Update implementa account.Repository.Update
func (r *BankAccountRepository) Update(ctx context.Context, a *account.BankAccount) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE bank_accounts SET name = $2, balance = $3, updated_at = $4 WHERE id = $1`,
		a.ID, a.Name, a.Balance, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta bancária: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBankAccountNotFound
	}
	return nil
}

// Delete implementa account.Repository.Delete
func (r *BankAccountRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover conta bancária: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBankAccountNotFound
	}
	return nil
}

// AdjustBalance implementa account.Repository.AdjustBalance
func (r *BankAccountRepository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE bank_accounts SET balance = balance + $2, updated_at = $3 WHERE id = $1`,
		id, delta, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao ajustar saldo da conta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBankAccountNotFound
	}
	return nil
}
