package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrEntryNotFound é retornado quando o lançamento não existe
var ErrEntryNotFound = errors.New("lançamento financeiro não encontrado")

const entryColumns = `id, type, description, amount, entry_date, due_date, status,
	category, payment_method, bank_account_id, credit_card_id,
	installment_number, installments_total, installment_group_id,
	sale_id, reseller_id, client_id, payment_date, created_at, updated_at`

// FinancialEntryRepository implementa a interface finance.EntryRepository
type FinancialEntryRepository struct {
	db *pgxpool.Pool
}

// NewFinancialEntryRepository cria uma nova instância de FinancialEntryRepository
func NewFinancialEntryRepository(db *pgxpool.Pool) finance.EntryRepository {
	return &FinancialEntryRepository{db: db}
}

func (r *FinancialEntryRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa finance.EntryRepository.Create
func (r *FinancialEntryRepository) Create(ctx context.Context, e *finance.Entry) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO financial_entries (
			id, type, description, amount, entry_date, due_date, status,
			category, payment_method, bank_account_id, credit_card_id,
			installment_number, installments_total, installment_group_id,
			sale_id, reseller_id, client_id, payment_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		e.ID, e.Type, e.Description, e.Amount, e.EntryDate, e.DueDate, e.Status,
		e.Category, e.PaymentMethod, e.BankAccountID, e.CreditCardID,
		e.InstallmentNumber, e.InstallmentsTotal, e.InstallmentGroupID,
		e.SaleID, e.ResellerID, e.ClientID, e.PaymentDate, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar lançamento financeiro: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*finance.Entry, error) {
	var e finance.Entry
	err := row.Scan(
		&e.ID, &e.Type, &e.Description, &e.Amount, &e.EntryDate, &e.DueDate, &e.Status,
		&e.Category, &e.PaymentMethod, &e.BankAccountID, &e.CreditCardID,
		&e.InstallmentNumber, &e.InstallmentsTotal, &e.InstallmentGroupID,
		&e.SaleID, &e.ResellerID, &e.ClientID, &e.PaymentDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByID implementa finance.EntryRepository.FindByID
func (r *FinancialEntryRepository) FindByID(ctx context.Context, id string) (*finance.Entry, error) {
	e, err := scanEntry(r.q(ctx).QueryRow(ctx,
		`SELECT `+entryColumns+` FROM financial_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento financeiro: %w", err)
	}
	return e, nil
}

// FindBySaleID implementa finance.EntryRepository.FindBySaleID
func (r *FinancialEntryRepository) FindBySaleID(ctx context.Context, saleID string) (*finance.Entry, error) {
	e, err := scanEntry(r.q(ctx).QueryRow(ctx,
		`SELECT `+entryColumns+` FROM financial_entries WHERE sale_id = $1`, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lançamento da venda: %w", err)
	}
	return e, nil
}

// buildEntryFilter monta a cláusula WHERE e os argumentos do filtro
func buildEntryFilter(filter finance.EntryFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa finance.EntryRepository.List
func (r *FinancialEntryRepository) List(ctx context.Context, filter finance.EntryFilter, limit, offset int) ([]*finance.Entry, error) {
	where, args := buildEntryFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT `+entryColumns+` FROM financial_entries%s ORDER BY due_date DESC, created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos financeiros: %w", err)
	}
	defer rows.Close()

	var entries []*finance.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lançamento financeiro: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count implementa finance.EntryRepository.Count
func (r *FinancialEntryRepository) Count(ctx context.Context, filter finance.EntryFilter) (int, error) {
	where, args := buildEntryFilter(filter)
	var count int
	err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM financial_entries`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar lançamentos financeiros: %w", err)
	}
	return count, nil
}

// Update implementa finance.EntryRepository.Update
func (r *FinancialEntryRepository) Update(ctx context.Context, e *finance.Entry) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE financial_entries SET
			type = $2, description = $3, amount = $4, entry_date = $5,
			due_date = $6, status = $7, category = $8, payment_method = $9,
			bank_account_id = $10, credit_card_id = $11, installment_number = $12,
			installments_total = $13, installment_group_id = $14, sale_id = $15,
			reseller_id = $16, client_id = $17, payment_date = $18, updated_at = $19
		WHERE id = $1`,
		e.ID, e.Type, e.Description, e.Amount, e.EntryDate,
		e.DueDate, e.Status, e.Category, e.PaymentMethod,
		e.BankAccountID, e.CreditCardID, e.InstallmentNumber,
		e.InstallmentsTotal, e.InstallmentGroupID, e.SaleID,
		e.ResellerID, e.ClientID, e.PaymentDate, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar lançamento financeiro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Delete implementa finance.EntryRepository.Delete
func (r *FinancialEntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM financial_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento financeiro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteBySaleID implementa finance.EntryRepository.DeleteBySaleID.
// Não é erro quando a venda não tem lançamento vinculado.
func (r *FinancialEntryRepository) DeleteBySaleID(ctx context.Context, saleID string) error {
	_, err := r.q(ctx).Exec(ctx, `DELETE FROM financial_entries WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("erro ao remover lançamento da venda: %w", err)
	}
	return nil
}

// MarkPaidBySaleIDs implementa finance.EntryRepository.MarkPaidBySaleIDs
func (r *FinancialEntryRepository) MarkPaidBySaleIDs(ctx context.Context, saleIDs []string, paymentDate time.Time) error {
	if len(saleIDs) == 0 {
		return nil
	}
	_, err := r.q(ctx).Exec(ctx,
		`UPDATE financial_entries SET status = $2, payment_date = $3, updated_at = $4
		WHERE sale_id = ANY($1) AND status <> $2`,
		saleIDs, finance.EntryStatusPaid, paymentDate, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao marcar lançamentos como pagos: %w", err)
	}
	return nil
}
