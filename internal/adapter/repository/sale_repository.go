package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
)

// ErrSaleNotFound é retornado quando a venda não existe
var ErrSaleNotFound = errors.New("venda não encontrada")

const saleColumns = `id, product_id, client_id, reseller_id, quantity, unit_price,
	total_price, discount_percentage, discount_amount, net_amount,
	sale_date, due_date, payment_status, created_at, updated_at`

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) q(ctx context.Context) database.Querier {
	return database.QuerierFromContext(ctx, r.db)
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.q(ctx).Exec(ctx,
		`INSERT INTO sales (
			id, product_id, client_id, reseller_id, quantity, unit_price,
			total_price, discount_percentage, discount_amount, net_amount,
			sale_date, due_date, payment_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		s.ID, s.ProductID, s.ClientID, s.ResellerID, s.Quantity, s.UnitPrice,
		s.TotalPrice, s.DiscountPercentage, s.DiscountAmount, s.NetAmount,
		s.SaleDate, s.DueDate, s.PaymentStatus, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar venda: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.ProductID, &s.ClientID, &s.ResellerID, &s.Quantity, &s.UnitPrice,
		&s.TotalPrice, &s.DiscountPercentage, &s.DiscountAmount, &s.NetAmount,
		&s.SaleDate, &s.DueDate, &s.PaymentStatus, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	s, err := scanSale(r.q(ctx).QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+saleColumns+` FROM sales ORDER BY sale_date DESC, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

// FindByPeriod implementa sale.Repository.FindByPeriod
func (r *SaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		ORDER BY sale_date`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do período: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

// FindByReseller implementa sale.Repository.FindByReseller
func (r *SaleRepository) FindByReseller(ctx context.Context, resellerID string, status sale.PaymentStatus) ([]*sale.Sale, error) {
	rows, err := r.q(ctx).Query(ctx,
		`SELECT `+saleColumns+` FROM sales
		WHERE reseller_id = $1 AND payment_status = $2
		ORDER BY sale_date`,
		resellerID, status)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas do revendedor: %w", err)
	}
	defer rows.Close()

	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*sale.Sale, error) {
	var sales []*sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	tag, err := r.q(ctx).Exec(ctx,
		`UPDATE sales SET
			product_id = $2, client_id = $3, reseller_id = $4, quantity = $5,
			unit_price = $6, total_price = $7, discount_percentage = $8,
			discount_amount = $9, net_amount = $10, sale_date = $11,
			due_date = $12, payment_status = $13, updated_at = $14
		WHERE id = $1`,
		s.ID, s.ProductID, s.ClientID, s.ResellerID, s.Quantity,
		s.UnitPrice, s.TotalPrice, s.DiscountPercentage,
		s.DiscountAmount, s.NetAmount, s.SaleDate,
		s.DueDate, s.PaymentStatus, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// Delete implementa sale.Repository.Delete
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q(ctx).Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaleNotFound
	}
	return nil
}

// MarkPaid implementa sale.Repository.MarkPaid
func (r *SaleRepository) MarkPaid(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q(ctx).Exec(ctx,
		`UPDATE sales SET payment_status = $2, updated_at = $3 WHERE id = ANY($1)`,
		ids, sale.PaymentStatusPaid, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao marcar vendas como pagas: %w", err)
	}
	return nil
}
