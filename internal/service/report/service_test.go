package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/domain/reseller"
	"github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/pkg/logger"
)

type stubSaleRepo struct {
	sales []*sale.Sale
}

func (r *stubSaleRepo) Create(_ context.Context, s *sale.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("venda não encontrada")
}

func (r *stubSaleRepo) List(_ context.Context, _, _ int) ([]*sale.Sale, error) {
	return r.sales, nil
}

func (r *stubSaleRepo) Count(_ context.Context) (int, error) { return len(r.sales), nil }

func (r *stubSaleRepo) FindByPeriod(_ context.Context, from, to time.Time) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(from) && !s.SaleDate.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) FindByReseller(_ context.Context, resellerID string, status sale.PaymentStatus) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.sales {
		if s.ResellerID != nil && *s.ResellerID == resellerID && s.PaymentStatus == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Update(_ context.Context, _ *sale.Sale) error { return nil }
func (r *stubSaleRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *stubSaleRepo) MarkPaid(_ context.Context, _ []string) error { return nil }

type stubProductRepo struct {
	products map[string]*product.Product
}

func (r *stubProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("produto não encontrado")
	}
	return p, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, _ string) (*product.Product, error) {
	return nil, errors.New("produto não encontrado")
}

func (r *stubProductRepo) List(_ context.Context, _, _ int) ([]*product.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Count(_ context.Context) (int, error) { return 0, nil }
func (r *stubProductRepo) Update(_ context.Context, _ *product.Product) error { return nil }
func (r *stubProductRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *stubProductRepo) AdjustStock(_ context.Context, _ string, _ int) error { return nil }

type stubResellerRepo struct {
	resellers []*reseller.Reseller
}

func (r *stubResellerRepo) Create(_ context.Context, _ *reseller.Reseller) error { return nil }

func (r *stubResellerRepo) FindByID(_ context.Context, id string) (*reseller.Reseller, error) {
	for _, rs := range r.resellers {
		if rs.ID == id {
			return rs, nil
		}
	}
	return nil, errors.New("revendedor não encontrado")
}

func (r *stubResellerRepo) List(_ context.Context, _, _ int) ([]*reseller.Reseller, error) {
	return r.resellers, nil
}

func (r *stubResellerRepo) Count(_ context.Context) (int, error) { return len(r.resellers), nil }
func (r *stubResellerRepo) Update(_ context.Context, _ *reseller.Reseller) error { return nil }
func (r *stubResellerRepo) Delete(_ context.Context, _ string) error { return nil }

type stubRenderer struct {
	lastHTML string
}

func (r *stubRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	return []byte("%PDF-1.4 stub"), nil
}

func makeSale(t *testing.T, productID string, resellerID *string, quantity int, unitPrice, discount string, saleDate time.Time) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale(productID, nil, resellerID, quantity,
		decimal.RequireFromString(unitPrice), decimal.RequireFromString(discount),
		saleDate, saleDate.AddDate(0, 1, 0))
	require.NoError(t, err)
	return s
}

func TestMonthlySummary(t *testing.T) {
	productA := uuid.New().String()
	productB := uuid.New().String()
	march := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	sales := &stubSaleRepo{}
	require.NoError(t, sales.Create(context.Background(), makeSale(t, productA, nil, 3, "100.00", "10", march)))
	require.NoError(t, sales.Create(context.Background(), makeSale(t, productB, nil, 1, "150.00", "0", march)))
	// fora do mês consultado
	require.NoError(t, sales.Create(context.Background(), makeSale(t, productA, nil, 5, "100.00", "0", april)))

	products := &stubProductRepo{products: map[string]*product.Product{
		productA: {ID: productA, Name: "Tônico 120ml"},
		productB: {ID: productB, Name: "Kit Completo"},
	}}

	svc := NewService(sales, products, &stubResellerRepo{}, &stubRenderer{}, logger.NewNopLogger())
	summary, err := svc.MonthlySummary(context.Background(), 2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.SalesCount)
	assert.True(t, summary.Gross.Equal(decimal.RequireFromString("450.00")), "gross: %s", summary.Gross)
	assert.True(t, summary.Discounts.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, summary.Net.Equal(decimal.RequireFromString("420.00")))

	require.Len(t, summary.Ranking, 2)
	assert.Equal(t, "Tônico 120ml", summary.Ranking[0].ProductName)
	assert.Equal(t, 3, summary.Ranking[0].Quantity)
}

func TestPendingCommissions(t *testing.T) {
	productID := uuid.New().String()
	rs := &reseller.Reseller{ID: uuid.New().String(), Name: "Salão Bela Vista",
		CommissionRate: decimal.RequireFromString("20")}
	saleDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	sales := &stubSaleRepo{}
	s1 := makeSale(t, productID, &rs.ID, 2, "100.00", "20", saleDate)
	s2 := makeSale(t, productID, &rs.ID, 1, "100.00", "20", saleDate)
	paid := makeSale(t, productID, &rs.ID, 4, "100.00", "20", saleDate)
	paid.PaymentStatus = sale.PaymentStatusPaid
	for _, s := range []*sale.Sale{s1, s2, paid} {
		require.NoError(t, sales.Create(context.Background(), s))
	}

	svc := NewService(sales, &stubProductRepo{}, &stubResellerRepo{resellers: []*reseller.Reseller{rs}},
		&stubRenderer{}, logger.NewNopLogger())

	commissions, err := svc.PendingCommissions(context.Background())
	require.NoError(t, err)
	require.Len(t, commissions, 1)

	rc := commissions[0]
	assert.Equal(t, 2, rc.SalesCount)
	assert.True(t, rc.NetTotal.Equal(decimal.RequireFromString("240.00")))
	assert.True(t, rc.Commission.Equal(decimal.RequireFromString("60.00")))
	assert.ElementsMatch(t, []string{s1.ID, s2.ID}, rc.SaleIDs)
}

func TestMonthlySummaryPDF(t *testing.T) {
	renderer := &stubRenderer{}
	svc := NewService(&stubSaleRepo{}, &stubProductRepo{}, &stubResellerRepo{},
		renderer, logger.NewNopLogger())

	pdf, err := svc.MonthlySummaryPDF(context.Background(), 2025, time.March)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.True(t, strings.Contains(renderer.lastHTML, "Março"))
	assert.True(t, strings.Contains(renderer.lastHTML, "Nenhuma venda no período."))
}
