package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/domain/reseller"
	"github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// Renderer converte HTML em PDF
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ProductRanking é uma linha do ranking de produtos do mês
type ProductRanking struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	NetAmount   decimal.Decimal `json:"net_amount"`
}

// MonthlySummary consolida os números de vendas de um mês
type MonthlySummary struct {
	Year       int              `json:"year"`
	Month      time.Month       `json:"month"`
	Gross      decimal.Decimal  `json:"gross"`
	Discounts  decimal.Decimal  `json:"discounts"`
	Net        decimal.Decimal  `json:"net"`
	SalesCount int              `json:"sales_count"`
	Ranking    []ProductRanking `json:"ranking"`
}

// ResellerCommission consolida as comissões pendentes de um revendedor
type ResellerCommission struct {
	Reseller   *reseller.Reseller `json:"reseller"`
	SalesCount int                `json:"sales_count"`
	NetTotal   decimal.Decimal    `json:"net_total"`
	Commission decimal.Decimal    `json:"commission"`
	SaleIDs    []string           `json:"sale_ids"`
}

// Service monta os relatórios do painel: resumo mensal com ranking de
// produtos e comissões pendentes por revendedor, ambos exportáveis em PDF
type Service struct {
	sales     sale.Repository
	products  product.Repository
	resellers reseller.Repository
	renderer  Renderer
	logger    logger.Logger
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	sales sale.Repository,
	products product.Repository,
	resellers reseller.Repository,
	renderer Renderer,
	log logger.Logger,
) *Service {
	return &Service{
		sales:     sales,
		products:  products,
		resellers: resellers,
		renderer:  renderer,
		logger:    log,
	}
}

// MonthlySummary consolida as vendas do mês informado
func (s *Service) MonthlySummary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	sales, err := s.sales.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao consolidar vendas do mês: %w", err)
	}

	summary := &MonthlySummary{
		Year:      year,
		Month:     month,
		Gross:     decimal.Zero,
		Discounts: decimal.Zero,
		Net:       decimal.Zero,
	}

	type bucket struct {
		quantity int
		net      decimal.Decimal
	}
	perProduct := make(map[string]*bucket)

	for _, sl := range sales {
		summary.Gross = summary.Gross.Add(sl.TotalPrice)
		summary.Discounts = summary.Discounts.Add(sl.DiscountAmount)
		summary.Net = summary.Net.Add(sl.NetAmount)
		summary.SalesCount++

		b, ok := perProduct[sl.ProductID]
		if !ok {
			b = &bucket{net: decimal.Zero}
			perProduct[sl.ProductID] = b
		}
		b.quantity += sl.Quantity
		b.net = b.net.Add(sl.NetAmount)
	}

	for productID, b := range perProduct {
		name := productID
		if p, err := s.products.FindByID(ctx, productID); err == nil {
			name = p.Name
		}
		summary.Ranking = append(summary.Ranking, ProductRanking{
			ProductID:   productID,
			ProductName: name,
			Quantity:    b.quantity,
			NetAmount:   b.net,
		})
	}
	sort.Slice(summary.Ranking, func(i, j int) bool {
		return summary.Ranking[i].Quantity > summary.Ranking[j].Quantity
	})

	return summary, nil
}

// PendingCommissions consolida, por revendedor, as vendas ainda não pagas e
// a comissão correspondente. A comissão é o próprio desconto da venda, que
// nas vendas de revendedor representa a parte retida por ele.
func (s *Service) PendingCommissions(ctx context.Context) ([]ResellerCommission, error) {
	resellers, err := s.resellers.List(ctx, 500, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar revendedores: %w", err)
	}

	var out []ResellerCommission
	for _, rs := range resellers {
		sales, err := s.sales.FindByReseller(ctx, rs.ID, sale.PaymentStatusPending)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar vendas do revendedor %s: %w", rs.ID, err)
		}
		if len(sales) == 0 {
			continue
		}

		rc := ResellerCommission{
			Reseller:   rs,
			NetTotal:   decimal.Zero,
			Commission: decimal.Zero,
		}
		for _, sl := range sales {
			rc.SalesCount++
			rc.NetTotal = rc.NetTotal.Add(sl.NetAmount)
			rc.Commission = rc.Commission.Add(sl.DiscountAmount)
			rc.SaleIDs = append(rc.SaleIDs, sl.ID)
		}
		out = append(out, rc)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Reseller.Name < out[j].Reseller.Name
	})
	return out, nil
}

// MonthlySummaryPDF renderiza o resumo mensal como PDF
func (s *Service) MonthlySummaryPDF(ctx context.Context, year int, month time.Month) ([]byte, error) {
	summary, err := s.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	html, err := renderMonthlySummaryHTML(summary)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar HTML do resumo mensal: %w", err)
	}
	return s.renderer.RenderPDF(ctx, html)
}

// PendingCommissionsPDF renderiza o relatório de comissões pendentes como PDF
func (s *Service) PendingCommissionsPDF(ctx context.Context) ([]byte, error) {
	commissions, err := s.PendingCommissions(ctx)
	if err != nil {
		return nil, err
	}

	html, err := renderCommissionsHTML(commissions)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar HTML de comissões: %w", err)
	}
	return s.renderer.RenderPDF(ctx, html)
}
