package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrEmptySKU      = errors.New("sku não pode ser vazio")
	ErrNegativePrice = errors.New("preço não pode ser negativo")
	ErrNegativeStock = errors.New("estoque não pode ser negativo")

	// ErrInsufficientStock indica que a quantidade pedida excede o estoque
	// disponível; nenhum efeito parcial é aplicado
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// Product representa um produto do catálogo com controle de estoque.
// O estoque é alterado diretamente (botões ±) ou como efeito colateral do
// ciclo de vida de vendas.
type Product struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(sku, name string, costPrice, salePrice decimal.Decimal, stockQuantity int) (*Product, error) {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)

	if sku == "" {
		return nil, ErrEmptySKU
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}

	now := time.Now()
	return &Product{
		ID:            uuid.New().String(),
		SKU:           sku,
		Name:          name,
		CostPrice:     costPrice,
		SalePrice:     salePrice,
		StockQuantity: stockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// HasStock verifica se há estoque suficiente para a quantidade informada
func (p *Product) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}
