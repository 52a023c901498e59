package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/product"
)

// ProductRequest representa criação/edição de produto
type ProductRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	CostPrice     decimal.Decimal `json:"cost_price" binding:"required"`
	SalePrice     decimal.Decimal `json:"sale_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"min=0"`
}

// StockAdjustmentRequest representa um ajuste manual de estoque (botões ±)
type StockAdjustmentRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductResponse representa um produto na resposta
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse converte a entidade para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductResponseList converte uma lista de entidades
func ToProductResponseList(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
