package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/sale"
)

// SaleRequest representa criação/edição de venda
type SaleRequest struct {
	ProductID          string          `json:"product_id" binding:"required"`
	ClientID           *string         `json:"client_id"`
	ResellerID         *string         `json:"reseller_id"`
	Quantity           int             `json:"quantity" binding:"required,min=1"`
	UnitPrice          decimal.Decimal `json:"unit_price" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	SaleDate           string          `json:"sale_date" binding:"required" example:"2025-03-10"`
	DueDate            string          `json:"due_date" binding:"required" example:"2025-04-10"`
}

// SaleResponse representa uma venda na resposta
type SaleResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"product_id"`
	ClientID           *string         `json:"client_id"`
	ResellerID         *string         `json:"reseller_id"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	SaleDate           string          `json:"sale_date"`
	DueDate            string          `json:"due_date"`
	PaymentStatus      string          `json:"payment_status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToSaleResponse converte a entidade para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:                 s.ID,
		ProductID:          s.ProductID,
		ClientID:           s.ClientID,
		ResellerID:         s.ResellerID,
		Quantity:           s.Quantity,
		UnitPrice:          s.UnitPrice,
		TotalPrice:         s.TotalPrice,
		DiscountPercentage: s.DiscountPercentage,
		DiscountAmount:     s.DiscountAmount,
		NetAmount:          s.NetAmount,
		SaleDate:           s.SaleDate.Format("2006-01-02"),
		DueDate:            s.DueDate.Format("2006-01-02"),
		PaymentStatus:      string(s.PaymentStatus),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToSaleResponseList converte uma lista de entidades
func ToSaleResponseList(sales []*sale.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return out
}
