package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/reseller"
)

// ResellerRequest representa criação/edição de revendedor
type ResellerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	WhatsApp       string          `json:"whatsapp" binding:"required"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// CloseCommissionsRequest representa o fechamento de comissões de um revendedor
type CloseCommissionsRequest struct {
	SaleIDs []string `json:"sale_ids" binding:"required,min=1"`
}

// ResellerResponse representa um revendedor na resposta
type ResellerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	WhatsApp       string          `json:"whatsapp"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToResellerResponse converte a entidade para o DTO de resposta
func ToResellerResponse(r *reseller.Reseller) ResellerResponse {
	return ResellerResponse{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		WhatsApp:       r.WhatsApp,
		CommissionRate: r.CommissionRate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToResellerResponseList converte uma lista de entidades
func ToResellerResponseList(resellers []*reseller.Reseller) []ResellerResponse {
	out := make([]ResellerResponse, 0, len(resellers))
	for _, r := range resellers {
		out = append(out, ToResellerResponse(r))
	}
	return out
}
