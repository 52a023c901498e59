package dto

import (
	"time"

	"github.com/nutrabene/backoffice/internal/domain/admin"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@nutrabene.com.br"`
	Password string `json:"password" binding:"required" example:"senha-secreta"`
}

// RegisterAdminRequest representa a requisição de cadastro do primeiro
// administrador, protegida pela chave de setup
type RegisterAdminRequest struct {
	SetupKey string `json:"setup_key" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminResponse representa um administrador na resposta
type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse representa a resposta de autenticação
type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// ToAdminResponse converte a entidade para o DTO de resposta
func ToAdminResponse(a *admin.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
