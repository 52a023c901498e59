package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "maria@example.com", "11987654321", "22:30", PurchaseSiteOficial)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewClient("Maria", "sem-arroba", "11987654321", "22:30", PurchaseSiteOficial)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewClient("Maria", "maria@example.com", "", "22:30", PurchaseSiteOficial)
	assert.ErrorIs(t, err, ErrEmptyWhatsApp)

	_, err = NewClient("Maria", "maria@example.com", "11987654321", "25:00", PurchaseSiteOficial)
	assert.ErrorIs(t, err, ErrInvalidSleepSchedule)

	_, err = NewClient("Maria", "maria@example.com", "11987654321", "22h30", PurchaseSiteOficial)
	assert.ErrorIs(t, err, ErrInvalidSleepSchedule)

	_, err = NewClient("Maria", "maria@example.com", "11987654321", "22:30", "loja_fisica")
	assert.ErrorIs(t, err, ErrInvalidPurchaseLocation)

	c, err := NewClient("  Maria Silva  ", "MARIA@Example.com", "11987654321", "22:30", PurchaseTikTokShop)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", c.Name)
	assert.Equal(t, "maria@example.com", c.Email)
}

func TestFirstName(t *testing.T) {
	c := &Client{Name: "Maria Silva Santos"}
	assert.Equal(t, "Maria", c.FirstName())

	c.Name = "Maria"
	assert.Equal(t, "Maria", c.FirstName())

	c.Name = ""
	assert.Equal(t, "", c.FirstName())
}

func TestNormalizedPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(11) 98765-4321", "5511987654321"}, // 11 dígitos ganha o 55
		{"1187654321", "551187654321"},       // 10 dígitos também
		{"5511987654321", "5511987654321"},   // já com código do país
		{"+55 11 98765-4321", "5511987654321"},
	}

	for _, tt := range tests {
		c := &Client{WhatsApp: tt.in}
		assert.Equal(t, tt.want, c.NormalizedPhone(), "entrada %q", tt.in)
	}
}
