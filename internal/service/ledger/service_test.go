package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/internal/domain/card"
	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/pkg/logger"
)

type fixture struct {
	service  *Service
	sales    *fakeSaleRepo
	products *fakeProductRepo
	entries  *fakeEntryRepo
	accounts *fakeAccountRepo
	cards    *fakeCardRepo
}

func newFixture() *fixture {
	f := &fixture{
		sales:    newFakeSaleRepo(),
		products: newFakeProductRepo(),
		entries:  newFakeEntryRepo(),
		accounts: newFakeAccountRepo(),
		cards:    newFakeCardRepo(),
	}
	tx := &fakeTxManager{stores: []snapshotter{f.sales, f.products, f.entries, f.accounts, f.cards}}
	f.service = NewService(f.sales, f.products, f.entries, f.accounts, f.cards, tx, logger.NewNopLogger())
	return f
}

func (f *fixture) addProduct(t *testing.T, stock int, salePrice string) *product.Product {
	t.Helper()
	p := &product.Product{
		ID:            uuid.New().String(),
		SKU:           "SKU-" + uuid.New().String()[:8],
		Name:          "Tônico Capilar 120ml",
		CostPrice:     decimal.RequireFromString("40.00"),
		SalePrice:     decimal.RequireFromString(salePrice),
		StockQuantity: stock,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixture) addAccount(t *testing.T, name, balance string) *account.BankAccount {
	t.Helper()
	a := &account.BankAccount{
		ID:      uuid.New().String(),
		Name:    name,
		Balance: decimal.RequireFromString(balance),
	}
	require.NoError(t, f.accounts.Create(context.Background(), a))
	return a
}

func (f *fixture) addCard(t *testing.T, name string) *card.CreditCard {
	t.Helper()
	c := &card.CreditCard{
		ID:             uuid.New().String(),
		Name:           name,
		Limit:          decimal.RequireFromString("5000.00"),
		CurrentBalance: decimal.Zero,
		ClosingDay:     5,
		DueDay:         15,
	}
	require.NoError(t, f.cards.Create(context.Background(), c))
	return c
}

func saleInput(productID string, quantity int, unitPrice, discount string) SaleInput {
	return SaleInput{
		ProductID:          productID,
		Quantity:           quantity,
		UnitPrice:          decimal.RequireFromString(unitPrice),
		DiscountPercentage: decimal.RequireFromString(discount),
		SaleDate:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:            time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegisterSale(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.addProduct(t, 10, "100.00")

	s, err := f.service.RegisterSale(ctx, saleInput(p.ID, 3, "100.00", "10"))
	require.NoError(t, err)

	assert.Equal(t, "300", s.TotalPrice.String())
	assert.Equal(t, "30", s.DiscountAmount.String())
	assert.Equal(t, "270", s.NetAmount.String())
	assert.True(t, s.NetAmount.Equal(decimal.RequireFromString("270.00")))

	stored, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.StockQuantity)

	entry, err := f.entries.FindBySaleID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, finance.EntryTypeReceivable, entry.Type)
	assert.Equal(t, finance.EntryStatusPending, entry.Status)
	assert.Equal(t, finance.SaleCategory, entry.Category)
	assert.True(t, entry.Amount.Equal(s.NetAmount))
	assert.Equal(t, "Venda #"+s.ShortID(), entry.Description)
}

func TestRegisterSaleInsufficientStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.addProduct(t, 2, "100.00")

	_, err := f.service.RegisterSale(ctx, saleInput(p.ID, 3, "100.00", "0"))
	require.ErrorIs(t, err, product.ErrInsufficientStock)

	// nenhum efeito parcial: estoque, vendas e lançamentos intactos
	stored, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.StockQuantity)

	count, _ := f.sales.Count(ctx)
	assert.Zero(t, count)
	entryCount, _ := f.entries.Count(ctx, finance.EntryFilter{})
	assert.Zero(t, entryCount)
}

func TestEditSaleSameProduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.addProduct(t, 10, "100.00")

	s, err := f.service.RegisterSale(ctx, saleInput(p.ID, 3, "100.00", "0"))
	require.NoError(t, err)

	updated, err := f.service.EditSale(ctx, s.ID, saleInput(p.ID, 5, "100.00", "0"))
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "500", updated.NetAmount.String())

	stored, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.StockQuantity)

	entry, err := f.entries.FindBySaleID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, entry.Amount.Equal(updated.NetAmount))
}

func TestEditSaleCrossProduct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addProduct(t, 10, "100.00")
	b := f.addProduct(t, 8, "150.00")

	s, err := f.service.RegisterSale(ctx, saleInput(a.ID, 2, "100.00", "0"))
	require.NoError(t, err)

	_, err = f.service.EditSale(ctx, s.ID, saleInput(b.ID, 5, "150.00", "0"))
	require.NoError(t, err)

	storedA, _ := f.products.FindByID(ctx, a.ID)
	storedB, _ := f.products.FindByID(ctx, b.ID)
	assert.Equal(t, 10, storedA.StockQuantity)
	assert.Equal(t, 3, storedB.StockQuantity)
}

func TestEditSaleCrossProductInsufficientStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addProduct(t, 10, "100.00")
	b := f.addProduct(t, 3, "150.00")

	s, err := f.service.RegisterSale(ctx, saleInput(a.ID, 2, "100.00", "0"))
	require.NoError(t, err)

	_, err = f.service.EditSale(ctx, s.ID, saleInput(b.ID, 5, "150.00", "0"))
	require.ErrorIs(t, err, product.ErrInsufficientStock)

	// rollback: estoque de A volta ao estado pós-venda, B intacto
	storedA, _ := f.products.FindByID(ctx, a.ID)
	storedB, _ := f.products.FindByID(ctx, b.ID)
	assert.Equal(t, 8, storedA.StockQuantity)
	assert.Equal(t, 3, storedB.StockQuantity)

	stored, err := f.sales.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, stored.ProductID)
	assert.Equal(t, 2, stored.Quantity)
}

func TestDeleteSale(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.addProduct(t, 10, "100.00")

	s, err := f.service.RegisterSale(ctx, saleInput(p.ID, 4, "100.00", "0"))
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteSale(ctx, s.ID))

	stored, err := f.products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.StockQuantity)

	_, err = f.entries.FindBySaleID(ctx, s.ID)
	assert.Error(t, err)
	_, err = f.sales.FindByID(ctx, s.ID)
	assert.Error(t, err)
}

func TestCreateFinancialEntryInstallments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.addCard(t, "Cartão Loja")

	dueDate := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:              finance.EntryTypePayable,
		Description:       "Embalagens",
		Amount:            decimal.RequireFromString("100.00"),
		EntryDate:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		DueDate:           dueDate,
		Category:          "Fornecedores",
		PaymentMethod:     finance.PaymentMethodCreditCard,
		CreditCardID:      &c.ID,
		InstallmentsTotal: 3,
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, "33.33", created[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", created[1].Amount.StringFixed(2))
	assert.Equal(t, "33.34", created[2].Amount.StringFixed(2))

	sum := decimal.Zero
	for i, e := range created {
		sum = sum.Add(e.Amount)
		assert.Equal(t, i+1, e.InstallmentNumber)
		assert.Equal(t, 3, e.InstallmentsTotal)
		assert.Equal(t, dueDate.AddDate(0, i, 0), e.DueDate)
		assert.Equal(t, created[0].InstallmentGroupID, e.InstallmentGroupID)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.00")))

	assert.Equal(t, "Embalagens (1/3)", created[0].Description)
	assert.Equal(t, "Embalagens (3/3)", created[2].Description)

	// a fatura do cartão sobe pelo valor cheio, não pela soma das parcelas
	// individualmente arredondadas
	storedCard, err := f.cards.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, storedCard.CurrentBalance.Equal(decimal.RequireFromString("100.00")))
}

func TestCreateFinancialEntryPaidImmediateAdjustment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addAccount(t, "Conta Corrente", "1000.00")

	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:          finance.EntryTypePayable,
		Description:   "Frete",
		Amount:        decimal.RequireFromString("150.00"),
		EntryDate:     time.Now(),
		DueDate:       time.Now(),
		Status:        finance.EntryStatusPaid,
		Category:      "Logística",
		PaymentMethod: finance.PaymentMethodPix,
		BankAccountID: &a.ID,
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, finance.EntryStatusPaid, created[0].Status)
	require.NotNil(t, created[0].PaymentDate)

	stored, err := f.accounts.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("850.00")))
}

func TestMarkEntryPaidReceivable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addAccount(t, "Conta Corrente", "500.00")

	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:          finance.EntryTypeReceivable,
		Description:   "Venda avulsa",
		Amount:        decimal.RequireFromString("270.00"),
		EntryDate:     time.Now(),
		DueDate:       time.Now(),
		Category:      finance.SaleCategory,
		PaymentMethod: finance.PaymentMethodPix,
	})
	require.NoError(t, err)

	paid, err := f.service.MarkEntryPaid(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, finance.EntryStatusPaid, paid.Status)
	require.NotNil(t, paid.BankAccountID)
	assert.Equal(t, a.ID, *paid.BankAccountID)
	require.NotNil(t, paid.PaymentDate)

	stored, err := f.accounts.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("770.00")))
}

func TestMarkEntryPaidIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addAccount(t, "Conta Corrente", "500.00")

	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:          finance.EntryTypePayable,
		Description:   "Energia",
		Amount:        decimal.RequireFromString("200.00"),
		EntryDate:     time.Now(),
		DueDate:       time.Now(),
		Category:      "Despesas Fixas",
		PaymentMethod: finance.PaymentMethodBankSlip,
	})
	require.NoError(t, err)

	_, err = f.service.MarkEntryPaid(ctx, created[0].ID)
	require.NoError(t, err)
	_, err = f.service.MarkEntryPaid(ctx, created[0].ID)
	require.NoError(t, err)

	// o ajuste de saldo acontece uma única vez
	stored, err := f.accounts.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("300.00")))
}

func TestMarkEntryPaidMissingBankAccount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:          finance.EntryTypeReceivable,
		Description:   "Venda avulsa",
		Amount:        decimal.RequireFromString("50.00"),
		EntryDate:     time.Now(),
		DueDate:       time.Now(),
		Category:      finance.SaleCategory,
		PaymentMethod: finance.PaymentMethodCash,
	})
	require.NoError(t, err)

	_, err = f.service.MarkEntryPaid(ctx, created[0].ID)
	require.ErrorIs(t, err, ErrMissingBankAccount)

	stored, err := f.entries.FindByID(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, finance.EntryStatusPending, stored.Status)
}

func TestRevertEntryPaid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addAccount(t, "Conta Corrente", "500.00")

	created, err := f.service.CreateFinancialEntry(ctx, EntryInput{
		Type:          finance.EntryTypeReceivable,
		Description:   "Venda avulsa",
		Amount:        decimal.RequireFromString("100.00"),
		EntryDate:     time.Now(),
		DueDate:       time.Now(),
		Category:      finance.SaleCategory,
		PaymentMethod: finance.PaymentMethodPix,
	})
	require.NoError(t, err)

	_, err = f.service.MarkEntryPaid(ctx, created[0].ID)
	require.NoError(t, err)

	reverted, err := f.service.RevertEntryPaid(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, finance.EntryStatusPending, reverted.Status)
	assert.Nil(t, reverted.PaymentDate)

	stored, err := f.accounts.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balance.Equal(decimal.RequireFromString("500.00")))
}

func TestCloseResellerCommissions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.addProduct(t, 20, "100.00")
	resellerID := uuid.New().String()

	input1 := saleInput(p.ID, 2, "100.00", "20")
	input1.ResellerID = &resellerID
	s1, err := f.service.RegisterSale(ctx, input1)
	require.NoError(t, err)

	input2 := saleInput(p.ID, 1, "100.00", "20")
	input2.ResellerID = &resellerID
	s2, err := f.service.RegisterSale(ctx, input2)
	require.NoError(t, err)

	err = f.service.CloseResellerCommissions(ctx, resellerID, []string{s1.ID, s2.ID})
	require.NoError(t, err)

	for _, id := range []string{s1.ID, s2.ID} {
		stored, err := f.sales.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, sale.PaymentStatusPaid, stored.PaymentStatus)

		entry, err := f.entries.FindBySaleID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, finance.EntryStatusPaid, entry.Status)
		require.NotNil(t, entry.PaymentDate)
	}
}
