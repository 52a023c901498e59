package ledger

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/internal/domain/card"
	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/domain/sale"
)

var errNotFoundTest = errors.New("registro não encontrado")

// snapshotter é implementado pelos fakes para que a transação de teste
// consiga desfazer mutações parciais quando a função retorna erro
type snapshotter interface {
	snapshot() any
	restore(any)
}

// fakeTxManager simula a semântica transacional restaurando o estado dos
// fakes quando fn falha
type fakeTxManager struct {
	stores []snapshotter
}

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshots := make([]any, len(m.stores))
	for i, s := range m.stores {
		snapshots[i] = s.snapshot()
	}
	if err := fn(ctx); err != nil {
		for i, s := range m.stores {
			s.restore(snapshots[i])
		}
		return err
	}
	return nil
}

type fakeProductRepo struct {
	items map[string]*product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[string]*product.Product)}
}

func (r *fakeProductRepo) snapshot() any {
	c := make(map[string]*product.Product, len(r.items))
	for k, v := range r.items {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeProductRepo) restore(s any) { r.items = s.(map[string]*product.Product) }

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, errNotFoundTest
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) FindBySKU(_ context.Context, sku string) (*product.Product, error) {
	for _, p := range r.items {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errNotFoundTest
}

func (r *fakeProductRepo) List(_ context.Context, _, _ int) ([]*product.Product, error) {
	var out []*product.Product
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return errNotFoundTest
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id string, delta int) error {
	p, ok := r.items[id]
	if !ok {
		return errNotFoundTest
	}
	if p.StockQuantity+delta < 0 {
		return product.ErrInsufficientStock
	}
	p.StockQuantity += delta
	return nil
}

type fakeSaleRepo struct {
	items map[string]*sale.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{items: make(map[string]*sale.Sale)}
}

func (r *fakeSaleRepo) snapshot() any {
	c := make(map[string]*sale.Sale, len(r.items))
	for k, v := range r.items {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeSaleRepo) restore(s any) { r.items = s.(map[string]*sale.Sale) }

func (r *fakeSaleRepo) Create(_ context.Context, s *sale.Sale) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, errNotFoundTest
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) List(_ context.Context, _, _ int) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.items {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (r *fakeSaleRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeSaleRepo) FindByPeriod(_ context.Context, from, to time.Time) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.items {
		if !s.SaleDate.Before(from) && !s.SaleDate.After(to) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByReseller(_ context.Context, resellerID string, status sale.PaymentStatus) ([]*sale.Sale, error) {
	var out []*sale.Sale
	for _, s := range r.items {
		if s.ResellerID != nil && *s.ResellerID == resellerID && s.PaymentStatus == status {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, s *sale.Sale) error {
	if _, ok := r.items[s.ID]; !ok {
		return errNotFoundTest
	}
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return errNotFoundTest
	}
	delete(r.items, id)
	return nil
}

func (r *fakeSaleRepo) MarkPaid(_ context.Context, ids []string) error {
	for _, id := range ids {
		if s, ok := r.items[id]; ok {
			s.PaymentStatus = sale.PaymentStatusPaid
		}
	}
	return nil
}

type fakeEntryRepo struct {
	items map[string]*finance.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{items: make(map[string]*finance.Entry)}
}

func (r *fakeEntryRepo) snapshot() any {
	c := make(map[string]*finance.Entry, len(r.items))
	for k, v := range r.items {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeEntryRepo) restore(s any) { r.items = s.(map[string]*finance.Entry) }

func (r *fakeEntryRepo) Create(_ context.Context, e *finance.Entry) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) FindByID(_ context.Context, id string) (*finance.Entry, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, errNotFoundTest
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntryRepo) FindBySaleID(_ context.Context, saleID string) (*finance.Entry, error) {
	for _, e := range r.items {
		if e.SaleID != nil && *e.SaleID == saleID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, errNotFoundTest
}

func (r *fakeEntryRepo) List(_ context.Context, _ finance.EntryFilter, _, _ int) ([]*finance.Entry, error) {
	var out []*finance.Entry
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeEntryRepo) Count(_ context.Context, _ finance.EntryFilter) (int, error) {
	return len(r.items), nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *finance.Entry) error {
	if _, ok := r.items[e.ID]; !ok {
		return errNotFoundTest
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return errNotFoundTest
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEntryRepo) DeleteBySaleID(_ context.Context, saleID string) error {
	for id, e := range r.items {
		if e.SaleID != nil && *e.SaleID == saleID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeEntryRepo) MarkPaidBySaleIDs(_ context.Context, saleIDs []string, paymentDate time.Time) error {
	for _, saleID := range saleIDs {
		for _, e := range r.items {
			if e.SaleID != nil && *e.SaleID == saleID && e.Status != finance.EntryStatusPaid {
				e.Status = finance.EntryStatusPaid
				pd := paymentDate
				e.PaymentDate = &pd
			}
		}
	}
	return nil
}

type fakeAccountRepo struct {
	items map[string]*account.BankAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{items: make(map[string]*account.BankAccount)}
}

func (r *fakeAccountRepo) snapshot() any {
	c := make(map[string]*account.BankAccount, len(r.items))
	for k, v := range r.items {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeAccountRepo) restore(s any) { r.items = s.(map[string]*account.BankAccount) }

func (r *fakeAccountRepo) Create(_ context.Context, a *account.BankAccount) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*account.BankAccount, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, errNotFoundTest
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) FindFirst(_ context.Context) (*account.BankAccount, error) {
	var first *account.BankAccount
	for _, a := range r.items {
		if first == nil || a.Name < first.Name {
			first = a
		}
	}
	if first == nil {
		return nil, account.ErrNoAccounts
	}
	cp := *first
	return &cp, nil
}

func (r *fakeAccountRepo) List(_ context.Context, _, _ int) ([]*account.BankAccount, error) {
	var out []*account.BankAccount
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAccountRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeAccountRepo) Update(_ context.Context, a *account.BankAccount) error {
	if _, ok := r.items[a.ID]; !ok {
		return errNotFoundTest
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeAccountRepo) AdjustBalance(_ context.Context, id string, delta decimal.Decimal) error {
	a, ok := r.items[id]
	if !ok {
		return errNotFoundTest
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}

type fakeCardRepo struct {
	items map[string]*card.CreditCard
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{items: make(map[string]*card.CreditCard)}
}

func (r *fakeCardRepo) snapshot() any {
	c := make(map[string]*card.CreditCard, len(r.items))
	for k, v := range r.items {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeCardRepo) restore(s any) { r.items = s.(map[string]*card.CreditCard) }

func (r *fakeCardRepo) Create(_ context.Context, c *card.CreditCard) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCardRepo) FindByID(_ context.Context, id string) (*card.CreditCard, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, errNotFoundTest
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCardRepo) List(_ context.Context, _, _ int) ([]*card.CreditCard, error) {
	var out []*card.CreditCard
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCardRepo) Count(_ context.Context) (int, error) { return len(r.items), nil }

func (r *fakeCardRepo) Update(_ context.Context, c *card.CreditCard) error {
	if _, ok := r.items[c.ID]; !ok {
		return errNotFoundTest
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCardRepo) AdjustBalance(_ context.Context, id string, delta decimal.Decimal) error {
	c, ok := r.items[id]
	if !ok {
		return errNotFoundTest
	}
	c.CurrentBalance = c.CurrentBalance.Add(delta)
	return nil
}
