package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutrabene/backoffice/internal/domain/account"
	"github.com/nutrabene/backoffice/internal/domain/card"
	"github.com/nutrabene/backoffice/internal/domain/finance"
	"github.com/nutrabene/backoffice/internal/domain/product"
	"github.com/nutrabene/backoffice/internal/domain/sale"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
	"github.com/nutrabene/backoffice/pkg/logger"
)

// Erros do ledger
var (
	// ErrMissingBankAccount indica que nenhuma conta bancária pôde ser
	// resolvida para registrar a baixa do lançamento
	ErrMissingBankAccount = errors.New("nenhuma conta bancária disponível para registrar o pagamento")

	// ErrMissingCreditCard indica parcelamento sem cartão de crédito informado
	ErrMissingCreditCard = errors.New("cartão de crédito é obrigatório para lançamentos parcelados")
)

// Service mantém a consistência entre vendas, estoque, lançamentos
// financeiros e saldos de contas e cartões. Toda operação multi-entidade
// executa dentro de uma única transação.
type Service struct {
	sales    sale.Repository
	products product.Repository
	entries  finance.EntryRepository
	accounts account.Repository
	cards    card.Repository
	tx       database.TxManager
	logger   logger.Logger
}

// NewService cria uma nova instância do serviço de ledger
func NewService(
	sales sale.Repository,
	products product.Repository,
	entries finance.EntryRepository,
	accounts account.Repository,
	cards card.Repository,
	tx database.TxManager,
	log logger.Logger,
) *Service {
	return &Service{
		sales:    sales,
		products: products,
		entries:  entries,
		accounts: accounts,
		cards:    cards,
		tx:       tx,
		logger:   log,
	}
}

// SaleInput agrupa os dados de entrada de RegisterSale e EditSale
type SaleInput struct {
	ProductID          string
	ClientID           *string
	ResellerID         *string
	Quantity           int
	UnitPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	SaleDate           time.Time
	DueDate            time.Time
}

// RegisterSale registra uma venda: persiste a venda, decrementa o estoque do
// produto e cria o recebível vinculado. Tudo na mesma transação; estoque
// insuficiente desfaz a operação inteira.
func (s *Service) RegisterSale(ctx context.Context, input SaleInput) (*sale.Sale, error) {
	newSale, err := sale.NewSale(input.ProductID, input.ClientID, input.ResellerID,
		input.Quantity, input.UnitPrice, input.DiscountPercentage, input.SaleDate, input.DueDate)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.sales.Create(ctx, newSale); err != nil {
			return err
		}
		if err := s.products.AdjustStock(ctx, newSale.ProductID, -newSale.Quantity); err != nil {
			return err
		}

		entry, err := finance.NewSaleEntry(newSale.ID, newSale.ShortID(),
			newSale.ClientID, newSale.ResellerID, newSale.NetAmount, newSale.SaleDate, newSale.DueDate)
		if err != nil {
			return err
		}
		return s.entries.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("venda registrada", "sale_id", newSale.ID, "product_id", newSale.ProductID,
		"quantity", newSale.Quantity, "net_amount", newSale.NetAmount.String())
	return newSale, nil
}

// EditSale atualiza uma venda reconciliando o estoque. Mesmo produto: aplica
// apenas a diferença de quantidade. Produto trocado: devolve o estoque do
// produto anterior e decrementa o novo. O recebível vinculado acompanha o
// novo valor líquido e vencimento. Uma única transação; a compensação manual
// do fluxo antigo não é mais necessária.
func (s *Service) EditSale(ctx context.Context, id string, input SaleInput) (*sale.Sale, error) {
	var updated *sale.Sale

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.sales.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if input.ProductID == current.ProductID {
			delta := input.Quantity - current.Quantity
			if delta != 0 {
				if err := s.products.AdjustStock(ctx, current.ProductID, -delta); err != nil {
					return err
				}
			}
		} else {
			if err := s.products.AdjustStock(ctx, current.ProductID, current.Quantity); err != nil {
				return err
			}
			if err := s.products.AdjustStock(ctx, input.ProductID, -input.Quantity); err != nil {
				return err
			}
		}

		current.ProductID = input.ProductID
		current.ClientID = input.ClientID
		current.ResellerID = input.ResellerID
		current.Quantity = input.Quantity
		current.UnitPrice = input.UnitPrice
		current.DiscountPercentage = input.DiscountPercentage
		current.SaleDate = input.SaleDate
		current.DueDate = input.DueDate
		current.RecalculateTotals()

		if err := s.sales.Update(ctx, current); err != nil {
			return err
		}

		entry, err := s.entries.FindBySaleID(ctx, current.ID)
		if err != nil {
			return err
		}
		entry.Description = fmt.Sprintf("Venda #%s", current.ShortID())
		entry.Amount = current.NetAmount
		entry.EntryDate = current.SaleDate
		entry.DueDate = current.DueDate
		entry.ClientID = current.ClientID
		entry.ResellerID = current.ResellerID
		if err := s.entries.Update(ctx, entry); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("venda atualizada", "sale_id", updated.ID, "net_amount", updated.NetAmount.String())
	return updated, nil
}

// DeleteSale remove uma venda devolvendo a quantidade ao estoque e removendo
// o recebível vinculado, na mesma transação
func (s *Service) DeleteSale(ctx context.Context, id string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.sales.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.products.AdjustStock(ctx, current.ProductID, current.Quantity); err != nil {
			return err
		}
		if err := s.entries.DeleteBySaleID(ctx, current.ID); err != nil {
			return err
		}
		return s.sales.Delete(ctx, current.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("venda removida", "sale_id", id)
	return nil
}

// EntryInput agrupa os dados de entrada de CreateFinancialEntry
type EntryInput struct {
	Type              finance.EntryType
	Description       string
	Amount            decimal.Decimal
	EntryDate         time.Time
	DueDate           time.Time
	Status            finance.EntryStatus
	Category          string
	PaymentMethod     finance.PaymentMethod
	BankAccountID     *string
	CreditCardID      *string
	InstallmentsTotal int
}

// CreateFinancialEntry cria um lançamento financeiro. Lançamentos no cartão
// de crédito com mais de uma parcela são divididos em N lançamentos mensais
// compartilhando o mesmo grupo, com a última parcela absorvendo o resto do
// arredondamento; o saldo do cartão é incrementado pelo valor cheio, antes da
// divisão. Lançamentos criados já pagos recebem a baixa bancária imediata.
func (s *Service) CreateFinancialEntry(ctx context.Context, input EntryInput) ([]*finance.Entry, error) {
	if input.Status == "" {
		input.Status = finance.EntryStatusPending
	}
	if !input.Status.IsValid() {
		return nil, finance.ErrInvalidStatus
	}

	installments := input.PaymentMethod == finance.PaymentMethodCreditCard && input.InstallmentsTotal > 1
	if installments && input.CreditCardID == nil {
		return nil, ErrMissingCreditCard
	}

	var created []*finance.Entry

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if installments {
			parts, err := finance.SplitInstallments(input.Amount, input.InstallmentsTotal)
			if err != nil {
				return err
			}
			groupID := uuid.New().String()
			for i, amount := range parts {
				e, err := finance.NewEntry(input.Type,
					fmt.Sprintf("%s (%d/%d)", input.Description, i+1, input.InstallmentsTotal),
					amount, input.EntryDate, input.DueDate.AddDate(0, i, 0))
				if err != nil {
					return err
				}
				e.Status = input.Status
				e.Category = input.Category
				e.PaymentMethod = input.PaymentMethod
				e.BankAccountID = input.BankAccountID
				e.CreditCardID = input.CreditCardID
				e.InstallmentNumber = i + 1
				e.InstallmentsTotal = input.InstallmentsTotal
				e.InstallmentGroupID = &groupID
				created = append(created, e)
			}
		} else {
			e, err := finance.NewEntry(input.Type, input.Description, input.Amount,
				input.EntryDate, input.DueDate)
			if err != nil {
				return err
			}
			e.Status = input.Status
			e.Category = input.Category
			e.PaymentMethod = input.PaymentMethod
			e.BankAccountID = input.BankAccountID
			e.CreditCardID = input.CreditCardID
			created = append(created, e)
		}

		for _, e := range created {
			if err := s.entries.Create(ctx, e); err != nil {
				return err
			}
		}

		// compras no cartão aumentam a fatura pelo valor cheio
		if input.Type == finance.EntryTypePayable &&
			input.PaymentMethod == finance.PaymentMethodCreditCard && input.CreditCardID != nil {
			if err := s.cards.AdjustBalance(ctx, *input.CreditCardID, input.Amount); err != nil {
				return err
			}
		}

		// lançamentos já criados pagos recebem a baixa bancária imediata
		if input.Status == finance.EntryStatusPaid {
			now := time.Now()
			for _, e := range created {
				if err := s.settle(ctx, e, now); err != nil {
					return err
				}
				if err := s.entries.Update(ctx, e); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("lançamento financeiro criado", "count", len(created),
		"type", string(input.Type), "amount", input.Amount.String())
	return created, nil
}

// settle resolve a conta bancária e aplica o ajuste de saldo do lançamento,
// registrando a conta resolvida e a data de pagamento no próprio lançamento
func (s *Service) settle(ctx context.Context, e *finance.Entry, paymentDate time.Time) error {
	bankAccountID, err := s.resolveBankAccount(ctx, e)
	if err != nil {
		return err
	}
	if err := s.accounts.AdjustBalance(ctx, bankAccountID, e.BalanceAdjustment()); err != nil {
		return err
	}
	e.Status = finance.EntryStatusPaid
	e.BankAccountID = &bankAccountID
	e.PaymentDate = &paymentDate
	return nil
}

// resolveBankAccount devolve a conta do próprio lançamento quando informada,
// senão a primeira conta cadastrada; sem nenhuma, ErrMissingBankAccount
func (s *Service) resolveBankAccount(ctx context.Context, e *finance.Entry) (string, error) {
	if e.BankAccountID != nil {
		return *e.BankAccountID, nil
	}
	first, err := s.accounts.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, account.ErrNoAccounts) {
			return "", ErrMissingBankAccount
		}
		return "", err
	}
	return first.ID, nil
}

// MarkEntryPaid marca um lançamento como pago, ajustando o saldo da conta
// bancária resolvida (+valor para recebível, −valor para pagável).
// Idempotente: um lançamento já pago não sofre novo ajuste.
func (s *Service) MarkEntryPaid(ctx context.Context, id string) (*finance.Entry, error) {
	var entry *finance.Entry

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.entries.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if e.IsPaid() {
			entry = e
			return nil
		}
		if err := s.settle(ctx, e, time.Now()); err != nil {
			return err
		}
		if err := s.entries.Update(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("lançamento pago", "entry_id", entry.ID, "amount", entry.Amount.String())
	return entry, nil
}

// RevertEntryPaid desfaz a baixa de um lançamento pago, aplicando o ajuste
// inverso no saldo da conta registrada. Lançamentos pendentes não são tocados.
func (s *Service) RevertEntryPaid(ctx context.Context, id string) (*finance.Entry, error) {
	var entry *finance.Entry

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.entries.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !e.IsPaid() {
			entry = e
			return nil
		}
		if e.BankAccountID != nil {
			if err := s.accounts.AdjustBalance(ctx, *e.BankAccountID, e.BalanceAdjustment().Neg()); err != nil {
				return err
			}
		}
		e.Status = finance.EntryStatusPending
		e.PaymentDate = nil
		if err := s.entries.Update(ctx, e); err != nil {
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("baixa de lançamento revertida", "entry_id", entry.ID)
	return entry, nil
}

// CloseResellerCommissions marca em bloco as vendas informadas e seus
// lançamentos vinculados como pagos, na mesma transação
func (s *Service) CloseResellerCommissions(ctx context.Context, resellerID string, saleIDs []string) error {
	if len(saleIDs) == 0 {
		return nil
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.sales.MarkPaid(ctx, saleIDs); err != nil {
			return err
		}
		return s.entries.MarkPaidBySaleIDs(ctx, saleIDs, time.Now())
	})
	if err != nil {
		return err
	}

	s.logger.Info("comissões de revendedor fechadas", "reseller_id", resellerID, "sales", len(saleIDs))
	return nil
}
