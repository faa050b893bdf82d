package repo_interfaces

import (
	"context"

	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository persists accounts and applies balance movements. Every
// movement method writes the balance update and its audit transaction in a
// single store transaction; a movement either fully commits or leaves no
// visible state.
type AccountRepository interface {
	// Create persists the account and, when opening is non-nil, its opening
	// transaction atomically with it.
	Create(ctx context.Context, account domain.Account, opening *domain.Transaction) (domain.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	HasAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	// PostTransaction applies txn.Amount to the account identified by
	// accountNumber according to txn.Type (DEPOSIT credits, WITHDRAWAL
	// debits) and records the movement. Returns the recorded transaction
	// with BalanceAfter, timestamps and ids filled in. A debit that exceeds
	// the balance fails with commons.ErrInsufficientFunds and changes
	// nothing.
	PostTransaction(ctx context.Context, accountNumber string, txn domain.Transaction) (domain.Transaction, error)
	// ApplyInterest credits every account with balance × rate and records
	// one MONTHLY_INTEREST transaction per account, all inside one store
	// transaction.
	ApplyInterest(ctx context.Context, rate decimal.Decimal) ([]domain.Transaction, error)
}
