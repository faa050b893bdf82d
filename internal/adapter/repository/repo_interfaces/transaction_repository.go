package repo_interfaces

import (
	"context"

	"github.com/api-sage/banca-ledger/internal/domain"
)

type TransactionRepository interface {
	// ListByAccountID returns the account's transactions ordered newest
	// first, ties broken by insertion order.
	ListByAccountID(ctx context.Context, accountID uint) ([]domain.Transaction, error)
}
