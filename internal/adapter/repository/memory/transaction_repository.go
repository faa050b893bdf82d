package memory

import (
	"context"
	"sort"

	"github.com/api-sage/banca-ledger/internal/domain"
)

type TransactionRepository struct {
	store *Store
}

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) ListByAccountID(_ context.Context, accountID uint) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transactions := make([]domain.Transaction, 0)
	for _, txn := range r.store.transactions {
		if txn.AccountID == accountID {
			transactions = append(transactions, txn)
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
		}
		return transactions[i].ID > transactions[j].ID
	})

	return transactions, nil
}
