package memory

import (
	"sync"
	"time"

	"github.com/api-sage/banca-ledger/internal/domain"
)

// Store is a mutex-guarded in-memory stand-in for the sqlite adapter. It
// implements the same repository contracts and is what the service tests
// run against.
type Store struct {
	mu sync.Mutex

	customers    map[uint]domain.Customer
	accounts     map[uint]domain.Account
	transactions []domain.Transaction

	nextCustomerID    uint
	nextAccountID     uint
	nextTransactionID uint
}

func NewStore() *Store {
	return &Store{
		customers:         make(map[uint]domain.Customer),
		accounts:          make(map[uint]domain.Account),
		nextCustomerID:    1,
		nextAccountID:     1,
		nextTransactionID: 1,
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

// accountByNumber must be called with the lock held.
func (s *Store) accountByNumber(accountNumber string) (domain.Account, bool) {
	for _, account := range s.accounts {
		if account.AccountNumber == accountNumber {
			return account, true
		}
	}
	return domain.Account{}, false
}

// appendTransaction must be called with the lock held.
func (s *Store) appendTransaction(txn domain.Transaction) domain.Transaction {
	txn.ID = s.nextTransactionID
	s.nextTransactionID++
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = s.now()
	}
	s.transactions = append(s.transactions, txn)
	return txn
}
