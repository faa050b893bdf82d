package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account, opening *domain.Transaction) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.accountByNumber(account.AccountNumber); exists {
		return domain.Account{}, commons.ErrDuplicateAccountNumber
	}

	account.ID = r.store.nextAccountID
	r.store.nextAccountID++
	account.CreatedAt = r.store.now()
	account.UpdatedAt = account.CreatedAt
	r.store.accounts[account.ID] = account

	if opening != nil {
		posted := *opening
		posted.AccountID = account.ID
		r.store.appendTransaction(posted)
	}

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accountByNumber(accountNumber)
	if !ok {
		return domain.Account{}, commons.ErrAccountNotFound
	}

	return account, nil
}

func (r *AccountRepository) HasAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.accountByNumber(accountNumber)
	return ok, nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	accounts := make([]domain.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

func (r *AccountRepository) PostTransaction(_ context.Context, accountNumber string, txn domain.Transaction) (domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	account, ok := r.store.accountByNumber(accountNumber)
	if !ok {
		return domain.Transaction{}, commons.ErrAccountNotFound
	}

	switch txn.Type {
	case domain.TransactionTypeDeposit:
		account.Balance = account.Balance.Add(txn.Amount)
	case domain.TransactionTypeWithdrawal:
		if txn.Amount.GreaterThan(account.Balance) {
			return domain.Transaction{}, commons.ErrInsufficientFunds
		}
		account.Balance = account.Balance.Sub(txn.Amount)
	default:
		return domain.Transaction{}, fmt.Errorf("unsupported transaction type %q", txn.Type)
	}

	account.UpdatedAt = r.store.now()
	r.store.accounts[account.ID] = account

	txn.AccountID = account.ID
	txn.BalanceAfter = account.Balance

	return r.store.appendTransaction(txn), nil
}

func (r *AccountRepository) ApplyInterest(_ context.Context, rate decimal.Decimal) ([]domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ids := make([]uint, 0, len(r.store.accounts))
	for id := range r.store.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	transactions := make([]domain.Transaction, 0, len(ids))
	for _, id := range ids {
		account := r.store.accounts[id]
		interest := account.Balance.Mul(rate)
		account.Balance = account.Balance.Add(interest)
		account.UpdatedAt = r.store.now()
		r.store.accounts[id] = account

		transactions = append(transactions, r.store.appendTransaction(domain.Transaction{
			Reference:    uuid.NewString(),
			AccountID:    id,
			Type:         domain.TransactionTypeMonthlyInterest,
			Amount:       interest,
			BalanceAfter: account.Balance,
		}))
	}

	return transactions, nil
}
