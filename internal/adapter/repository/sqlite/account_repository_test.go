package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(Config{
		Path:     filepath.Join(t.TempDir(), "banca_test.db"),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func createTestCustomer(t *testing.T, client *Client) domain.Customer {
	t.Helper()

	customer, err := NewCustomerRepository(client).Create(context.Background(), domain.Customer{
		Name:   "Tester",
		Sex:    "F",
		Income: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	return customer
}

func TestAccountRepositoryCreateDuplicateNumberReturnsSentinel(t *testing.T) {
	client := newTestClient(t)
	customer := createTestCustomer(t, client)
	accounts := NewAccountRepository(client)

	if _, err := accounts.Create(context.Background(), domain.Account{
		CustomerID:    customer.ID,
		AccountNumber: "TEST-001",
		Balance:       decimal.NewFromInt(500),
	}, nil); err != nil {
		t.Fatalf("create account: %v", err)
	}

	_, err := accounts.Create(context.Background(), domain.Account{
		CustomerID:    customer.ID,
		AccountNumber: "TEST-001",
	}, nil)
	if !errors.Is(err, commons.ErrDuplicateAccountNumber) {
		t.Fatalf("expected ErrDuplicateAccountNumber, got %v", err)
	}
}

func TestAccountRepositoryDuplicateCreateRollsBackOpening(t *testing.T) {
	client := newTestClient(t)
	customer := createTestCustomer(t, client)
	accounts := NewAccountRepository(client)
	transactions := NewTransactionRepository(client)

	first, err := accounts.Create(context.Background(), domain.Account{
		CustomerID:    customer.ID,
		AccountNumber: "TEST-002",
		Balance:       decimal.NewFromInt(500),
	}, &domain.Transaction{
		Reference:    "opening-test-002",
		Type:         domain.TransactionTypeOpening,
		Amount:       decimal.NewFromInt(500),
		BalanceAfter: decimal.NewFromInt(500),
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	_, err = accounts.Create(context.Background(), domain.Account{
		CustomerID:    customer.ID,
		AccountNumber: "TEST-002",
		Balance:       decimal.NewFromInt(100),
	}, &domain.Transaction{
		Reference:    "opening-test-002-dup",
		Type:         domain.TransactionTypeOpening,
		Amount:       decimal.NewFromInt(100),
		BalanceAfter: decimal.NewFromInt(100),
	})
	if !errors.Is(err, commons.ErrDuplicateAccountNumber) {
		t.Fatalf("expected ErrDuplicateAccountNumber, got %v", err)
	}

	history, err := transactions.ListByAccountID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected only the original opening transaction, got %d", len(history))
	}
	if history[0].Reference != "opening-test-002" {
		t.Fatalf("expected the original opening reference, got %s", history[0].Reference)
	}
}
