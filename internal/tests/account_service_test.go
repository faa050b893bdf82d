package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/usecase/services"
)

func TestAccountServiceCreateAccountValidationError(t *testing.T) {
	svc := services.NewAccountService(nil, nil)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create account request")
	}
}

func TestAccountServiceCreateAccountRejectsNegativeInitialBalance(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)

	_, err := f.accounts.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:     customerID,
		AccountNumber:  "NEG-001",
		InitialBalance: "-50",
	})
	if !errors.Is(err, commons.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestAccountServiceCreateAccountNumberIsCaseSensitive(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "TEST-001", "500")

	resp, err := f.accounts.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:    customerID,
		AccountNumber: "test-001",
	})
	if err != nil {
		t.Fatalf("expected case-variant account number to be accepted, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if resp.Data.AccountNumber != "test-001" {
		t.Fatalf("expected account number test-001, got %s", resp.Data.AccountNumber)
	}
}

func TestAccountServiceCreateAccountCustomerNotFound(t *testing.T) {
	f := newFixture("0.05")

	_, err := f.accounts.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:    99,
		AccountNumber: "TEST-001",
	})
	if !errors.Is(err, commons.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestAccountServiceCreateAccountDuplicateNumber(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "TEST-001", "500")

	_, err := f.accounts.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:    customerID,
		AccountNumber: "TEST-001",
	})
	if !errors.Is(err, commons.ErrDuplicateAccountNumber) {
		t.Fatalf("expected ErrDuplicateAccountNumber, got %v", err)
	}
}

func TestAccountServiceCreateAccountRecordsOpeningTransaction(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "TEST-001", "500")

	if got := f.balance(t, "TEST-001"); got != "500" {
		t.Fatalf("expected balance 500, got %s", got)
	}

	resp, err := f.transactions.GetHistory(context.Background(), "TEST-001")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	history := *resp.Data
	if len(history) != 1 {
		t.Fatalf("expected exactly one opening transaction, got %d", len(history))
	}
	opening := history[0]
	if opening.Type != string(domain.TransactionTypeOpening) {
		t.Fatalf("expected OPENING transaction, got %s", opening.Type)
	}
	if opening.Amount != "500" || opening.BalanceAfter != "500" {
		t.Fatalf("expected opening amount and balance 500, got amount=%s balanceAfter=%s", opening.Amount, opening.BalanceAfter)
	}
}

func TestAccountServiceCreateAccountZeroBalanceHasNoOpening(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "TEST-002", "")

	resp, err := f.transactions.GetHistory(context.Background(), "TEST-002")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(*resp.Data) != 0 {
		t.Fatalf("expected no transactions for a zero-balance account, got %d", len(*resp.Data))
	}
}

func TestAccountServiceGetBalanceNotFound(t *testing.T) {
	f := newFixture("0.05")

	_, err := f.accounts.GetBalance(context.Background(), "MISSING-001")
	if !errors.Is(err, commons.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
