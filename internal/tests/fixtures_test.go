package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/banca-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

type fixture struct {
	store        *memory.Store
	customers    *services.CustomerService
	accounts     *services.AccountService
	transactions *services.TransactionService
	interest     *services.InterestService
}

func newFixture(rate string) *fixture {
	store := memory.NewStore()
	customerRepo := memory.NewCustomerRepository(store)
	accountRepo := memory.NewAccountRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)

	return &fixture{
		store:        store,
		customers:    services.NewCustomerService(customerRepo),
		accounts:     services.NewAccountService(accountRepo, customerRepo),
		transactions: services.NewTransactionService(accountRepo, transactionRepo),
		interest:     services.NewInterestService(accountRepo, decimal.RequireFromString(rate)),
	}
}

func (f *fixture) createCustomer(t *testing.T) uint {
	t.Helper()

	resp, err := f.customers.CreateCustomer(context.Background(), models.CreateCustomerRequest{
		Name:      "Tester",
		BirthDate: "1990-05-20",
		Sex:       "F",
		Income:    "1000",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if resp.Data == nil {
		t.Fatal("expected customer data in response")
	}

	return resp.Data.ID
}

func (f *fixture) createAccount(t *testing.T, customerID uint, accountNumber, initialBalance string) {
	t.Helper()

	_, err := f.accounts.CreateAccount(context.Background(), models.CreateAccountRequest{
		CustomerID:     customerID,
		AccountNumber:  accountNumber,
		InitialBalance: initialBalance,
	})
	if err != nil {
		t.Fatalf("create account %s: %v", accountNumber, err)
	}
}

func (f *fixture) balance(t *testing.T, accountNumber string) string {
	t.Helper()

	resp, err := f.accounts.GetBalance(context.Background(), accountNumber)
	if err != nil {
		t.Fatalf("get balance %s: %v", accountNumber, err)
	}
	if resp.Data == nil {
		t.Fatal("expected balance data in response")
	}

	return resp.Data.Balance
}
