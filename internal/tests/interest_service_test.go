package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/banca-ledger/internal/domain"
)

func TestInterestServiceCreditsEveryAccount(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "INT-001", "100")
	f.createAccount(t, customerID, "INT-002", "200")

	resp, err := f.interest.ApplyMonthlyInterest(context.Background())
	if err != nil {
		t.Fatalf("apply monthly interest: %v", err)
	}
	if resp.Data.AccountsCredited != 2 {
		t.Fatalf("expected 2 accounts credited, got %d", resp.Data.AccountsCredited)
	}

	if got := f.balance(t, "INT-001"); got != "105" {
		t.Fatalf("expected balance 105, got %s", got)
	}
	if got := f.balance(t, "INT-002"); got != "210" {
		t.Fatalf("expected balance 210, got %s", got)
	}

	for _, posting := range resp.Data.Postings {
		if posting.Type != string(domain.TransactionTypeMonthlyInterest) {
			t.Fatalf("expected MONTHLY_INTEREST posting, got %s", posting.Type)
		}
	}
	if resp.Data.Postings[0].Amount != "5" || resp.Data.Postings[1].Amount != "10" {
		t.Fatalf("expected interest amounts 5 and 10, got %s and %s",
			resp.Data.Postings[0].Amount, resp.Data.Postings[1].Amount)
	}
}

func TestInterestServiceRecordsPostingInHistory(t *testing.T) {
	f := newFixture("0.05")
	customerID := f.createCustomer(t)
	f.createAccount(t, customerID, "INT-003", "100")

	if _, err := f.interest.ApplyMonthlyInterest(context.Background()); err != nil {
		t.Fatalf("apply monthly interest: %v", err)
	}

	resp, err := f.transactions.GetHistory(context.Background(), "INT-003")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	history := *resp.Data
	if len(history) != 2 {
		t.Fatalf("expected opening plus interest posting, got %d transactions", len(history))
	}
	if history[0].Type != string(domain.TransactionTypeMonthlyInterest) {
		t.Fatalf("expected the interest posting first, got %s", history[0].Type)
	}
	if history[0].Amount != "5" || history[0].BalanceAfter != "105" {
		t.Fatalf("expected interest amount 5 leaving 105, got amount=%s balanceAfter=%s",
			history[0].Amount, history[0].BalanceAfter)
	}
}

func TestInterestServiceNoAccountsIsANoOp(t *testing.T) {
	f := newFixture("0.05")

	resp, err := f.interest.ApplyMonthlyInterest(context.Background())
	if err != nil {
		t.Fatalf("apply monthly interest: %v", err)
	}
	if resp.Data.AccountsCredited != 0 {
		t.Fatalf("expected no accounts credited, got %d", resp.Data.AccountsCredited)
	}
}
