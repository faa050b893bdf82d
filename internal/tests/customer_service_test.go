package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/usecase/services"
)

func TestCustomerServiceCreateCustomerValidationError(t *testing.T) {
	svc := services.NewCustomerService(nil)

	_, err := svc.CreateCustomer(context.Background(), models.CreateCustomerRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create customer request")
	}
}

func TestCustomerServiceCreateCustomerRejectsBadBirthDate(t *testing.T) {
	svc := services.NewCustomerService(nil)

	_, err := svc.CreateCustomer(context.Background(), models.CreateCustomerRequest{
		Name:      "Tester",
		BirthDate: "20-05-1990",
		Sex:       "M",
	})
	if err == nil {
		t.Fatal("expected validation error for malformed birth date")
	}
}

func TestCustomerServiceCreateCustomerSuccess(t *testing.T) {
	f := newFixture("0.05")

	resp, err := f.customers.CreateCustomer(context.Background(), models.CreateCustomerRequest{
		Name:      "Tester",
		BirthDate: "1990-05-20",
		Sex:       "F",
		Income:    "1000",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if resp.Data.ID == 0 {
		t.Fatal("expected a persisted customer id")
	}
	if resp.Data.Income != "1000" {
		t.Fatalf("expected income 1000, got %s", resp.Data.Income)
	}
	if resp.Data.BirthDate != "1990-05-20" {
		t.Fatalf("expected birth date 1990-05-20, got %s", resp.Data.BirthDate)
	}
}
