package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	CustomerID     uint   `json:"customerId"`
	AccountNumber  string `json:"accountNumber"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if r.CustomerID == 0 {
		errs = append(errs, "customerId is required")
	}

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	if strings.TrimSpace(r.InitialBalance) != "" {
		if _, err := decimal.NewFromString(strings.TrimSpace(r.InitialBalance)); err != nil {
			errs = append(errs, "initialBalance must be numeric")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	ID            uint   `json:"id"`
	CustomerID    uint   `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}
