package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MovementRequest is the shared payload for deposits and withdrawals.
type MovementRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
}

func (r MovementRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			errs = append(errs, "amount must be numeric")
		} else if parsed.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "amount must be greater than zero")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	Reference    string `json:"reference"`
	AccountID    uint   `json:"accountId"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balanceAfter"`
	CreatedAt    string `json:"createdAt"`
}

type ApplyInterestResponse struct {
	AccountsCredited int                   `json:"accountsCredited"`
	Postings         []TransactionResponse `json:"postings"`
}
