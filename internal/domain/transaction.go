package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeOpening         TransactionType = "OPENING"
	TransactionTypeDeposit         TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal      TransactionType = "WITHDRAWAL"
	TransactionTypeMonthlyInterest TransactionType = "MONTHLY_INTEREST"
)

// Transaction is an immutable audit record of one balance-changing event.
// Amount is always the positive magnitude of the movement; BalanceAfter is
// the account balance once the movement has been applied.
type Transaction struct {
	ID           uint
	Reference    string
	AccountID    uint
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}
