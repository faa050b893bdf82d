package sqlite

import (
	"time"

	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Monetary columns are TEXT so balances round-trip through the decimal
// type without ever touching floating point at rest.

type customerRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	BirthDate time.Time
	Sex       string
	Income    decimal.Decimal `gorm:"type:TEXT"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (*customerRecord) TableName() string {
	return "customers"
}

type accountRecord struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	CustomerID    uint            `gorm:"index;not null"`
	AccountNumber string          `gorm:"uniqueIndex;not null"`
	Balance       decimal.Decimal `gorm:"type:TEXT"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

func (*accountRecord) TableName() string {
	return "accounts"
}

type transactionRecord struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Reference    string          `gorm:"uniqueIndex;not null"`
	AccountID    uint            `gorm:"index;not null"`
	Type         string          `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:TEXT"`
	BalanceAfter decimal.Decimal `gorm:"type:TEXT"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index"`
}

func (*transactionRecord) TableName() string {
	return "transactions"
}

func (r customerRecord) toDomain() domain.Customer {
	return domain.Customer{
		ID:        r.ID,
		Name:      r.Name,
		BirthDate: r.BirthDate,
		Sex:       r.Sex,
		Income:    r.Income,
		CreatedAt: r.CreatedAt,
	}
}

func (r accountRecord) toDomain() domain.Account {
	return domain.Account{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		AccountNumber: r.AccountNumber,
		Balance:       r.Balance,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r transactionRecord) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:           r.ID,
		Reference:    r.Reference,
		AccountID:    r.AccountID,
		Type:         domain.TransactionType(r.Type),
		Amount:       r.Amount,
		BalanceAfter: r.BalanceAfter,
		CreatedAt:    r.CreatedAt,
	}
}
