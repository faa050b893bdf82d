package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountRepository struct {
	client *Client
}

func NewAccountRepository(client *Client) *AccountRepository {
	return &AccountRepository{client: client}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account, opening *domain.Transaction) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"customerId":    account.CustomerID,
		"accountNumber": account.AccountNumber,
	})

	record := accountRecord{
		CustomerID:    account.CustomerID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
	}

	err := r.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return commons.ErrDuplicateAccountNumber
			}
			return fmt.Errorf("create account: %w", err)
		}

		if opening == nil {
			return nil
		}

		openingRecord := transactionRecord{
			Reference:    opening.Reference,
			AccountID:    record.ID,
			Type:         string(opening.Type),
			Amount:       opening.Amount,
			BalanceAfter: opening.BalanceAfter,
		}
		if err := tx.Create(&openingRecord).Error; err != nil {
			return fmt.Errorf("create opening transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, commons.ErrDuplicateAccountNumber) {
			logger.Error("account repository create failed", err, logger.Fields{
				"customerId":    account.CustomerID,
				"accountNumber": account.AccountNumber,
			})
		}
		return domain.Account{}, err
	}

	logger.Info("account repository create success", logger.Fields{
		"accountId":     record.ID,
		"accountNumber": record.AccountNumber,
	})

	return record.toDomain(), nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	var record accountRecord
	err := r.client.DB().WithContext(ctx).
		Where("account_number = ?", accountNumber).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Account{}, commons.ErrAccountNotFound
		}
		logger.Error("account repository get by account number failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", err)
	}

	return record.toDomain(), nil
}

func (r *AccountRepository) HasAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.client.DB().WithContext(ctx).
		Model(&accountRecord{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error
	if err != nil {
		logger.Error("account repository has account number failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return false, fmt.Errorf("check account number: %w", err)
	}

	return count > 0, nil
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	var records []accountRecord
	if err := r.client.DB().WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		logger.Error("account repository get all failed", err, nil)
		return nil, fmt.Errorf("get all accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(records))
	for _, record := range records {
		accounts = append(accounts, record.toDomain())
	}

	return accounts, nil
}

func (r *AccountRepository) PostTransaction(ctx context.Context, accountNumber string, txn domain.Transaction) (domain.Transaction, error) {
	logger.Info("account repository post transaction", logger.Fields{
		"accountNumber": accountNumber,
		"type":          txn.Type,
		"amount":        txn.Amount,
	})

	var posted transactionRecord

	err := r.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account accountRecord
		if err := tx.Where("account_number = ?", accountNumber).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return commons.ErrAccountNotFound
			}
			return fmt.Errorf("get account by account number: %w", err)
		}

		switch txn.Type {
		case domain.TransactionTypeDeposit:
			account.Balance = account.Balance.Add(txn.Amount)
		case domain.TransactionTypeWithdrawal:
			if txn.Amount.GreaterThan(account.Balance) {
				return commons.ErrInsufficientFunds
			}
			account.Balance = account.Balance.Sub(txn.Amount)
		default:
			return fmt.Errorf("unsupported transaction type %q", txn.Type)
		}

		if err := tx.Save(&account).Error; err != nil {
			return fmt.Errorf("update account balance: %w", err)
		}

		posted = transactionRecord{
			Reference:    txn.Reference,
			AccountID:    account.ID,
			Type:         string(txn.Type),
			Amount:       txn.Amount,
			BalanceAfter: account.Balance,
		}
		if err := tx.Create(&posted).Error; err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, commons.ErrAccountNotFound) && !errors.Is(err, commons.ErrInsufficientFunds) {
			logger.Error("account repository post transaction failed", err, logger.Fields{
				"accountNumber": accountNumber,
				"type":          txn.Type,
			})
		}
		return domain.Transaction{}, err
	}

	logger.Info("account repository post transaction success", logger.Fields{
		"accountNumber": accountNumber,
		"reference":     posted.Reference,
		"balanceAfter":  posted.BalanceAfter,
	})

	return posted.toDomain(), nil
}

func (r *AccountRepository) ApplyInterest(ctx context.Context, rate decimal.Decimal) ([]domain.Transaction, error) {
	logger.Info("account repository apply interest", logger.Fields{
		"rate": rate,
	})

	var records []transactionRecord

	err := r.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accounts []accountRecord
		if err := tx.Order("id").Find(&accounts).Error; err != nil {
			return fmt.Errorf("get all accounts: %w", err)
		}

		for i := range accounts {
			interest := accounts[i].Balance.Mul(rate)
			accounts[i].Balance = accounts[i].Balance.Add(interest)

			if err := tx.Save(&accounts[i]).Error; err != nil {
				return fmt.Errorf("update account %d balance: %w", accounts[i].ID, err)
			}

			record := transactionRecord{
				Reference:    uuid.NewString(),
				AccountID:    accounts[i].ID,
				Type:         string(domain.TransactionTypeMonthlyInterest),
				Amount:       interest,
				BalanceAfter: accounts[i].Balance,
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("create interest transaction: %w", err)
			}

			records = append(records, record)
		}

		return nil
	})
	if err != nil {
		logger.Error("account repository apply interest failed", err, nil)
		return nil, err
	}

	logger.Info("account repository apply interest success", logger.Fields{
		"accounts": len(records),
	})

	transactions := make([]domain.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, record.toDomain())
	}

	return transactions, nil
}
