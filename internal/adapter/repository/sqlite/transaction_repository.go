package sqlite

import (
	"context"
	"fmt"

	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/logger"
)

type TransactionRepository struct {
	client *Client
}

func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

func (r *TransactionRepository) ListByAccountID(ctx context.Context, accountID uint) ([]domain.Transaction, error) {
	var records []transactionRecord
	err := r.client.DB().WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		logger.Error("transaction repository list by account id failed", err, logger.Fields{
			"accountId": accountID,
		})
		return nil, fmt.Errorf("list transactions by account id: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(records))
	for _, record := range records {
		transactions = append(transactions, record.toDomain())
	}

	return transactions, nil
}
