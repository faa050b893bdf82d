package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewTransactionService(
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *TransactionService) Deposit(ctx context.Context, req models.MovementRequest) (commons.Response[models.TransactionResponse], error) {
	return s.post(ctx, req, domain.TransactionTypeDeposit)
}

func (s *TransactionService) Withdraw(ctx context.Context, req models.MovementRequest) (commons.Response[models.TransactionResponse], error) {
	return s.post(ctx, req, domain.TransactionTypeWithdrawal)
}

func (s *TransactionService) post(ctx context.Context, req models.MovementRequest, txnType domain.TransactionType) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service post request", logger.Fields{
		"payload": logger.SanitizePayload(req),
		"type":    txnType,
	})

	accountNumber := strings.TrimSpace(req.AccountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		logger.Error("transaction service post invalid amount", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        req.Amount,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Amount must be greater than zero"), commons.ErrInvalidAmount
	}

	posted, err := s.accountRepo.PostTransaction(ctx, accountNumber, domain.Transaction{
		Reference: uuid.NewString(),
		Type:      txnType,
		Amount:    amount,
	})
	if err != nil {
		if errors.Is(err, commons.ErrAccountNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Account not found"), err
		}
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransactionResponse]("Insufficient funds"), err
		}
		logger.Error("transaction service post failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"type":          txnType,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to post transaction", "Unable to post transaction right now"), err
	}

	response := toTransactionResponse(posted)

	logger.Info("transaction service post success", logger.Fields{
		"accountNumber": accountNumber,
		"reference":     response.Reference,
		"balanceAfter":  response.BalanceAfter,
	})

	return commons.SuccessResponse("transaction posted successfully", response), nil
}

func (s *TransactionService) GetHistory(ctx context.Context, accountNumber string) (commons.Response[[]models.TransactionResponse], error) {
	logger.Info("transaction service get history request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[[]models.TransactionResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrAccountNotFound) {
			return commons.ErrorResponse[[]models.TransactionResponse]("Account not found"), err
		}
		logger.Error("transaction service get history account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to get history", "Unable to fetch history right now"), err
	}

	transactions, err := s.transactionRepo.ListByAccountID(ctx, account.ID)
	if err != nil {
		logger.Error("transaction service get history list failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"accountId":     account.ID,
		})
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to get history", "Unable to fetch history right now"), err
	}

	response := make([]models.TransactionResponse, 0, len(transactions))
	for _, txn := range transactions {
		response = append(response, toTransactionResponse(txn))
	}

	return commons.SuccessResponse("history fetched successfully", response), nil
}

func toTransactionResponse(txn domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		Reference:    txn.Reference,
		AccountID:    txn.AccountID,
		Type:         string(txn.Type),
		Amount:       txn.Amount.String(),
		BalanceAfter: txn.BalanceAfter.String(),
		CreatedAt:    txn.CreatedAt.Format(time.RFC3339),
	}
}
