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

type AccountService struct {
	accountRepo  repo_interfaces.AccountRepository
	customerRepo repo_interfaces.CustomerRepository
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	customerRepo repo_interfaces.CustomerRepository,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)

	initialBalance := decimal.Zero
	if strings.TrimSpace(req.InitialBalance) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(req.InitialBalance))
		if err != nil || parsed.IsNegative() {
			logger.Error("account service create account parse initial balance failed", err, logger.Fields{
				"initialBalance": req.InitialBalance,
			})
			return commons.ErrorResponse[models.AccountResponse]("validation failed", "initialBalance must be a non-negative number"), commons.ErrInvalidAmount
		}
		initialBalance = parsed
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, commons.ErrCustomerNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Customer not found"), err
		}
		logger.Error("account service create account customer lookup failed", err, logger.Fields{
			"customerId": req.CustomerID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	taken, err := s.accountRepo.HasAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service create account number check failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}
	if taken {
		return commons.ErrorResponse[models.AccountResponse]("Account number already exists"), commons.ErrDuplicateAccountNumber
	}

	account := domain.Account{
		CustomerID:    req.CustomerID,
		AccountNumber: accountNumber,
		Balance:       initialBalance,
	}

	var opening *domain.Transaction
	if initialBalance.IsPositive() {
		opening = &domain.Transaction{
			Reference:    uuid.NewString(),
			Type:         domain.TransactionTypeOpening,
			Amount:       initialBalance,
			BalanceAfter: initialBalance,
		}
	}

	created, err := s.accountRepo.Create(ctx, account, opening)
	if err != nil {
		if errors.Is(err, commons.ErrDuplicateAccountNumber) {
			return commons.ErrorResponse[models.AccountResponse]("Account number already exists"), err
		}
		logger.Error("account service create account repository failed", err, logger.Fields{
			"customerId":    account.CustomerID,
			"accountNumber": account.AccountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := models.AccountResponse{
		ID:            created.ID,
		CustomerID:    created.CustomerID,
		AccountNumber: created.AccountNumber,
		Balance:       created.Balance.String(),
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     created.UpdatedAt.Format(time.RFC3339),
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId":     response.ID,
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountNumber string) (commons.Response[models.BalanceResponse], error) {
	logger.Info("account service get balance request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrAccountNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		logger.Error("account service get balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("failed to get balance", "Unable to fetch balance right now"), err
	}

	response := models.BalanceResponse{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.String(),
	}

	return commons.SuccessResponse("balance fetched successfully", response), nil
}
