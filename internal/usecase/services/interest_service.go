package services

import (
	"context"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

type InterestService struct {
	accountRepo repo_interfaces.AccountRepository
	rate        decimal.Decimal
}

func NewInterestService(accountRepo repo_interfaces.AccountRepository, rate decimal.Decimal) *InterestService {
	return &InterestService{
		accountRepo: accountRepo,
		rate:        rate,
	}
}

// ApplyMonthlyInterest credits every account with balance × rate. The whole
// run is one store transaction: either every account is credited or none is.
func (s *InterestService) ApplyMonthlyInterest(ctx context.Context) (commons.Response[models.ApplyInterestResponse], error) {
	logger.Info("interest service apply monthly interest request", logger.Fields{
		"rate": s.rate,
	})

	postings, err := s.accountRepo.ApplyInterest(ctx, s.rate)
	if err != nil {
		logger.Error("interest service apply monthly interest failed", err, nil)
		return commons.ErrorResponse[models.ApplyInterestResponse]("failed to apply interest", "Unable to apply interest right now"), err
	}

	response := models.ApplyInterestResponse{
		AccountsCredited: len(postings),
		Postings:         make([]models.TransactionResponse, 0, len(postings)),
	}
	for _, posting := range postings {
		response.Postings = append(response.Postings, toTransactionResponse(posting))
	}

	logger.Info("interest service apply monthly interest success", logger.Fields{
		"accountsCredited": response.AccountsCredited,
	})

	return commons.SuccessResponse("monthly interest applied successfully", response), nil
}
