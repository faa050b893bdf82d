package services

import (
	"context"
	"strings"
	"time"

	"github.com/api-sage/banca-ledger/internal/adapter/http/models"
	"github.com/api-sage/banca-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

type CustomerService struct {
	customerRepo repo_interfaces.CustomerRepository
}

func NewCustomerService(customerRepo repo_interfaces.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CustomerResponse], error) {
	logger.Info("customer service create customer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer service create customer validation failed", err, nil)
		return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
	}

	birthDate, err := time.Parse("2006-01-02", strings.TrimSpace(req.BirthDate))
	if err != nil {
		logger.Error("customer service create customer parse birth date failed", err, nil)
		return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
	}

	income := decimal.Zero
	if strings.TrimSpace(req.Income) != "" {
		income, err = decimal.NewFromString(strings.TrimSpace(req.Income))
		if err != nil {
			logger.Error("customer service create customer parse income failed", err, nil)
			return commons.ErrorResponse[models.CustomerResponse]("validation failed", err.Error()), err
		}
	}

	customer := domain.Customer{
		Name:      strings.TrimSpace(req.Name),
		BirthDate: birthDate,
		Sex:       strings.ToUpper(strings.TrimSpace(req.Sex)),
		Income:    income,
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		logger.Error("customer service create customer repository failed", err, logger.Fields{
			"name": customer.Name,
		})
		return commons.ErrorResponse[models.CustomerResponse]("failed to create customer", "Unable to create customer right now"), err
	}

	response := models.CustomerResponse{
		ID:        created.ID,
		Name:      created.Name,
		BirthDate: created.BirthDate.Format("2006-01-02"),
		Sex:       created.Sex,
		Income:    created.Income.String(),
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("customer service create customer success", logger.Fields{
		"customerId": response.ID,
	})

	return commons.SuccessResponse("customer created successfully", response), nil
}
