package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
	"github.com/api-sage/banca-ledger/internal/logger"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	record := customerRecord{
		Name:      customer.Name,
		BirthDate: customer.BirthDate,
		Sex:       customer.Sex,
		Income:    customer.Income,
	}

	if err := r.client.DB().WithContext(ctx).Create(&record).Error; err != nil {
		logger.Error("customer repository create failed", err, logger.Fields{
			"name": customer.Name,
		})
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	logger.Info("customer repository create success", logger.Fields{
		"customerId": record.ID,
	})

	return record.toDomain(), nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (domain.Customer, error) {
	var record customerRecord
	if err := r.client.DB().WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Customer{}, commons.ErrCustomerNotFound
		}
		logger.Error("customer repository get by id failed", err, logger.Fields{
			"customerId": id,
		})
		return domain.Customer{}, fmt.Errorf("get customer by id: %w", err)
	}

	return record.toDomain(), nil
}
