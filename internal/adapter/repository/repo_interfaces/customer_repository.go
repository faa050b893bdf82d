package repo_interfaces

import (
	"context"

	"github.com/api-sage/banca-ledger/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	GetByID(ctx context.Context, id uint) (domain.Customer, error)
}
