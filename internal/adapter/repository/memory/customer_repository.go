package memory

import (
	"context"

	"github.com/api-sage/banca-ledger/internal/commons"
	"github.com/api-sage/banca-ledger/internal/domain"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customer.ID = r.store.nextCustomerID
	r.store.nextCustomerID++
	customer.CreatedAt = r.store.now()
	r.store.customers[customer.ID] = customer

	return customer, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id uint) (domain.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customer, ok := r.store.customers[id]
	if !ok {
		return domain.Customer{}, commons.ErrCustomerNotFound
	}

	return customer, nil
}
