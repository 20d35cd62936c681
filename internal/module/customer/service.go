package customer

import (
	"context"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// customerService implements domain.CustomerService.
type customerService struct {
	repo domain.CustomerRepository
}

// NewCustomerService creates a new CustomerService with the given repository.
func NewCustomerService(repo domain.CustomerRepository) domain.CustomerService {
	return &customerService{repo: repo}
}

// CreateCustomer validates req and persists the new customer.
func (s *customerService) CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	customer := req.Model()
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, pkg.CreateError("Customer", err)
	}
	return customer, nil
}

// GetCustomer retrieves a customer by id.
func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// ListCustomers returns a page of customers filtered by location.
func (s *customerService) ListCustomers(ctx context.Context, query domain.LocationSearchQuery) (*domain.PaginatedResponse[domain.Customer], error) {
	page := query.Pagination()
	customers, total, err := s.repo.FindAll(ctx, query.Filter(), page)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	return domain.NewPaginatedResponse(customers, total, page.Normalize()), nil
}

// UpdateCustomer applies a partial update. A request without any field set
// is rejected before storage is touched.
func (s *customerService) UpdateCustomer(ctx context.Context, id string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, domain.ErrNoChangesToUpdate
	}

	customer, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

// DeleteCustomer removes a customer by id.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DatabaseError(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
