package customer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// customerRepository implements domain.CustomerRepository using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository backed by the given GORM database.
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// FindByID retrieves a customer by id. It returns nil, nil when no row matches.
func (r *customerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindAll returns one page of customers matching filter, ordered by zip code
// prefix descending, along with the total number of matches.
func (r *customerRepository) FindAll(ctx context.Context, filter domain.CustomerFilter, page domain.PaginationParams) ([]domain.Customer, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []domain.Customer
	err := r.filtered(ctx, filter).
		Order("customer_zip_code_prefix DESC").
		Order("customer_id").
		Scopes(pkg.Paginate(page)).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// Update overwrites the fields set in req and returns the stored row.
// It returns nil, nil when no row matches id.
func (r *customerRepository) Update(ctx context.Context, id string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("customer_id = ?", id).
		Updates(req.Changes())
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// Delete removes a customer by id and reports how many rows were removed.
func (r *customerRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("customer_id = ?", id).Delete(&domain.Customer{})
	return result.RowsAffected, result.Error
}

func (r *customerRepository) filtered(ctx context.Context, filter domain.CustomerFilter) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.Customer{}).Scopes(
		pkg.Equal("customer_city", filter.City),
		pkg.Equal("customer_state", filter.State),
	)
}
