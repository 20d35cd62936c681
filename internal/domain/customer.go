package domain

import "context"

// Customer is a buyer identified by an externally supplied customer_id.
type Customer struct {
	CustomerID            string `gorm:"primaryKey;size:32" json:"customer_id"`
	CustomerUniqueID      string `gorm:"size:32;not null" json:"customer_unique_id"`
	CustomerZipCodePrefix string `gorm:"size:10;not null;index" json:"customer_zip_code_prefix"`
	CustomerCity          string `gorm:"size:100;not null;index" json:"customer_city"`
	CustomerState         string `gorm:"size:2;not null;index" json:"customer_state"`
}

// TableName pins the table name independently of the naming strategy.
func (Customer) TableName() string { return "customers" }

// CreateCustomerRequest is the full payload for inserting a customer.
type CreateCustomerRequest struct {
	CustomerID            string `json:"customer_id" csv:"customer_id" validate:"required,max=32"`
	CustomerUniqueID      string `json:"customer_unique_id" csv:"customer_unique_id" validate:"required,max=32"`
	CustomerZipCodePrefix string `json:"customer_zip_code_prefix" csv:"customer_zip_code_prefix" validate:"required,max=10"`
	CustomerCity          string `json:"customer_city" csv:"customer_city" validate:"required,max=100"`
	CustomerState         string `json:"customer_state" csv:"customer_state" validate:"required,len=2"`
}

// Model converts the request into the entity to persist.
func (r CreateCustomerRequest) Model() *Customer {
	return &Customer{
		CustomerID:            r.CustomerID,
		CustomerUniqueID:      r.CustomerUniqueID,
		CustomerZipCodePrefix: r.CustomerZipCodePrefix,
		CustomerCity:          r.CustomerCity,
		CustomerState:         r.CustomerState,
	}
}

// UpdateCustomerRequest is a partial update. Nil fields leave the stored
// value untouched.
type UpdateCustomerRequest struct {
	CustomerUniqueID      *string `json:"customer_unique_id" validate:"omitempty,max=32"`
	CustomerZipCodePrefix *string `json:"customer_zip_code_prefix" validate:"omitempty,max=10"`
	CustomerCity          *string `json:"customer_city" validate:"omitempty,max=100"`
	CustomerState         *string `json:"customer_state" validate:"omitempty,len=2"`
}

// IsEmpty reports whether no updatable field is set.
func (r UpdateCustomerRequest) IsEmpty() bool {
	return r.CustomerUniqueID == nil &&
		r.CustomerZipCodePrefix == nil &&
		r.CustomerCity == nil &&
		r.CustomerState == nil
}

// Changes returns the column → value map of the fields that are set.
func (r UpdateCustomerRequest) Changes() map[string]any {
	changes := make(map[string]any, 4)
	if r.CustomerUniqueID != nil {
		changes["customer_unique_id"] = *r.CustomerUniqueID
	}
	if r.CustomerZipCodePrefix != nil {
		changes["customer_zip_code_prefix"] = *r.CustomerZipCodePrefix
	}
	if r.CustomerCity != nil {
		changes["customer_city"] = *r.CustomerCity
	}
	if r.CustomerState != nil {
		changes["customer_state"] = *r.CustomerState
	}
	return changes
}

// LocationFilter narrows customers or sellers by exact city and/or state.
type LocationFilter struct {
	City  *string
	State *string
}

// CustomerFilter and SellerFilter share the location predicate.
type (
	CustomerFilter = LocationFilter
	SellerFilter   = LocationFilter
)

// LocationSearchQuery is the list query accepted by the customer and seller endpoints.
type LocationSearchQuery struct {
	PaginationParams
	City  *string
	State *string
}

// Pagination projects the paging part of the query.
func (q LocationSearchQuery) Pagination() PaginationParams { return q.PaginationParams }

// Filter projects the predicate part of the query.
func (q LocationSearchQuery) Filter() LocationFilter {
	return LocationFilter{City: q.City, State: q.State}
}

// CustomerRepository defines the data access interface for customers.
// Absent rows are reported as a nil entity with a nil error; storage errors
// are returned untranslated.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter, page PaginationParams) ([]Customer, int64, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// CustomerService defines the business logic interface for customers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	ListCustomers(ctx context.Context, query LocationSearchQuery) (*PaginatedResponse[Customer], error)
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
