package domain

import "context"

// Seller is a merchant identified by an externally supplied seller_id.
type Seller struct {
	SellerID            string `gorm:"primaryKey;size:32" json:"seller_id"`
	SellerZipCodePrefix string `gorm:"size:10;not null" json:"seller_zip_code_prefix"`
	SellerCity          string `gorm:"size:100;not null;index" json:"seller_city"`
	SellerState         string `gorm:"size:2;not null;index" json:"seller_state"`
}

// TableName pins the table name independently of the naming strategy.
func (Seller) TableName() string { return "sellers" }

// CreateSellerRequest is the full payload for inserting a seller.
type CreateSellerRequest struct {
	SellerID            string `json:"seller_id" csv:"seller_id" validate:"required,max=32"`
	SellerZipCodePrefix string `json:"seller_zip_code_prefix" csv:"seller_zip_code_prefix" validate:"required,max=10"`
	SellerCity          string `json:"seller_city" csv:"seller_city" validate:"required,max=100"`
	SellerState         string `json:"seller_state" csv:"seller_state" validate:"required,len=2"`
}

// Model converts the request into the entity to persist.
func (r CreateSellerRequest) Model() *Seller {
	return &Seller{
		SellerID:            r.SellerID,
		SellerZipCodePrefix: r.SellerZipCodePrefix,
		SellerCity:          r.SellerCity,
		SellerState:         r.SellerState,
	}
}

// SellerRepository defines the data access interface for sellers.
type SellerRepository interface {
	Create(ctx context.Context, seller *Seller) error
	FindByID(ctx context.Context, id string) (*Seller, error)
	FindAll(ctx context.Context, filter SellerFilter, page PaginationParams) ([]Seller, int64, error)
}

// SellerService defines the business logic interface for sellers.
type SellerService interface {
	CreateSeller(ctx context.Context, req CreateSellerRequest) (*Seller, error)
	GetSeller(ctx context.Context, id string) (*Seller, error)
	ListSellers(ctx context.Context, query LocationSearchQuery) (*PaginatedResponse[Seller], error)
}
