package domain

import "context"

// Product is a catalog entry. All descriptive attributes are optional
// because the source dataset leaves many of them blank.
type Product struct {
	ProductID                string  `gorm:"primaryKey;size:32" json:"product_id"`
	ProductCategoryName      *string `gorm:"size:100;index" json:"product_category_name"`
	ProductNameLength        *int    `json:"product_name_length"`
	ProductDescriptionLength *int    `json:"product_description_length"`
	ProductPhotosQty         *int    `json:"product_photos_qty"`
	ProductWeightG           *int    `json:"product_weight_g"`
	ProductLengthCm          *int    `json:"product_length_cm"`
	ProductHeightCm          *int    `json:"product_height_cm"`
	ProductWidthCm           *int    `json:"product_width_cm"`
}

// TableName pins the table name independently of the naming strategy.
func (Product) TableName() string { return "products" }

// CreateProductRequest is the full payload for inserting a product.
type CreateProductRequest struct {
	ProductID                string  `json:"product_id" csv:"product_id" validate:"required,max=32"`
	ProductCategoryName      *string `json:"product_category_name" csv:"product_category_name" validate:"omitempty,max=100"`
	ProductNameLength        *int    `json:"product_name_length" csv:"product_name_lenght" validate:"omitempty,gte=0"`
	ProductDescriptionLength *int    `json:"product_description_length" csv:"product_description_lenght" validate:"omitempty,gte=0"`
	ProductPhotosQty         *int    `json:"product_photos_qty" csv:"product_photos_qty" validate:"omitempty,gte=0"`
	ProductWeightG           *int    `json:"product_weight_g" csv:"product_weight_g" validate:"omitempty,gte=0"`
	ProductLengthCm          *int    `json:"product_length_cm" csv:"product_length_cm" validate:"omitempty,gte=0"`
	ProductHeightCm          *int    `json:"product_height_cm" csv:"product_height_cm" validate:"omitempty,gte=0"`
	ProductWidthCm           *int    `json:"product_width_cm" csv:"product_width_cm" validate:"omitempty,gte=0"`
}

// Model converts the request into the entity to persist.
func (r CreateProductRequest) Model() *Product {
	return &Product{
		ProductID:                r.ProductID,
		ProductCategoryName:      r.ProductCategoryName,
		ProductNameLength:        r.ProductNameLength,
		ProductDescriptionLength: r.ProductDescriptionLength,
		ProductPhotosQty:         r.ProductPhotosQty,
		ProductWeightG:           r.ProductWeightG,
		ProductLengthCm:          r.ProductLengthCm,
		ProductHeightCm:          r.ProductHeightCm,
		ProductWidthCm:           r.ProductWidthCm,
	}
}

// ProductFilter narrows products by exact category name.
type ProductFilter struct {
	CategoryName *string
}

// ProductSearchQuery is the list query accepted by the product endpoint.
type ProductSearchQuery struct {
	PaginationParams
	CategoryName *string
}

// Pagination projects the paging part of the query.
func (q ProductSearchQuery) Pagination() PaginationParams { return q.PaginationParams }

// Filter projects the predicate part of the query.
func (q ProductSearchQuery) Filter() ProductFilter {
	return ProductFilter{CategoryName: q.CategoryName}
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter, page PaginationParams) ([]Product, int64, error)
}

// ProductService defines the business logic interface for products.
type ProductService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, query ProductSearchQuery) (*PaginatedResponse[Product], error)
}
