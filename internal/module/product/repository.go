package product

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// productRepository implements domain.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository backed by the given GORM database.
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID retrieves a product by id. It returns nil, nil when no row matches.
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("product_id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns one page of products, newest id first, along with the
// number of products matching filter.
func (r *productRepository) FindAll(ctx context.Context, filter domain.ProductFilter, page domain.PaginationParams) ([]domain.Product, int64, error) {
	category := pkg.Equal("product_category_name", filter.CategoryName)

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Scopes(category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := r.db.WithContext(ctx).
		Scopes(category, pkg.Paginate(page)).
		Order("product_id DESC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
