package seller

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// sellerRepository implements domain.SellerRepository using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new SellerRepository backed by the given GORM database.
func NewSellerRepository(db *gorm.DB) domain.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

// FindByID returns nil, nil when no seller has the given id.
func (r *sellerRepository) FindByID(ctx context.Context, id string) (*domain.Seller, error) {
	var seller domain.Seller
	err := r.db.WithContext(ctx).Where("seller_id = ?", id).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindAll returns one page of sellers ordered by id, plus the filtered total.
func (r *sellerRepository) FindAll(ctx context.Context, filter domain.SellerFilter, page domain.PaginationParams) ([]domain.Seller, int64, error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Seller{}).Scopes(
			pkg.Equal("seller_city", filter.City),
			pkg.Equal("seller_state", filter.State),
		)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sellers []domain.Seller
	if err := query().Order("seller_id").Scopes(pkg.Paginate(page)).Find(&sellers).Error; err != nil {
		return nil, 0, err
	}
	return sellers, total, nil
}
