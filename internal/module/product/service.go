package product

import (
	"context"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// productService implements domain.ProductService.
type productService struct {
	repo domain.ProductRepository
}

// NewProductService creates a new ProductService with the given repository.
func NewProductService(repo domain.ProductRepository) domain.ProductService {
	return &productService{repo: repo}
}

// CreateProduct validates req and persists the new product.
func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	product := req.Model()
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkg.CreateError("Product", err)
	}
	return product, nil
}

// GetProduct retrieves a product by id.
func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts returns a page of products, optionally narrowed by category.
func (s *productService) ListProducts(ctx context.Context, query domain.ProductSearchQuery) (*domain.PaginatedResponse[domain.Product], error) {
	page := query.Pagination()
	products, total, err := s.repo.FindAll(ctx, query.Filter(), page)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	return domain.NewPaginatedResponse(products, total, page.Normalize()), nil
}
