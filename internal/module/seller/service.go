package seller

import (
	"context"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

type sellerService struct {
	repo domain.SellerRepository
}

// NewSellerService creates a new SellerService with the given repository.
func NewSellerService(repo domain.SellerRepository) domain.SellerService {
	return &sellerService{repo: repo}
}

func (s *sellerService) CreateSeller(ctx context.Context, req domain.CreateSellerRequest) (*domain.Seller, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	seller := req.Model()
	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, pkg.CreateError("Seller", err)
	}
	return seller, nil
}

func (s *sellerService) GetSeller(ctx context.Context, id string) (*domain.Seller, error) {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	return seller, nil
}

func (s *sellerService) ListSellers(ctx context.Context, query domain.LocationSearchQuery) (*domain.PaginatedResponse[domain.Seller], error) {
	page := query.Pagination()
	sellers, total, err := s.repo.FindAll(ctx, query.Filter(), page)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	return domain.NewPaginatedResponse(sellers, total, page.Normalize()), nil
}
