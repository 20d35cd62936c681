package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// orderService implements domain.OrderService.
type orderService struct {
	repo domain.OrderRepository
}

// NewOrderService creates a new OrderService with the given repository.
func NewOrderService(repo domain.OrderRepository) domain.OrderService {
	return &orderService{repo: repo}
}

// CreateOrder validates req and persists the new order.
func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	order := req.Model()
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkg.CreateError("Order", err)
	}
	return order, nil
}

// AddItem appends an item to an existing order.
func (s *orderService) AddItem(ctx context.Context, orderID string, req domain.AddOrderItemRequest) (*domain.OrderItem, error) {
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	item := req.Model(orderID)
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, pkg.CreateError("Order item", err)
	}
	return item, nil
}

// GetOrder retrieves an order by id.
func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListOrders returns a page of orders, optionally narrowed by status.
func (s *orderService) ListOrders(ctx context.Context, query domain.OrderSearchQuery) (*domain.PaginatedResponse[domain.Order], error) {
	page := query.Pagination()
	orders, total, err := s.repo.FindAll(ctx, query.Filter(), page)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	return domain.NewPaginatedResponse(orders, total, page.Normalize()), nil
}

// ListCustomerOrders returns a page of one customer's orders. An unknown
// customer yields an empty page.
func (s *orderService) ListCustomerOrders(ctx context.Context, customerID string, page domain.PaginationParams) (*domain.PaginatedResponse[domain.Order], error) {
	orders, total, err := s.repo.FindByCustomerID(ctx, customerID, page)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	return domain.NewPaginatedResponse(orders, total, page.Normalize()), nil
}

// GetOrderProducts lists the order's products with the exact sum of
// price and freight over every row.
func (s *orderService) GetOrderProducts(ctx context.Context, orderID string) (*domain.OrderProducts, error) {
	rows, err := s.repo.FindProductsByOrderID(ctx, orderID)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}

	total := decimal.Zero
	for _, p := range rows {
		total = total.Add(p.Price).Add(p.FreightValue)
	}
	if rows == nil {
		rows = []domain.OrderProduct{}
	}
	return &domain.OrderProducts{Products: rows, TotalValue: total}, nil
}

// GetOrderPayments lists the order's payments.
func (s *orderService) GetOrderPayments(ctx context.Context, orderID string) ([]domain.Payment, error) {
	payments, err := s.repo.FindPaymentsByOrderID(ctx, orderID)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

// GetOrderReviews lists the order's reviews.
func (s *orderService) GetOrderReviews(ctx context.Context, orderID string) ([]domain.Review, error) {
	reviews, err := s.repo.FindReviewsByOrderID(ctx, orderID)
	if err != nil {
		return nil, domain.DatabaseError(err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
