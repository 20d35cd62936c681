package order

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// newestFirst orders by purchase time with the id as tie-breaker so pages are stable.
const newestFirst = "order_purchase_timestamp DESC, order_id"

// orderProductColumns projects a product row joined with its order item.
const orderProductColumns = `p.product_id, p.product_category_name,
	p.product_name_length, p.product_description_length, p.product_photos_qty,
	p.product_weight_g, p.product_length_cm, p.product_height_cm, p.product_width_cm,
	oi.shipping_limit_date, oi.price, oi.freight_value`

// orderRepository implements domain.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository backed by the given GORM database.
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts a new order.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// AddItem inserts an order item. The (order_id, order_item_id) pair is unique.
func (r *orderRepository) AddItem(ctx context.Context, item *domain.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID retrieves an order by id. It returns nil, nil when no row matches.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll returns one page of orders matching filter, newest first.
func (r *orderRepository) FindAll(ctx context.Context, filter domain.OrderFilter, page domain.PaginationParams) ([]domain.Order, int64, error) {
	return r.page(ctx, page, pkg.Equal("order_status", filter.Status))
}

// FindByCustomerID returns one page of the customer's orders, newest first.
func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID string, page domain.PaginationParams) ([]domain.Order, int64, error) {
	return r.page(ctx, page, pkg.Equal("customer_id", &customerID))
}

func (r *orderRepository) page(ctx context.Context, page domain.PaginationParams, where func(*gorm.DB) *gorm.DB) ([]domain.Order, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Scopes(where, pkg.Paginate(page)).
		Order(newestFirst).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindProductsByOrderID joins the order's items with their products.
// An unknown order yields an empty list.
func (r *orderRepository) FindProductsByOrderID(ctx context.Context, orderID string) ([]domain.OrderProduct, error) {
	var rows []domain.OrderProduct
	err := r.db.WithContext(ctx).
		Table("products AS p").
		Select(orderProductColumns).
		Joins("INNER JOIN order_items AS oi ON p.product_id = oi.product_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.order_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindPaymentsByOrderID lists the order's payments in sequence order.
func (r *orderRepository) FindPaymentsByOrderID(ctx context.Context, orderID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("payment_sequential").
		Find(&payments).Error
	return payments, err
}

// FindReviewsByOrderID lists the order's reviews, oldest first.
func (r *orderRepository) FindReviewsByOrderID(ctx context.Context, orderID string) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("review_creation_date, review_id").
		Find(&reviews).Error
	return reviews, err
}
