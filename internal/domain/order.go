package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase placed by a customer.
type Order struct {
	OrderID                    string     `gorm:"primaryKey;size:32" json:"order_id"`
	CustomerID                 string     `gorm:"size:32;not null;index" json:"customer_id"`
	OrderStatus                string     `gorm:"size:20;not null;index" json:"order_status"`
	OrderPurchaseTimestamp     time.Time  `gorm:"not null;index" json:"order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate time.Time  `gorm:"not null" json:"order_estimated_delivery_date"`
}

// TableName pins the table name independently of the naming strategy.
func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order. Items are added after the order exists.
type OrderItem struct {
	OrderID           string          `gorm:"primaryKey;size:32" json:"order_id"`
	OrderItemID       int             `gorm:"primaryKey;autoIncrement:false" json:"order_item_id"`
	ProductID         string          `gorm:"size:32;not null;index" json:"product_id"`
	SellerID          string          `gorm:"size:32;not null;index" json:"seller_id"`
	ShippingLimitDate time.Time       `gorm:"not null" json:"shipping_limit_date"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	FreightValue      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"freight_value"`
}

// TableName pins the table name independently of the naming strategy.
func (OrderItem) TableName() string { return "order_items" }

// Payment is a read-only payment record joined from the order's perspective.
type Payment struct {
	OrderID             string          `gorm:"primaryKey;size:32" json:"order_id"`
	PaymentSequential   int             `gorm:"primaryKey;autoIncrement:false" json:"payment_sequential"`
	PaymentType         string          `gorm:"size:20;not null" json:"payment_type"`
	PaymentInstallments int             `gorm:"not null" json:"payment_installments"`
	PaymentValue        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"payment_value"`
}

// TableName pins the table name independently of the naming strategy.
func (Payment) TableName() string { return "payments" }

// Review is a read-only customer review of an order.
type Review struct {
	ReviewID              string    `gorm:"primaryKey;size:32" json:"review_id"`
	OrderID               string    `gorm:"primaryKey;size:32" json:"order_id"`
	ReviewScore           int       `gorm:"not null" json:"review_score"`
	ReviewCommentTitle    *string   `json:"review_comment_title"`
	ReviewCommentMessage  *string   `gorm:"type:text" json:"review_comment_message"`
	ReviewCreationDate    time.Time `gorm:"not null" json:"review_creation_date"`
	ReviewAnswerTimestamp time.Time `gorm:"not null" json:"review_answer_timestamp"`
}

// TableName pins the table name independently of the naming strategy.
func (Review) TableName() string { return "reviews" }

// OrderProduct is a product row joined with the order item that references it.
type OrderProduct struct {
	ProductID                string          `json:"product_id"`
	ProductCategoryName      *string         `json:"product_category_name"`
	ProductNameLength        *int            `json:"product_name_length"`
	ProductDescriptionLength *int            `json:"product_description_length"`
	ProductPhotosQty         *int            `json:"product_photos_qty"`
	ProductWeightG           *int            `json:"product_weight_g"`
	ProductLengthCm          *int            `json:"product_length_cm"`
	ProductHeightCm          *int            `json:"product_height_cm"`
	ProductWidthCm           *int            `json:"product_width_cm"`
	ShippingLimitDate        time.Time       `json:"shipping_limit_date"`
	Price                    decimal.Decimal `json:"price"`
	FreightValue             decimal.Decimal `json:"freight_value"`
}

// OrderProducts lists the products of an order with the exact sum of
// price and freight across all rows.
type OrderProducts struct {
	Products   []OrderProduct  `json:"products"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// CreateOrderRequest is the full payload for inserting an order.
type CreateOrderRequest struct {
	OrderID                    string     `json:"order_id" csv:"order_id" validate:"required,max=32"`
	CustomerID                 string     `json:"customer_id" csv:"customer_id" validate:"required,max=32"`
	OrderStatus                string     `json:"order_status" csv:"order_status" validate:"required,oneof=created approved invoiced processing shipped delivered unavailable canceled"`
	OrderPurchaseTimestamp     time.Time  `json:"order_purchase_timestamp" csv:"order_purchase_timestamp" validate:"required"`
	OrderApprovedAt            *time.Time `json:"order_approved_at" csv:"order_approved_at"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date" csv:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date" csv:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate time.Time  `json:"order_estimated_delivery_date" csv:"order_estimated_delivery_date" validate:"required"`
}

// Model converts the request into the entity to persist.
func (r CreateOrderRequest) Model() *Order {
	return &Order{
		OrderID:                    r.OrderID,
		CustomerID:                 r.CustomerID,
		OrderStatus:                r.OrderStatus,
		OrderPurchaseTimestamp:     r.OrderPurchaseTimestamp,
		OrderApprovedAt:            r.OrderApprovedAt,
		OrderDeliveredCarrierDate:  r.OrderDeliveredCarrierDate,
		OrderDeliveredCustomerDate: r.OrderDeliveredCustomerDate,
		OrderEstimatedDeliveryDate: r.OrderEstimatedDeliveryDate,
	}
}

// AddOrderItemRequest is the payload for appending an item to an order.
// The order id comes from the path, or from the order_id column when ingested.
type AddOrderItemRequest struct {
	OrderItemID       int             `json:"order_item_id" csv:"order_item_id" validate:"required,gte=1"`
	ProductID         string          `json:"product_id" csv:"product_id" validate:"required,max=32"`
	SellerID          string          `json:"seller_id" csv:"seller_id" validate:"required,max=32"`
	ShippingLimitDate time.Time       `json:"shipping_limit_date" csv:"shipping_limit_date" validate:"required"`
	Price             decimal.Decimal `json:"price" csv:"price" validate:"gte=0"`
	FreightValue      decimal.Decimal `json:"freight_value" csv:"freight_value" validate:"gte=0"`
}

// Model converts the request into the item to persist under orderID.
func (r AddOrderItemRequest) Model(orderID string) *OrderItem {
	return &OrderItem{
		OrderID:           orderID,
		OrderItemID:       r.OrderItemID,
		ProductID:         r.ProductID,
		SellerID:          r.SellerID,
		ShippingLimitDate: r.ShippingLimitDate,
		Price:             r.Price,
		FreightValue:      r.FreightValue,
	}
}

// OrderItemRecord is an order item as it appears in the items dataset,
// carrying its own order id.
type OrderItemRecord struct {
	OrderID string `csv:"order_id"`
	AddOrderItemRequest
}

// OrderFilter narrows orders by exact status.
type OrderFilter struct {
	Status *string
}

// OrderSearchQuery is the list query accepted by the order endpoint.
type OrderSearchQuery struct {
	PaginationParams
	Status *string
}

// Pagination projects the paging part of the query.
func (q OrderSearchQuery) Pagination() PaginationParams { return q.PaginationParams }

// Filter projects the predicate part of the query.
func (q OrderSearchQuery) Filter() OrderFilter {
	return OrderFilter{Status: q.Status}
}

// OrderRepository defines the data access interface for orders and the
// rows that hang off them.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	AddItem(ctx context.Context, item *OrderItem) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter, page PaginationParams) ([]Order, int64, error)
	FindByCustomerID(ctx context.Context, customerID string, page PaginationParams) ([]Order, int64, error)
	FindProductsByOrderID(ctx context.Context, orderID string) ([]OrderProduct, error)
	FindPaymentsByOrderID(ctx context.Context, orderID string) ([]Payment, error)
	FindReviewsByOrderID(ctx context.Context, orderID string) ([]Review, error)
}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	AddItem(ctx context.Context, orderID string, req AddOrderItemRequest) (*OrderItem, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrders(ctx context.Context, query OrderSearchQuery) (*PaginatedResponse[Order], error)
	ListCustomerOrders(ctx context.Context, customerID string, page PaginationParams) (*PaginatedResponse[Order], error)
	GetOrderProducts(ctx context.Context, orderID string) (*OrderProducts, error)
	GetOrderPayments(ctx context.Context, orderID string) ([]Payment, error)
	GetOrderReviews(ctx context.Context, orderID string) ([]Review, error)
}

// Models lists every persisted entity, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{
		&Customer{}, &Seller{}, &Product{}, &Order{},
		&OrderItem{}, &Payment{}, &Review{},
	}
}
