package order

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// OrderHandler handles REST API requests for orders and their related rows.
type OrderHandler struct {
	svc domain.OrderService
}

// NewOrderHandler creates a new OrderHandler with the given service.
func NewOrderHandler(svc domain.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req domain.CreateOrderRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, order)
}

// AddItem handles POST /api/v1/orders/:id/add-item.
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req domain.AddOrderItemRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, item)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, order)
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	query := domain.OrderSearchQuery{
		PaginationParams: pkg.ParsePagination(c),
		Status:           pkg.OptionalQuery(c, "status"),
	}

	result, err := h.svc.ListOrders(c.Request.Context(), query)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// ListByCustomer handles GET /api/v1/customers/:id/orders.
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	result, err := h.svc.ListCustomerOrders(c.Request.Context(), c.Param("id"), pkg.ParsePagination(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Products handles GET /api/v1/orders/:id/products.
func (h *OrderHandler) Products(c *gin.Context) {
	result, err := h.svc.GetOrderProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, result)
}

// Payments handles GET /api/v1/orders/:id/payments.
func (h *OrderHandler) Payments(c *gin.Context) {
	payments, err := h.svc.GetOrderPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, payments)
}

// Reviews handles GET /api/v1/orders/:id/reviews.
func (h *OrderHandler) Reviews(c *gin.Context) {
	reviews, err := h.svc.GetOrderReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, reviews)
}
