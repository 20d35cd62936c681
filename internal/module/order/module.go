package order

import "github.com/gin-gonic/gin"

// OrderModule implements the app.Module interface for orders.
type OrderModule struct {
	handler *OrderHandler
}

// NewModule creates a new OrderModule. Panics if h is nil.
func NewModule(h *OrderHandler) *OrderModule {
	if h == nil {
		panic("order.NewModule: handler must not be nil")
	}
	return &OrderModule{handler: h}
}

// RegisterRoutes registers order API routes, including the customer's
// order listing.
func (m *OrderModule) RegisterRoutes(api *gin.RouterGroup) {
	orders := api.Group("/orders")
	orders.POST("", m.handler.Create)
	orders.GET("", m.handler.List)
	orders.GET("/:id", m.handler.Get)
	orders.POST("/:id/add-item", m.handler.AddItem)
	orders.GET("/:id/products", m.handler.Products)
	orders.GET("/:id/payments", m.handler.Payments)
	orders.GET("/:id/reviews", m.handler.Reviews)

	api.GET("/customers/:id/orders", m.handler.ListByCustomer)
}
