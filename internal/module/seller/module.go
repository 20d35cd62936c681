package seller

import "github.com/gin-gonic/gin"

// SellerModule implements the app.Module interface for the seller domain.
type SellerModule struct {
	handler *SellerHandler
}

// NewModule creates a new SellerModule. Panics if h is nil.
func NewModule(h *SellerHandler) *SellerModule {
	if h == nil {
		panic("seller.NewModule: handler must not be nil")
	}
	return &SellerModule{handler: h}
}

// RegisterRoutes registers seller API routes.
func (m *SellerModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/sellers", m.handler.Create)
	api.GET("/sellers", m.handler.List)
	api.GET("/sellers/:id", m.handler.Get)
}
