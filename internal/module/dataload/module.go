package dataload

import "github.com/gin-gonic/gin"

// LoadModule implements the app.Module interface for data loading.
type LoadModule struct {
	handler *LoadHandler
}

// NewModule creates a new LoadModule. Panics if h is nil.
func NewModule(h *LoadHandler) *LoadModule {
	if h == nil {
		panic("dataload.NewModule: handler must not be nil")
	}
	return &LoadModule{handler: h}
}

// RegisterRoutes registers the data load route.
func (m *LoadModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/load-data", m.handler.Load)
}
