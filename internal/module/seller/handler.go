package seller

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// SellerHandler handles REST API requests for the seller resource.
type SellerHandler struct {
	svc domain.SellerService
}

// NewSellerHandler creates a new SellerHandler with the given service.
func NewSellerHandler(svc domain.SellerService) *SellerHandler {
	return &SellerHandler{svc: svc}
}

// Create handles POST /api/v1/sellers.
func (h *SellerHandler) Create(c *gin.Context) {
	var req domain.CreateSellerRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	seller, err := h.svc.CreateSeller(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, seller)
}

// Get handles GET /api/v1/sellers/:id.
func (h *SellerHandler) Get(c *gin.Context) {
	seller, err := h.svc.GetSeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, seller)
}

// List handles GET /api/v1/sellers.
func (h *SellerHandler) List(c *gin.Context) {
	query := domain.LocationSearchQuery{
		PaginationParams: pkg.ParsePagination(c),
		City:             pkg.OptionalQuery(c, "city"),
		State:            pkg.OptionalQuery(c, "state"),
	}

	result, err := h.svc.ListSellers(c.Request.Context(), query)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
