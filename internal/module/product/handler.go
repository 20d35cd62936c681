package product

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// ProductHandler handles REST API requests for the product resource.
type ProductHandler struct {
	svc domain.ProductService
}

// NewProductHandler creates a new ProductHandler with the given service.
func NewProductHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req domain.CreateProductRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, product)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, product)
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	query := domain.ProductSearchQuery{
		PaginationParams: pkg.ParsePagination(c),
		CategoryName:     pkg.OptionalQuery(c, "category"),
	}

	result, err := h.svc.ListProducts(c.Request.Context(), query)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
