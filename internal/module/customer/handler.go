package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// CustomerHandler handles REST API requests for the customer resource.
type CustomerHandler struct {
	svc domain.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler with the given service.
func NewCustomerHandler(svc domain.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create handles POST /api/v1/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req domain.CreateCustomerRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	customer, err := h.svc.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Created(c, customer)
}

// Get handles GET /api/v1/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, customer)
}

// List handles GET /api/v1/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	query := domain.LocationSearchQuery{
		PaginationParams: pkg.ParsePagination(c),
		City:             pkg.OptionalQuery(c, "city"),
		State:            pkg.OptionalQuery(c, "state"),
	}

	result, err := h.svc.ListCustomers(c.Request.Context(), query)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req domain.UpdateCustomerRequest
	if !pkg.BindJSON(c, &req) {
		return
	}

	customer, err := h.svc.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
