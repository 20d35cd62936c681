package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/pkg"
)

// mockService records the arguments it receives and returns canned results.
type mockService struct {
	customer  *domain.Customer
	err       error
	lastQuery domain.LocationSearchQuery
	lastID    string
	lastPatch domain.UpdateCustomerRequest
}

func (m *mockService) CreateCustomer(_ context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return req.Model(), nil
}

func (m *mockService) GetCustomer(_ context.Context, id string) (*domain.Customer, error) {
	m.lastID = id
	return m.customer, m.err
}

func (m *mockService) ListCustomers(_ context.Context, q domain.LocationSearchQuery) (*domain.PaginatedResponse[domain.Customer], error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	var items []domain.Customer
	if m.customer != nil {
		items = append(items, *m.customer)
	}
	return domain.NewPaginatedResponse(items, int64(len(items)), q.Pagination().Normalize()), nil
}

func (m *mockService) UpdateCustomer(_ context.Context, id string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	m.lastID = id
	m.lastPatch = req
	return m.customer, m.err
}

func (m *mockService) DeleteCustomer(_ context.Context, id string) error {
	m.lastID = id
	return m.err
}

// setupAPIRouter creates a gin engine with the customer routes for handler testing.
func setupAPIRouter(svc domain.CustomerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(NewCustomerHandler(svc)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerHandler_Create(t *testing.T) {
	r := setupAPIRouter(&mockService{})

	body := `{"customer_id":"c1","customer_unique_id":"u1","customer_zip_code_prefix":"14409","customer_city":"franca","customer_state":"SP"}`
	w := doRequest(r, http.MethodPost, "/api/v1/customers", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	data, _ := resp.Data.(map[string]any)
	if data["customer_id"] != "c1" || data["customer_state"] != "SP" {
		t.Errorf("data = %v", resp.Data)
	}
}

func TestCustomerHandler_Create_MalformedBody(t *testing.T) {
	r := setupAPIRouter(&mockService{})

	w := doRequest(r, http.MethodPost, "/api/v1/customers", `{"customer_id":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCustomerHandler_Create_ValidationError(t *testing.T) {
	svc := &mockService{err: domain.ValidationError(map[string]string{"customer_id": "required"}, nil)}
	r := setupAPIRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/v1/customers", `{"customer_city":"franca"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	var resp pkg.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if _, ok := resp.Errors["customer_id"]; !ok {
		t.Errorf("expected customer_id in errors map, got %v", resp.Errors)
	}
}

func TestCustomerHandler_Create_Conflict(t *testing.T) {
	r := setupAPIRouter(&mockService{err: domain.AlreadyExists("Customer", nil)})

	w := doRequest(r, http.MethodPost, "/api/v1/customers", `{"customer_id":"c1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestCustomerHandler_Get(t *testing.T) {
	svc := &mockService{customer: &domain.Customer{CustomerID: "abc123", CustomerCity: "franca"}}
	r := setupAPIRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/customers/abc123", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.lastID != "abc123" {
		t.Errorf("service received id %q", svc.lastID)
	}
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	r := setupAPIRouter(&mockService{err: domain.ErrNotFound})

	w := doRequest(r, http.MethodGet, "/api/v1/customers/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCustomerHandler_List_QueryParams(t *testing.T) {
	svc := &mockService{customer: &domain.Customer{CustomerID: "c1"}}
	r := setupAPIRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/customers?page=2&page_size=5&state=SP", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	q := svc.lastQuery
	if q.Page != 2 || q.PageSize != 5 {
		t.Errorf("paging = %+v", q.PaginationParams)
	}
	if q.State == nil || *q.State != "SP" {
		t.Errorf("state = %v; want SP", q.State)
	}
	if q.City != nil {
		t.Errorf("city = %q; want nil", *q.City)
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected Data to be a map, got %T", resp.Data)
	}
	if page, _ := data["page"].(float64); int(page) != 2 {
		t.Errorf("expected page=2, got %v", data["page"])
	}
	if size, _ := data["page_size"].(float64); int(size) != 5 {
		t.Errorf("expected page_size=5, got %v", data["page_size"])
	}
}

func TestCustomerHandler_List_ServiceError(t *testing.T) {
	r := setupAPIRouter(&mockService{err: domain.DatabaseError(nil)})

	w := doRequest(r, http.MethodGet, "/api/v1/customers", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

func TestCustomerHandler_Update(t *testing.T) {
	svc := &mockService{customer: &domain.Customer{CustomerID: "c1", CustomerCity: "campinas"}}
	r := setupAPIRouter(svc)

	w := doRequest(r, http.MethodPut, "/api/v1/customers/c1", `{"customer_city":"campinas"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.lastPatch.CustomerCity == nil || *svc.lastPatch.CustomerCity != "campinas" {
		t.Errorf("patch city = %v", svc.lastPatch.CustomerCity)
	}
	if svc.lastPatch.CustomerState != nil {
		t.Error("absent field decoded as present")
	}
}

func TestCustomerHandler_Update_NoChanges(t *testing.T) {
	r := setupAPIRouter(&mockService{err: domain.ErrNoChangesToUpdate})

	w := doRequest(r, http.MethodPut, "/api/v1/customers/c1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Message != "no valid fields provided for update" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCustomerHandler_Delete(t *testing.T) {
	svc := &mockService{}
	r := setupAPIRouter(svc)

	w := doRequest(r, http.MethodDelete, "/api/v1/customers/c1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestCustomerHandler_Delete_NotFound(t *testing.T) {
	r := setupAPIRouter(&mockService{err: domain.ErrNotFound})

	w := doRequest(r, http.MethodDelete, "/api/v1/customers/c1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
