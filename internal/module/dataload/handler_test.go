package dataload

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/domain"
	"github.com/simp-lee/storefront/internal/ingest"
)

type stubRunner struct {
	res    ingest.Result
	err    error
	calls  int
	ctxErr error
}

func (s *stubRunner) Run(ctx context.Context) (ingest.Result, error) {
	s.calls++
	s.ctxErr = ctx.Err()
	return s.res, s.err
}

func setupRouter(runner Runner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(NewLoadHandler(runner)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestLoad_ReportsTally(t *testing.T) {
	runner := &stubRunner{res: ingest.Result{Success: 3, Errors: 2}}
	r := setupRouter(runner)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/load-data", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusOK)
	}
	if runner.calls != 1 {
		t.Errorf("Run calls = %d; want 1", runner.calls)
	}

	var body struct {
		Code int `json:"code"`
		Data struct {
			Message      string `json:"message"`
			SuccessCount int    `json:"success_count"`
			ErrorCount   int    `json:"error_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Message != "Data load processed" {
		t.Errorf("message = %q", body.Data.Message)
	}
	if body.Data.SuccessCount != 3 || body.Data.ErrorCount != 2 {
		t.Errorf("tally = %d/%d; want 3/2", body.Data.SuccessCount, body.Data.ErrorCount)
	}
}

func TestLoad_ClientDisconnectDoesNotCancelRun(t *testing.T) {
	runner := &stubRunner{res: ingest.Result{Success: 5}}
	r := setupRouter(runner)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/load-data", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if runner.ctxErr != nil {
		t.Errorf("run context error = %v; want nil", runner.ctxErr)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d; want %d", w.Code, http.StatusOK)
	}
}

func TestLoad_ConfigErrorIsServerError(t *testing.T) {
	runner := &stubRunner{err: domain.ConfigError(errors.New("open data/customers.csv: no such file"))}
	r := setupRouter(runner)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/load-data", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", w.Code, http.StatusInternalServerError)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "configuration error" {
		t.Errorf("message = %q; want %q", body.Message, "configuration error")
	}
}

func TestLoad_OnlyPost(t *testing.T) {
	r := setupRouter(&stubRunner{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/load-data", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("GET status = %d; want %d", w.Code, http.StatusNotFound)
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil)
}
