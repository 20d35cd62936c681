package dataload

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/storefront/internal/ingest"
	"github.com/simp-lee/storefront/internal/pkg"
)

// Runner runs one full ingestion pass.
type Runner interface {
	Run(ctx context.Context) (ingest.Result, error)
}

// LoadResponse reports the tally of a load run.
type LoadResponse struct {
	Message string `json:"message"`
	ingest.Result
}

// LoadHandler triggers bulk ingestion over HTTP.
type LoadHandler struct {
	runner Runner
}

// NewLoadHandler creates a new LoadHandler with the given runner.
func NewLoadHandler(runner Runner) *LoadHandler {
	return &LoadHandler{runner: runner}
}

// Load handles POST /api/v1/load-data. The run is synchronous; per-record
// failures only show up in error_count. A client that disconnects does not
// stop the run: it continues detached from the request's cancellation while
// keeping its request_id log attributes.
func (h *LoadHandler) Load(c *gin.Context) {
	res, err := h.runner.Run(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, LoadResponse{Message: "Data load processed", Result: res})
}
