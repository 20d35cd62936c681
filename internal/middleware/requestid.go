package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	defaultRequestIDHeader = "X-Request-ID"
	requestIDContextKey    = "request_id"
	requestIDBytes         = 16
)

var (
	requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)
	requestIDSeq     atomic.Uint64
)

// RequestIDConfig controls request-id assignment.
type RequestIDConfig struct {
	// TrustUpstream reuses a well-formed incoming ID instead of minting one.
	TrustUpstream bool
	// Header is read and echoed; empty means X-Request-ID.
	Header string
}

// RequestID assigns a fresh ID to every request and never trusts the client.
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig tags each request with an ID. The ID is stored in the
// gin context, echoed in the response header, and attached to the request
// context so every slog call made while serving the request carries it.
func RequestIDWithConfig(cfg RequestIDConfig) gin.HandlerFunc {
	header := cfg.Header
	if header == "" {
		header = defaultRequestIDHeader
	}

	return func(c *gin.Context) {
		id := resolveRequestID(cfg.TrustUpstream, c.GetHeader(header))

		c.Set(requestIDContextKey, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(
			logger.WithContextAttrs(c.Request.Context(), slog.String("request_id", id)),
		)

		c.Next()
	}
}

func resolveRequestID(trustUpstream bool, upstream string) string {
	if trustUpstream && requestIDPattern.MatchString(upstream) {
		return upstream
	}
	return newRequestID()
}

// GetRequestID returns the ID assigned by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(requestIDContextKey)
	s, _ := id.(string)
	return s
}

// newRequestID returns 32 hex chars. If the system RNG fails it falls back
// to clock plus sequence, which is unique per process.
func newRequestID() string {
	b := make([]byte, requestIDBytes)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], requestIDSeq.Add(1))
	}
	return hex.EncodeToString(b)
}
