package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clickup-task-bot/internal/middleware"
	"clickup-task-bot/pkg/log"
)

func newEngine(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop())
	r := gin.New()
	r.Use(mw.RequestID(), mw.AccessLog())
	r.GET("/", func(c *gin.Context) {
		*seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	w := httptest.NewRecorder()
	newEngine(&seen).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a request id on the context")
	}
	if got := w.Header().Get(middleware.RequestIDHeader); got != seen {
		t.Errorf("header = %q, context = %q", got, seen)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	newEngine(&seen).ServeHTTP(httptest.NewRecorder(), req)

	if seen != "abc-123" {
		t.Errorf("request id = %q, want abc-123", seen)
	}
}
