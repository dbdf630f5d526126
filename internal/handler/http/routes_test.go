package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekalin/fintrack/internal/service"
)

func TestHealth(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	rec := doRequest(t, handler, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API is running", rec.Body.String())
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	rec := doRequest(t, handler, http.MethodGet, "/health", "", false)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_TraceIDPropagated(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	req, rec := newRequestWithHeader(http.MethodGet, "/health", "X-Trace-ID", "trace-123")
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_ProtectedEndpointsRequireAuth(t *testing.T) {
	handler := newTestHandler(t, &service.Services{})

	protected := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/updateUsername"},
		{http.MethodPost, "/api/updatePassword"},
		{http.MethodPost, "/api/create_link_token"},
		{http.MethodPost, "/api/exchange_token"},
		{http.MethodGet, "/api/transactions"},
	}

	for _, route := range protected {
		t.Run(route.target, func(t *testing.T) {
			rec := doRequest(t, handler, route.method, route.target, "", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
