package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"method and path", "GET /admin/{token}/{eventID}", "/admin/{token}/{eventID}"},
		{"path only", "/swagger/", "/swagger/"},
		{"no match", "", "unmatched"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Pattern = tt.pattern
			assert.Equal(t, tt.want, RouteLabel(r))
		})
	}
}

func TestHTTPMiddleware_LabelsByPattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/{token}/{eventID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	handler := HTTPMiddleware(mux)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/admin/{token}/{eventID}", "401"))
	req := httptest.NewRequest(http.MethodGet, "/admin/s3cret/1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/admin/{token}/{eventID}", "401"))

	require.Equal(t, before+1, after)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), "s3cret"))
}
