package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventregistration/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdminToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name       string
		configured string
		path       string
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "matching token calls next",
			configured: "s3cret",
			path:       "/admin/s3cret/1",
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "wrong token",
			configured: "s3cret",
			path:       "/admin/guess/1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token prefix is not enough",
			configured: "s3cret",
			path:       "/admin/s3cre/1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no configured token rejects everything",
			configured: "",
			path:       "/admin/anything/1",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}
			mux := http.NewServeMux()
			mux.HandleFunc("GET /admin/{token}/{eventID}", RequireAdminToken(tt.configured, logger)(next))

			req := httptest.NewRequest(http.MethodGet, "http://test"+tt.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.wantStatus == http.StatusUnauthorized {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
			}
		})
	}
}
