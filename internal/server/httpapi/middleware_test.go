package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAuth_HeaderFormats(t *testing.T) {
	s := newTestServer(t)
	_, tok := registerAlice(t, s)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid bearer", "Bearer " + tok, http.StatusOK},
		{"lowercase scheme", "bearer " + tok, http.StatusOK},
		{"wrong scheme", "Token " + tok, http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"blank token", "Bearer ", http.StatusUnauthorized},
		{"no header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
