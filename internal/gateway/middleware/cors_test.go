package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if called != nil {
			*called = true
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	nextCalled := false
	handler := CORSMiddleware(okHandler(&nextCalled), "http://localhost:3000,https://example.com")

	req := httptest.NewRequest(http.MethodOptions, "/update-image", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	nextCalled := false
	handler := CORSMiddleware(okHandler(&nextCalled), "*")

	req := httptest.NewRequest(http.MethodGet, "/folders", nil)
	req.Header.Set("Origin", "https://anything.test")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, nextCalled)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "success", rec.Body.String())
}

func TestCORSMiddleware_Origins(t *testing.T) {
	handler := CORSMiddleware(okHandler(nil), "http://localhost:3000, https://example.com")

	testCases := []struct {
		name   string
		origin string
		expect string
	}{
		{"first_origin", "http://localhost:3000", "http://localhost:3000"},
		{"second_origin_with_space", "https://example.com", "https://example.com"},
		{"unlisted_origin", "https://evil.com", ""},
		{"no_origin", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/images", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.expect, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
