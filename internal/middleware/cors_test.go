package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amc-activities/eventlist/internal/middleware"
)

const widgetOrigin = "https://chapter.example.org"

// okHandler always returns 200.
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{widgetOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/events/placeholder", nil)
	req.Header.Set("Origin", widgetOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, widgetOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(rec.Header().Get("Access-Control-Expose-Headers")), "x-render-id")
}

// TestCORSHandler_OPTIONS_Preflight covers the preflight a browser sends
// before POSTing an XML body with Content-Type set.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{widgetOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/events/render", nil)
	req.Header.Set("Origin", widgetOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	// Browsers send requested header names in lowercase.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, widgetOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSHandler_DisallowedMethodPreflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{widgetOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/events/render", nil)
	req.Header.Set("Origin", widgetOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{widgetOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/events/placeholder", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
