package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProvider_RegistersRoutes(t *testing.T) {
	router := NewRouterProvider()

	router.Get("/a", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	router.Post("/b", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	routes := router.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/a", routes[0].Url)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/b", routes[1].Url)
	assert.Equal(t, http.MethodPost, routes[1].Method)
}

func TestRouterProvider_MethodGuard(t *testing.T) {
	router := NewRouterProvider()
	router.Get("/a", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	handler := router.GetRoutes()[0].Handler

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/a", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/a", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}
