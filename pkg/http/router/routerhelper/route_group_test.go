package routerhelper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroup(t *testing.T) {
	router := httprouter.New()
	api := NewRouteGroup(router, "/api")
	api.GET("/percolation/stats", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusTeapot)
	})
	api.Group("/v2").POST("/run/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusAccepted)
	})

	testCases := []struct {
		method, path string
		expected     int
	}{
		{http.MethodGet, "/api/percolation/stats", http.StatusTeapot},
		{http.MethodPost, "/api/v2/run/", http.StatusAccepted},
		{http.MethodGet, "/percolation/stats", http.StatusNotFound},
	}
	for _, tt := range testCases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.expected, rec.Code, tt.path)
	}
}
