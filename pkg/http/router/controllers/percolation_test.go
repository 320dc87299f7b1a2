package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/Percolatorx/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type failingService struct {
	err error
}

func (s failingService) Stats(ctx context.Context, n, trials int, seed *uint64, workers int) (*percolation.Stats, error) {
	return nil, s.err
}

func (s failingService) Simulate(ctx context.Context, n int, seed *uint64) (*percolation.Percolation, error) {
	return nil, s.err
}

func TestInternalErrorIsNotLeaked(t *testing.T) {
	router := httprouter.New()
	New(failingService{err: errors.New("disk on fire")}, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))

	for _, target := range []string{"/api/percolation/stats?n=3&trials=3", "/api/percolation/simulate?n=3"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "disk on fire")
		assert.Contains(t, rec.Body.String(), "INTERNAL_SERVER_ERROR")
	}
}

func TestServiceBadParamMapsTo400(t *testing.T) {
	router := httprouter.New()
	_, err := percolation.NewPercolation(0)
	New(failingService{err: err}, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/percolation/simulate?n=3", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type contextService struct{}

func (contextService) Stats(ctx context.Context, n, trials int, seed *uint64, workers int) (*percolation.Stats, error) {
	return percolation.NewStats(n, trials, percolation.WithContext(ctx))
}

func (contextService) Simulate(ctx context.Context, n int, seed *uint64) (*percolation.Percolation, error) {
	return percolation.RunTrialContext(ctx, n, percolation.NewRandomSource(1))
}

func TestCancelledRequestMapsTo503(t *testing.T) {
	router := httprouter.New()
	New(contextService{}, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, target := range []string{"/api/percolation/stats?n=30&trials=5", "/api/percolation/simulate?n=30"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "SERVICE_UNAVAILABLE")
	}
}
