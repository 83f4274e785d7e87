package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"fourdx-backend/internal/api/handlers"
	"fourdx-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func healthRouter(p handlers.Pinger) *testutils.HTTPTestSuite {
	h := handlers.NewHealthHandler(p, "memory", "test")
	s := testutils.SetupHTTPTest()
	s.Router.GET("/health", h.Health)
	s.Router.GET("/health/ready", h.Ready)
	s.Router.GET("/health/live", h.Live)
	return s
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy store", func(t *testing.T) {
		s := healthRouter(stubPinger{})

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest("GET", "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["memory"])
		assert.Equal(t, "test", response.Version)
	})

	t.Run("Unreachable store", func(t *testing.T) {
		s := healthRouter(stubPinger{err: errors.New("dial tcp: refused")})

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, s.MakeRequest("GET", "/health", nil), http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["memory"], "refused")

		assert.Equal(t, http.StatusServiceUnavailable, s.MakeRequest("GET", "/health/ready", nil).Code)
	})

	t.Run("Live ignores the store", func(t *testing.T) {
		s := healthRouter(stubPinger{err: errors.New("down")})
		assert.Equal(t, http.StatusOK, s.MakeRequest("GET", "/health/live", nil).Code)
	})
}
