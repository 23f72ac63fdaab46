package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_NoChecksIsReady(t *testing.T) {
	status := New(0).CheckReadiness(context.Background())
	assert.Equal(t, StatusReady, status.Status)
	assert.Empty(t, status.Checks)
}

func TestChecker_Degraded(t *testing.T) {
	c := New(time.Second)
	c.RegisterCheck("configuration", func(context.Context) error { return errors.New("3 errors") })
	c.RegisterCheck("history", func(context.Context) error { return nil })

	status := c.CheckReadiness(context.Background())
	assert.Equal(t, StatusDegraded, status.Status)
	assert.Equal(t, StatusUnhealthy, status.Checks["configuration"].Status)
	assert.Equal(t, "3 errors", status.Checks["configuration"].Message)
	assert.Equal(t, StatusOK, status.Checks["history"].Status)
	assert.Equal(t, []string{"configuration", "history"}, c.ListChecks())
}

func TestChecker_Timeout(t *testing.T) {
	c := New(20 * time.Millisecond)
	c.RegisterCheck("slow", func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return nil
	})

	status := c.CheckReadiness(context.Background())
	assert.Equal(t, StatusDegraded, status.Status)
	assert.Equal(t, "health check timeout", status.Checks["slow"].Message)
}

func TestHandlers(t *testing.T) {
	c := New(time.Second)
	healthy := true
	c.RegisterCheck("configuration", func(context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("invalid")
	})

	mux := http.NewServeMux()
	Register(mux, c)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	healthy = false
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status Status
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, StatusDegraded, status.Status)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/readyz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
