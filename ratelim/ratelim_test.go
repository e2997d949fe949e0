package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitDeniesAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	calls := 0
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	statuses := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = "10.0.0.1:55555"
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, 2, calls)
}

func TestLimitIsPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		assert.Equal(t, http.StatusOK, rec.Code, "first request from %s", addr)
	}
}
