package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
)

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	limiter := newFakeRateStore()
	policy := NewRateLimitPolicy("describe", time.Minute, 2)
	handler := RateLimit(policy, limiter, nil)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession("s-1"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}

func TestRateLimit_SessionLimitTriggers(t *testing.T) {
	limiter := newFakeRateStore()
	policy := NewRateLimitPolicy("describe", time.Minute, 1)
	handler := RateLimit(policy, limiter, nil)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession("s-1"))

		if i == 0 && rec.Code != http.StatusOK {
			t.Fatalf("expected success, got %d", rec.Code)
		}
		if i == 1 {
			if rec.Code != http.StatusTooManyRequests {
				t.Fatalf("expected 429, got %d", rec.Code)
			}
			if rec.Header().Get("Retry-After") != "60" {
				t.Fatalf("unexpected Retry-After %q", rec.Header().Get("Retry-After"))
			}
			var payload struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if payload.Error.Code != string(pkgerrors.CodeRateLimit) {
				t.Fatalf("unexpected code: %s", payload.Error.Code)
			}
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession("s-2"))
	if rec.Code != http.StatusOK {
		t.Fatalf("other sessions keep their own budget, got %d", rec.Code)
	}
}

func TestRateLimit_FallsBackToIP(t *testing.T) {
	limiter := newFakeRateStore()
	handler := RateLimit(NewRateLimitPolicy("describe", time.Minute, 5), limiter, nil)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "5.6.7.8:1234"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if limiter.counts["describe:ip:5.6.7.8"] != 1 {
		t.Fatalf("expected ip scope to be counted, got %v", limiter.counts)
	}
}

func TestRateLimit_StoreErrorIsDependencyFailure(t *testing.T) {
	limiter := newFakeRateStore()
	limiter.err = errors.New("redis down")
	handler := RateLimit(NewRateLimitPolicy("describe", time.Minute, 5), limiter, nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithSession("s-1"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRateLimit_DisabledPolicyPassesThrough(t *testing.T) {
	handler := RateLimit(NewRateLimitPolicy("describe", 0, 1), nil, nil)(okHandler())
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestWithSession("s-1"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithSession(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendor/products/describe", nil)
	return req.WithContext(WithSession(req.Context(), id, store.New(store.Options{})))
}

type fakeRateStore struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{counts: map[string]int64{}}
}

func (f *fakeRateStore) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, 0, f.err
	}
	f.counts[scope]++
	return f.counts[scope] <= limit, f.counts[scope], nil
}
