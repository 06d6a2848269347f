package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeLimiterStore struct {
	counts map[string]int64
	err    error
}

func (f *fakeLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[key]++
	return f.counts[key], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestFormRateLimitBlocksAfterLimit(t *testing.T) {
	policy := NewFormRateLimitPolicy("contact", time.Minute, 2)
	store := &fakeLimiterStore{}
	handler := FormRateLimit(policy, store, nil)(okHandler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = "10.0.0.9:4321"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d should pass, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.RemoteAddr = "10.0.0.9:4321"
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestFormRateLimitSeparatesClients(t *testing.T) {
	policy := NewFormRateLimitPolicy("contact", time.Minute, 1)
	store := &fakeLimiterStore{}
	handler := FormRateLimit(policy, store, nil)(okHandler())

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = addr
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("first request from %s should pass, got %d", addr, w.Code)
		}
	}
}

func TestFormRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	policy := NewFormRateLimitPolicy("contact", 0, 0)
	store := &fakeLimiterStore{}
	handler := FormRateLimit(policy, store, nil)(okHandler())

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.RemoteAddr = "10.0.0.9:4321"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("disabled policy must pass requests, got %d", w.Code)
		}
	}
}

func TestFormRateLimitUsesForwardedFor(t *testing.T) {
	policy := NewFormRateLimitPolicy("contact", time.Minute, 1)
	store := &fakeLimiterStore{}
	handler := FormRateLimit(policy, store, nil)(okHandler())

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.RemoteAddr = "10.0.0.9:4321"
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if _, ok := store.counts["rl:ip:contact:203.0.113.7"]; !ok {
		t.Fatalf("expected forwarded ip key, got %v", store.counts)
	}
}
