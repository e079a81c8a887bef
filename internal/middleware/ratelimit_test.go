package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bandstandhq/bandstand/internal/config"
)

func runThrough(t *testing.T, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec
}

func TestTokenBucketDisabledPassesThrough(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        false,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		Prefix:         "rl",
	}
	rec := runThrough(t, NewTokenBucket(cfg, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestTokenBucketNilClientPassesThrough(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute, Prefix: "rl"}
	rec := runThrough(t, NewTokenBucket(cfg, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
}

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{"7", 7},
		{"not a number", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Errorf("asInt64(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
