package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	e := echo.New()
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})
	handler := RateLimit(l, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		codes = append(codes, rec.Code)

		if i == 0 && rec.Header().Get("X-RateLimit-Limit") != "2" {
			t.Fatalf("expected limit header 2, got %q", rec.Header().Get("X-RateLimit-Limit"))
		}
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be throttled, got %d", codes[2])
	}
}

func TestRateLimit_PerClientIP(t *testing.T) {
	e := echo.New()
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1})
	handler := RateLimit(l, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", addr, rec.Code)
		}
	}
}
