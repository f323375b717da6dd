package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/pkg/requestcontext"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logger.AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return &logger.AppLogger{Logger: l}, &buf
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidateAPIKey(t *testing.T) {
	e := echo.New()
	e.GET("/internal", okHandler, ValidateAPIKey("orders-key", ""))

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"valid key", "orders-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			assert.Equal(t, tt.status, serve(e, req).Code)
		})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "secret", Expiration: 5, Issuer: "flashfood"}
	token, _, err := jwtpkg.GenerateToken("FF_CUS_1", jwtpkg.RoleCustomer, cfg)
	require.NoError(t, err)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.String(http.StatusOK, UserIDFromContext(c))
	}, JWTAuthMiddleware(cfg))
	e.GET("/restaurant-only", okHandler, JWTAuthMiddleware(cfg), RequireRole(jwtpkg.RoleRestaurant))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := serve(e, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "FF_CUS_1", rec.Body.String())
	})

	t.Run("query token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
		assert.Equal(t, http.StatusOK, serve(e, req).Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)
	})

	t.Run("bad format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token "+token)
		assert.Equal(t, http.StatusUnauthorized, serve(e, req).Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/restaurant-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, serve(e, req).Code)
	})
}

func TestRequestIDAndLoggerMiddleware(t *testing.T) {
	appLogger, buf := newBufferedLogger()

	e := echo.New()
	e.Use(RequestIDMiddleware(), LoggerMiddleware(appLogger))
	e.GET("/ok", okHandler)
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), "Request processed")
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := serve(e, req)
		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("request id reaches the request context", func(t *testing.T) {
		e.GET("/ctx", func(c echo.Context) error {
			return c.String(http.StatusOK, requestcontext.RequestID(c.Request().Context()))
		})
		req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
		req.Header.Set(RequestIDHeader, "req-456")
		rec := serve(e, req)
		assert.Equal(t, "req-456", rec.Body.String())
	})

	t.Run("client errors logged as warnings", func(t *testing.T) {
		buf.Reset()
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/fail", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, buf.String(), "Client error")
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	appLogger, buf := newBufferedLogger()

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(appLogger))
	e.GET("/panic", func(c echo.Context) error {
		panic(errors.New("boom"))
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), panicMessage)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "stack_trace")
	assert.Contains(t, buf.String(), "*errors.errorString")
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryMiddleware(nil) })
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.GET("/cart", okHandler, UserRateLimiter(2, time.Minute, client))

	for i := 0; i < 2; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/cart", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	mr.Close()

	e := echo.New()
	e.GET("/cart", okHandler, UserRateLimiter(1, time.Minute, client))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
