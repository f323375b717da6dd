package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/pkg/requestcontext"
)

const RequestIDHeader = requestcontext.Header

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// Let echo write the error response so the status is final
				c.Error(err)
			}

			userID := UserIDFromContext(c)
			if userID == "" {
				userID = "anonymous"
			}

			appLogger.LogHTTPRequest(logger.AccessLog{
				Method:    c.Request().Method,
				Path:      path,
				Route:     c.Path(),
				ClientIP:  c.RealIP(),
				UserID:    userID,
				Role:      RoleFromContext(c),
				RequestID: c.Response().Header().Get(RequestIDHeader),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			})

			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)
			// Outgoing service calls read it from the request context
			c.SetRequest(c.Request().WithContext(
				requestcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
