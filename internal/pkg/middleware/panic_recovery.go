package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flashfood/internal/pkg/logger"
	"github.com/piresc/flashfood/internal/utils"
	"github.com/sirupsen/logrus"
)

const panicMessage = "An unexpected error occurred while processing your request"

// PanicRecoveryMiddleware turns a handler panic into a logged 500. The
// response is only written when the handler had not committed one yet.
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	if appLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				logPanic(appLogger, c, r)
				err = nil
				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, panicMessage)
				}
			}()
			return next(c)
		}
	}
}

func logPanic(appLogger *logger.AppLogger, c echo.Context, r interface{}) {
	req := c.Request()
	requestID := c.Response().Header().Get(RequestIDHeader)
	if requestID == "" {
		requestID = req.Header.Get(RequestIDHeader)
	}

	appLogger.WithFields(logrus.Fields{
		"component":   "panic_recovery",
		"panic_value": fmt.Sprint(r),
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": string(debug.Stack()),
		"method":      req.Method,
		"route":       c.Path(),
		"path":        req.URL.Path,
		"user_id":     UserIDFromContext(c),
		"role":        RoleFromContext(c),
		"request_id":  requestID,
	}).Error("Panic recovered during request processing")
}
