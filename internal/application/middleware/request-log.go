package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-forecast/pkg/log"
)

// SetupRequestLogger registers the request logging middleware. Requests whose
// path contains one of skipPaths are not logged.
func SetupRequestLogger(e *echo.Echo, skipPaths ...string) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			for _, skip := range skipPaths {
				if strings.Contains(path, skip) {
					return true
				}
			}
			return false
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			if v.Error == nil {
				log.Info("request completed", fields...)
			} else {
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
			}
			return nil
		},
	}))
}
