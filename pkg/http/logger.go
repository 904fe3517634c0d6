package http

import (
	"go.uber.org/zap"

	"go-forecast/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapHTTPLogger writes request traces through the application logger.
// Requests and successes go to debug, failures to warn.
type ZapHTTPLogger struct{}

var _ HTTPLogger = ZapHTTPLogger{}

func NewZapHTTPLogger() ZapHTTPLogger {
	return ZapHTTPLogger{}
}

func (ZapHTTPLogger) LogRequest(method, url string, _ map[string]string, body string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body))
}

func (ZapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Debug("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (ZapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
