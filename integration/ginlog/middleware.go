package ginlog

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/logger"
)

// Middleware logs one record per request after it has been handled:
// Error for 5xx responses, Warn for 4xx and Info otherwise.
func Middleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		level := statusLevel(status)
		if !l.Enabled(level) {
			return
		}

		msg := c.Request.Method + " " + path
		latency := time.Since(start)
		if errs := c.Errors.String(); errs != "" {
			l.Log(level, fmt.Sprintf("%s %d %s ip=%s errors=%q", msg, status, latency, c.ClientIP(), errs))
			return
		}
		l.Log(level, fmt.Sprintf("%s %d %s ip=%s", msg, status, latency, c.ClientIP()))
	}
}

// statusLevel maps an HTTP status code to a level.
func statusLevel(code int) core.Level {
	switch {
	case code >= 500:
		return core.ErrorLevel
	case code >= 400:
		return core.WarnLevel
	default:
		return core.InfoLevel
	}
}
