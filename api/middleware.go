package api

import (
	"time"

	logger "github.com/ByerDev/mazegeneratorsolver/infrastruture/log"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger(lg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Route template, so tickets never reach the log.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		if status >= 500 {
			lg.Errorf("%s %s %d %s", c.Request.Method, path, status, time.Since(start))
			return
		}
		lg.Infof("%s %s %d %s", c.Request.Method, path, status, time.Since(start))
	}
}
