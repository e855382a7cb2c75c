// Package ginlog provides gin request logging through a logger.Logger.
//
//	r := gin.New()
//	r.Use(ginlog.Middleware(log.Named("http")))
package ginlog
