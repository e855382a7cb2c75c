package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/philipp01105/simplelog/integration/ginlog"
	"github.com/philipp01105/simplelog/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a demo HTTP server that logs every request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		gin.SetMode(gin.ReleaseMode)

		r := gin.New()
		r.Use(ginlog.Middleware(logger.Named("http")), gin.Recovery())
		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		r.GET("/log/:level", func(c *gin.Context) {
			level, err := logger.ParseLevel(c.Param("level"))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Log(level, c.DefaultQuery("msg", "triggered over http"))
			c.Status(http.StatusNoContent)
		})

		logger.Infof("listening on %s", serveAddr)
		return r.Run(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}
