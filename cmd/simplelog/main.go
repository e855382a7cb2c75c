// Command simplelog loads a logging configuration, installs it as the
// global logger and emits records, either samples or from a demo HTTP
// server.
package main

import (
	"os"

	"github.com/philipp01105/simplelog/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Flush()
		os.Exit(1)
	}
	logger.Flush()
}
