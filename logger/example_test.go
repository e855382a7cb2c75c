package logger_test

import (
	"os"

	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler/filehandler"
	"github.com/philipp01105/simplelog/logger"
)

// Create a Logger with the Builder pattern.
func ExampleNewBuilder() {
	cfg := formatter.NewBuilder().SetParts(formatter.PartLevel | formatter.PartTarget).Build()
	h := filehandler.NewWriteLogger(logger.FilterDebug, cfg, os.Stdout)

	log := logger.NewBuilder().
		WithHandler(h).
		WithTarget("app").
		Build()

	log.Info("ready")
	log.Debugf("listening on :%d", 8080)
	log.Trace("not shown")
	log.Named("app::db").Warn("slow query")
	// Output:
	// [INFO] app: ready
	// [DEBUG] app: listening on :8080
	// [WARN] app::db: slow query
}
