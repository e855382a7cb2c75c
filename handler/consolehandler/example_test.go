package consolehandler_test

import (
	"os"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler/consolehandler"
)

func ExampleNewSimpleLogger() {
	cfg := formatter.NewBuilder().SetParts(formatter.PartLevel | formatter.PartTarget).Build()
	h := consolehandler.NewSimpleLogger(core.FilterInfo, cfg,
		consolehandler.WithStdout(os.Stdout),
		consolehandler.WithStderr(os.Stdout),
	)
	defer h.Close()

	h.Log(&core.Record{Level: core.InfoLevel, Target: "app", Message: "started"})
	h.Log(&core.Record{Level: core.WarnLevel, Target: "app", Message: "low disk"})
	h.Log(&core.Record{Level: core.DebugLevel, Target: "app", Message: "hidden"})
	// Output:
	// [INFO] app: started
	// [WARN] app: low disk
}
