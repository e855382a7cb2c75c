package benchmark

import (
	"io"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
	"github.com/philipp01105/simplelog/handler/consolehandler"
	"github.com/philipp01105/simplelog/handler/filehandler"
	"github.com/philipp01105/simplelog/handler/multihandler"
	"github.com/philipp01105/simplelog/logger"
)

func newLogger(h handler.Handler) *logger.Logger {
	return logger.NewBuilder().WithHandler(h).WithTarget("bench").WithCaller(false).Build()
}

func BenchmarkWriteLogger(b *testing.B) {
	l := newLogger(filehandler.NewWriteLogger(core.FilterInfo, formatter.Default(), io.Discard))
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkFormatters(b *testing.B) {
	configs := map[string]formatter.Config{
		"default":   formatter.Default(),
		"minimal":   formatter.NewBuilder().SetParts(formatter.PartLevel).Build(),
		"rfc3339":   formatter.NewBuilder().SetTimeFormatRFC3339().Build(),
		"location":  formatter.NewBuilder().IncludeLocation(true).Build(),
		"template":  formatter.NewBuilder().SetTemplate("[time] [level:nb] [target]: [message]").Build(),
		"markup":    formatter.NewBuilder().SetMarkup(true).Build(),
		"padded":    formatter.NewBuilder().SetLevelPadding(formatter.LevelPaddingRight).Build(),
		"no-thread": formatter.NewBuilder().IncludeThread(false).Build(),
	}

	for name, cfg := range configs {
		b.Run(name, func(b *testing.B) {
			l := newLogger(filehandler.NewWriteLogger(core.FilterInfo, cfg, io.Discard))
			defer l.Close()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("<b>info</> message")
			}
		})
	}
}

func BenchmarkWithCaller(b *testing.B) {
	h := filehandler.NewWriteLogger(core.FilterInfo, formatter.NewBuilder().IncludeLocation(true).Build(), io.Discard)
	l := logger.NewBuilder().WithHandler(h).Build()
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkCoarseClock(b *testing.B) {
	h := filehandler.NewWriteLogger(core.FilterInfo, formatter.Default(), io.Discard)
	l := logger.NewBuilder().WithHandler(h).WithTarget("bench").WithCaller(false).WithCoarseClock(true).Build()
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkTermLoggerColor(b *testing.B) {
	for _, choice := range []consolehandler.ColorChoice{consolehandler.ColorNever, consolehandler.ColorAlways} {
		b.Run(choice.String(), func(b *testing.B) {
			h := consolehandler.NewTermLogger(core.FilterInfo, formatter.Default(), consolehandler.Stdout, choice,
				consolehandler.WithStdout(io.Discard))
			l := newLogger(h)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Warn("warn message")
			}
		})
	}
}

func BenchmarkFileLogger(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.log")
	h, err := filehandler.NewFileLogger(core.FilterInfo, formatter.Default(), filehandler.FileConfig{
		Path:    path,
		MaxSize: 8 << 20,
	})
	if err != nil {
		b.Fatal(err)
	}
	l := newLogger(h)
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message written to a rotating file")
	}
}

func BenchmarkCombinedLoggerCount(b *testing.B) {
	for _, n := range []int{1, 2, 4, 8} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			hs := make([]handler.Handler, n)
			for i := range hs {
				hs[i] = filehandler.NewWriteLogger(core.FilterInfo, formatter.Default(), io.Discard)
			}
			l := newLogger(multihandler.NewCombinedLogger(hs...))
			defer l.Close()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Info("info message")
			}
		})
	}
}

func BenchmarkNoopHandler(b *testing.B) {
	l := newLogger(newNoopHandler())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkParallel(b *testing.B) {
	l := newLogger(filehandler.NewWriteLogger(core.FilterInfo, formatter.Default(), io.Discard))
	defer l.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("parallel message")
		}
	})
}

func BenchmarkDisabledLevel(b *testing.B) {
	l := newLogger(filehandler.NewWriteLogger(core.FilterWarn, formatter.Default(), io.Discard))
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debugf("debug %d", i)
	}
}
