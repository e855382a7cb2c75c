package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

func ExampleNewBuilder() {
	cfg := formatter.NewBuilder().
		IncludeThread(false).
		SetTimeFormat("%Y-%m-%d %H:%M:%S").
		SetTimeOffset(0).
		SetLevelPadding(formatter.LevelPaddingRight).
		Build()

	rec := &core.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Target:  "server",
		Message: "hello world",
	}

	fmt.Print(string(formatter.Format(formatter.New(cfg), rec, false)))
	// Output:
	// 2026-01-15 12:00:00 [INFO ] server: hello world
}

func ExampleTemplateFormatter() {
	cfg := formatter.NewBuilder().
		SetTemplate("<[level:nb]> [message]").
		SetMarkup(true).
		Build()

	rec := &core.Record{Level: core.WarnLevel, Message: "<b>disk</> almost full"}

	fmt.Print(string(formatter.Format(formatter.New(cfg), rec, false)))
	// Output:
	// <WARN> disk almost full
}
