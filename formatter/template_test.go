package formatter

import (
	"testing"

	"github.com/philipp01105/simplelog/core"
)

func TestTemplateFormatter(t *testing.T) {
	tests := []struct {
		name  string
		tmpl  string
		color bool
		want  string
	}{
		{"basic", "[time] [level] [target]: [message]", false, "13:04:05 [INFO] app::db: hello\n"},
		{"no brackets", "[level:nb] [message]", false, "INFO hello\n"},
		{"wrapped", "[[module]] [message]", false, "[example.com/app/db] hello\n"},
		{"file", "[message] ([file])", false, "hello (db.go:42)\n"},
		{"unknown key", "[nope:bold] [message]", false, "nope:bold hello\n"},
		{"literal only", "static", false, "static\n"},
		{"unterminated", "[message] [oops", false, "hello [oops\n"},
		{"colored level", "[level] [message]", true, "\x1b[34m[INFO]\x1b[0m hello\n"},
		{"bold message", "[message:bold]", true, "\x1b[1mhello\x1b[0m\n"},
		{"bg", "[message:bgred]", true, "\x1b[41mhello\x1b[0m\n"},
		{"styles ignored without color", "[message:bold:red]", false, "hello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := utcBuilder().SetTemplate(tt.tmpl).Build()
			f := New(cfg)
			if _, ok := f.(*TemplateFormatter); !ok {
				t.Fatalf("New() returned %T, want *TemplateFormatter", f)
			}
			out := string(Format(f, testRecord(core.InfoLevel, "hello"), tt.color))
			if out != tt.want {
				t.Errorf("Format() = %q, want %q", out, tt.want)
			}
		})
	}
}
