package consolehandler

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

func levelOnly() formatter.Config {
	return formatter.NewBuilder().SetParts(formatter.PartLevel).Build()
}

func record(level core.Level, msg string) *core.Record {
	return &core.Record{Level: level, Target: "app", Message: msg}
}

func logAll(h interface{ Log(*core.Record) }) {
	for _, l := range core.Levels {
		h.Log(record(l, strings.ToLower(l.String())))
	}
}

func TestSimpleLogger_Routing(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewSimpleLogger(core.FilterTrace, levelOnly(), WithStdout(&out), WithStderr(&errOut))

	logAll(h)

	assert.Equal(t, "[ERROR] error\n[WARN] warn\n", errOut.String())
	assert.Equal(t, "[INFO] info\n[DEBUG] debug\n[TRACE] trace\n", out.String())
	assert.Equal(t, uint64(5), h.Stats().Processed)
}

func TestSimpleLogger_Filter(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewSimpleLogger(core.FilterWarn, levelOnly(), WithStdout(&out), WithStderr(&errOut))

	logAll(h)

	assert.Equal(t, "[ERROR] error\n[WARN] warn\n", errOut.String())
	assert.Empty(t, out.String())
	assert.Equal(t, core.FilterWarn, h.Level())
}

func TestSimpleLogger_NeverColored(t *testing.T) {
	var out bytes.Buffer
	h := NewSimpleLogger(core.FilterInfo, levelOnly(), WithStdout(&out))

	h.Log(record(core.InfoLevel, "plain"))

	assert.NotContains(t, out.String(), "\x1b[")
}

func TestOff_EmitsNothing(t *testing.T) {
	var out, errOut bytes.Buffer
	simple := NewSimpleLogger(core.Off, levelOnly(), WithStdout(&out), WithStderr(&errOut))
	term := NewTermLogger(core.Off, levelOnly(), Mixed, ColorAlways, WithStdout(&out), WithStderr(&errOut))

	logAll(simple)
	logAll(term)

	assert.Zero(t, out.Len())
	assert.Zero(t, errOut.Len())
}

func TestTermLogger_MixedRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewTermLogger(core.FilterInfo, levelOnly(), Mixed, ColorNever, WithStdout(&out), WithStderr(&errOut))

	h.Log(record(core.ErrorLevel, "E"))
	h.Log(record(core.InfoLevel, "I"))
	h.Log(record(core.DebugLevel, "D"))

	assert.Equal(t, "[ERROR] E\n", errOut.String())
	assert.Equal(t, "[INFO] I\n", out.String())
}

func TestTermLogger_MixedWarnGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewTermLogger(core.FilterInfo, levelOnly(), Mixed, ColorNever, WithStdout(&out), WithStderr(&errOut))

	h.Log(record(core.WarnLevel, "x"))

	assert.Equal(t, "[WARN] x\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestTermLogger_SingleStreamModes(t *testing.T) {
	tests := []struct {
		name string
		mode TerminalMode
	}{
		{"stdout", Stdout},
		{"stderr", Stderr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			h := NewTermLogger(core.FilterInfo, levelOnly(), tt.mode, ColorNever, WithStdout(&out), WithStderr(&errOut))

			h.Log(record(core.ErrorLevel, "E"))
			h.Log(record(core.InfoLevel, "I"))

			want := "[ERROR] E\n[INFO] I\n"
			if tt.mode == Stdout {
				assert.Equal(t, want, out.String())
				assert.Empty(t, errOut.String())
			} else {
				assert.Equal(t, want, errOut.String())
				assert.Empty(t, out.String())
			}
			assert.Equal(t, tt.mode, h.Mode())
		})
	}
}

func TestTermLogger_ColorChoice(t *testing.T) {
	var out bytes.Buffer
	h := NewTermLogger(core.FilterInfo, levelOnly(), Stdout, ColorAlways, WithStdout(&out))

	h.Log(record(core.InfoLevel, "hi"))

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "INFO")

	out.Reset()
	never := NewTermLogger(core.FilterInfo, levelOnly(), Stdout, ColorNever, WithStdout(&out))
	never.Log(record(core.InfoLevel, "hi"))
	assert.Equal(t, "[INFO] hi\n", out.String())
}

func TestTermLogger_AutoDegradesForNonTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewTermLogger(core.FilterInfo, levelOnly(), Mixed, ColorAuto, WithStdout(&out), WithStderr(&errOut))

	outColor, errColor := h.Colored()
	assert.False(t, outColor)
	assert.False(t, errColor)
}

func TestUseColor_Environment(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()

	t.Setenv("NO_COLOR", "1")
	assert.False(t, useColor(f, ColorAuto))
	assert.True(t, useColor(f, ColorAlways))

	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	assert.False(t, useColor(f, ColorAuto))

	// a regular file is never a terminal
	t.Setenv("TERM", "xterm")
	assert.False(t, useColor(f, ColorAuto))
}

func TestConsole_ConfigSkip(t *testing.T) {
	var out bytes.Buffer
	cfg := formatter.NewBuilder().SetParts(0).AddFilterIgnore("noisy").Build()
	h := NewSimpleLogger(core.FilterInfo, cfg, WithStdout(&out))

	h.Log(&core.Record{Level: core.InfoLevel, Target: "noisy::db", Message: "x"})
	h.Log(&core.Record{Level: core.InfoLevel, Target: "app", Message: "y"})

	assert.Equal(t, "y\n", out.String())
	assert.Equal(t, uint64(1), h.Stats().Skipped)
}

func TestConsole_CloseKeepsStreamsOpen(t *testing.T) {
	var out bytes.Buffer
	h := NewTermLogger(core.FilterInfo, levelOnly(), Stdout, ColorNever, WithStdout(&out))

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "mixed", Mixed.String())
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
	assert.Equal(t, "auto", ColorAuto.String())
	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "never", ColorNever.String())
}
