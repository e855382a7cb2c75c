package logconf

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
	"github.com/philipp01105/simplelog/handler/consolehandler"
	"github.com/philipp01105/simplelog/handler/filehandler"
	"github.com/philipp01105/simplelog/handler/multihandler"
)

// ErrInvalidSetting is wrapped by every validation error of Build.
var ErrInvalidSetting = errors.New("invalid log setting")

func invalid(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSetting, format, args...)
}

// Config builds the formatter configuration.
func (f FormatSettings) Config() (formatter.Config, error) {
	var parts formatter.Part
	for _, p := range []struct {
		on   bool
		part formatter.Part
	}{
		{f.Time, formatter.PartTime},
		{f.Level, formatter.PartLevel},
		{f.Thread, formatter.PartThread},
		{f.Target, formatter.PartTarget},
		{f.Location, formatter.PartLocation},
		{f.Module, formatter.PartModule},
	} {
		if p.on {
			parts |= p.part
		}
	}

	b := formatter.NewBuilder().
		SetParts(parts).
		SetMarkup(f.Markup).
		SetEnableColors(f.Colors).
		SetTemplate(f.Template)

	switch strings.ToLower(f.TimeFormat) {
	case "":
	case "rfc3339":
		b.SetTimeFormatRFC3339()
	case "rfc2822":
		b.SetTimeFormatRFC2822()
	default:
		b.SetTimeFormat(f.TimeFormat)
	}

	offset, local, err := parseOffset(f.TimeOffset)
	if err != nil {
		return formatter.Config{}, err
	}
	if local {
		b.SetTimeOffsetToLocal()
	} else {
		b.SetTimeOffset(offset)
	}

	padding, err := parseLevelPadding(f.LevelPadding)
	if err != nil {
		return formatter.Config{}, err
	}
	b.SetLevelPadding(padding)

	ending, err := parseLineEnding(f.LineEnding)
	if err != nil {
		return formatter.Config{}, err
	}
	b.SetLineEnding(ending)

	for name, color := range f.LevelColors {
		level, err := core.ParseLevel(name)
		if err != nil {
			return formatter.Config{}, invalid("level_colors: %q", name)
		}
		c, ok := formatter.ParseColor(color)
		if !ok {
			return formatter.Config{}, invalid("level_colors.%s: unknown color %q", name, color)
		}
		b.SetLevelColor(level, c)
	}

	for _, prefix := range f.Allow {
		b.AddFilterAllow(prefix)
	}
	for _, prefix := range f.Ignore {
		b.AddFilterIgnore(prefix)
	}
	return b.Build(), nil
}

// Build creates the handlers described by s: the single handler when
// there is one sink, otherwise a CombinedLogger in sink order.
func (s Settings) Build() (handler.Handler, error) {
	cfg, err := s.Format.Config()
	if err != nil {
		return nil, err
	}

	handlers := make([]handler.Handler, 0, len(s.Sinks))
	for i, sink := range s.Sinks {
		h, err := sink.build(cfg)
		if err != nil {
			for _, built := range handlers {
				err = multierr.Append(err, built.Close())
			}
			return nil, errors.WithMessagef(err, "sink %d (%s)", i, sink.Type)
		}
		handlers = append(handlers, h)
	}

	if len(handlers) == 1 {
		return handlers[0], nil
	}
	return multihandler.NewCombinedLogger(handlers...), nil
}

func (s SinkSettings) build(cfg formatter.Config) (handler.Handler, error) {
	level := core.FilterInfo
	if s.Level != "" {
		var err error
		if level, err = core.ParseLevelFilter(s.Level); err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(s.Type) {
	case "term", "":
		mode, err := parseMode(s.Mode)
		if err != nil {
			return nil, err
		}
		choice, err := parseColorChoice(s.Color)
		if err != nil {
			return nil, err
		}
		return consolehandler.NewTermLogger(level, cfg, mode, choice), nil
	case "simple":
		return consolehandler.NewSimpleLogger(level, cfg), nil
	case "file":
		h, err := filehandler.NewFileLogger(level, cfg, filehandler.FileConfig{
			Path:    s.Path,
			MaxSize: s.MaxSize,
		})
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, invalid("unknown sink type %q", s.Type)
	}
}

func parseMode(s string) (consolehandler.TerminalMode, error) {
	switch strings.ToLower(s) {
	case "", "mixed":
		return consolehandler.Mixed, nil
	case "stdout":
		return consolehandler.Stdout, nil
	case "stderr":
		return consolehandler.Stderr, nil
	default:
		return 0, invalid("unknown terminal mode %q", s)
	}
}

func parseColorChoice(s string) (consolehandler.ColorChoice, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return consolehandler.ColorAuto, nil
	case "always":
		return consolehandler.ColorAlways, nil
	case "never":
		return consolehandler.ColorNever, nil
	default:
		return 0, invalid("unknown color choice %q", s)
	}
}

func parseLevelPadding(s string) (formatter.LevelPadding, error) {
	switch strings.ToLower(s) {
	case "", "off":
		return formatter.LevelPaddingOff, nil
	case "left":
		return formatter.LevelPaddingLeft, nil
	case "right":
		return formatter.LevelPaddingRight, nil
	default:
		return 0, invalid("unknown level padding %q", s)
	}
}

func parseLineEnding(s string) (formatter.LineEnding, error) {
	switch strings.ToLower(s) {
	case "", "lf":
		return formatter.LF, nil
	case "cr":
		return formatter.CR, nil
	case "crlf":
		return formatter.CRLF, nil
	case "vt":
		return formatter.VT, nil
	case "ff":
		return formatter.FF, nil
	case "nel":
		return formatter.NEL, nil
	case "ls":
		return formatter.LS, nil
	case "ps":
		return formatter.PS, nil
	default:
		return 0, invalid("unknown line ending %q", s)
	}
}

// parseOffset accepts "", "local", "utc", a Go duration ("2h30m") or a
// numeric zone offset ("+02:00").
func parseOffset(s string) (offset time.Duration, local bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local":
		return 0, true, nil
	case "utc", "z":
		return 0, false, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, false, nil
	}
	t, err := time.Parse("-07:00", s)
	if err != nil {
		return 0, false, invalid("time_offset %q", s)
	}
	_, secs := t.Zone()
	return time.Duration(secs) * time.Second, false, nil
}
