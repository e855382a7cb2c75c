package formatter

import (
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/muesli/termenv"

	"github.com/philipp01105/simplelog/core"
)

// Part is a bit set selecting which record fields are rendered.
type Part uint8

const (
	// PartTime renders the timestamp
	PartTime Part = 1 << iota
	// PartLevel renders the bracketed level tag
	PartLevel
	// PartThread renders the goroutine id
	PartThread
	// PartTarget renders the record target
	PartTarget
	// PartLocation renders file:line of the call site
	PartLocation
	// PartModule renders the package path of the call site (template layout only)
	PartModule
)

// LevelPadding controls how the level name is padded to five columns.
type LevelPadding uint8

const (
	LevelPaddingOff LevelPadding = iota
	LevelPaddingLeft
	LevelPaddingRight
)

// Side is the side padding spaces are added to.
type Side uint8

const (
	SideOff Side = iota
	SideLeft
	SideRight
)

// Padding pads a rendered field with spaces up to Width columns.
type Padding struct {
	Side  Side
	Width int
}

// PadLeft returns a Padding that right-aligns into width columns.
func PadLeft(width int) Padding { return Padding{Side: SideLeft, Width: width} }

// PadRight returns a Padding that left-aligns into width columns.
func PadRight(width int) Padding { return Padding{Side: SideRight, Width: width} }

// LineEnding selects the terminator written after each record.
type LineEnding uint8

const (
	LF LineEnding = iota
	CR
	CRLF
	VT
	FF
	NEL
	LS
	PS
)

var lineEndings = [...]string{
	LF:   "\n",
	CR:   "\r",
	CRLF: "\r\n",
	VT:   "\v",
	FF:   "\f",
	NEL:  "\u0085",
	LS:   "\u2028",
	PS:   "\u2029",
}

// String returns the terminator bytes
func (e LineEnding) String() string {
	if int(e) < len(lineEndings) {
		return lineEndings[e]
	}
	return "\n"
}

type timeKind uint8

const (
	timeCustom timeKind = iota
	timeRFC3339
	timeRFC2822
)

// DefaultTimeFormat is the strftime pattern used when none is configured.
const DefaultTimeFormat = "%H:%M:%S"

// Config is an immutable snapshot of formatting and filtering options.
// Build one with NewBuilder; the zero value renders only the message,
// terminated by LF, and skips no level.
// A Config is safe to share between loggers and goroutines.
type Config struct {
	parts         Part
	levelPadding  LevelPadding
	threadPadding Padding
	targetPadding Padding

	timeKind    timeKind
	timePattern *strftime.Strftime
	location    *time.Location

	mostSevere  core.LevelFilter
	leastSevere core.LevelFilter

	filterAllow  []string
	filterIgnore []string

	levelColors  [len(core.Levels) + 1]termenv.Color
	enableColors bool
	markup       bool

	lineEnding string
	template   string
}

// Default returns the configuration used when no options are set:
// time, level, thread and target, times as %H:%M:%S in local time,
// colored level tags and LF line endings.
func Default() Config {
	pattern, _ := newPattern(DefaultTimeFormat)
	return Config{
		parts:       PartTime | PartLevel | PartThread | PartTarget,
		timePattern: pattern,
		mostSevere:  core.FilterError,
		leastSevere: core.FilterTrace,
		levelColors: [...]termenv.Color{
			nil,
			termenv.ANSIRed,
			termenv.ANSIYellow,
			termenv.ANSIBlue,
			termenv.ANSICyan,
			termenv.ANSIWhite,
		},
		enableColors: true,
		lineEnding:   LF.String(),
	}
}

func newPattern(p string) (*strftime.Strftime, error) {
	return strftime.New(p, strftime.WithMilliseconds('L'))
}

// Has reports whether the part is enabled.
func (c *Config) Has(p Part) bool {
	return c.parts&p != 0
}

// ColorsEnabled reports whether this configuration allows ANSI styling.
func (c *Config) ColorsEnabled() bool {
	return c.enableColors
}

// LevelColor returns the color configured for level, or nil.
func (c *Config) LevelColor(level core.Level) termenv.Color {
	if int(level) < len(c.levelColors) {
		return c.levelColors[level]
	}
	return nil
}

// LineEnding returns the record terminator. An unset terminator is LF.
func (c *Config) LineEnding() string {
	if c.lineEnding == "" {
		return LF.String()
	}
	return c.lineEnding
}

// Template returns the custom layout, or "" for the fixed layout.
func (c *Config) Template() string {
	return c.template
}

// Builder assembles a Config. Setters never fail; options that cannot
// be honored keep their previous value.
type Builder struct {
	cfg Config
}

// NewBuilder creates a builder seeded with Default().
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

func (b *Builder) setPart(p Part, on bool) *Builder {
	if on {
		b.cfg.parts |= p
	} else {
		b.cfg.parts &^= p
	}
	return b
}

// SetParts replaces the enabled part set.
func (b *Builder) SetParts(p Part) *Builder {
	b.cfg.parts = p
	return b
}

// IncludeTime toggles the timestamp
func (b *Builder) IncludeTime(on bool) *Builder { return b.setPart(PartTime, on) }

// IncludeLevel toggles the level tag
func (b *Builder) IncludeLevel(on bool) *Builder { return b.setPart(PartLevel, on) }

// IncludeThread toggles the goroutine id
func (b *Builder) IncludeThread(on bool) *Builder { return b.setPart(PartThread, on) }

// IncludeTarget toggles the target
func (b *Builder) IncludeTarget(on bool) *Builder { return b.setPart(PartTarget, on) }

// IncludeLocation toggles file:line
func (b *Builder) IncludeLocation(on bool) *Builder { return b.setPart(PartLocation, on) }

// IncludeModule toggles the package path
func (b *Builder) IncludeModule(on bool) *Builder { return b.setPart(PartModule, on) }

// SetLevelPadding sets how the level name is padded
func (b *Builder) SetLevelPadding(p LevelPadding) *Builder {
	b.cfg.levelPadding = p
	return b
}

// SetThreadPadding sets how the goroutine id is padded
func (b *Builder) SetThreadPadding(p Padding) *Builder {
	b.cfg.threadPadding = p
	return b
}

// SetTargetPadding sets how the target is padded
func (b *Builder) SetTargetPadding(p Padding) *Builder {
	b.cfg.targetPadding = p
	return b
}

// SetTimeFormat sets a strftime pattern (%L adds milliseconds).
// An invalid pattern leaves the current format in place.
func (b *Builder) SetTimeFormat(pattern string) *Builder {
	p, err := newPattern(pattern)
	if err != nil {
		return b
	}
	b.cfg.timeKind = timeCustom
	b.cfg.timePattern = p
	return b
}

// SetTimeFormatRFC3339 renders timestamps as RFC 3339
func (b *Builder) SetTimeFormatRFC3339() *Builder {
	b.cfg.timeKind = timeRFC3339
	return b
}

// SetTimeFormatRFC2822 renders timestamps as RFC 2822
func (b *Builder) SetTimeFormatRFC2822() *Builder {
	b.cfg.timeKind = timeRFC2822
	return b
}

// SetTimeOffset renders timestamps at a fixed offset from UTC
func (b *Builder) SetTimeOffset(offset time.Duration) *Builder {
	b.cfg.location = time.FixedZone("", int(offset/time.Second))
	return b
}

// SetTimeOffsetToLocal renders timestamps in the local time zone
func (b *Builder) SetTimeOffsetToLocal() *Builder {
	b.cfg.location = nil
	return b
}

// SetLevelWindow restricts rendered records to levels between mostSevere
// and leastSevere inclusive. This is independent of the logger's own filter.
func (b *Builder) SetLevelWindow(mostSevere, leastSevere core.LevelFilter) *Builder {
	b.cfg.mostSevere = mostSevere
	b.cfg.leastSevere = leastSevere
	return b
}

// AddFilterAllow only renders records whose target starts with one of the allowed prefixes
func (b *Builder) AddFilterAllow(prefix string) *Builder {
	b.cfg.filterAllow = append(b.cfg.filterAllow, prefix)
	return b
}

// ClearFilterAllow removes all allow prefixes
func (b *Builder) ClearFilterAllow() *Builder {
	b.cfg.filterAllow = nil
	return b
}

// AddFilterIgnore skips records whose target starts with prefix
func (b *Builder) AddFilterIgnore(prefix string) *Builder {
	b.cfg.filterIgnore = append(b.cfg.filterIgnore, prefix)
	return b
}

// ClearFilterIgnore removes all ignore prefixes
func (b *Builder) ClearFilterIgnore() *Builder {
	b.cfg.filterIgnore = nil
	return b
}

// SetLevelColor sets the color of the level tag; nil disables it.
func (b *Builder) SetLevelColor(level core.Level, c termenv.Color) *Builder {
	if int(level) < len(b.cfg.levelColors) {
		b.cfg.levelColors[level] = c
	}
	return b
}

// SetEnableColors allows or forbids ANSI styling for sinks that support it
func (b *Builder) SetEnableColors(on bool) *Builder {
	b.cfg.enableColors = on
	return b
}

// SetMarkup enables expansion of inline style tags such as <red> and </>.
func (b *Builder) SetMarkup(on bool) *Builder {
	b.cfg.markup = on
	return b
}

// SetLineEnding sets the record terminator
func (b *Builder) SetLineEnding(e LineEnding) *Builder {
	b.cfg.lineEnding = e.String()
	return b
}

// SetTemplate replaces the fixed layout with a placeholder template such as
// "[time] [level:bold] [target]: [message]". An empty string restores the
// fixed layout.
func (b *Builder) SetTemplate(tmpl string) *Builder {
	b.cfg.template = tmpl
	return b
}

// Build returns an independent snapshot of the configuration.
func (b *Builder) Build() Config {
	cfg := b.cfg
	cfg.filterAllow = append([]string(nil), b.cfg.filterAllow...)
	cfg.filterIgnore = append([]string(nil), b.cfg.filterIgnore...)
	return cfg
}
