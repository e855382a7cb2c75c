package logconf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings,
// e.g. SIMPLELOG_FORMAT_TIME_FORMAT.
const EnvPrefix = "SIMPLELOG"

// Settings is the declarative form of a handler tree.
type Settings struct {
	Format FormatSettings `mapstructure:"format"`
	Sinks  []SinkSettings `mapstructure:"sinks"`
}

// FormatSettings mirrors formatter.Builder.
type FormatSettings struct {
	Time         bool              `mapstructure:"time"`
	Level        bool              `mapstructure:"level"`
	Thread       bool              `mapstructure:"thread"`
	Target       bool              `mapstructure:"target"`
	Location     bool              `mapstructure:"location"`
	Module       bool              `mapstructure:"module"`
	TimeFormat   string            `mapstructure:"time_format"`
	TimeOffset   string            `mapstructure:"time_offset"`
	LevelPadding string            `mapstructure:"level_padding"`
	LineEnding   string            `mapstructure:"line_ending"`
	Template     string            `mapstructure:"template"`
	Markup       bool              `mapstructure:"markup"`
	Colors       bool              `mapstructure:"colors"`
	LevelColors  map[string]string `mapstructure:"level_colors"`
	Allow        []string          `mapstructure:"allow"`
	Ignore       []string          `mapstructure:"ignore"`
}

// SinkSettings describes one handler. Type is "term", "simple" or "file".
type SinkSettings struct {
	Type    string `mapstructure:"type"`
	Level   string `mapstructure:"level"`
	Mode    string `mapstructure:"mode"`
	Color   string `mapstructure:"color"`
	Path    string `mapstructure:"path"`
	MaxSize int64  `mapstructure:"max_size"`
}

// NewViper returns a viper instance with the defaults set and
// SIMPLELOG_* environment overrides enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format.time", true)
	v.SetDefault("format.level", true)
	v.SetDefault("format.thread", true)
	v.SetDefault("format.target", true)
	v.SetDefault("format.location", false)
	v.SetDefault("format.module", false)
	v.SetDefault("format.time_format", "%H:%M:%S")
	v.SetDefault("format.time_offset", "")
	v.SetDefault("format.level_padding", "off")
	v.SetDefault("format.line_ending", "lf")
	v.SetDefault("format.template", "")
	v.SetDefault("format.markup", false)
	v.SetDefault("format.colors", true)
}

// Load decodes settings from v. Missing keys take their defaults; without
// any sink a single info-level terminal sink is used.
func Load(v *viper.Viper) (Settings, error) {
	setDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decode log settings")
	}
	if len(s.Sinks) == 0 {
		s.Sinks = []SinkSettings{{Type: "term", Level: "info", Mode: "mixed", Color: "auto"}}
	}
	return s, nil
}
