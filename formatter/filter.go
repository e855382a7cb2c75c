package formatter

import (
	"strings"

	"github.com/philipp01105/simplelog/core"
)

// Skip reports whether rec must not be rendered under this configuration:
// its level is outside the level window (an unset upper bound admits
// every level), its target matches no allow
// prefix, or its target matches an ignore prefix.
func (c *Config) Skip(rec *core.Record) bool {
	least := c.leastSevere
	if least == core.Off {
		least = core.FilterTrace
	}
	if rec.Level > core.Level(least) || rec.Level < core.Level(c.mostSevere) {
		return true
	}

	if len(c.filterAllow) > 0 && !hasAnyPrefix(rec.Target, c.filterAllow) {
		return true
	}

	if len(c.filterIgnore) > 0 && hasAnyPrefix(rec.Target, c.filterIgnore) {
		return true
	}

	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
