// Package logconf builds a handler tree from declarative settings read
// with viper (YAML, JSON, TOML or environment variables):
//
//	format:
//	  thread: false
//	  level_padding: right
//	sinks:
//	  - {type: term, level: info, mode: mixed, color: auto}
//	  - {type: file, level: debug, path: logs/app.log, max_size: 1048576}
//
// Environment variables use the SIMPLELOG_ prefix with dots replaced by
// underscores, e.g. SIMPLELOG_FORMAT_TIME_FORMAT.
package logconf
