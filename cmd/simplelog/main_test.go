package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/simplelog/logger"
)

func TestEmit_WritesConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")
	cfgPath := filepath.Join(dir, "simplelog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
format:
  time: false
  thread: false
  target: false
sinks:
  - type: file
    level: debug
    path: `+logPath+`
`), 0644))

	rootCmd.SetArgs([]string{"emit", "-c", cfgPath, "--env-file", filepath.Join(dir, "missing.env"), "-n", "2", "-m", "ping"})
	require.NoError(t, rootCmd.Execute())
	require.NoError(t, logger.Global().Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"[ERROR] ping", "[WARN] ping", "[INFO] ping", "[DEBUG] ping",
		"[ERROR] ping", "[WARN] ping", "[INFO] ping", "[DEBUG] ping",
		"[INFO] emitted 2 rounds",
	}, lines)
}
