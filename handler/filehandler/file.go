package filehandler

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Path is the path to the log file
	Path string
	// MaxSize is the size in bytes above which the file is moved to
	// Path+".bak" before the next write (0 = never rotate)
	MaxSize int64
}

// ErrNoPath is returned when FileConfig.Path is empty.
var ErrNoPath = errors.New("filehandler: path is required")

// FileLogger is a WriteLogger on an append-mode file with size rotation.
type FileLogger struct {
	WriteLogger
	file *rotatingFile
}

// NewFileLogger opens cfg.Path for appending, creating missing parent
// directories, and removes a backup left over from a previous run.
func NewFileLogger(level core.LevelFilter, cfg formatter.Config, fc FileConfig) (*FileLogger, error) {
	if fc.Path == "" {
		return nil, ErrNoPath
	}

	if err := os.MkdirAll(filepath.Dir(fc.Path), 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory for %s", fc.Path)
	}

	rf := newRotatingFile(fc.Path, fc.MaxSize)
	rf.removeBackup()
	if err := rf.open(); err != nil {
		return nil, errors.Wrapf(err, "open log file %s", fc.Path)
	}

	h := &FileLogger{file: rf}
	initWriteLogger(&h.WriteLogger, level, cfg, rf)
	return h, nil
}

// Path returns the active log file path
func (h *FileLogger) Path() string {
	return h.file.path
}

var _ handler.Handler = (*FileLogger)(nil)
