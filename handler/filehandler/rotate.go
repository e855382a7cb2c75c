package filehandler

import (
	"os"

	"github.com/pkg/errors"
)

// rotatingFile is an append-mode file that moves itself to path.bak once
// it grows beyond maxSize. Writes are serialized by the owning Sink.
type rotatingFile struct {
	path    string
	file    *os.File
	size    int64
	maxSize int64
}

func newRotatingFile(path string, maxSize int64) *rotatingFile {
	return &rotatingFile{path: path, maxSize: maxSize}
}

func (f *rotatingFile) backupPath() string {
	return f.path + ".bak"
}

// removeBackup deletes a backup left by a previous run. A missing file is fine.
func (f *rotatingFile) removeBackup() {
	_ = os.Remove(f.backupPath())
}

func (f *rotatingFile) open() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}
	f.file = file
	f.size = info.Size()
	return nil
}

// Write rotates first when the file has grown beyond maxSize, then writes p.
// A failed rotation keeps writing to whichever file is open; a file that
// could not be reopened is retried on the next write.
func (f *rotatingFile) Write(p []byte) (int, error) {
	if f.file != nil && f.maxSize > 0 && f.size > f.maxSize {
		_ = f.rotate()
	}
	if f.file == nil {
		if err := f.open(); err != nil {
			return 0, err
		}
	}
	n, err := f.file.Write(p)
	f.size += int64(n)
	return n, err
}

// rotate moves path to path.bak, replacing any older backup, and reopens path.
func (f *rotatingFile) rotate() error {
	if err := f.file.Close(); err != nil {
		return errors.Wrap(err, "close for rotation")
	}
	f.file = nil

	renameErr := os.Rename(f.path, f.backupPath())

	if err := f.open(); err != nil {
		return errors.Wrap(err, "reopen after rotation")
	}
	if renameErr != nil {
		return errors.Wrap(renameErr, "move log file to backup")
	}
	return nil
}

// Sync commits the file to stable storage
func (f *rotatingFile) Sync() error {
	if f.file == nil {
		return nil
	}
	return f.file.Sync()
}

// Close closes the file
func (f *rotatingFile) Close() error {
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
