// Log file rotation for long-lived argue processes, watch mode in particular.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig controls size-based log file rotation.
type RotationConfig struct {
	// MaxSizeMB is the maximum size of the log file in megabytes before
	// rotation occurs. A value of 0 disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	// A value of 0 keeps no backups.
	MaxBackups int
}

// DefaultRotationConfig returns a RotationConfig with sensible defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// RotatingWriter wraps a log file and rotates it when it grows past the
// configured size. Rotated files carry numeric suffixes: debug.log.1 is
// the most recent backup, debug.log.2 the one before, up to MaxBackups.
// It is safe for concurrent use.
type RotatingWriter struct {
	mu sync.Mutex

	filePath   string
	maxSizeB   int64
	maxBackups int

	file        *os.File
	currentSize int64
}

// NewRotatingWriter opens filePath for appending and returns a writer that
// rotates the file once a write would push it past cfg.MaxSizeMB.
//
// If cfg.MaxSizeMB is 0, rotation is disabled and the writer behaves like
// a plain file writer.
func NewRotatingWriter(filePath string, cfg RotationConfig) (*RotatingWriter, error) {
	w := &RotatingWriter{
		filePath:   filePath,
		maxSizeB:   int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxBackups: cfg.MaxBackups,
	}

	if err := w.openFile(); err != nil {
		return nil, err
	}

	return w, nil
}

// openFile opens the log file for appending and records its current size.
// The caller must hold the mutex.
func (w *RotatingWriter) openFile() error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(w.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}

	w.file = file
	w.currentSize = info.Size()
	return nil
}

// Write implements io.Writer. It appends p to the log file, rotating first
// when the write would exceed the size limit.
func (w *RotatingWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, fmt.Errorf("log file is closed")
	}

	if w.maxSizeB > 0 && w.currentSize+int64(len(p)) > w.maxSizeB {
		if err := w.rotate(); err != nil {
			// A failed rotation must not drop the record. Keep
			// appending to the oversized file and surface the
			// problem on stderr.
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	n, err = w.file.Write(p)
	w.currentSize += int64(n)
	return n, err
}

// rotate closes the current file, shifts existing backups up by one, moves
// the closed file into the .1 slot, and reopens a fresh log file.
// The caller must hold the mutex.
func (w *RotatingWriter) rotate() error {
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	w.file = nil

	w.shiftBackups()

	if err := os.Rename(w.filePath, w.backupPath(1)); err != nil {
		// Reopen the original so logging continues even though the
		// rename failed.
		if openErr := w.openFile(); openErr != nil {
			return fmt.Errorf("rename log file failed and reopen failed: %w", openErr)
		}
		return fmt.Errorf("rename log file: %w", err)
	}

	return w.openFile()
}

// shiftBackups moves each backup file up one slot, newest first so nothing
// is overwritten. The oldest backup falls off the end.
func (w *RotatingWriter) shiftBackups() {
	if w.maxBackups <= 0 {
		// No backups kept. The current file is about to take the .1
		// slot, so clear it.
		os.Remove(w.backupPath(1))
		return
	}

	os.Remove(w.backupPath(w.maxBackups))

	for i := w.maxBackups - 1; i >= 1; i-- {
		if _, err := os.Stat(w.backupPath(i)); err == nil {
			os.Rename(w.backupPath(i), w.backupPath(i+1))
		}
	}
}

// backupPath returns the path for a backup file with the given number.
func (w *RotatingWriter) backupPath(n int) string {
	return fmt.Sprintf("%s.%d", w.filePath, n)
}

// Sync flushes any buffered data to the underlying file.
func (w *RotatingWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close syncs and closes the log file. Further writes fail.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}

	w.file = nil
	return nil
}

// CurrentSize returns the current size of the log file in bytes.
func (w *RotatingWriter) CurrentSize() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.currentSize
}

// FilePath returns the path to the active log file.
func (w *RotatingWriter) FilePath() string {
	return w.filePath
}
