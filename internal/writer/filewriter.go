// Package writer exposes sinks for encoded tag streams.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes encoded bytes to a filesystem path.
//
// By default the target is created if absent, opened read-write, truncated
// and overwritten in place. With Atomic set the bytes go to a temp file in
// the same directory which is then renamed over the target.
type FileWriter struct {
	Path   string
	Atomic bool
	Sync   bool
	Perm   os.FileMode // zero selects 0644
}

// ShortWriteError reports a write that stored fewer bytes than requested.
type ShortWriteError struct {
	Written, Want int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write: %d of %d bytes", e.Written, e.Want)
}

// Write stores buf at the configured path.
func (w *FileWriter) Write(buf []byte) error {
	if w.Atomic {
		return w.writeAtomic(buf)
	}
	return w.writeInPlace(buf)
}

func (w *FileWriter) perm() os.FileMode {
	if w.Perm == 0 {
		return 0o644
	}
	return w.Perm
}

func (w *FileWriter) writeInPlace(buf []byte) error {
	f, err := os.OpenFile(w.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, w.perm())
	if err != nil {
		return fmt.Errorf("open %s: %w", w.Path, err)
	}
	n, writeErr := f.Write(buf)
	if writeErr == nil && n < len(buf) {
		writeErr = &ShortWriteError{Written: n, Want: len(buf)}
	}
	if writeErr == nil && w.Sync {
		writeErr = datasync(f)
	}
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", w.Path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", w.Path, closeErr)
	}
	return nil
}

func (w *FileWriter) writeAtomic(buf []byte) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".nbtkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	n, err := tmpFile.Write(buf)
	if err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if n < len(buf) {
		return fmt.Errorf("write temp file: %w", &ShortWriteError{Written: n, Want: len(buf)})
	}

	if w.Sync {
		if err := datasync(tmpFile); err != nil {
			return fmt.Errorf("sync temp file: %w", err)
		}
	}
	if err := tmpFile.Chmod(w.perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil // Don't clean up in defer

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
