package ioutils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultFileMode is the mode of written files (rw-r--r--).
	DefaultFileMode os.FileMode = 0o644

	// DefaultDirMode is the mode of created directories (rwxr-xr-x).
	DefaultDirMode os.FileMode = 0o755
)

// WriteFileAtomic writes data to path so that readers never observe a
// partially written file.
//
// The data is written to a temporary file in the same directory, which is
// then renamed over path. An existing file at path is replaced.
//
// Example:
//
//	err := WriteFileAtomic(ctx, "/out/Serie/001/metadata.json", data, DefaultFileMode)
func WriteFileAtomic(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// If the directory already exists, no error is returned. This stays true
// when several goroutines create the same directory at once.
//
// Example:
//
//	err := EnsureDir("/out/Serie/001", DefaultDirMode)
//	// Creates /out, /out/Serie and /out/Serie/001 if needed
func EnsureDir(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsNotExist reports whether err means a missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
