package ioutils

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the name of the lock file placed in a locked directory.
const LockFileName = ".d3f-export.lock"

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("directory is locked by another export")

// DirLock is an advisory lock on an output directory.
type DirLock struct {
	lock *flock.Flock
}

// LockDir takes the advisory lock of dir without blocking.
//
// Returns ErrLocked if another process already holds it.
// Release the lock with Unlock.
//
// Example:
//
//	lock, err := LockDir("/out")
//	if err != nil {
//	    return err
//	}
//	defer lock.Unlock()
func LockDir(dir string) (*DirLock, error) {
	lock := flock.New(filepath.Join(dir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, dir)
	}
	return &DirLock{lock: lock}, nil
}

// Path returns the path of the lock file.
func (l *DirLock) Path() string {
	return l.lock.Path()
}

// Unlock releases the lock. The lock file is left in place.
func (l *DirLock) Unlock() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
