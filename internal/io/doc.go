// Package ioutils provides file system helpers for the exporter.
//
// # File Operations
//
//	// Replace a file atomically
//	err := ioutils.WriteFileAtomic(ctx, "/out/Serie/001/metadata.json", data, ioutils.DefaultFileMode)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/out/Serie/001", ioutils.DefaultDirMode)
//
// # Locking
//
// LockDir guards an output directory against concurrent exports:
//
//	lock, err := ioutils.LockDir("/out")
//	if errors.Is(err, ioutils.ErrLocked) {
//	    // another export is running
//	}
//	defer lock.Unlock()
package ioutils
