package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	ctx := context.Background()

	require.NoError(t, WriteFileAtomic(ctx, path, []byte("first"), DefaultFileMode))
	require.NoError(t, WriteFileAtomic(ctx, path, []byte("second"), DefaultFileMode))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, info.Mode().Perm())

	// No temp files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "metadata.json")
	err := WriteFileAtomic(context.Background(), path, []byte("x"), DefaultFileMode)
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
}

func TestWriteFileAtomic_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "metadata.json")
	require.ErrorIs(t, WriteFileAtomic(ctx, path, []byte("x"), DefaultFileMode), context.Canceled)
	assert.NoFileExists(t, path)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Serie", "001", "1")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = EnsureDir(path, DefaultDirMode)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.True(t, IsDir(path))
	assert.NoError(t, EnsureDir(path, DefaultDirMode))
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Serie")
	require.NoError(t, os.WriteFile(file, []byte("x"), DefaultFileMode))

	assert.Error(t, EnsureDir(filepath.Join(file, "001"), DefaultDirMode))
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, DefaultFileMode))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestLockDir(t *testing.T) {
	dir := t.TempDir()

	lock, err := LockDir(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, LockFileName), lock.Path())

	_, err = LockDir(dir)
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, lock.Unlock())

	again, err := LockDir(dir)
	require.NoError(t, err)
	assert.NoError(t, again.Unlock())
}
