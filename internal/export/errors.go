package export

import (
	"errors"
	"fmt"

	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

var (
	// ErrNoSuchDirectory is returned when the base directory is missing
	// or is not a directory.
	ErrNoSuchDirectory = errors.New("no such directory")

	// ErrUnknownOutputType is returned for an unsupported output type.
	ErrUnknownOutputType = errors.New("unknown output type")

	// ErrNameCollision is returned when two siblings resolve to the same
	// directory name. The later sibling is not exported.
	ErrNameCollision = errors.New("directory name already used")
)

// CollectionError is a fatal failure to create a collection directory.
type CollectionError struct {
	Collection model.CollectionKind
	Path       string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("couldn't create directory at %q: %v", e.Path, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

// EntryError is a recoverable failure to export one top-level entry.
// The remaining entries are still exported.
type EntryError struct {
	Collection model.CollectionKind

	// Position is the 0-based index of the entry in its collection.
	Position int

	// Name is the resolved directory name, empty if resolution failed.
	Name string

	// Title is the entry title, "(nil)" when absent.
	Title string

	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("couldn't export metadata for %q: %v", e.Title, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
