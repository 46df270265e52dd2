package export

import (
	"fmt"
)

// OutputType selects the layout written by the Exporter.
type OutputType int

const (
	// OutputWebDir writes metadata.json and .url shortcuts per directory.
	OutputWebDir OutputType = iota

	// OutputTagDir writes a standalone ID3 tag (metadata.id3) per directory.
	OutputTagDir
)

// OutputTypes lists every supported output type.
var OutputTypes = []OutputType{OutputWebDir, OutputTagDir}

// String returns the selector of the output type, as accepted by ParseOutputType.
func (t OutputType) String() string {
	switch t {
	case OutputWebDir:
		return "webDir"
	case OutputTagDir:
		return "tagDir"
	default:
		return fmt.Sprintf("OutputType(%d)", int(t))
	}
}

// Valid reports whether t is a known output type.
func (t OutputType) Valid() bool {
	return t == OutputWebDir || t == OutputTagDir
}

// ParseOutputType returns the output type for its selector, e.g. "webDir".
func ParseOutputType(value string) (OutputType, error) {
	for _, t := range OutputTypes {
		if t.String() == value {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOutputType, value)
}
