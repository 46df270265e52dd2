package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrMissingTitle is returned when a directory name has to be derived
	// from the title but the entry has none.
	ErrMissingTitle = errors.New("missing title")

	// ErrEmptyName is returned when a title transliterates to an empty name.
	ErrEmptyName = errors.New("title yields an empty directory name")
)

// titleReplacements is the substitution table applied to titles, in order.
// No replacement produces a rune that is itself a key.
var titleReplacements = []struct {
	from rune
	to   string
}{
	{'ä', "ae"},
	{'Ä', "Ae"},
	{'ö', "oe"},
	{'Ö', "Oe"},
	{'ü', "ue"},
	{'Ü', "Ue"},
	{'ß', "ss"},
	{' ', "-"},
	{'.', ""},
	{':', ""},
	{',', ""},
	{';', ""},
}

var titleReplacementIndex = func() map[string]string {
	index := make(map[string]string, len(titleReplacements))
	for _, r := range titleReplacements {
		index[string(r.from)] = r.to
	}
	return index
}()

// Transliterate converts a title into a directory name.
//
// Umlauts and eszett become their ASCII digraphs, spaces become hyphens and
// the punctuation marks . : , ; are dropped. Every other character,
// including path separators, is kept byte for byte. Characters are compared
// in NFC, so a decomposed umlaut is substituted too, but unmatched ones are
// never normalized.
//
// Example:
//
//	Transliterate("Spezial: Die Fälle!") // "Spezial-Die-Faelle!"
func Transliterate(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))

	var it norm.Iter
	it.InitString(norm.NFC, title)
	for !it.Done() {
		start := it.Pos()
		segment := it.Next()
		if to, ok := titleReplacementIndex[string(segment)]; ok {
			sb.WriteString(to)
			continue
		}
		sb.WriteString(title[start:it.Pos()])
	}
	return sb.String()
}

// DigitWidth returns the number of decimal digits of n, 0 for n == 0.
func DigitWidth(n int) int {
	width := 0
	for n != 0 {
		width++
		n /= 10
	}
	return width
}

// ResolveName returns the directory name of an entry within its collection.
//
// Numbered entries with a number are named after the number, zero-padded to
// width. All other entries are named after their transliterated title.
func ResolveName(e *Entry, width int) (string, error) {
	if e.HasNumber() {
		return fmt.Sprintf("%0*d", width, e.Number), nil
	}
	if !e.HasTitle() {
		return "", ErrMissingTitle
	}
	name := Transliterate(*e.Title)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, *e.Title)
	}
	return name, nil
}

// PartName returns the directory name of a part: its number, unpadded.
func PartName(p *Part) string {
	return strconv.Itoa(p.Number)
}
