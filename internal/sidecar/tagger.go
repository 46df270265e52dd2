package sidecar

import (
	"bytes"
	"strconv"

	"github.com/bogem/id3v2"

	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// TagFileName is the name of the ID3 tag file written by the tagDir layout.
const TagFileName = "metadata.id3"

// TagConfig holds the values that do not come from the catalog.
//
// Example:
//
//	cfg := &TagConfig{
//	    Artist:   "Die drei ???",
//	    Genre:    "Hörspiel",
//	    Language: "deu",
//	}
type TagConfig struct {
	// Artist is written to TPE1 and TPE2 (album artist).
	Artist string

	// Genre is written to TCON. Empty leaves the frame out.
	Genre string

	// Language is the ISO 639-2 code of comment frames.
	Language string
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist:   "Die drei ???",
		Genre:    "Hörspiel",
		Language: "deu",
	}
}

// Tagger builds standalone ID3v2.4 tags from catalog entries.
//
// The tag can be prepended to an audio file by an encoder, or read by
// tools that understand ID3 sidecars. Frames written:
//   - TIT2 title, TALB collection, TPE1/TPE2 artist
//   - TRCK entry or part number
//   - TCOM author, TEXT script author
//   - TDRC release date
//   - COMM short summary
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	data, err := tagger.CreateTag(model.CollectionSerie, entry, nil)
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// CreateTag returns the encoded tag of an entry, or of one of its parts
// when part is not nil. The entry then provides the album title.
func (t *Tagger) CreateTag(collection model.CollectionKind, entry *model.Entry, part *model.Part) ([]byte, error) {
	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	unit := entry
	album := collection.Name()
	if part != nil {
		unit = &part.Entry
		if entry.TitleText() != "" {
			album = entry.TitleText()
		}
	}

	tag.SetTitle(unit.TitleText())
	tag.SetAlbum(album)

	if t.config.Artist != "" {
		tag.SetArtist(t.config.Artist)
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, t.config.Artist)
	}
	if t.config.Genre != "" {
		tag.SetGenre(t.config.Genre)
	}

	switch {
	case part != nil:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(part.Number))
	case entry.HasNumber():
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(entry.Number))
	}

	if unit.Info.Author != "" {
		tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, unit.Info.Author)
	}
	if unit.Info.ScriptAuthor != "" {
		tag.AddTextFrame("TEXT", id3v2.EncodingUTF8, unit.Info.ScriptAuthor)
	}
	if unit.Info.ReleaseDate != "" {
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, unit.Info.ReleaseDate)
	}
	if unit.Info.ShortSummary != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    t.config.Language,
			Description: "",
			Text:        unit.Info.ShortSummary,
		})
	}

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
