package metadata

import (
	"bytes"
	"encoding/json"

	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata/dto"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// FileName is the name of the metadata file written into every entry directory.
const FileName = "metadata.json"

// EncodeEntry serializes an entry for its metadata.json.
//
// Parts are omitted, each part is written to its own directory.
// Numbered entries keep their "nummer" field.
func EncodeEntry(e *model.Entry) ([]byte, error) {
	if e.Kind == model.EntryNumbered {
		return marshal(dto.FromFolge(e))
	}
	return marshal(dto.FromEntry(e))
}

// EncodePart serializes a part for its metadata.json, nested parts omitted.
func EncodePart(p *model.Part) ([]byte, error) {
	return marshal(dto.FromPart(p))
}

// marshal writes indented JSON without HTML escaping, so URLs stay readable.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
