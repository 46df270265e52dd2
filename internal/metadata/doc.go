// Package metadata reads the catalog JSON and writes the per-entry
// metadata.json files.
//
// # Reading
//
//	parser := metadata.NewParser()
//	doc, err := parser.ParseFile("Metadaten.json")
//
// Malformed JSON and missing required fields ("nummer", "teilNummer") are
// reported as errors naming the JSON path of the field.
//
// # Writing
//
// EncodeEntry and EncodePart produce the content of metadata.json. The
// "teile" array is never written, parts are exported to sub-directories
// with their own metadata.json.
package metadata
