// Package sidecar builds the auxiliary files written next to metadata.json.
//
// # Shortcuts
//
// Cover art links become internet shortcut files:
//
//	creator := sidecar.NewShortcutCreator()
//	shortcuts := creator.CreateShortcuts(entry.Links)
//	// cover_itunes.url: "[iTunes-URL]\nURL=...\n"
//	// cover_kosmos.url: "[Kosmos-URL]\nURL=...\n"
//
// # ID3 Tags
//
// The tagDir layout writes a standalone ID3v2.4 tag per entry:
//
//	tagger := sidecar.NewTagger(sidecar.DefaultTagConfig())
//	data, err := tagger.CreateTag(model.CollectionSerie, entry, nil)
package sidecar
