// Package model defines the in-memory catalog used throughout
// the d3f-metadata-exporter application.
//
// # Document
//
// Document holds up to four fixed collections, each an ordered list of
// entries:
//
//	entries, ok := doc.Collection(model.CollectionSerie)
//
// # Entry
//
// Entry is a tagged variant: numbered installments (EntryNumbered) are named
// after their number, titled specials (EntryTitled) after their title.
// Entries may contain Parts, which are exported one level deeper.
//
// # Directory Names
//
// ResolveName derives the directory name of an entry:
//
//	width := model.DigitWidth(len(entries))
//	name, err := model.ResolveName(entry, width) // "007" or "Die-Gruft-der-Piraten"
//
// Titles go through Transliterate, a fixed character substitution table
// (umlauts to digraphs, space to hyphen, . : , ; removed).
package model
