package dto

import (
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// JSONDocument represents the root of the catalog JSON.
//
// A nil collection pointer means the key was absent (or null).
type JSONDocument struct {
	Serie           *[]JSONFolge `json:"serie,omitempty" validate:"omitempty,dive"`
	Spezial         *[]JSONEntry `json:"spezial,omitempty" validate:"omitempty,dive"`
	Kurzgeschichten *[]JSONEntry `json:"kurzgeschichten,omitempty" validate:"omitempty,dive"`
	DieDr3i         *[]JSONFolge `json:"die_dr3i,omitempty" validate:"omitempty,dive"`
}

// ToDocument converts JSONDocument to a model.Document.
func (jd *JSONDocument) ToDocument() *model.Document {
	doc := model.NewDocument()

	if jd.Serie != nil {
		doc.SetCollection(model.CollectionSerie, folgenToEntries(*jd.Serie))
	}
	if jd.Spezial != nil {
		doc.SetCollection(model.CollectionSpezial, entriesToEntries(*jd.Spezial))
	}
	if jd.Kurzgeschichten != nil {
		doc.SetCollection(model.CollectionKurzgeschichten, entriesToEntries(*jd.Kurzgeschichten))
	}
	if jd.DieDr3i != nil {
		doc.SetCollection(model.CollectionDieDr3i, folgenToEntries(*jd.DieDr3i))
	}

	return doc
}

func folgenToEntries(folgen []JSONFolge) []*model.Entry {
	entries := make([]*model.Entry, 0, len(folgen))
	for i := range folgen {
		entries = append(entries, folgen[i].ToEntry())
	}
	return entries
}

func entriesToEntries(jsonEntries []JSONEntry) []*model.Entry {
	entries := make([]*model.Entry, 0, len(jsonEntries))
	for i := range jsonEntries {
		entries = append(entries, jsonEntries[i].ToEntry(model.EntryTitled))
	}
	return entries
}
