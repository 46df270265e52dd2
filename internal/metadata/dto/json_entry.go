package dto

import (
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// JSONEntry represents an entry ("Höreinheit") of the catalog JSON.
//
// The same shape is used for reading the input document and for writing
// metadata.json. Teile is only filled when reading.
type JSONEntry struct {
	Titel                   *string           `json:"titel,omitempty"`
	Autor                   string            `json:"autor,omitempty"`
	HoerspielskriptAutor    string            `json:"hörspielskriptautor,omitempty"`
	Gesamtbeschreibung      string            `json:"gesamtbeschreibung,omitempty"`
	Kurzbeschreibung        string            `json:"kurzbeschreibung,omitempty"`
	Beschreibung            string            `json:"beschreibung,omitempty"`
	Metabeschreibung        string            `json:"metabeschreibung,omitempty"`
	Veroeffentlichungsdatum string            `json:"veröffentlichungsdatum,omitempty"`
	Kapitel                 []JSONKapitel     `json:"kapitel,omitempty"`
	Sprechrollen            []JSONSprechrolle `json:"sprechrollen,omitempty"`
	Links                   *JSONLinks        `json:"links,omitempty"`
	Unvollstaendig          bool              `json:"unvollständig,omitempty"`
	Teile                   []JSONTeil        `json:"teile,omitempty" validate:"dive"`
}

// JSONFolge is an entry of a numbered collection.
type JSONFolge struct {
	Nummer *int `json:"nummer" validate:"required"`
	JSONEntry
}

// JSONTeil is a part of an entry.
type JSONTeil struct {
	TeilNummer *int   `json:"teilNummer" validate:"required"`
	Buchstabe  string `json:"buchstabe,omitempty"`
	JSONEntry
}

// JSONKapitel is a chapter mark, times in milliseconds.
type JSONKapitel struct {
	Titel string `json:"titel"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// JSONSprechrolle is a speaking role.
type JSONSprechrolle struct {
	Rolle     string `json:"rolle"`
	Sprecher  string `json:"sprecher"`
	Pseudonym string `json:"pseudonym,omitempty"`
}

// JSONLinks holds the external URLs of an entry.
type JSONLinks struct {
	JSON             string `json:"json,omitempty"`
	FFMetadata       string `json:"ffmetadata,omitempty"`
	Cover            string `json:"cover,omitempty"`
	Cover2           string `json:"cover2,omitempty"`
	CoverItunes      string `json:"cover_itunes,omitempty"`
	CoverKosmos      string `json:"cover_kosmos,omitempty"`
	DreiFragezeichen string `json:"dreifragezeichen,omitempty"`
	AppleMusic       string `json:"appleMusic,omitempty"`
	Spotify          string `json:"spotify,omitempty"`
	Bookbeat         string `json:"bookbeat,omitempty"`
	AmazonMusic      string `json:"amazonMusic,omitempty"`
	Amazon           string `json:"amazon,omitempty"`
	YouTubeMusic     string `json:"youTubeMusic,omitempty"`
}

// ToEntry converts JSONEntry to a model.Entry of the given kind.
func (je *JSONEntry) ToEntry(kind model.EntryKind) *model.Entry {
	entry := &model.Entry{
		Kind:   kind,
		Number: model.NoNumber,
		Info: model.Info{
			Author:          je.Autor,
			ScriptAuthor:    je.HoerspielskriptAutor,
			OverallSummary:  je.Gesamtbeschreibung,
			ShortSummary:    je.Kurzbeschreibung,
			Description:     je.Beschreibung,
			MetaDescription: je.Metabeschreibung,
			ReleaseDate:     je.Veroeffentlichungsdatum,
			Incomplete:      je.Unvollstaendig,
		},
		Links: je.Links.toLinks(),
	}
	if je.Titel != nil {
		entry.Title = model.NewTitle(*je.Titel)
	}

	for _, k := range je.Kapitel {
		entry.Info.Chapters = append(entry.Info.Chapters, model.Chapter{Title: k.Titel, Start: k.Start, End: k.End})
	}
	for _, s := range je.Sprechrollen {
		entry.Info.Roles = append(entry.Info.Roles, model.Role{Role: s.Rolle, Speaker: s.Sprecher, Pseudonym: s.Pseudonym})
	}

	for i := range je.Teile {
		entry.Parts = append(entry.Parts, je.Teile[i].ToPart())
	}

	return entry
}

// ToEntry converts JSONFolge to a numbered model.Entry.
func (jf *JSONFolge) ToEntry() *model.Entry {
	entry := jf.JSONEntry.ToEntry(model.EntryNumbered)
	if jf.Nummer != nil {
		entry.Number = *jf.Nummer
	}
	return entry
}

// ToPart converts JSONTeil to a model.Part.
func (jt *JSONTeil) ToPart() *model.Part {
	part := &model.Part{
		Entry:  *jt.JSONEntry.ToEntry(model.EntryTitled),
		Letter: jt.Buchstabe,
	}
	if jt.TeilNummer != nil {
		part.Number = *jt.TeilNummer
	}
	return part
}

func (jl *JSONLinks) toLinks() *model.Links {
	if jl == nil {
		return nil
	}
	return &model.Links{
		JSON:             jl.JSON,
		FFMetadata:       jl.FFMetadata,
		Cover:            jl.Cover,
		Cover2:           jl.Cover2,
		CoverItunes:      jl.CoverItunes,
		CoverKosmos:      jl.CoverKosmos,
		DreiFragezeichen: jl.DreiFragezeichen,
		AppleMusic:       jl.AppleMusic,
		Spotify:          jl.Spotify,
		Bookbeat:         jl.Bookbeat,
		AmazonMusic:      jl.AmazonMusic,
		Amazon:           jl.Amazon,
		YouTubeMusic:     jl.YouTubeMusic,
	}
}

// FromEntry converts a model.Entry back to its JSON shape.
// Parts are left out, each part carries its own file.
func FromEntry(e *model.Entry) *JSONEntry {
	je := &JSONEntry{
		Autor:                   e.Info.Author,
		HoerspielskriptAutor:    e.Info.ScriptAuthor,
		Gesamtbeschreibung:      e.Info.OverallSummary,
		Kurzbeschreibung:        e.Info.ShortSummary,
		Beschreibung:            e.Info.Description,
		Metabeschreibung:        e.Info.MetaDescription,
		Veroeffentlichungsdatum: e.Info.ReleaseDate,
		Unvollstaendig:          e.Info.Incomplete,
		Links:                   fromLinks(e.Links),
	}
	if e.HasTitle() {
		title := *e.Title
		je.Titel = &title
	}
	for _, c := range e.Info.Chapters {
		je.Kapitel = append(je.Kapitel, JSONKapitel{Titel: c.Title, Start: c.Start, End: c.End})
	}
	for _, r := range e.Info.Roles {
		je.Sprechrollen = append(je.Sprechrollen, JSONSprechrolle{Rolle: r.Role, Sprecher: r.Speaker, Pseudonym: r.Pseudonym})
	}
	return je
}

// FromFolge converts a numbered model.Entry to its JSON shape, parts left out.
func FromFolge(e *model.Entry) *JSONFolge {
	number := e.Number
	return &JSONFolge{Nummer: &number, JSONEntry: *FromEntry(e)}
}

// FromPart converts a model.Part to its JSON shape, nested parts left out.
func FromPart(p *model.Part) *JSONTeil {
	number := p.Number
	return &JSONTeil{TeilNummer: &number, Buchstabe: p.Letter, JSONEntry: *FromEntry(&p.Entry)}
}

func fromLinks(l *model.Links) *JSONLinks {
	if l == nil {
		return nil
	}
	return &JSONLinks{
		JSON:             l.JSON,
		FFMetadata:       l.FFMetadata,
		Cover:            l.Cover,
		Cover2:           l.Cover2,
		CoverItunes:      l.CoverItunes,
		CoverKosmos:      l.CoverKosmos,
		DreiFragezeichen: l.DreiFragezeichen,
		AppleMusic:       l.AppleMusic,
		Spotify:          l.Spotify,
		Bookbeat:         l.Bookbeat,
		AmazonMusic:      l.AmazonMusic,
		Amazon:           l.Amazon,
		YouTubeMusic:     l.YouTubeMusic,
	}
}
