package model

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Die Gruft der Piraten", "Die-Gruft-der-Piraten"},
		{"Käpt'n Blaubär", "Kaept'n-Blaubaer"},
		{"Spezial: Die Fälle!", "Spezial-Die-Faelle!"},
		{"Ärger, Öl; Übel.", "Aerger-Oel-Uebel"},
		{"Straße", "Strasse"},
		{"ÄÖÜäöüß", "AeOeUeaeoeuess"},
		{"Ça va?", "Ça-va?"},
		{"東京 🎧", "東京-🎧"},
		{"AC/DC", "AC/DC"},
		{"Ka\u0308se", "Kaese"},
		{"Cafe\u0301", "Cafe\u0301"},
		{"\u2126hm", "\u2126hm"},
		{"\u212bngstro\u0308m", "\u212bngstroem"},
		{"\u212bngström", "\u212bngstroem"},
		{"Fa\u0308lle: U\u0308bel", "Faelle-Uebel"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Transliterate(tt.input))
		})
	}
}

func TestTransliterate_Idempotent(t *testing.T) {
	titles := []string{
		"Die Gruft der Piraten",
		"Spezial: Die Fälle!",
		"Ärger, Öl; Übel.",
		"Ka\u0308se & Brot",
	}

	for _, title := range titles {
		once := Transliterate(title)
		assert.Equal(t, once, Transliterate(once), "title %q", title)
	}
}

func TestDigitWidth(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{230, 3},
		{1000, 4},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, DigitWidth(tt.n))
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name    string
		entry   *Entry
		width   int
		want    string
		wantErr error
	}{
		{
			name:  "numbered padded",
			entry: &Entry{Kind: EntryNumbered, Number: 7, Title: NewTitle("und der Karpatenhund")},
			width: 3,
			want:  "007",
		},
		{
			name:  "numbered zero",
			entry: &Entry{Kind: EntryNumbered, Number: 0},
			width: 1,
			want:  "0",
		},
		{
			name:  "numbered wider than width",
			entry: &Entry{Kind: EntryNumbered, Number: 123},
			width: 2,
			want:  "123",
		},
		{
			name:  "numbered without number uses title",
			entry: &Entry{Kind: EntryNumbered, Number: NoNumber, Title: NewTitle("Das Geheimnis der Särge")},
			width: 3,
			want:  "Das-Geheimnis-der-Saerge",
		},
		{
			name:    "numbered without number or title",
			entry:   &Entry{Kind: EntryNumbered, Number: NoNumber},
			width:   3,
			wantErr: ErrMissingTitle,
		},
		{
			name:  "titled ignores number",
			entry: &Entry{Kind: EntryTitled, Number: 5, Title: NewTitle("Spezial: Die Fälle!")},
			width: 2,
			want:  "Spezial-Die-Faelle!",
		},
		{
			name:    "titled missing title",
			entry:   &Entry{Kind: EntryTitled},
			width:   2,
			wantErr: ErrMissingTitle,
		},
		{
			name:    "present but empty title",
			entry:   &Entry{Kind: EntryTitled, Title: NewTitle("")},
			width:   2,
			wantErr: ErrEmptyName,
		},
		{
			name:    "title of punctuation only",
			entry:   &Entry{Kind: EntryTitled, Title: NewTitle("...;")},
			width:   2,
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveName(tt.entry, tt.width)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveName_LexicographicOrder(t *testing.T) {
	const size = 120
	width := DigitWidth(size)

	names := make([]string, 0, size)
	for i := 0; i < size; i++ {
		name, err := ResolveName(&Entry{Kind: EntryNumbered, Number: i}, width)
		require.NoError(t, err)
		require.Len(t, name, width)
		names = append(names, name)
	}

	assert.True(t, sort.StringsAreSorted(names))
}

func TestPartName(t *testing.T) {
	assert.Equal(t, "1", PartName(&Part{Number: 1}))
	assert.Equal(t, "12", PartName(&Part{Number: 12}))
}

func TestDocument_Collections(t *testing.T) {
	doc := NewDocument()
	doc.SetCollection(CollectionSpezial, nil)
	doc.SetCollection(CollectionSerie, []*Entry{{Kind: EntryNumbered, Number: 1}, {Kind: EntryNumbered, Number: 2}})

	entries, ok := doc.Collection(CollectionSpezial)
	assert.True(t, ok)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, ok = doc.Collection(CollectionDieDr3i)
	assert.False(t, ok)

	assert.Equal(t, 2, doc.EntryCount())
}

func TestCollectionKind_Names(t *testing.T) {
	tests := []struct {
		kind      CollectionKind
		name      string
		key       string
		entryKind EntryKind
	}{
		{CollectionSerie, "Serie", "serie", EntryNumbered},
		{CollectionSpezial, "Spezial", "spezial", EntryTitled},
		{CollectionKurzgeschichten, "Kurzgeschichten", "kurzgeschichten", EntryTitled},
		{CollectionDieDr3i, "DiE_DR3i", "die_dr3i", EntryNumbered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.Name())
			assert.Equal(t, tt.key, tt.kind.Key())
			assert.Equal(t, tt.entryKind, tt.kind.EntryKind())
		})
	}
}

func TestLinks_URL(t *testing.T) {
	var missing *Links
	assert.Empty(t, missing.URL(LinkCoverItunes))

	links := &Links{CoverItunes: "https://itunes.example/cover.jpg"}
	assert.Equal(t, "https://itunes.example/cover.jpg", links.URL(LinkCoverItunes))
	assert.Empty(t, links.URL(LinkCoverKosmos))

	assert.Equal(t, "cover_itunes.url", LinkCoverItunes.FileName())
	assert.Equal(t, "Kosmos-URL", LinkCoverKosmos.DisplayName())
}
