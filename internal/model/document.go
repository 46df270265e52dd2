package model

// CollectionKind is one of the fixed top-level groupings of the catalog.
type CollectionKind int

const (
	// CollectionSerie holds the numbered main series.
	CollectionSerie CollectionKind = iota

	// CollectionSpezial holds titled specials.
	CollectionSpezial

	// CollectionKurzgeschichten holds titled short story collections.
	CollectionKurzgeschichten

	// CollectionDieDr3i holds the numbered spin-off series.
	CollectionDieDr3i
)

// CollectionKinds lists every collection kind in export order.
var CollectionKinds = []CollectionKind{
	CollectionSerie,
	CollectionSpezial,
	CollectionKurzgeschichten,
	CollectionDieDr3i,
}

// Name returns the directory name of the collection.
func (k CollectionKind) Name() string {
	switch k {
	case CollectionSerie:
		return "Serie"
	case CollectionSpezial:
		return "Spezial"
	case CollectionKurzgeschichten:
		return "Kurzgeschichten"
	case CollectionDieDr3i:
		return "DiE_DR3i"
	default:
		return ""
	}
}

// Key returns the JSON key of the collection in the input document.
func (k CollectionKind) Key() string {
	switch k {
	case CollectionSerie:
		return "serie"
	case CollectionSpezial:
		return "spezial"
	case CollectionKurzgeschichten:
		return "kurzgeschichten"
	case CollectionDieDr3i:
		return "die_dr3i"
	default:
		return ""
	}
}

// EntryKind returns the shape of the entries stored in the collection.
func (k CollectionKind) EntryKind() EntryKind {
	switch k {
	case CollectionSerie, CollectionDieDr3i:
		return EntryNumbered
	default:
		return EntryTitled
	}
}

// String implements fmt.Stringer.
func (k CollectionKind) String() string {
	return k.Name()
}

// Document is the root of the catalog.
//
// Collections only contains the kinds present in the input. A present but
// empty collection maps to a non-nil empty slice.
type Document struct {
	Collections map[CollectionKind][]*Entry
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{Collections: make(map[CollectionKind][]*Entry)}
}

// Collection returns the entries of a collection and whether it is present.
func (d *Document) Collection(kind CollectionKind) ([]*Entry, bool) {
	if d == nil || d.Collections == nil {
		return nil, false
	}
	entries, ok := d.Collections[kind]
	return entries, ok
}

// SetCollection stores the entries of a collection, marking it present.
func (d *Document) SetCollection(kind CollectionKind, entries []*Entry) {
	if d.Collections == nil {
		d.Collections = make(map[CollectionKind][]*Entry)
	}
	if entries == nil {
		entries = []*Entry{}
	}
	d.Collections[kind] = entries
}

// EntryCount returns the number of top-level entries across all collections.
func (d *Document) EntryCount() int {
	count := 0
	for _, kind := range CollectionKinds {
		entries, _ := d.Collection(kind)
		count += len(entries)
	}
	return count
}
