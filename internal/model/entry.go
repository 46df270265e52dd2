package model

// NoNumber marks a numbered entry that has not been assigned a number yet.
// Such entries are named after their title instead.
const NoNumber = -1

// EntryKind tells the two entry shapes apart.
type EntryKind int

const (
	// EntryNumbered is an installment of a numbered series ("Folge").
	// Its directory is named after Number when Number >= 0.
	EntryNumbered EntryKind = iota

	// EntryTitled is a special or short story identified by its title only.
	EntryTitled
)

// String returns a human-readable name for the kind.
func (k EntryKind) String() string {
	switch k {
	case EntryNumbered:
		return "numbered"
	case EntryTitled:
		return "titled"
	default:
		return "unknown"
	}
}

// Entry represents one audio-drama unit ("Höreinheit") of the catalog.
//
// An Entry is either numbered or titled (see Kind). Both shapes share the
// descriptive metadata in Info, the optional Links and a list of Parts.
//
// Example:
//
//	folge := &Entry{Kind: EntryNumbered, Number: 1, Title: NewTitle("und der Super-Papagei")}
//	name, _ := ResolveName(folge, 3) // "001"
type Entry struct {
	// Kind selects how the directory name is derived.
	Kind EntryKind

	// Number is the installment number of a numbered entry.
	// NoNumber (or any negative value) means "not assigned".
	// Ignored for titled entries.
	Number int

	// Title is the entry title. Nil means absent, an empty title is kept
	// as present.
	Title *string

	// Info carries the descriptive metadata that is written to metadata.json.
	Info Info

	// Links holds external URLs. Nil when the entry has no links.
	Links *Links

	// Parts are the sub-units of the entry, in input order.
	Parts []*Part
}

// NewTitle returns a title value for Entry.Title.
func NewTitle(title string) *string {
	return &title
}

// HasTitle reports whether the entry carries a title, possibly empty.
func (e *Entry) HasTitle() bool {
	return e.Title != nil
}

// TitleText returns the title, or "" when absent.
func (e *Entry) TitleText() string {
	if e.Title == nil {
		return ""
	}
	return *e.Title
}

// HasNumber reports whether the entry is numbered and has a number assigned.
func (e *Entry) HasNumber() bool {
	return e.Kind == EntryNumbered && e.Number >= 0
}

// DisplayTitle returns the title or "(nil)" when absent, for messages.
func (e *Entry) DisplayTitle() string {
	if e.Title == nil {
		return "(nil)"
	}
	return *e.Title
}

// Part is a sub-unit ("Teil") of an entry.
//
// A Part is exported exactly like an entry, one directory level deeper,
// in a directory named after its 1-based Number.
type Part struct {
	Entry

	// Number is the 1-based position of the part within its parent.
	Number int

	// Letter is an optional part letter ("buchstabe"), e.g. "A".
	Letter string
}

// Info is the descriptive metadata of an entry.
type Info struct {
	Author          string
	ScriptAuthor    string
	OverallSummary  string
	ShortSummary    string
	Description     string
	MetaDescription string
	ReleaseDate     string
	Chapters        []Chapter
	Roles           []Role
	Incomplete      bool
}

// Chapter is a chapter mark. Start and End are in milliseconds.
type Chapter struct {
	Title string
	Start int
	End   int
}

// Role is a speaking role and the person voicing it.
type Role struct {
	Role      string
	Speaker   string
	Pseudonym string
}

// Links holds the external URLs of an entry. Empty strings mean absent.
type Links struct {
	JSON             string
	FFMetadata       string
	Cover            string
	Cover2           string
	CoverItunes      string
	CoverKosmos      string
	DreiFragezeichen string
	AppleMusic       string
	Spotify          string
	Bookbeat         string
	AmazonMusic      string
	Amazon           string
	YouTubeMusic     string
}

// LinkKind identifies a link that is materialized as a shortcut file.
type LinkKind int

const (
	// LinkCoverItunes is the iTunes cover art link.
	LinkCoverItunes LinkKind = iota

	// LinkCoverKosmos is the publisher (Kosmos) cover art link.
	LinkCoverKosmos
)

// ShortcutLinks lists the link kinds that get a shortcut file, in write order.
var ShortcutLinks = []LinkKind{LinkCoverItunes, LinkCoverKosmos}

// FileName returns the shortcut file name for the link kind.
func (k LinkKind) FileName() string {
	switch k {
	case LinkCoverItunes:
		return "cover_itunes.url"
	case LinkCoverKosmos:
		return "cover_kosmos.url"
	default:
		return ""
	}
}

// DisplayName returns the section name written into the shortcut file.
func (k LinkKind) DisplayName() string {
	switch k {
	case LinkCoverItunes:
		return "iTunes-URL"
	case LinkCoverKosmos:
		return "Kosmos-URL"
	default:
		return ""
	}
}

// URL returns the link of the given kind, or "" when absent.
// Safe to call on a nil receiver.
func (l *Links) URL(kind LinkKind) string {
	if l == nil {
		return ""
	}
	switch kind {
	case LinkCoverItunes:
		return l.CoverItunes
	case LinkCoverKosmos:
		return l.CoverKosmos
	default:
		return ""
	}
}
