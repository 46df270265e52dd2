package sidecar

import (
	"fmt"
	"strings"

	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// Shortcut is an internet shortcut file ready to be written.
type Shortcut struct {
	// FileName is the name of the file inside the entry directory.
	FileName string

	// Content is the text content of the file.
	Content string
}

// ShortcutCreator generates internet shortcut (.url) files.
//
// A shortcut is an INI-style text file with one section named after the
// link and a single URL key:
//
//	[iTunes-URL]
//	URL=https://is1-ssl.mzstatic.com/image/.../cover.jpg
//
// Example:
//
//	creator := NewShortcutCreator()
//	for _, s := range creator.CreateShortcuts(entry.Links) {
//	    os.WriteFile(filepath.Join(dir, s.FileName), []byte(s.Content), 0644)
//	}
type ShortcutCreator struct {
	kinds []model.LinkKind
}

// NewShortcutCreator creates a ShortcutCreator for the given link kinds.
// With no kinds, model.ShortcutLinks is used.
func NewShortcutCreator(kinds ...model.LinkKind) *ShortcutCreator {
	if len(kinds) == 0 {
		kinds = model.ShortcutLinks
	}
	return &ShortcutCreator{kinds: kinds}
}

// CreateShortcut returns the content of a shortcut file.
//
// The content is exactly two newline-terminated lines:
//
//	[<name>]
//	URL=<url>
func (c *ShortcutCreator) CreateShortcut(name, url string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s]\n", name))
	sb.WriteString(fmt.Sprintf("URL=%s\n", url))
	return sb.String()
}

// CreateShortcuts returns one shortcut per present link, in kind order.
// Absent links (or nil links) produce no shortcut.
func (c *ShortcutCreator) CreateShortcuts(links *model.Links) []Shortcut {
	var shortcuts []Shortcut
	for _, kind := range c.kinds {
		url := links.URL(kind)
		if url == "" {
			continue
		}
		shortcuts = append(shortcuts, Shortcut{
			FileName: kind.FileName(),
			Content:  c.CreateShortcut(kind.DisplayName(), url),
		})
	}
	return shortcuts
}
