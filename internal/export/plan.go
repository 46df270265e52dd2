package export

import (
	"fmt"

	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// PlannedEntry is a top-level entry together with its resolved directory name.
type PlannedEntry struct {
	Collection model.CollectionKind

	// Position is the 0-based index of the entry in its collection.
	Position int

	Entry *model.Entry

	// Name is the directory name. Empty when Err is set.
	Name string

	// Err is a name resolution error or ErrNameCollision.
	Err error
}

// CollectionPlan lists the planned entries of one present collection.
type CollectionPlan struct {
	Collection model.CollectionKind

	// Width is the zero-padding width of numbered entry names.
	Width int

	Entries []PlannedEntry
}

// Plan resolves the directory names of all top-level entries of doc,
// without touching the file system.
//
// Collections are returned in export order, entries in input order.
// An entry whose name is already used by an earlier sibling gets
// ErrNameCollision.
func Plan(doc *model.Document) []CollectionPlan {
	var plans []CollectionPlan
	for _, kind := range model.CollectionKinds {
		entries, ok := doc.Collection(kind)
		if !ok {
			continue
		}
		plans = append(plans, PlanCollection(kind, entries))
	}
	return plans
}

// PlanCollection resolves the directory names of one collection.
func PlanCollection(kind model.CollectionKind, entries []*model.Entry) CollectionPlan {
	plan := CollectionPlan{
		Collection: kind,
		Width:      model.DigitWidth(len(entries)),
		Entries:    make([]PlannedEntry, 0, len(entries)),
	}

	used := make(map[string]int, len(entries))
	for i, entry := range entries {
		planned := PlannedEntry{Collection: kind, Position: i, Entry: entry}

		name, err := model.ResolveName(entry, plan.Width)
		switch {
		case err != nil:
			planned.Err = err
		case isUsed(used, name):
			planned.Err = fmt.Errorf("%w: %q (entry #%d)", ErrNameCollision, name, used[name]+1)
		default:
			used[name] = i
			planned.Name = name
		}

		plan.Entries = append(plan.Entries, planned)
	}

	return plan
}

func isUsed(used map[string]int, name string) bool {
	_, ok := used[name]
	return ok
}
