package export

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourmjk/d3f-metadata-exporter/internal/config"
	ioutils "github.com/yourmjk/d3f-metadata-exporter/internal/io"
	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
	"github.com/yourmjk/d3f-metadata-exporter/internal/sidecar"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Path is the directory or file the event is about, if any.
	Path string
}

// CollectionReport summarizes the export of one collection.
type CollectionReport struct {
	Collection model.CollectionKind
	Path       string
	Total      int
	Exported   int
	Failed     int
}

// Report summarizes an export run.
type Report struct {
	// Collections lists the exported collections in export order.
	Collections []CollectionReport

	// Entries is the number of top-level entries exported without error.
	Entries int

	// Units is the number of populated directories (entries and parts).
	Units int

	// Files is the number of files written.
	Files int

	// Failures lists the recoverable per-entry errors in document order.
	Failures []*EntryError
}

// Exporter materializes a catalog as a directory tree.
type Exporter struct {
	settings   *config.Settings
	logger     *zap.Logger
	shortcuts  *sidecar.ShortcutCreator
	tagger     *sidecar.Tagger
	onProgress func(ProgressEvent)
}

// NewExporter creates a new Exporter.
//
// onProgress receives one LevelInfo event per directory about to be
// populated and one LevelError event per failed entry. Calls are
// serialized, even with several workers. logger may be nil.
func NewExporter(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) *Exporter {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		settings:   settings,
		logger:     logger,
		shortcuts:  sidecar.NewShortcutCreator(),
		tagger:     sidecar.NewTagger(settings.ToTagConfig()),
		onProgress: onProgress,
	}
}

// Export writes doc below baseDir using the given layout.
//
// baseDir must exist and be a directory. Each present collection gets a
// directory named after it, each entry a directory below it.
//
// The returned error is fatal: a missing base directory, an unknown output
// type, a held lock, a collection directory that cannot be created or a
// cancelled context. Per-entry failures are collected in Report.Failures
// and do not stop the export. The report is returned even on a fatal error.
func (x *Exporter) Export(ctx context.Context, doc *model.Document, baseDir string, outputType OutputType) (*Report, error) {
	r := &run{
		exporter:   x,
		outputType: outputType,
		report:     &Report{},
	}

	if !outputType.Valid() {
		return r.report, fmt.Errorf("%w %q", ErrUnknownOutputType, outputType)
	}
	if !ioutils.IsDir(baseDir) {
		return r.report, fmt.Errorf("%w %q", ErrNoSuchDirectory, baseDir)
	}

	if x.settings.LockBaseDir {
		lock, err := ioutils.LockDir(baseDir)
		if err != nil {
			return r.report, err
		}
		defer lock.Unlock()
		x.logger.Debug("acquired lock", zap.String("path", lock.Path()))
	}

	for _, plan := range Plan(doc) {
		if err := r.exportCollection(ctx, baseDir, plan); err != nil {
			return r.report, err
		}
	}

	r.sortFailures()
	r.progress(ProgressEvent{
		Message: fmt.Sprintf("Exported %d entries (%d directories, %d files), %d failed", r.report.Entries, r.report.Units, r.report.Files, len(r.report.Failures)),
		Level:   LevelSuccess,
	})

	return r.report, nil
}

// run holds the state of one Export call.
type run struct {
	exporter   *Exporter
	outputType OutputType

	mu         sync.Mutex
	progressMu sync.Mutex
	report     *Report
}

// unit is an entry or a part being exported.
type unit struct {
	collection model.CollectionKind
	entry      *model.Entry

	// part and parent are set when exporting a part.
	part   *model.Part
	parent *model.Entry
}

func (r *run) exportCollection(ctx context.Context, baseDir string, plan CollectionPlan) error {
	x := r.exporter
	collectionDir := filepath.Join(baseDir, plan.Collection.Name())

	if err := ioutils.EnsureDir(collectionDir, x.settings.DirPerm()); err != nil {
		cerr := &CollectionError{Collection: plan.Collection, Path: collectionDir, Err: err}
		r.progress(ProgressEvent{Message: cerr.Error(), Level: LevelError, Path: collectionDir})
		return cerr
	}

	r.mu.Lock()
	r.report.Collections = append(r.report.Collections, CollectionReport{
		Collection: plan.Collection,
		Path:       collectionDir,
		Total:      len(plan.Entries),
	})
	index := len(r.report.Collections) - 1
	r.mu.Unlock()

	x.logger.Debug("exporting collection",
		zap.String("collection", plan.Collection.Name()),
		zap.Int("entries", len(plan.Entries)),
		zap.Int("width", plan.Width),
	)

	exportOne := func(ctx context.Context, planned PlannedEntry) {
		err := planned.Err
		if err == nil {
			u := unit{collection: planned.Collection, entry: planned.Entry}
			err = r.exportUnit(ctx, u, filepath.Join(collectionDir, planned.Name))
		}
		r.finishEntry(index, planned, err)
	}

	if x.settings.Workers <= 1 {
		for _, planned := range plan.Entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			exportOne(ctx, planned)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(x.settings.Workers)

	for _, planned := range plan.Entries {
		if ctx.Err() != nil {
			break
		}
		planned := planned
		g.Go(func() error {
			exportOne(gctx, planned)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// exportUnit populates dir with the files of u, then recurses into its parts.
// The first failure aborts the remaining steps, including later parts.
func (r *run) exportUnit(ctx context.Context, u unit, dir string) error {
	x := r.exporter

	r.progress(ProgressEvent{Message: "> " + dir, Level: LevelInfo, Path: dir})

	if err := ioutils.EnsureDir(dir, x.settings.DirPerm()); err != nil {
		return fmt.Errorf("couldn't create directory at %q: %w", dir, err)
	}

	var err error
	switch r.outputType {
	case OutputWebDir:
		err = r.writeWebDir(ctx, u, dir)
	case OutputTagDir:
		err = r.writeTagDir(ctx, u, dir)
	}
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.report.Units++
	r.mu.Unlock()

	used := make(map[int]bool, len(u.entry.Parts))
	for _, part := range u.entry.Parts {
		name := model.PartName(part)
		if used[part.Number] {
			return fmt.Errorf("%w: part %q in %q", ErrNameCollision, name, dir)
		}
		used[part.Number] = true

		child := unit{collection: u.collection, entry: &part.Entry, part: part, parent: u.entry}
		if err := r.exportUnit(ctx, child, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

// writeWebDir writes metadata.json and the cover shortcuts.
func (r *run) writeWebDir(ctx context.Context, u unit, dir string) error {
	var data []byte
	var err error
	if u.part != nil {
		data, err = metadata.EncodePart(u.part)
	} else {
		data, err = metadata.EncodeEntry(u.entry)
	}
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	if err := r.writeFile(ctx, filepath.Join(dir, metadata.FileName), data); err != nil {
		return err
	}

	for _, shortcut := range r.exporter.shortcuts.CreateShortcuts(u.entry.Links) {
		if err := r.writeFile(ctx, filepath.Join(dir, shortcut.FileName), []byte(shortcut.Content)); err != nil {
			return err
		}
	}

	return nil
}

// writeTagDir writes the ID3 tag of the unit.
func (r *run) writeTagDir(ctx context.Context, u unit, dir string) error {
	entry := u.entry
	if u.part != nil {
		entry = u.parent
	}

	data, err := r.exporter.tagger.CreateTag(u.collection, entry, u.part)
	if err != nil {
		return fmt.Errorf("encode tag: %w", err)
	}

	return r.writeFile(ctx, filepath.Join(dir, sidecar.TagFileName), data)
}

func (r *run) writeFile(ctx context.Context, path string, data []byte) error {
	x := r.exporter
	if err := ioutils.WriteFileAtomic(ctx, path, data, x.settings.FilePerm()); err != nil {
		return fmt.Errorf("couldn't write %q: %w", path, err)
	}

	r.mu.Lock()
	r.report.Files++
	r.mu.Unlock()

	x.logger.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func (r *run) finishEntry(index int, planned PlannedEntry, err error) {
	r.mu.Lock()
	collection := &r.report.Collections[index]
	if err == nil {
		collection.Exported++
		r.report.Entries++
		r.mu.Unlock()
		return
	}

	entryErr := &EntryError{
		Collection: planned.Collection,
		Position:   planned.Position,
		Name:       planned.Name,
		Title:      planned.Entry.DisplayTitle(),
		Err:        err,
	}
	collection.Failed++
	r.report.Failures = append(r.report.Failures, entryErr)
	r.mu.Unlock()

	r.progress(ProgressEvent{Message: "Error: " + entryErr.Error(), Level: LevelError})
}

func (r *run) sortFailures() {
	order := make(map[model.CollectionKind]int, len(model.CollectionKinds))
	for i, kind := range model.CollectionKinds {
		order[kind] = i
	}
	sort.SliceStable(r.report.Failures, func(i, j int) bool {
		a, b := r.report.Failures[i], r.report.Failures[j]
		if a.Collection != b.Collection {
			return order[a.Collection] < order[b.Collection]
		}
		return a.Position < b.Position
	})
}

func (r *run) progress(event ProgressEvent) {
	if r.exporter.onProgress == nil {
		return
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.exporter.onProgress(event)
}
