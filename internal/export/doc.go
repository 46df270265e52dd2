// Package export materializes a catalog as a directory tree.
//
// # Exporter
//
// The Exporter walks the collections of a model.Document and writes one
// directory per entry:
//
//	<baseDir>/
//	  Serie/
//	    001/
//	      metadata.json
//	      cover_itunes.url
//	      cover_kosmos.url
//	      1/
//	        metadata.json
//
// Numbered entries are named after their zero-padded number, titled entries
// after their transliterated title (see model.ResolveName). Parts are
// exported recursively into directories named after their part number.
//
// # Basic Usage
//
//	exporter := export.NewExporter(settings, logger, func(event export.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	report, err := exporter.Export(ctx, doc, "/srv/www/metadata", export.OutputWebDir)
//	if err != nil {
//	    log.Fatal(err) // bad base directory, collection directory not creatable
//	}
//	for _, failure := range report.Failures {
//	    fmt.Fprintln(os.Stderr, failure)
//	}
//
// # Errors
//
// Failures are either fatal (returned by Export) or local to one top-level
// entry (collected in Report.Failures). The first failure inside an entry
// aborts the rest of that entry, including its remaining parts. Two
// siblings resolving to the same name are never merged: the later one fails
// with ErrNameCollision.
//
// # Concurrency
//
// Entries are exported in document order. With settings.Workers > 1 the
// entries of a collection are exported by a bounded worker pool; names are
// still resolved sequentially beforehand.
package export
