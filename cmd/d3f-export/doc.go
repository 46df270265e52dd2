// Command d3f-export converts a D3F metadata catalog into a directory tree.
//
// Usage:
//
//	d3f-export export <input.json> <webDir|tagDir> <baseDir>
//	d3f-export names <input.json>
//	d3f-export config init [path]
//	d3f-export config show
//
// The process exits with a non-zero status only on fatal errors. Entries
// that fail individually are reported on stderr and skipped.
package main
