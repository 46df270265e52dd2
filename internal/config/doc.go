// Package config provides configuration management for d3f-metadata-exporter.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - D3F_* environment variable overrides
//   - Conversion to sidecar.TagConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// webDir output, one worker, no directory lock
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
// Every option can be overridden, e.g. D3F_OUTPUT_TYPE=tagDir or
// D3F_WORKERS=4. Environment values win over the file.
package config
