package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/yourmjk/d3f-metadata-exporter/internal/sidecar"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "D3F_"

// Settings holds all configuration options.
type Settings struct {
	// Export settings
	OutputType  string `json:"output_type" toml:"output_type" env:"OUTPUT_TYPE"` // webDir, tagDir
	Workers     int    `json:"workers" toml:"workers" env:"WORKERS"`
	LockBaseDir bool   `json:"lock_base_dir" toml:"lock_base_dir" env:"LOCK_BASE_DIR"`

	// File system
	FileMode string `json:"file_mode" toml:"file_mode" env:"FILE_MODE"` // octal, e.g. "0644"
	DirMode  string `json:"dir_mode" toml:"dir_mode" env:"DIR_MODE"`

	// Tag settings (tagDir)
	ID3Artist   string `json:"id3_artist" toml:"id3_artist" env:"ID3_ARTIST"`
	ID3Genre    string `json:"id3_genre" toml:"id3_genre" env:"ID3_GENRE"`
	ID3Language string `json:"id3_language" toml:"id3_language" env:"ID3_LANGUAGE"`

	// Output
	Verbose bool `json:"verbose" toml:"verbose" env:"VERBOSE"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputType:  "webDir",
		Workers:     1,
		LockBaseDir: false,

		FileMode: "0644",
		DirMode:  "0755",

		ID3Artist:   "Die drei ???",
		ID3Genre:    "Hörspiel",
		ID3Language: "deu",

		Verbose: false,
	}
}

// DefaultPath returns the default location of the settings file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "d3f-metadata-exporter", "config.json")
}

// Load reads settings from a JSON or TOML file (chosen by extension) and
// applies D3F_* environment overrides on top.
//
// A missing file yields the defaults. An empty path skips the file.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := unmarshal(path, data, settings); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// ApplyEnv overrides settings from D3F_* environment variables.
// Unset variables leave the current values untouched.
func (s *Settings) ApplyEnv() error {
	if err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return nil
}

// Validate checks option values that cannot be checked by the decoder.
func (s *Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if _, err := parseMode(s.FileMode); err != nil {
		return fmt.Errorf("file_mode: %w", err)
	}
	if _, err := parseMode(s.DirMode); err != nil {
		return fmt.Errorf("dir_mode: %w", err)
	}
	if len(s.ID3Language) != 3 {
		return fmt.Errorf("id3_language must be a three letter ISO 639-2 code, got %q", s.ID3Language)
	}
	return nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := s.Marshal(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the settings in the format matching path's extension.
func (s *Settings) Marshal(path string) ([]byte, error) {
	if isTOML(path) {
		return toml.Marshal(s)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FilePerm returns the permission bits of written files.
func (s *Settings) FilePerm() os.FileMode {
	mode, err := parseMode(s.FileMode)
	if err != nil {
		return 0o644
	}
	return mode
}

// DirPerm returns the permission bits of created directories.
func (s *Settings) DirPerm() os.FileMode {
	mode, err := parseMode(s.DirMode)
	if err != nil {
		return 0o755
	}
	return mode
}

// ToTagConfig converts settings to sidecar.TagConfig.
func (s *Settings) ToTagConfig() *sidecar.TagConfig {
	return &sidecar.TagConfig{
		Artist:   s.ID3Artist,
		Genre:    s.ID3Genre,
		Language: s.ID3Language,
	}
}

func unmarshal(path string, data []byte, s *Settings) error {
	if isTOML(path) {
		return toml.Unmarshal(data, s)
	}
	return json.Unmarshal(data, s)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func parseMode(value string) (os.FileMode, error) {
	mode, err := strconv.ParseUint(strings.TrimSpace(value), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q", value)
	}
	if mode > 0o777 {
		return 0, fmt.Errorf("mode %q has bits outside 0777", value)
	}
	return os.FileMode(mode), nil
}
