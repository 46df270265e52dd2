package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output_type": "tagDir", "workers": 3}`), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tagDir", settings.OutputType)
	assert.Equal(t, 3, settings.Workers)
	// Untouched options keep their defaults
	assert.Equal(t, "0644", settings.FileMode)
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "output_type = \"webDir\"\nlock_base_dir = true\nfile_mode = \"0600\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.True(t, settings.LockBaseDir)
	assert.Equal(t, os.FileMode(0o600), settings.FilePerm())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workers": 2}`), 0o644))

	t.Setenv("D3F_WORKERS", "5")
	t.Setenv("D3F_ID3_ARTIST", "DiE DR3i")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.Workers)
	assert.Equal(t, "DiE DR3i", settings.ToTagConfig().Artist)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"workers": `},
		{"zero workers", `{"workers": 0}`},
		{"bad mode", `{"file_mode": "rw-r--r--"}`},
		{"mode too wide", `{"dir_mode": "7777"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	for _, name := range []string{"config.json", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			settings := DefaultSettings()
			settings.Workers = 4
			settings.OutputType = "tagDir"

			require.NoError(t, settings.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, settings, loaded)
		})
	}
}

func TestSettings_Perms(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, os.FileMode(0o644), settings.FilePerm())
	assert.Equal(t, os.FileMode(0o755), settings.DirPerm())
}
