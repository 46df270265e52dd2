package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmjk/d3f-metadata-exporter/internal/config"
	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

const testCatalog = `{
	"serie": [
		{"nummer": 1, "titel": "und der Super-Papagei", "links": {"cover_itunes": "https://itunes.example/1.jpg"}},
		{"nummer": 2, "titel": "und der Phantomsee"}
	],
	"spezial": [
		{"titel": "Spezial: Die Fälle!"},
		{"autor": "ohne Titel"}
	]
}`

// runCLI executes the root command with an isolated configuration directory.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Metadaten.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func TestExportCommand(t *testing.T) {
	input := writeCatalog(t)
	base := t.TempDir()

	stdout, stderr, err := runCLI(t, "export", input, "webDir", base)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"> " + filepath.Join(base, "Serie", "1"),
		"> " + filepath.Join(base, "Serie", "2"),
		"> " + filepath.Join(base, "Spezial", "Spezial-Die-Faelle!"),
		"",
	}, "\n"), stdout)
	assert.Equal(t, "Error: couldn't export metadata for \"(nil)\": missing title\n", stderr)

	assert.FileExists(t, filepath.Join(base, "Serie", "1", "cover_itunes.url"))
	assert.FileExists(t, filepath.Join(base, "Spezial", "Spezial-Die-Faelle!", "metadata.json"))
}

func TestExportCommand_Summary(t *testing.T) {
	input := writeCatalog(t)

	stdout, _, err := runCLI(t, "export", "--summary", input, "webDir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, stdout, "Collection")
	assert.Contains(t, stdout, "Spezial")
	assert.Contains(t, stdout, "3 directories, 4 files written")
}

func TestRenderSummary(t *testing.T) {
	report := &export.Report{
		Collections: []export.CollectionReport{
			{Collection: model.CollectionSerie, Path: "/out/Serie", Total: 3, Exported: 2, Failed: 1},
			{Collection: model.CollectionSpezial, Path: "/out/Spezial", Total: 4, Exported: 4},
		},
	}

	rendered := renderSummary(report)

	lines := strings.Split(rendered, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Contains(t, rendered, "/out/Serie")
	assert.Contains(t, rendered, "/out/Spezial")

	// The footer sums the count columns
	footer := lines[len(lines)-2]
	assert.Regexp(t, `(?i)total\W+7\W+6\W+1\W`, footer)
}

func TestExportCommand_FatalErrors(t *testing.T) {
	input := writeCatalog(t)

	_, _, err := runCLI(t, "export", input, "webDir", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, export.ErrNoSuchDirectory)

	_, _, err = runCLI(t, "export", input, "zipDir", t.TempDir())
	require.ErrorIs(t, err, export.ErrUnknownOutputType)

	_, _, err = runCLI(t, "export", filepath.Join(t.TempDir(), "missing.json"), "webDir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't parse JSON file")

	_, _, err = runCLI(t, "export", input, "webDir")
	require.Error(t, err)
}

func TestExportCommand_TagDir(t *testing.T) {
	input := writeCatalog(t)
	base := t.TempDir()

	_, _, err := runCLI(t, "export", "--workers", "2", input, "tagDir", base)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(base, "Serie", "2", "metadata.id3"))
	assert.NoFileExists(t, filepath.Join(base, "Serie", "2", "metadata.json"))
}

func TestNamesCommand(t *testing.T) {
	input := writeCatalog(t)

	stdout, stderr, err := runCLI(t, "names", input)
	require.NoError(t, err)

	assert.Equal(t, "Serie/1\nSerie/2\nSpezial/Spezial-Die-Faelle!\n", stdout)
	assert.Contains(t, stderr, `spezial[1] "(nil)": missing title`)
}

func TestConfigInitAndShow(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	stdout, _, err := runCLI(t, "config", "init", target)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote default configuration")
	assert.FileExists(t, target)

	_, _, err = runCLI(t, "config", "init", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	t.Setenv("D3F_WORKERS", "3")
	stdout, _, err = runCLI(t, "--config", target, "config", "show")
	require.NoError(t, err)

	var shown config.Settings
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, 3, shown.Workers)
	assert.Equal(t, "webDir", shown.OutputType)
}
