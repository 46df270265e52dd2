package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourmjk/d3f-metadata-exporter/internal/config"
	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated
}

func TestModel_ExportLifecycle(t *testing.T) {
	m := NewModel(nil)
	m.state = StateExporting

	events := make(chan tea.Msg)
	m = update(t, m, ExportStartedMsg{Total: 3, Events: events})
	assert.Equal(t, 3, m.totalUnits)

	m = update(t, m, ProgressMsg{Event: export.ProgressEvent{Message: "> /out/Serie/1", Level: export.LevelInfo}})
	m = update(t, m, ProgressMsg{Event: export.ProgressEvent{Message: "Error: boom", Level: export.LevelError}})
	assert.Equal(t, 1, m.doneUnits)
	assert.Equal(t, 1, m.failed)

	// Directory lines are hidden unless verbose
	require.Len(t, m.logs, 1)
	assert.Equal(t, "Error: boom", m.logs[0].Message)

	report := &export.Report{Units: 1, Files: 1}
	m = update(t, m, ExportDoneMsg{Report: report})
	assert.Equal(t, StateComplete, m.state)
	assert.Contains(t, m.View(), "Export Complete!")
}

func TestModel_ExportFailed(t *testing.T) {
	m := NewModel(nil)
	m.state = StateExporting

	m = update(t, m, ExportDoneMsg{Err: errors.New("no such directory")})
	assert.Equal(t, StateError, m.state)
	assert.Contains(t, m.View(), "no such directory")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, StateInput, m.state)
	assert.NoError(t, m.err)
}

func TestModel_Options(t *testing.T) {
	settings := config.DefaultSettings()
	settings.OutputType = "tagDir"
	m := NewModel(settings)
	assert.Equal(t, export.OutputTagDir, m.outputType)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, export.OutputWebDir, m.outputType)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputBaseDir, m.focus)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputCatalog, m.focus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.True(t, m.verbose)

	// Ctrl+V is left to the text input for pasting paths
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.True(t, m.verbose)

	// Enter does nothing until both paths are set
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, StateInput, m.state)
}

func TestCountUnits(t *testing.T) {
	doc := model.NewDocument()
	doc.SetCollection(model.CollectionSerie, []*model.Entry{
		{Kind: model.EntryNumbered, Number: 1},
		{Kind: model.EntryNumbered, Number: 2, Parts: []*model.Part{{Number: 1}, {Number: 2}}},
	})
	doc.SetCollection(model.CollectionSpezial, nil)

	assert.Equal(t, 4, countUnits(doc))
}
