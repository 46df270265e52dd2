// Package tui provides a Bubble Tea terminal user interface for the exporter.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourmjk/d3f-metadata-exporter/internal/config"
	"github.com/yourmjk/d3f-metadata-exporter/internal/export"
	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	collectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is the number of log rows kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateExporting
	StateComplete
	StateError
)

// Input fields, in focus order.
const (
	inputCatalog = iota
	inputBaseDir
	inputCount
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	err      error

	// Export context
	ctx    context.Context
	cancel context.CancelFunc
	events <-chan tea.Msg

	// Export progress
	totalUnits int
	doneUnits  int
	failed     int
	report     *export.Report

	// Options
	outputType export.OutputType
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model. settings may be nil.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	catalog := textinput.New()
	catalog.Placeholder = "/path/to/Metadaten.json"
	catalog.Focus()
	catalog.CharLimit = 500
	catalog.Width = 60

	baseDir := textinput.New()
	baseDir.Placeholder = "/path/to/output"
	baseDir.CharLimit = 500
	baseDir.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	outputType, err := export.ParseOutputType(settings.OutputType)
	if err != nil {
		outputType = export.OutputWebDir
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		inputs:     []textinput.Model{catalog, baseDir},
		spinner:    sp,
		progress:   prog,
		settings:   settings,
		logs:       make([]LogEntry, 0),
		ctx:        ctx,
		cancel:     cancel,
		outputType: outputType,
		verbose:    settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every progress event of the exporter.
	ProgressMsg struct {
		Event export.ProgressEvent
	}

	// ExportStartedMsg is sent once the catalog is parsed and the export runs.
	ExportStartedMsg struct {
		Total  int
		Events <-chan tea.Msg
	}

	// ExportDoneMsg is sent when the export finishes or fails.
	ExportDoneMsg struct {
		Report *export.Report
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateExporting {
				m.cancel()
			}

		case "tab", "shift+tab", "up", "down":
			if m.state == StateInput {
				m.moveFocus(msg.String() == "tab" || msg.String() == "down")
				return m, nil
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.outputType = nextOutputType(m.outputType)
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "enter":
			if m.state == StateInput && m.ready() {
				m.state = StateExporting
				return m, tea.Batch(m.startExport(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new export, keeping the paths
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.report = nil
				m.events = nil
				m.totalUnits = 0
				m.doneUnits = 0
				m.failed = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.focus = inputCatalog
				m.focusInputs()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExportStartedMsg:
		m.totalUnits = msg.Total
		m.events = msg.Events
		cmds = append(cmds, waitForEvent(m.events))

	case ProgressMsg:
		switch msg.Event.Level {
		case export.LevelInfo:
			m.doneUnits++
		case export.LevelError:
			m.failed++
		}
		cmds = append(cmds, waitForEvent(m.events))
		if m.totalUnits > 0 {
			cmds = append(cmds, m.progress.SetPercent(float64(m.doneUnits)/float64(m.totalUnits)))
		}

		// Directory lines are only shown in verbose mode
		if msg.Event.Level == export.LevelInfo && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case ExportDoneMsg:
		m.report = msg.Report
		m.events = nil
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update the focused text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) moveFocus(forward bool) {
	if forward {
		m.focus = (m.focus + 1) % inputCount
	} else {
		m.focus = (m.focus + inputCount - 1) % inputCount
	}
	m.focusInputs()
}

func (m *Model) focusInputs() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) ready() bool {
	return strings.TrimSpace(m.inputs[inputCatalog].Value()) != "" &&
		strings.TrimSpace(m.inputs[inputBaseDir].Value()) != ""
}

func nextOutputType(t export.OutputType) export.OutputType {
	for i, candidate := range export.OutputTypes {
		if candidate == t {
			return export.OutputTypes[(i+1)%len(export.OutputTypes)]
		}
	}
	return export.OutputWebDir
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("D3F Metadata Exporter"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Export catalog metadata into a directory tree"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Catalog JSON file:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputCatalog].View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Base directory:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputBaseDir].View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Output type: %s (ctrl+t)\n", m.outputType))
	b.WriteString(fmt.Sprintf("  %s Show every directory (ctrl+o)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Workers: %d", m.settings.Workers)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Exporting to %s...", m.inputs[inputBaseDir].Value())))
	b.WriteString("\n\n")

	var percent float64
	if m.totalUnits > 0 {
		percent = float64(m.doneUnits) / float64(m.totalUnits)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Directories: %d/%d | Failed entries: %d",
		m.doneUnits,
		m.totalUnits,
		m.failed,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var summary strings.Builder
	summary.WriteString("Export Complete!\n\n")
	if m.report != nil {
		for _, c := range m.report.Collections {
			summary.WriteString(collectionStyle.Render(fmt.Sprintf("%-16s %d/%d", c.Collection.Name(), c.Exported, c.Total)))
			summary.WriteString("\n")
		}
		summary.WriteString(fmt.Sprintf("\nDirectories: %d\nFiles: %d\nFailed: %d",
			m.report.Units,
			m.report.Files,
			len(m.report.Failures),
		))
	}
	b.WriteString(boxStyle.Render(summary.String()))
	b.WriteString("\n\n")

	if m.report != nil && len(m.report.Failures) > 0 {
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			style = errorStyle
			prefix = "✗"
		case export.LevelWarning:
			style = warningStyle
			prefix = "!"
		case export.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case export.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: next field • ctrl+t: output type • ctrl+o: verbose • esc: quit"
	case StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new export • q: quit"
	}
	return ""
}

// startExport parses the catalog and runs the export in the background.
// Progress events and the final result arrive through the returned channel.
func (m Model) startExport() tea.Cmd {
	ctx := m.ctx
	settings := *m.settings
	outputType := m.outputType
	catalogPath := strings.TrimSpace(m.inputs[inputCatalog].Value())
	baseDir := strings.TrimSpace(m.inputs[inputBaseDir].Value())

	return func() tea.Msg {
		doc, err := metadata.NewParser().ParseFile(catalogPath)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}

		events := make(chan tea.Msg, 64)
		go func() {
			defer close(events)
			exporter := export.NewExporter(&settings, nil, func(event export.ProgressEvent) {
				events <- ProgressMsg{Event: event}
			})
			report, err := exporter.Export(ctx, doc, baseDir, outputType)
			events <- ExportDoneMsg{Report: report, Err: err}
		}()

		return ExportStartedMsg{Total: countUnits(doc), Events: events}
	}
}

// waitForEvent returns a command reading the next message of the export.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// countUnits returns the number of directories an export of doc populates
// when no entry fails.
func countUnits(doc *model.Document) int {
	total := 0
	for _, kind := range model.CollectionKinds {
		entries, _ := doc.Collection(kind)
		for _, entry := range entries {
			total += countEntry(entry)
		}
	}
	return total
}

func countEntry(entry *model.Entry) int {
	total := 1
	for _, part := range entry.Parts {
		total += countEntry(&part.Entry)
	}
	return total
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
