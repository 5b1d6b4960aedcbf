package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
)

// mode identifies which screen the app is showing.
type mode int

const (
	modeInput mode = iota
	modeRunning
	modeReport
)

// analysisDoneMsg carries a finished analysis back into the update loop.
type analysisDoneMsg struct {
	report string
	err    error
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *Styles
	keymap *KeyMap

	// input collects the gene symbols to analyse.
	input textinput.Model

	// libraries is the catalogue the tab key cycles through.
	libraries    []domain.Database
	libraryIndex int

	// report holds the last analysis output, wrapped into lines for
	// scrolling.
	report       string
	lines        []string
	scrollOffset int

	mode mode
	err  error

	// width and height are terminal dimensions.
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "TP53, MDM2, CDKN1A"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    DefaultStyles(),
		keymap:    DefaultKeyMap(),
		input:     ti,
		libraries: domain.SupportedDatabases(),
		mode:      modeInput,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Library returns the currently selected gene-set library.
func (a *App) Library() domain.Database {
	return a.libraries[a.libraryIndex]
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inputWidth := width - 8
	if inputWidth > 60 {
		inputWidth = 60
	}
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth

	a.wrapReport()
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("pathway-agent"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case analysisDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.mode = modeInput
			return a, a.input.Focus()
		}
		a.err = nil
		a.setReport(msg.report)
		a.mode = modeReport
		a.input.Blur()
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.mode {
		case modeInput:
			return a.updateInput(msg)
		case modeRunning:
			// Analyses are short; only ctrl+c interrupts them.
			return a, nil
		case modeReport:
			return a.updateReport(msg)
		}
		return a, nil
	}

	// Forward other messages (cursor blink) to the input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// updateInput handles keys while entering genes.
func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyTab:
		a.libraryIndex = (a.libraryIndex + 1) % len(a.libraries)
		return a, nil

	case tea.KeyEnter:
		genes := splitGenes(a.input.Value())
		if len(genes) == 0 {
			return a, nil
		}
		a.mode = modeRunning
		a.err = nil
		a.input.Blur()
		return a, a.runAnalysis(genes, a.Library().ID)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// updateReport handles keys while reading a report.
func (a *App) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.scrollOffset > 0 {
			a.scrollOffset--
		}
	case "down", "j":
		if a.scrollOffset < a.maxScrollOffset() {
			a.scrollOffset++
		}
	case "pgup", "ctrl+u":
		a.scrollOffset -= a.visibleLines()
		if a.scrollOffset < 0 {
			a.scrollOffset = 0
		}
	case "pgdown", "ctrl+d":
		a.scrollOffset += a.visibleLines()
		if maxOffset := a.maxScrollOffset(); a.scrollOffset > maxOffset {
			a.scrollOffset = maxOffset
		}
	case "home", "g":
		a.scrollOffset = 0
	case "end", "G":
		a.scrollOffset = a.maxScrollOffset()
	case "n":
		// New analysis: clear input and focus it
		a.mode = modeInput
		a.input.SetValue("")
		return a, a.input.Focus()
	case "esc":
		a.mode = modeInput
		return a, a.input.Focus()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// runAnalysis submits the genes off the update loop.
func (a *App) runAnalysis(genes []string, database string) tea.Cmd {
	return func() tea.Msg {
		report, err := a.ports.Analysis.Enrich(a.ctx, genes, database, 0)
		return analysisDoneMsg{report: report, err: err}
	}
}

// setReport stores a report and rewraps it for the current width.
func (a *App) setReport(report string) {
	a.report = report
	a.scrollOffset = 0
	a.wrapReport()
}

// wrapReport wraps the report to fit the view width.
func (a *App) wrapReport() {
	if a.report == "" {
		a.lines = nil
		return
	}

	contentWidth := a.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	rawLines := strings.Split(a.report, "\n")
	a.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		if len(line) <= contentWidth {
			a.lines = append(a.lines, line)
			continue
		}
		for len(line) > contentWidth {
			a.lines = append(a.lines, line[:contentWidth])
			line = line[contentWidth:]
		}
		if line != "" {
			a.lines = append(a.lines, line)
		}
	}
}

// visibleLines returns the number of report lines that fit on screen.
func (a *App) visibleLines() int {
	// Reserve lines for title, separator, scroll indicator and help
	reserved := 7
	available := a.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (a *App) maxScrollOffset() int {
	maxOffset := len(a.lines) - a.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View implements tea.Model.
// It renders the current screen as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.mode == modeReport {
		return a.viewReport()
	}
	return a.viewInput()
}

// viewInput renders the gene entry screen.
func (a *App) viewInput() string {
	sections := make([]string, 0, 8)

	sections = append(sections, a.styles.Title.Render("Pathway Agent"), "")

	library := fmt.Sprintf("Library: %s", a.Library().ID)
	sections = append(sections, a.styles.Subtitle.Render(library), "")

	sections = append(sections, a.styles.InputField.Render(a.input.View()), "")

	if a.mode == modeRunning {
		sections = append(sections, a.styles.Muted.Render("Running enrichment analysis..."), "")
	}

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.renderHelp(a.keymap.InputHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewReport renders the scrollable report screen.
func (a *App) viewReport() string {
	var b strings.Builder

	title := fmt.Sprintf("Enrichment Report - %s", a.Library().ID)
	b.WriteString(a.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(a.width-4, 60)))
	b.WriteString("\n\n")

	visible := a.visibleLines()
	for i := a.scrollOffset; i < len(a.lines) && i < a.scrollOffset+visible; i++ {
		b.WriteString(a.styles.Normal.Render(a.lines[i]))
		b.WriteString("\n")
	}

	// Scroll position indicator
	if len(a.lines) > visible {
		percentage := 0
		if a.maxScrollOffset() > 0 {
			percentage = a.scrollOffset * 100 / a.maxScrollOffset()
		}
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage,
			a.scrollOffset+1,
			minInt(a.scrollOffset+visible, len(a.lines)),
			len(a.lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderHelp(a.keymap.ReportHelp()))

	return b.String()
}

// renderHelp renders keybinding hints.
func (a *App) renderHelp(bindings []key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return a.styles.Help.Render(strings.Join(hints, " | "))
}

// splitGenes splits free-form input on commas and whitespace.
func splitGenes(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
