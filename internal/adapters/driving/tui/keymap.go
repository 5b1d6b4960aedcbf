package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the gene input.
	Back key.Binding

	// Run submits the gene list for analysis.
	Run key.Binding

	// CycleLibrary switches to the next gene-set library.
	CycleLibrary key.Binding

	// Up scrolls the report up.
	Up key.Binding

	// Down scrolls the report down.
	Down key.Binding

	// NewAnalysis clears the input and starts over.
	NewAnalysis key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyse"),
		),
		CycleLibrary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "library"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NewAnalysis: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new analysis"),
		),
	}
}

// InputHelp returns keybindings shown while entering genes.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Run, k.CycleLibrary, k.Back}
}

// ReportHelp returns keybindings shown while reading a report.
func (k *KeyMap) ReportHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NewAnalysis, k.Back, k.Quit}
}
