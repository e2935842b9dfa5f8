package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Border        lipgloss.Style
	Header        lipgloss.Style
	HeaderFocused lipgloss.Style
	HeaderSorted  lipgloss.Style
	Cell          lipgloss.Style
	Cursor        lipgloss.Style
	Selected      lipgloss.Style
	Checkbox      lipgloss.Style
	Empty         lipgloss.Style
	Loading       lipgloss.Style
	Spinner       lipgloss.Style
	SortMenu      lipgloss.Style
	StatusError   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Header:        lipgloss.NewStyle().Bold(true).Padding(0, 1),
		HeaderFocused: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("226")).Underline(true),
		HeaderSorted:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("39")),
		Cell:          lipgloss.NewStyle().Padding(0, 1),
		Cursor:        lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		Selected:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("78")), // green
		Checkbox:      lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("214")),
		Empty:         lipgloss.NewStyle().Faint(true).Italic(true).Padding(1, 0),
		Loading:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(1, 0),
		Spinner:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		SortMenu:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
