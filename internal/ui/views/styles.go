package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Heading     lipgloss.Style
	Dim         lipgloss.Style
	Empty       lipgloss.Style
	Username    lipgloss.Style
	DisplayName lipgloss.Style
	Route       lipgloss.Style
	Badge       lipgloss.Style
	Avatar      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Skeleton    lipgloss.Style
	Button      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Profile     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Heading:     lipgloss.NewStyle().Bold(true).MarginTop(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Empty:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).MarginTop(1),
		Username:    lipgloss.NewStyle().Bold(true),
		DisplayName: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Route:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		Avatar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("61")).
			Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Skeleton:    lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().Padding(1, 2),
		Profile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
	}
}
