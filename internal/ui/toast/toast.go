// Package toast shows short-lived notifications under the main view.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Severity of a toast
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Func reports a message to the user
type Func func(title, message string, severity Severity)

// Toast is one notification
type Toast struct {
	ID       int
	Title    string
	Message  string
	Severity Severity
}

// ExpireMsg removes the toast with ID once its time is up
type ExpireMsg struct {
	ID int
}

// Model holds the visible toasts, newest last
type Model struct {
	toasts []Toast
	nextID int
	ttl    time.Duration
	max    int
}

// New creates a toast model. A ttl of zero keeps toasts until they are
// pushed out by newer ones.
func New(ttl time.Duration, max int) Model {
	if max <= 0 {
		max = 3
	}
	return Model{ttl: ttl, max: max}
}

// Push adds a toast and returns the command that expires it
func (m *Model) Push(title, message string, severity Severity) tea.Cmd {
	m.nextID++
	id := m.nextID
	m.toasts = append(m.toasts, Toast{ID: id, Title: title, Message: message, Severity: severity})
	if len(m.toasts) > m.max {
		m.toasts = m.toasts[len(m.toasts)-m.max:]
	}

	if m.ttl <= 0 {
		return nil
	}
	return tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}

// Update handles expiry messages; it reports whether msg was consumed
func (m *Model) Update(msg tea.Msg) bool {
	expire, ok := msg.(ExpireMsg)
	if !ok {
		return false
	}
	for i, t := range m.toasts {
		if t.ID == expire.ID {
			m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the visible toasts
func (m Model) Items() []Toast {
	return append([]Toast(nil), m.toasts...)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	colours    = map[Severity]lipgloss.Color{
		SeverityInfo:    lipgloss.Color("51"),  // cyan
		SeverityWarning: lipgloss.Color("214"), // yellow
		SeverityError:   lipgloss.Color("203"), // red
	}
)

// View renders the toasts stacked vertically
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		colour := colours[t.Severity]
		body := titleStyle.Foreground(colour).Render(t.Title) + " " + t.Message
		parts = append(parts, boxStyle.BorderForeground(colour).Render(body))
	}
	return strings.Join(parts, "\n")
}
