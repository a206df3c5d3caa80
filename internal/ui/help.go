package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// RenderHelpContent generates the help page shown in the pager
func RenderHelpContent(keys keyMap, debounce string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("User Search Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("type     "), descStyle.Render("Search users by username or name")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(pad(keys.Clear.Help().Key, 9)), descStyle.Render("Clear the search box")))
	help.WriteString(fmt.Sprintf("  %s\n", descStyle.Render("Requests are sent once typing pauses for "+debounce+".")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	for _, b := range []struct{ k, d string }{
		{keys.Up.Help().Key, "Previous suggestion"},
		{keys.Down.Help().Key, "Next suggestion"},
		{keys.Open.Help().Key, "Open the user's profile"},
		{keys.Back.Help().Key, "Back to search from a profile"},
	} {
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(pad(b.k, 9)), descStyle.Render(b.d)))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(pad(keys.Help.Help().Key, 9)), descStyle.Render("Show this help (q to close)")))
	help.WriteString(fmt.Sprintf("  %s  %s", keyStyle.Render(pad(keys.Quit.Help().Key, 9)), descStyle.Render("Quit")))

	return help.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// pagerCommand runs ov over content. It satisfies tea.ExecCommand so
// bubbletea releases and restores the terminal around it.
type pagerCommand struct {
	content string
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov drives the terminal directly
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showHelpPager returns a command that shows help in the ov pager
func showHelpPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
