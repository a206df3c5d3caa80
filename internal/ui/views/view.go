package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usersearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int
	Text      string // raw input value
	Results   []domain.User
	Loading   bool
	Selected  int
	InputView string // rendered text input
	Button    string // rendered search button content
	Toasts    string
	Help      string
	Profile   *domain.User // set when a profile route is open
}

// BodyKind is which of the mutually exclusive result states is shown
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodySkeleton
	BodySuggestions
	BodyNoUsers
)

// Body picks the result state. Loading wins over everything else.
func Body(text string, results []domain.User, loading bool) BodyKind {
	hasQuery := strings.TrimSpace(text) != ""
	switch {
	case loading:
		return BodySkeleton
	case hasQuery && len(results) > 0:
		return BodySuggestions
	case hasQuery:
		return BodyNoUsers
	default:
		return BodyNone
	}
}

// Assets are the image locations shown alongside results
type Assets struct {
	PlaceholderAvatar string
	VerifiedBadge     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	userRender *UserRenderer
	assets     Assets
}

// NewRenderer creates a new renderer
func NewRenderer(assets Assets) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		userRender: NewUserRenderer(styles, assets.PlaceholderAvatar),
		assets:     assets,
	}
}

// Users returns the row renderer
func (r *Renderer) Users() *UserRenderer {
	return r.userRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.Profile != nil {
		content.WriteString(r.styles.Title.Render("Search Users › " + state.Profile.Route()))
		content.WriteString("\n")
		content.WriteString(r.RenderProfile(*state.Profile))
	} else {
		content.WriteString(r.styles.Title.Render("Search Users"))
		content.WriteString("\n")
		content.WriteString(r.renderInputLine(state))
		if body := r.RenderResults(state); body != "" {
			content.WriteString("\n")
			content.WriteString(body)
		}
	}

	if state.Toasts != "" {
		content.WriteString("\n\n")
		content.WriteString(state.Toasts)
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	main := r.styles.Main
	if state.Width > 0 {
		main = main.MaxWidth(state.Width)
	}
	return main.Render(content.String())
}

func (r *Renderer) renderInputLine(state ViewState) string {
	button := state.Button
	if button == "" {
		button = "⌕"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, state.InputView, " ", r.styles.Button.Render(button))
}

// RenderResults renders the area below the input: skeleton, suggestions,
// the empty message or nothing
func (r *Renderer) RenderResults(state ViewState) string {
	switch Body(state.Text, state.Results, state.Loading) {
	case BodySkeleton:
		return r.RenderSkeleton()
	case BodySuggestions:
		var b strings.Builder
		b.WriteString(r.styles.Heading.Render("Suggestions"))
		query := strings.TrimSpace(state.Text)
		for i, u := range state.Results {
			b.WriteString("\n")
			b.WriteString(r.userRender.RenderUser(u, i == state.Selected, query))
		}
		return b.String()
	case BodyNoUsers:
		return r.styles.Empty.Render("No users found.")
	default:
		return ""
	}
}

// RenderSkeleton renders the loading placeholder: a round avatar and two bars
func (r *Renderer) RenderSkeleton() string {
	circle := r.styles.Skeleton.Render("◯ ")
	bars := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Skeleton.Render(strings.Repeat("▆", 8)),
		r.styles.Skeleton.Render(strings.Repeat("▃", 9)),
	)
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Center, "  ", circle, " ", bars)
}

// RenderProfile renders the pane shown for a /<username> route
func (r *Renderer) RenderProfile(u domain.User) string {
	lines := []string{
		r.styles.Avatar.Render(" "+padInitials(Initials(u))+" ") + " " +
			r.styles.Username.Render(u.Username) + " " + r.styles.Badge.Render(VerifiedGlyph),
		r.styles.DisplayName.Render(u.Name),
		"",
		r.styles.Dim.Render("id:     " + u.ID),
		r.styles.Dim.Render("avatar: " + r.userRender.AvatarURL(u)),
	}
	if r.assets.VerifiedBadge != "" {
		lines = append(lines, r.styles.Dim.Render("badge:  "+r.assets.VerifiedBadge))
	}
	return r.styles.Profile.Render(strings.Join(lines, "\n"))
}

// RenderPlain renders results without styling, one user per line, for
// non-interactive output
func (r *Renderer) RenderPlain(text string, results []domain.User) string {
	switch Body(text, results, false) {
	case BodySuggestions:
		var b strings.Builder
		b.WriteString("Suggestions\n")
		for _, u := range results {
			b.WriteString(u.Username + " " + VerifiedGlyph + "\t" + u.Name + "\t" + u.Route() + "\t" + r.userRender.AvatarURL(u) + "\n")
		}
		return b.String()
	case BodyNoUsers:
		return "No users found.\n"
	default:
		return ""
	}
}
