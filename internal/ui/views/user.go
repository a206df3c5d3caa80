package views

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"usersearch/internal/domain"
)

// VerifiedGlyph stands in for the verified badge image in the terminal
const VerifiedGlyph = "✔"

// UserRenderer renders result rows
type UserRenderer struct {
	styles      *Styles
	placeholder string
}

// NewUserRenderer creates a row renderer; placeholder is the avatar URL
// used for users without a profile picture
func NewUserRenderer(styles *Styles, placeholder string) *UserRenderer {
	return &UserRenderer{styles: styles, placeholder: placeholder}
}

// AvatarURL returns the user's profile picture or the placeholder
func (r *UserRenderer) AvatarURL(u domain.User) string {
	if u.ProfilePic != "" {
		return u.ProfilePic
	}
	return r.placeholder
}

// Initials returns up to two letters for the avatar cell
func Initials(u domain.User) string {
	source := u.Name
	if strings.TrimSpace(source) == "" {
		source = u.Username
	}
	var out []rune
	for _, word := range strings.Fields(source) {
		for _, ch := range word {
			if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
				out = append(out, unicode.ToUpper(ch))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// RenderUser renders one result as two lines: avatar, username with badge
// and route, then the display name
func (r *UserRenderer) RenderUser(u domain.User, isSelected bool, query string) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}

	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	avatar := r.styles.Avatar.Render(" " + padInitials(Initials(u)) + " ")

	name := r.highlightMatch(u.Username, query, r.styles.Username.Inherit(r.styles.Highlight), r.styles.Username)
	badge := r.styles.Badge.Render(VerifiedGlyph)
	route := r.styles.Route.Render(u.Route())

	first := bg.Render(cursor) + avatar + bg.Render(" ") + name + bg.Render(" ") + badge + bg.Render("  ") + route
	second := strings.Repeat(" ", lipgloss.Width(cursor)+lipgloss.Width(avatar)+1) + r.styles.DisplayName.Render(u.Name)

	return first + "\n" + second
}

func padInitials(s string) string {
	if lipgloss.Width(s) < 2 {
		return s + " "
	}
	return s
}

// highlightMatch renders the first case-insensitive occurrence of query in text
func (r *UserRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	query = strings.TrimSpace(query)
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// byte offsets are only meaningful when lowering kept the lengths
	if query == "" || index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
