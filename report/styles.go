package report

import "github.com/charmbracelet/lipgloss"

// Palette used by NewStyles.
var (
	colorHeader = lipgloss.Color("#20B9B4")
	colorRoute  = lipgloss.Color("#2CD7C7")
	colorGood   = lipgloss.Color("#2CD7C7")
	colorBad    = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#2C4A54")
)

// Styles decides how each piece of a report is decorated.
// The zero value renders plain text.
type Styles struct {
	Header   lipgloss.Style // section titles
	Route    lipgloss.Style // "A -> B -> C"
	Distance lipgloss.Style // "36 km"
	Good     lipgloss.Style // positive verdicts
	Bad      lipgloss.Style // negative verdicts and missing routes
	Muted    lipgloss.Style // secondary lines

	enabled bool
}

// PlainStyles returns Styles that leave every string untouched.
func PlainStyles() Styles { return Styles{} }

// NewStyles returns colored Styles bound to renderer r, which determines the
// terminal color profile.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(colorHeader),
		Route:    r.NewStyle().Foreground(colorRoute),
		Distance: r.NewStyle().Bold(true),
		Good:     r.NewStyle().Foreground(colorGood),
		Bad:      r.NewStyle().Foreground(colorBad),
		Muted:    r.NewStyle().Foreground(colorMuted),
		enabled:  true,
	}
}

// Enabled reports whether s decorates output.
func (s Styles) Enabled() bool { return s.enabled }

// apply renders text with st when styling is enabled.
func (s Styles) apply(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}
