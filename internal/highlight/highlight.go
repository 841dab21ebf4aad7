// Package highlight styles the matched IP field in emitted lines.
//
// Color is cosmetic only: with highlighting off (explicitly, or because
// stdout is not a terminal in auto mode) emitted bytes are exactly the
// input bytes, keeping piped output stable.
package highlight

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by the --color flag.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

var matchStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("9"))

// Styler renders the matched field. A nil or disabled Styler renders
// text unchanged.
type Styler struct {
	enabled bool
}

// New resolves a color mode against whether stdout is a terminal.
// "always" forces an ANSI profile so color survives pipes.
func New(mode string, isTTY bool) (*Styler, error) {
	switch mode {
	case ModeNever:
		return &Styler{}, nil
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
		return &Styler{enabled: true}, nil
	case ModeAuto:
		return &Styler{enabled: isTTY}, nil
	default:
		return nil, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
}

// Enabled reports whether rendering will alter the text.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// Render returns text styled as a match, or unchanged when disabled.
func (s *Styler) Render(text string) string {
	if !s.Enabled() {
		return text
	}
	return matchStyle.Render(text)
}
