package bargraph

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler colorizes a piece of text. Implementations must be deterministic and
// must terminate their own escape sequences so adjacent calls compose.
type Styler interface {
	Style(text string, c Color) string
}

// StylerFunc adapts a plain function to the Styler interface.
type StylerFunc func(text string, c Color) string

// Style calls f(text, c).
func (f StylerFunc) Style(text string, c Color) string { return f(text, c) }

// PlainStyler leaves text untouched. Use it when output is not a terminal.
var PlainStyler Styler = StylerFunc(func(text string, _ Color) string { return text })

type lipglossStyler struct {
	r *lipgloss.Renderer
}

// NewLipglossStyler styles text with the given renderer, honouring whatever
// color profile it detected or was configured with.
func NewLipglossStyler(r *lipgloss.Renderer) Styler {
	return lipglossStyler{r: r}
}

func (s lipglossStyler) Style(text string, c Color) string {
	return s.r.NewStyle().
		Foreground(lipgloss.Color(c.Hex())).
		TabWidth(lipgloss.NoTabConversion).
		Render(text)
}

// TrueColorStyler emits 24-bit foreground escapes regardless of the
// terminal it ends up on.
func TrueColorStyler() Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return NewLipglossStyler(r)
}
