package palette

import (
	"sort"

	"github.com/RustyNova016/charchart/bargraph"
	"github.com/charmbracelet/lipgloss"
)

// Theme supplies the default bar and value colors of a chart. The colors are
// taken from the Base16 scheme of the same name: bars use the blue slot
// (base0D) and values the comment slot (base03).
type Theme struct {
	Name  string
	Bar   lipgloss.Color
	Value lipgloss.Color
}

const DefaultThemeName = "charchart"

var Themes = map[string]Theme{
	"charchart":      {Name: "Charchart", Bar: "#ffffff", Value: "#969696"},
	"solarized-dark": {Name: "Solarized Dark", Bar: "#268bd2", Value: "#657b83"},
	"dracula":        {Name: "Dracula", Bar: "#62d6e8", Value: "#626483"},
	"gruvbox-dark":   {Name: "Gruvbox Dark", Bar: "#83a598", Value: "#665c54"},
	"nord":           {Name: "Nord", Bar: "#81a1c1", Value: "#4c566a"},
	"monokai":        {Name: "Monokai", Bar: "#66d9ef", Value: "#75715e"},
	"tomorrow-night": {Name: "Tomorrow Night", Bar: "#81a2be", Value: "#969896"},
	"one-dark":       {Name: "One Dark", Bar: "#61afef", Value: "#545862"},
}

var sortedSlugs []string

func init() {
	sortedSlugs = make([]string, 0, len(Themes))
	for slug := range Themes {
		sortedSlugs = append(sortedSlugs, slug)
	}
	sort.Strings(sortedSlugs)
}

// GetThemeByName returns a theme by its slug, or nil if not found.
func GetThemeByName(name string) *Theme {
	t, ok := Themes[name]
	if !ok {
		return nil
	}
	return &t
}

// ListThemes returns sorted theme slugs.
func ListThemes() []string {
	return sortedSlugs
}

// Colors converts the theme's lipgloss colors into bar and value colors.
func (t Theme) Colors() (bar, value bargraph.Color, err error) {
	if bar, err = bargraph.ParseHex(string(t.Bar)); err != nil {
		return
	}
	value, err = bargraph.ParseHex(string(t.Value))
	return
}
