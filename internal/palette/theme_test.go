package palette

import (
	"testing"

	"github.com/RustyNova016/charchart/bargraph"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestListThemesSorted(t *testing.T) {
	themes := ListThemes()
	if len(themes) != len(Themes) {
		t.Fatalf("expected %d themes, got %d", len(Themes), len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("themes not sorted: %q before %q", themes[i-1], themes[i])
		}
	}
}

func TestDefaultThemeMatchesGraphDefaults(t *testing.T) {
	bar, value, err := GetThemeByName(DefaultThemeName).Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}
	if bar != bargraph.DefaultBarColor {
		t.Errorf("expected bar %v, got %v", bargraph.DefaultBarColor, bar)
	}
	if value != bargraph.DefaultValueColor {
		t.Errorf("expected value %v, got %v", bargraph.DefaultValueColor, value)
	}
}

func TestAllThemesParse(t *testing.T) {
	for slug, theme := range Themes {
		if _, _, err := theme.Colors(); err != nil {
			t.Errorf("theme %q: %v", slug, err)
		}
	}
}
