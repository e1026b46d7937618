package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/RustyNova016/charchart/internal/palette"
)

// Color modes accepted by the "color" setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalid is returned by Validate for settings outside their range.
var ErrInvalid = errors.New("invalid config")

// Config is the user configuration stored in config.toml.
type Config struct {
	Theme          string `toml:"theme"`
	Width          int    `toml:"width"` // 0 fits the terminal
	SpaceBetween   int    `toml:"space_between"`
	GroupSameLabel bool   `toml:"group_same_label"`
	BarCharacter   string `toml:"bar_character"`
	BarColor       string `toml:"bar_color"`   // overrides the theme when set
	ValueColor     string `toml:"value_color"` // overrides the theme when set
	Color          string `toml:"color"`
}

// DefaultConfig returns the settings used when config.toml is absent.
func DefaultConfig() *Config {
	return &Config{
		Theme:          palette.DefaultThemeName,
		Width:          0,
		SpaceBetween:   1,
		GroupSameLabel: true,
		BarCharacter:   "█",
		Color:          ColorAuto,
	}
}

// Validate checks settings that TOML decoding alone cannot.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrInvalid, c.Width)
	}
	if c.SpaceBetween < 0 {
		return fmt.Errorf("%w: negative space_between %d", ErrInvalid, c.SpaceBetween)
	}
	if utf8.RuneCountInString(c.BarCharacter) != 1 {
		return fmt.Errorf("%w: bar_character must be a single character, got %q", ErrInvalid, c.BarCharacter)
	}
	return nil
}

// BarRune returns the configured fill character.
func (c *Config) BarRune() rune {
	r, _ := utf8.DecodeRuneInString(c.BarCharacter)
	return r
}

// LoadConfig reads and validates the config at path. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig validates cfg and writes it to path as TOML.
func SaveConfig(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
