package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultAccentColor is the ANSI 256 colour used for accents when none is given.
const DefaultAccentColor = "99"

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// AppConfig holds the settings for a single run. Nothing is read from or
// written to disk; values come from defaults and command-line flags.
type AppConfig struct {
	AccentColor string
	NoColor     bool
	Debug       bool
}

// Default returns the configuration used when no flags are given.
func Default() *AppConfig {
	return &AppConfig{AccentColor: DefaultAccentColor}
}

// Validate checks that AccentColor is something lipgloss understands:
// an ANSI index 0-255 or a #RGB / #RRGGBB hex string.
func (c *AppConfig) Validate() error {
	if c.AccentColor == "" {
		return fmt.Errorf("accent color must not be empty")
	}
	if hexColor.MatchString(c.AccentColor) {
		return nil
	}
	n, err := strconv.Atoi(c.AccentColor)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("invalid accent color %q: want 0-255 or #RRGGBB", c.AccentColor)
	}
	return nil
}
