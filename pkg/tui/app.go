package tui

import (
	"courselookup/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the styles used for terminal output. The zero value and
// PlainTheme print text unchanged.
type Theme struct {
	accentColor string
	accent      lipgloss.Style
	err         lipgloss.Style
	styled      bool
}

// NewTheme builds the output theme from the run configuration.
func NewTheme(cfg *config.AppConfig) Theme {
	if cfg == nil || cfg.NoColor {
		return PlainTheme()
	}

	return Theme{
		accentColor: cfg.AccentColor,
		accent:      lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.AccentColor)).Bold(true).TabWidth(lipgloss.NoTabConversion),
		err:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).TabWidth(lipgloss.NoTabConversion),
		styled:      true,
	}
}

// PlainTheme returns a theme that applies no styling at all.
func PlainTheme() Theme {
	return Theme{}
}

// Accent renders s in the accent colour.
func (t Theme) Accent(s string) string {
	if !t.styled {
		return s
	}
	return t.accent.Render(s)
}

// Error renders s in the error style.
func (t Theme) Error(s string) string {
	if !t.styled {
		return s
	}
	return t.err.Render(s)
}

// Form returns the huh theme matching this output theme.
func (t Theme) Form() *huh.Theme {
	if !t.styled {
		return huh.ThemeBase()
	}
	return formTheme(t.accentColor)
}

// formTheme returns huh's Charm theme recoloured with baseColor.
func formTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}
