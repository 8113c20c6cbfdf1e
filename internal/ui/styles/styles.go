package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/lazyclaw/dashboard/internal/ui/theme"
)

// Colors used when no theme provides one
var (
	ColorPrimary = lipgloss.Color("6")
	ColorMuted   = lipgloss.Color("8")
)

// Chrome holds the styles of everything drawn around the dashboard
type Chrome struct {
	BottomBar lipgloss.Style
	HintKey   lipgloss.Style
	HintDesc  lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style
}

// Default returns the chrome for terminals without a theme
func Default() Chrome {
	return newChrome(ColorPrimary, ColorMuted)
}

// FromTheme returns the chrome coloured by t
func FromTheme(t *theme.Theme) Chrome {
	if t == nil {
		return Default()
	}
	accent, muted := ColorPrimary, ColorMuted
	if t.Accent != "" {
		accent = lipgloss.Color(t.Accent)
	}
	if t.Muted != "" {
		muted = lipgloss.Color(t.Muted)
	}
	return newChrome(accent, muted)
}

func newChrome(accent, muted lipgloss.Color) Chrome {
	return Chrome{
		BottomBar: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		HintKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		HintDesc:  lipgloss.NewStyle().Foreground(muted),
		Separator: lipgloss.NewStyle().Foreground(muted),
		Muted:     lipgloss.NewStyle().Foreground(muted),
	}
}

// Help returns styles for the bubbles help bar
func (c Chrome) Help() help.Styles {
	return help.Styles{
		Ellipsis:       c.Separator,
		ShortKey:       c.HintKey,
		ShortDesc:      c.HintDesc,
		ShortSeparator: c.Separator,
		FullKey:        c.HintKey,
		FullDesc:       c.HintDesc,
		FullSeparator:  c.Separator,
	}
}
