// Package theme provides colour themes for the dashboard.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/lazyclaw/dashboard/dashboard"
)

// DefaultName is the theme used when none or an unknown one is requested.
const DefaultName = "classic"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds the colours of a dashboard theme. Values are anything
// lipgloss.Color accepts: ANSI indexes or hex strings.
type Theme struct {
	Name     string `toml:"name"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Avatar   string `toml:"avatar"`
	Border   string `toml:"border"` // Avatar panel border
	Label    string `toml:"label"`  // Action labels
	Key      string `toml:"key"`    // Key hints
	Table    string `toml:"table"`  // Table border and highlight column
	Footer   string `toml:"footer"`
	Accent   string `toml:"accent"` // Help bar keys
	Muted    string `toml:"muted"`  // Help bar descriptions

	HighlightSymbol string `toml:"highlight_symbol"`
}

// Load loads a theme by name from embedded files.
// Falls back to classic if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.Accent == "" {
		t.Accent = coalesce(t.Key, t.Title)
	}
	if t.Muted == "" {
		t.Muted = t.Table
	}
	if t.HighlightSymbol == "" {
		t.HighlightSymbol = dashboard.DefaultStyles().HighlightSymbol
	}
}

// Styles returns the dashboard styles for the theme. Emphasis (bold, italic,
// underline) follows the stock look, only colours change.
func (t *Theme) Styles() dashboard.Styles {
	s := dashboard.DefaultStyles()
	s.Title = recolor(s.Title, t.Title)
	s.Subtitle = recolor(s.Subtitle, t.Subtitle)
	s.Avatar = recolor(s.Avatar, t.Avatar)
	s.AvatarBorder = recolor(s.AvatarBorder, t.Border)
	s.TableLabel = recolor(s.TableLabel, t.Label)
	s.TableKey = recolor(s.TableKey, t.Key)
	s.Table = recolor(s.Table, t.Table)
	s.Footer = recolor(s.Footer, t.Footer)
	s.HighlightSymbol = t.HighlightSymbol
	return s
}

func recolor(style lipgloss.Style, color string) lipgloss.Style {
	if color == "" {
		return style
	}
	return style.Foreground(lipgloss.Color(color))
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	entries, err := embeddedThemes.ReadDir("embedded")
	if err != nil {
		return []string{DefaultName}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
