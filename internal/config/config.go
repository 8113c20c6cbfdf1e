package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyclaw/dashboard/dashboard"
	"github.com/lazyclaw/dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard"`
	UI        UIConfig        `yaml:"ui"`

	// Directory of the loaded file, relative avatar files resolve against it
	dir string
}

// DashboardConfig describes the content of the dashboard
type DashboardConfig struct {
	Title         string            `yaml:"title"`
	Subtitle      string            `yaml:"subtitle"`
	Avatar        string            `yaml:"avatar,omitempty"`
	AvatarFile    string            `yaml:"avatar_file,omitempty"` // Read instead of Avatar when set
	Actions       []models.Action   `yaml:"actions"`
	Footer        []string          `yaml:"footer"`
	AvatarPercent int               `yaml:"avatar_percent"`
	PlainTitle    bool              `yaml:"plain_title,omitempty"`
	TitleFont     string            `yaml:"title_font,omitempty"` // figlet font of the big title
	Border        models.BorderKind `yaml:"border"`
	AvatarTitle   string            `yaml:"avatar_title,omitempty"`
	TableTitle    string            `yaml:"table_title,omitempty"`
	TitleAlign    models.TitleAlign `yaml:"title_align,omitempty"`
}

// UIConfig holds UI-related settings
type UIConfig struct {
	Theme    string `yaml:"theme"`
	Mouse    bool   `yaml:"mouse"`
	ShowHelp bool   `yaml:"show_help"`
}

const defaultAvatar = `   _________
  |  _____  |
  | |     | |
  | |_____| |
  |_________|
   __|___|__
  [_________]`

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Title:    "WI EDITOR",
			Subtitle: "Welcome to WI, a tiny terminal editor",
			Avatar:   defaultAvatar,
			Actions: []models.Action{
				{Label: "Find file", Key: "f", Action: "find-file"},
				{Label: "New file", Key: "n", Action: "new-file"},
				{Label: "Recent files", Key: "r", Action: "recent-files"},
				{Label: "Settings", Key: "s", Action: "settings"},
				{Label: "Quit", Key: "q", Action: models.QuitAction},
			},
			Footer: []string{
				"Press the highlighted key or use the arrows and enter",
				"wi v0.1.0",
			},
			AvatarPercent: dashboard.DefaultProportions().AvatarPercent,
			Border:        models.BorderNormal,
		},
		UI: UIConfig{
			Theme:    "classic",
			Mouse:    true,
			ShowHelp: true,
		},
	}
}

// ConfigDir returns the configuration directory path
func ConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dashboard"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

// Load loads the configuration from path, or from ConfigPath when path is empty.
// Returns the config, whether this is a first run (no config exists), and any error
func Load(path string) (*Config, bool, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, false, err
		}
		path = p
	}

	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// First run - return default config
			return cfg, true, nil
		}
		return nil, false, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, false, nil
}

// Save writes the configuration to path, or to ConfigPath when path is empty
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Write atomically: write to temp file, then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// AvatarText returns the avatar art, reading AvatarFile when it is set
func (c *Config) AvatarText() (string, error) {
	if c.Dashboard.AvatarFile == "" {
		return c.Dashboard.Avatar, nil
	}
	path := c.Dashboard.AvatarFile
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}
	return string(data), nil
}

// Action returns the action at row i
func (c *Config) Action(i int) (models.Action, bool) {
	if i < 0 || i >= len(c.Dashboard.Actions) {
		return models.Action{}, false
	}
	return c.Dashboard.Actions[i], true
}

// Builder returns a dashboard builder populated from the configuration
func (c *Config) Builder(styles dashboard.Styles) (*dashboard.Builder, error) {
	avatar, err := c.AvatarText()
	if err != nil {
		return nil, err
	}

	items := make([]dashboard.TableItem, len(c.Dashboard.Actions))
	for i, a := range c.Dashboard.Actions {
		items[i] = a.Item()
	}

	percent := c.Dashboard.AvatarPercent
	if percent <= 0 {
		percent = dashboard.DefaultProportions().AvatarPercent
	}

	b := dashboard.NewBuilder().
		GeneralTitle(c.Dashboard.Title).
		Subtitle(c.Dashboard.Subtitle).
		Avatar(avatar).
		Table(items...).
		Footer(c.Dashboard.Footer...).
		Styles(styles).
		Proportions(dashboard.Proportions{AvatarPercent: percent}).
		BigTitle(!c.Dashboard.PlainTitle).
		TitleFont(c.Dashboard.TitleFont).
		AvatarBlock(c.block(c.Dashboard.AvatarTitle, styles.AvatarBorder)).
		TableBlock(c.block(c.Dashboard.TableTitle, styles.Table))

	return b, nil
}

func (c *Config) block(title string, style lipgloss.Style) dashboard.Panel {
	panel := dashboard.NewPanel().
		Title(title).
		TitleStyle(style).
		TitleAlign(c.Dashboard.TitleAlign.Position())
	if border, ok := c.Dashboard.Border.Border(); ok {
		panel = panel.Border(border).BorderStyle(style)
	}
	return panel
}
