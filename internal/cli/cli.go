// Package cli holds the dashboard command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/lazyclaw/dashboard/dashboard"
	"github.com/lazyclaw/dashboard/internal/config"
	"github.com/lazyclaw/dashboard/internal/logging"
	"github.com/lazyclaw/dashboard/internal/ui/theme"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

var logCtx = logging.PackageCtx("cli")

// App holds the CLI application state.
type App struct {
	root *cobra.Command

	configPath string
	themeName  string
	color      string
	debug      bool // Enable debug logging
	noMouse    bool

	// screen and input carry the interactive screen; input nil is stdin
	screen io.Writer
	input  io.Reader

	closeLog func() error
}

// NewApp creates the CLI application.
func NewApp() *App {
	a := &App{
		screen:   os.Stderr,
		closeLog: func() error { return nil },
	}

	a.root = &cobra.Command{
		Use:   "dashboard",
		Short: "A decorative terminal start screen",
		Long: `Dashboard shows a start screen with a big title, an avatar, a table of
actions with key hints and a footer.

Activating an action exits and prints its id, so the dashboard can drive
shell scripts:

  case "$(dashboard)" in
    find-file) ... ;;
  esac`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := a.root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/dashboard/config.yml)")
	flags.StringVarP(&a.themeName, "theme", "t", "", "Colour theme, overrides the config ("+strings.Join(theme.Available(), ", ")+")")
	flags.StringVar(&a.color, "color", "auto", "Colour profile: auto, none, ansi, ansi256, truecolor")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.Flags().BoolVar(&a.noMouse, "no-mouse", false, "Disable mouse support")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.printCmd())
	a.root.AddCommand(a.initCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the log file, if any.
func (a *App) Close() error {
	return a.closeLog()
}

func (a *App) setup() error {
	if err := a.applyColor(); err != nil {
		return err
	}

	path := ""
	if a.debug {
		path = filepath.Join(os.TempDir(), "dashboard-debug.log")
	}
	closeFn, err := logging.Setup(path, slog.LevelDebug)
	if err != nil {
		return err
	}
	a.closeLog = closeFn
	return nil
}

func (a *App) colorAuto() bool {
	c := strings.ToLower(a.color)
	return c == "" || c == "auto"
}

func (a *App) applyColor() error {
	switch strings.ToLower(a.color) {
	case "", "auto":
	case "none", "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "ansi":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		return fmt.Errorf("unknown color profile %q", a.color)
	}
	return nil
}

// load reads the config and theme and builds the dashboard. Mouse zones are
// only marked for the interactive screen.
func (a *App) load(interactive bool) (*config.Config, *theme.Theme, dashboard.Dashboard, error) {
	cfg, firstRun, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, dashboard.Dashboard{}, fmt.Errorf("loading config: %w", err)
	}
	if firstRun {
		slog.InfoContext(logCtx, "no config file, using defaults")
	}

	name := cfg.UI.Theme
	if a.themeName != "" {
		name = a.themeName
	}
	th, err := theme.Load(name)
	if err != nil {
		return nil, nil, dashboard.Dashboard{}, err
	}
	if name != "" && !theme.IsAvailable(name) {
		slog.WarnContext(logCtx, "unknown theme, using fallback", "theme", name, "fallback", th.Name)
	}
	if font := cfg.Dashboard.TitleFont; font != "" && !dashboard.FontExists(font) {
		slog.WarnContext(logCtx, "unknown title font, drawing the plain title", "font", font)
	}

	b, err := cfg.Builder(th.Styles())
	if err != nil {
		return nil, nil, dashboard.Dashboard{}, err
	}
	cfg.UI.Mouse = cfg.UI.Mouse && interactive && !a.noMouse
	if cfg.UI.Mouse {
		b.ZonePrefix(zonePrefix)
	}

	return cfg, th, b.Build(), nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dashboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in colour themes",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range theme.Available() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
