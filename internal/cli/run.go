package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lazyclaw/dashboard/internal/state"
	"github.com/lazyclaw/dashboard/internal/ui"
	"github.com/lazyclaw/dashboard/internal/ui/styles"
)

const zonePrefix = ui.ZonePrefix

func (a *App) runTUI(cmd *cobra.Command) error {
	if a.colorAuto() {
		// Detect colours on the screen's stream; stdout is often a pipe.
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(a.screen))
	}

	cfg, th, dash, err := a.load(true)
	if err != nil {
		return err
	}

	// Load UI state
	uiState, err := state.Load()
	if err != nil {
		slog.WarnContext(logCtx, "ignoring unreadable state", "err", err)
	}

	app := ui.NewApp(cfg, dash, styles.FromTheme(th), uiState)

	// The screen goes to stderr so stdout carries only the chosen id,
	// as in $(dashboard).
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(a.screen)}
	if a.input != nil {
		opts = append(opts, tea.WithInput(a.input))
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	// Run the Bubble Tea program
	p := tea.NewProgram(app, opts...)
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}

	finalApp, ok := finalModel.(*ui.App)
	if !ok {
		return nil
	}

	// Save state on exit
	if err := state.Save(finalApp.GetState()); err != nil {
		slog.WarnContext(logCtx, "saving state", "err", err) // Best effort save
	}

	if act, ok := finalApp.Chosen(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), act.ID())
	}
	return nil
}
