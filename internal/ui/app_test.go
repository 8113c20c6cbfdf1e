package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazyclaw/dashboard/dashboard"
	"github.com/lazyclaw/dashboard/internal/config"
	"github.com/lazyclaw/dashboard/internal/models"
	"github.com/lazyclaw/dashboard/internal/state"
	"github.com/lazyclaw/dashboard/internal/ui/styles"
)

func newTestApp(t *testing.T, mouse bool, uiState *state.State) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.Mouse = mouse
	return newAppFromConfig(t, cfg, uiState)
}

func newAppFromConfig(t *testing.T, cfg *config.Config, uiState *state.State) *App {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	b, err := cfg.Builder(dashboard.DefaultStyles())
	require.NoError(t, err)
	if cfg.UI.Mouse {
		b.ZonePrefix(ZonePrefix)
	}
	return NewApp(cfg, b.Build(), styles.Default(), uiState)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := a.Update(msg)
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func selected(t *testing.T, a *App) int {
	t.Helper()
	i, ok := a.Selected()
	require.True(t, ok, "expected a selected row")
	return i
}

func TestViewBeforeSize(t *testing.T) {
	a := newTestApp(t, false, nil)
	assert.Equal(t, "Initializing...", a.View())
}

func TestNavigation(t *testing.T) {
	a := newTestApp(t, false, nil)
	assert.Equal(t, 0, selected(t, a))

	press(t, a, runes("j"))
	assert.Equal(t, 1, selected(t, a))

	press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, selected(t, a))

	press(t, a, runes("k"))
	assert.Equal(t, 1, selected(t, a))

	press(t, a, runes("G"))
	assert.Equal(t, 4, selected(t, a))

	press(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, selected(t, a), "down clamps at the last row")

	press(t, a, runes("g"))
	assert.Equal(t, 0, selected(t, a))

	press(t, a, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, selected(t, a), "up clamps at the first row")

	press(t, a, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 4, selected(t, a))

	press(t, a, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, selected(t, a))
}

func TestEnterActivatesSelection(t *testing.T) {
	a := newTestApp(t, false, nil)
	press(t, a, runes("j"))

	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))

	act, ok := a.Chosen()
	require.True(t, ok)
	assert.Equal(t, "new-file", act.ID())
}

func TestKeyHintActivatesRow(t *testing.T) {
	for _, k := range []string{"r", "R"} {
		t.Run(k, func(t *testing.T) {
			a := newTestApp(t, false, nil)

			cmd := press(t, a, runes(k))
			assert.True(t, isQuit(cmd))
			assert.Equal(t, 2, selected(t, a))

			act, ok := a.Chosen()
			require.True(t, ok)
			assert.Equal(t, "recent-files", act.ID())
		})
	}
}

func TestQuitActionReportsNothing(t *testing.T) {
	a := newTestApp(t, false, nil)

	cmd := press(t, a, runes("q"))
	assert.True(t, isQuit(cmd))

	_, ok := a.Chosen()
	assert.False(t, ok)
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Mouse = false
	cfg.Dashboard.Actions = []models.Action{{Label: "Copy", Key: "ctrl+c", Action: "copy"}}
	a := newAppFromConfig(t, cfg, nil)

	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))

	_, ok := a.Chosen()
	assert.False(t, ok)
}

func TestKeyHintBeatsNavigation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Mouse = false
	cfg.Dashboard.Actions = []models.Action{
		{Label: "Open", Key: "o"},
		{Label: "Jump", Key: "j", Action: "jump"},
	}
	a := newAppFromConfig(t, cfg, nil)

	cmd := press(t, a, runes("j"))
	assert.True(t, isQuit(cmd))

	act, ok := a.Chosen()
	require.True(t, ok)
	assert.Equal(t, "jump", act.ID())
}

func TestEmptyTable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Mouse = false
	cfg.Dashboard.Actions = nil
	a := newAppFromConfig(t, cfg, state.DefaultState())

	_, ok := a.Selected()
	assert.False(t, ok)

	press(t, a, runes("j"))
	press(t, a, runes("g"))
	cmd := press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	_, ok = a.Chosen()
	assert.False(t, ok)
}

func TestRestoreState(t *testing.T) {
	tests := []struct {
		name     string
		row      int
		want     int
		hasValue bool
	}{
		{"in range", 3, 3, true},
		{"past the end", 42, 4, true},
		{"none", -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, false, &state.State{SelectedRow: tt.row})
			i, ok := a.Selected()
			assert.Equal(t, tt.hasValue, ok)
			if tt.hasValue {
				assert.Equal(t, tt.want, i)
			}
		})
	}
}

func TestRestoreWindowSize(t *testing.T) {
	a := newTestApp(t, false, &state.State{WindowWidth: 60, WindowHeight: 20})

	view := a.View()
	assert.NotEqual(t, "Initializing...", view)
	assert.Equal(t, 20, lipgloss.Height(view))
	assert.Contains(t, view, "Find file")

	s := a.GetState()
	assert.Equal(t, 60, s.WindowWidth)
	assert.Equal(t, 20, s.WindowHeight)

	press(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 24, lipgloss.Height(a.View()))
}

func TestRestoreIgnoresPartialWindowSize(t *testing.T) {
	a := newTestApp(t, false, &state.State{WindowWidth: 60})
	assert.Equal(t, "Initializing...", a.View())
}

func TestGetState(t *testing.T) {
	a := newTestApp(t, false, nil)
	press(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	press(t, a, runes("j"))
	press(t, a, runes("?"))

	s := a.GetState()
	assert.Equal(t, 1, s.SelectedRow)
	assert.True(t, s.ShowFullHelp)
	assert.Equal(t, 100, s.WindowWidth)
	assert.Equal(t, 30, s.WindowHeight)

	press(t, a, runes("?"))
	assert.False(t, a.GetState().ShowFullHelp)
}

func TestViewFillsWindow(t *testing.T) {
	a := newTestApp(t, false, nil)
	press(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := a.View()
	assert.Equal(t, 24, lipgloss.Height(view))
	assert.Contains(t, view, "Find file")
	assert.Contains(t, view, "quit")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestViewWithoutHelpBar(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.Mouse = false
	cfg.UI.ShowHelp = false
	a := newAppFromConfig(t, cfg, nil)
	press(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	b, err := cfg.Builder(dashboard.DefaultStyles())
	require.NoError(t, err)
	ts := a.table
	assert.Equal(t, b.Build().View(80, 24, &ts), a.View())
}

func TestMouseIgnoredWhenDisabled(t *testing.T) {
	a := newTestApp(t, false, nil)
	press(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})
	_ = a.View()

	press(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 0, selected(t, a))
}

func TestMouseWheelMovesSelection(t *testing.T) {
	a := newTestApp(t, true, nil)

	press(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, selected(t, a))

	press(t, a, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, selected(t, a))
}

func TestMouseClickSelectsThenActivates(t *testing.T) {
	a := newTestApp(t, true, nil)
	press(t, a, tea.WindowSizeMsg{Width: 80, Height: 24})

	id := a.dash.ZoneID(2)
	require.Eventually(t, func() bool {
		_ = a.View()
		z := zone.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 10*time.Millisecond)

	z := zone.Get(id)
	click := tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	cmd := press(t, a, click)
	assert.Nil(t, cmd)
	assert.Equal(t, 2, selected(t, a))

	cmd = press(t, a, click)
	assert.True(t, isQuit(cmd))
	act, ok := a.Chosen()
	require.True(t, ok)
	assert.Equal(t, "recent-files", act.ID())
}
