package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/lazyclaw/dashboard/dashboard"
	"github.com/lazyclaw/dashboard/internal/config"
	"github.com/lazyclaw/dashboard/internal/logging"
	"github.com/lazyclaw/dashboard/internal/models"
	"github.com/lazyclaw/dashboard/internal/state"
	"github.com/lazyclaw/dashboard/internal/ui/keys"
	"github.com/lazyclaw/dashboard/internal/ui/styles"
)

// ZonePrefix names the mouse zones of the action rows.
const ZonePrefix = "action_"

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeHelp
)

var logCtx = logging.PackageCtx("ui")

// App is the main application model
type App struct {
	// Configuration
	config  *config.Config
	dash    dashboard.Dashboard
	actions []models.Action

	// UI state
	mode     AppMode
	table    dashboard.TableState
	width    int
	height   int
	mouse    bool
	showHelp bool

	// Keys
	keys keys.KeyMap

	// Sub-models
	help   help.Model
	chrome styles.Chrome

	// Activated action, set right before quitting
	chosen *models.Action
}

// NewApp creates a new application instance. When mouse support is on the
// dashboard must have been built with ZonePrefix.
func NewApp(cfg *config.Config, dash dashboard.Dashboard, chrome styles.Chrome, uiState *state.State) *App {
	h := help.New()
	h.Styles = chrome.Help()

	app := &App{
		config:   cfg,
		dash:     dash,
		actions:  cfg.Dashboard.Actions,
		mode:     ModeNormal,
		table:    dashboard.NewTableState(0),
		keys:     keys.DefaultKeyMap(),
		help:     h,
		chrome:   chrome,
		mouse:    cfg.UI.Mouse && dash.ZoneID(0) != "",
		showHelp: cfg.UI.ShowHelp,
	}

	if uiState != nil {
		app.restore(uiState)
	}
	if app.mouse {
		zone.NewGlobal()
	}

	return app
}

func (a *App) restore(s *state.State) {
	switch {
	case a.dash.Len() == 0:
		a.table.SelectNone()
	case s.SelectedRow < 0:
		a.table.SelectNone()
	case s.SelectedRow >= a.dash.Len():
		a.table.SelectLast(a.dash.Len())
	default:
		a.table.Select(s.SelectedRow)
	}
	if s.ShowFullHelp {
		a.mode = ModeHelp
		a.help.ShowAll = true
	}
	// The last window size draws the first frame; the terminal's own size
	// replaces it as soon as it arrives.
	if s.WindowWidth > 0 && s.WindowHeight > 0 {
		a.width = s.WindowWidth
		a.height = s.WindowHeight
		a.help.Width = s.WindowWidth
	}
}

// GetState returns the current UI state for persistence
func (a *App) GetState() *state.State {
	selected := -1
	if i, ok := a.table.Selected(); ok {
		selected = i
	}
	return &state.State{
		SelectedRow:  selected,
		ShowFullHelp: a.mode == ModeHelp,
		WindowWidth:  a.width,
		WindowHeight: a.height,
	}
}

// Chosen returns the action the user activated, if any. Quit actions are
// never reported.
func (a *App) Chosen() (models.Action, bool) {
	if a.chosen == nil {
		return models.Action{}, false
	}
	return *a.chosen, true
}

// Selected returns the highlighted row
func (a *App) Selected() (int, bool) {
	return a.table.Selected()
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	slog.DebugContext(logCtx, "starting", "actions", len(a.actions), "mouse", a.mouse)
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Key hints win over navigation so an action bound to "j" or "q" still
	// fires. ctrl+c always quits.
	if msg.Type != tea.KeyCtrlC {
		if i, ok := a.actionForKey(msg.String()); ok {
			return a.activate(i)
		}
	}

	n := a.dash.Len()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		a.table.SelectPrevious(n)
	case key.Matches(msg, a.keys.Down):
		a.table.SelectNext(n)
	case key.Matches(msg, a.keys.Home):
		if n > 0 {
			a.table.SelectFirst()
		}
	case key.Matches(msg, a.keys.End):
		a.table.SelectLast(n)
	case key.Matches(msg, a.keys.Enter):
		if i, ok := a.table.Selected(); ok && i < n {
			return a.activate(i)
		}
	case key.Matches(msg, a.keys.Help):
		a.toggleHelp()
	}

	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.mouse || msg.Action != tea.MouseActionPress {
		return a, nil
	}

	n := a.dash.Len()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.table.SelectPrevious(n)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.table.SelectNext(n)
		return a, nil
	case tea.MouseButtonLeft:
	default:
		return a, nil
	}

	for i := range n {
		z := zone.Get(a.dash.ZoneID(i))
		if z == nil || !z.InBounds(msg) {
			continue
		}
		// A click on the highlighted row runs it, any other row is selected.
		if sel, ok := a.table.Selected(); ok && sel == i {
			return a.activate(i)
		}
		a.table.Select(i)
		slog.DebugContext(logCtx, "row clicked", "row", i)
		break
	}

	return a, nil
}

func (a *App) actionForKey(k string) (int, bool) {
	for i, act := range a.actions {
		if act.Key != "" && strings.EqualFold(act.Key, k) {
			return i, true
		}
	}
	return 0, false
}

func (a *App) activate(i int) (tea.Model, tea.Cmd) {
	act, ok := a.config.Action(i)
	if !ok {
		return a, nil
	}
	a.table.Select(i)

	ctx := logging.AppendCtx(logCtx, slog.Int("row", i))
	slog.InfoContext(ctx, "action activated", "id", act.ID(), "label", act.Label)

	if !act.IsQuit() {
		a.chosen = &act
	}
	return a, tea.Quit
}

func (a *App) toggleHelp() {
	if a.mode == ModeHelp {
		a.mode = ModeNormal
	} else {
		a.mode = ModeHelp
	}
	a.help.ShowAll = a.mode == ModeHelp
}

// View implements tea.Model
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	bar := a.renderBottomBar()
	bodyHeight := a.height
	if bar != "" {
		bodyHeight -= lipgloss.Height(bar)
	}

	out := a.dash.View(a.width, bodyHeight, &a.table)
	switch {
	case bar == "":
	case out == "":
		out = bar
	default:
		out = lipgloss.JoinVertical(lipgloss.Left, out, bar)
	}

	if a.mouse {
		return zone.Scan(out)
	}
	return out
}

func (a *App) renderBottomBar() string {
	if !a.showHelp && a.mode != ModeHelp {
		return ""
	}
	return a.chrome.BottomBar.
		Width(a.width).
		MaxWidth(a.width).
		Render(a.help.View(a.keys))
}
