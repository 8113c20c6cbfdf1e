package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazyclaw/dashboard/dashboard"
)

// QuitAction is the action id that only closes the dashboard.
const QuitAction = "quit"

// Action is one entry of the action table as written in the config file
type Action struct {
	Label  string `yaml:"label" json:"label"`
	Key    string `yaml:"key" json:"key"`
	Action string `yaml:"action,omitempty" json:"action,omitempty"` // Id reported when the row is activated
}

// ID returns the id reported for the action: the explicit action, else the
// lower-cased key, else the label.
func (a Action) ID() string {
	switch {
	case a.Action != "":
		return a.Action
	case a.Key != "":
		return strings.ToLower(a.Key)
	}
	return a.Label
}

// IsQuit reports whether activating the action only exits.
func (a Action) IsQuit() bool {
	return a.ID() == QuitAction
}

// Item converts the action into a dashboard table row
func (a Action) Item() dashboard.TableItem {
	return dashboard.NewTableItem(a.Label, a.Key)
}

// BorderKind names the border drawn around the dashboard panels
type BorderKind string

const (
	BorderNormal  BorderKind = "normal"
	BorderRounded BorderKind = "rounded"
	BorderDouble  BorderKind = "double"
	BorderThick   BorderKind = "thick"
	BorderHidden  BorderKind = "hidden"
	BorderNone    BorderKind = "none"
)

// Border returns the lipgloss border for the kind. The second value is false
// when no border should be drawn. Unknown kinds draw the normal border.
func (k BorderKind) Border() (lipgloss.Border, bool) {
	switch BorderKind(strings.ToLower(string(k))) {
	case BorderRounded:
		return lipgloss.RoundedBorder(), true
	case BorderDouble:
		return lipgloss.DoubleBorder(), true
	case BorderThick:
		return lipgloss.ThickBorder(), true
	case BorderHidden:
		return lipgloss.HiddenBorder(), true
	case BorderNone:
		return lipgloss.Border{}, false
	}
	return lipgloss.NormalBorder(), true
}

// TitleAlign names where a panel title sits in its top edge
type TitleAlign string

const (
	AlignLeft   TitleAlign = "left"
	AlignCenter TitleAlign = "center"
	AlignRight  TitleAlign = "right"
)

// Position returns the lipgloss position for the alignment. Unknown values
// align left.
func (a TitleAlign) Position() lipgloss.Position {
	switch TitleAlign(strings.ToLower(string(a))) {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Left
}
