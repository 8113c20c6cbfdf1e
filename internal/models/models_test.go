package models

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestActionID(t *testing.T) {
	assert.Equal(t, "find-file", Action{Label: "Find file", Key: "f", Action: "find-file"}.ID())
	assert.Equal(t, "ctrl+o", Action{Label: "Open", Key: "CTRL+O"}.ID())
	assert.Equal(t, "Open", Action{Label: "Open"}.ID())
}

func TestActionIsQuit(t *testing.T) {
	assert.True(t, Action{Label: "Quit", Key: "q", Action: "quit"}.IsQuit())
	assert.False(t, Action{Label: "Quit", Key: "q"}.IsQuit())
}

func TestActionItem(t *testing.T) {
	item := Action{Label: "New file", Key: "n", Action: "new"}.Item()
	assert.Equal(t, "New file", item.Label)
	assert.Equal(t, "n", item.Key)
}

func TestBorderKind(t *testing.T) {
	b, ok := BorderRounded.Border()
	assert.True(t, ok)
	assert.Equal(t, lipgloss.RoundedBorder(), b)

	_, ok = BorderNone.Border()
	assert.False(t, ok)

	b, ok = BorderKind("Fancy").Border()
	assert.True(t, ok)
	assert.Equal(t, lipgloss.NormalBorder(), b)
}

func TestTitleAlignPosition(t *testing.T) {
	assert.Equal(t, lipgloss.Left, TitleAlign("").Position())
	assert.Equal(t, lipgloss.Left, AlignLeft.Position())
	assert.Equal(t, lipgloss.Center, TitleAlign("Center").Position())
	assert.Equal(t, lipgloss.Right, AlignRight.Position())
	assert.Equal(t, lipgloss.Left, TitleAlign("middle").Position())
}
