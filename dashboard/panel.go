package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Panel is the frame drawn around the avatar or the action table: an
// optional lipgloss border with an optional title set into its top edge.
type Panel struct {
	border      lipgloss.Border
	bordered    bool
	borderStyle lipgloss.Style
	title       string
	titleStyle  lipgloss.Style
	titleAlign  lipgloss.Position
}

// NewPanel returns a panel with no border and no title.
func NewPanel() Panel {
	return Panel{}
}

// BorderedPanel returns a panel with the normal single line border.
func BorderedPanel() Panel {
	return NewPanel().Border(lipgloss.NormalBorder())
}

// Border sets the border drawn around the content.
func (p Panel) Border(border lipgloss.Border) Panel {
	p.border = border
	p.bordered = true
	return p
}

// BorderStyle sets the colours of the border.
func (p Panel) BorderStyle(style lipgloss.Style) Panel {
	p.borderStyle = style
	return p
}

// Title sets the text drawn in the top edge. Without a border it gets a
// row of its own.
func (p Panel) Title(title string) Panel {
	p.title = title
	return p
}

// TitleStyle sets the style of the title.
func (p Panel) TitleStyle(style lipgloss.Style) Panel {
	p.titleStyle = style
	return p
}

// TitleAlign places the title along the top edge. Left is the default.
func (p Panel) TitleAlign(pos lipgloss.Position) Panel {
	p.titleAlign = pos
	return p
}

// frameSize returns the columns and rows the panel adds around its content.
func (p Panel) frameSize() (int, int) {
	if !p.bordered {
		if p.title != "" {
			return 0, 1
		}
		return 0, 0
	}
	return p.box().GetFrameSize()
}

func (p Panel) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(p.border).
		BorderForeground(p.borderStyle.GetForeground()).
		BorderBackground(p.borderStyle.GetBackground())
}

// Render wraps content in the panel.
func (p Panel) Render(content string) string {
	width := lipgloss.Width(content)
	switch {
	case !p.bordered && p.title == "":
		return content
	case !p.bordered:
		title := p.titleStyle.Render(ansi.Truncate(p.title, width, ""))
		return lipgloss.JoinVertical(lipgloss.Left, lipgloss.PlaceHorizontal(width, p.titleAlign, title), content)
	case p.title == "":
		return p.box().Render(content)
	}

	// lipgloss has no border titles: draw the body without its top edge and
	// put a hand built edge carrying the title on top.
	body := p.box().BorderTop(false).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, p.topEdge(width), body)
}

func (p Panel) topEdge(width int) string {
	edge := lipgloss.NewStyle().
		Foreground(p.borderStyle.GetForeground()).
		Background(p.borderStyle.GetBackground())

	title := ansi.Truncate(p.title, width, "")
	gap := width - ansi.StringWidth(title)
	left := int(float64(gap) * float64(min(max(p.titleAlign, lipgloss.Left), lipgloss.Right)))
	return edge.Render(p.border.TopLeft+strings.Repeat(p.border.Top, left)) +
		p.titleStyle.Render(title) +
		edge.Render(strings.Repeat(p.border.Top, gap-left)+p.border.TopRight)
}
