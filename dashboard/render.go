package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	zone "github.com/lrstanley/bubblezone"
)

// bandMargin is the blank row above and below the header and footer text.
const bandMargin = 1

// View renders the dashboard into a width x height string. Action rows
// carry bubblezone marks when a zone prefix is set and the global zone
// manager runs.
func (d Dashboard) View(width, height int, state *TableState) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return d.compose(width, height, state, d.zonePrefix != "" && zone.DefaultManager != nil)
}

// Render draws the dashboard into area of buf. The selected row of state is
// highlighted; no selection, or one past the last row, highlights nothing.
// Content that does not fit is clipped and an empty area draws nothing.
func (d Dashboard) Render(area cellbuf.Rectangle, buf *cellbuf.Buffer, state *TableState) {
	area = area.Intersect(buf.Bounds())
	if area.Empty() {
		return
	}
	cellbuf.SetContentRect(buf, d.compose(area.Dx(), area.Dy(), state, false), area)
}

// compose lays the bands out top to bottom: the header and footer take the
// rows their text needs and the body gets what is left.
func (d Dashboard) compose(width, height int, state *TableState, marks bool) string {
	headerHeight := d.headerHeight(width)
	footerHeight := d.footerHeight()
	bodyHeight := max(height-headerHeight-footerHeight, 0)

	bands := make([]string, 0, 3)
	if headerHeight > 0 {
		bands = append(bands, d.renderHeader(width, headerHeight))
	}
	if bodyHeight > 0 {
		bands = append(bands, d.renderBody(width, bodyHeight, state, marks))
	}
	if footerHeight > 0 {
		bands = append(bands, d.renderFooter(width, footerHeight))
	}

	out := clip(lipgloss.JoinVertical(lipgloss.Left, bands...), width, height)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, out)
}

// clip cuts s down to width x height cells.
func clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(s)
}

func (d Dashboard) useBigTitle(width int) bool {
	if len(d.bigRows) == 0 {
		return false
	}
	return lipgloss.Width(strings.Join(d.bigRows, "\n")) <= width
}

func (d Dashboard) titleRows(width int) int {
	switch {
	case d.generalTitle == "":
		return 0
	case d.useBigTitle(width):
		return len(d.bigRows)
	}
	return 1
}

func (d Dashboard) headerHeight(width int) int {
	rows := d.titleRows(width)
	if d.subtitle != "" {
		rows++
	}
	if rows == 0 {
		return 0
	}
	return rows + 2*bandMargin
}

func (d Dashboard) footerHeight() int {
	if len(d.footer) == 0 {
		return 0
	}
	return len(d.footer) + 2*bandMargin
}

func (d Dashboard) renderHeader(width, height int) string {
	var rows []string
	switch {
	case d.useBigTitle(width):
		title := d.styles.Title.Render(strings.Join(d.bigRows, "\n"))
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	case d.generalTitle != "":
		rows = append(rows, centered(width, d.styles.Title, d.generalTitle))
	}
	if d.subtitle != "" {
		rows = append(rows, centered(width, d.styles.Subtitle, d.subtitle))
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (d Dashboard) renderFooter(width, height int) string {
	rows := make([]string, len(d.footer))
	for i, line := range d.footer {
		rows[i] = centered(width, d.styles.Footer, line)
	}
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func centered(width int, style lipgloss.Style, line string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))
}

func (d Dashboard) renderBody(width, height int, state *TableState, marks bool) string {
	avatarWidth, tableWidth := width, width
	switch {
	case d.avatar == "" && len(d.table) == 0:
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	case d.avatar == "":
		avatarWidth = 0
	case len(d.table) == 0:
		tableWidth = 0
	default:
		avatarWidth = width * d.proportions.avatarPercent() / 100
		tableWidth = width - avatarWidth
	}

	var cols []string
	if avatarWidth > 0 {
		cols = append(cols, placeCentered(avatarWidth, height, d.renderAvatar(avatarWidth, height)))
	}
	if tableWidth > 0 {
		cols = append(cols, placeCentered(tableWidth, height, d.renderTable(height, state, marks)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// placeCentered centres box in a width x height region, clipping its right
// and bottom edges when it is larger.
func placeCentered(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, clip(box, width, height))
}

func (d Dashboard) renderAvatar(width, height int) string {
	panel := d.avatarPanel()
	fw, fh := panel.frameSize()

	lines := splitLines(d.avatar)
	for i, line := range lines {
		lines[i] = expandTabs(line)
	}
	// Clip the art, not the frame, so an oversized avatar keeps its border.
	art := clip(strings.Join(lines, "\n"), width-fw, height-fh)
	return panel.Render(d.styles.Avatar.Render(art))
}

func (d Dashboard) renderTable(height int, state *TableState, marks bool) string {
	s := d.styles
	panel := d.tablePanel()
	_, fh := panel.frameSize()

	n := len(d.table)
	visible := min(n, max(height-fh, 1))
	offset := state.scroll(n, visible)
	cursor := -1
	if i, ok := state.Selected(); ok && i >= offset && i < offset+visible {
		cursor = i - offset
	}

	labelWidth, keyWidth := 0, 0
	for _, item := range d.table {
		labelWidth = max(labelWidth, ansi.StringWidth(item.Label))
		keyWidth = max(keyWidth, ansi.StringWidth(strings.ToUpper(item.Key)))
	}

	symbols := make([]table.Row, visible)
	labels := make([]table.Row, visible)
	keys := make([]table.Row, visible)
	for i := range visible {
		item := d.table[offset+i]
		symbol := ""
		if i == cursor {
			symbol = s.HighlightSymbol
		}
		symbols[i] = table.Row{symbol}
		labels[i] = table.Row{item.Label}
		keys[i] = table.Row{strings.ToUpper(item.Key)}
	}

	var cols []string
	if w := ansi.StringWidth(s.HighlightSymbol); w > 0 {
		cols = append(cols, tableColumn(symbols, w, s.Table, s.Highlight, cursor))
	}
	// The label column carries the one cell gap before the key hints.
	cols = append(cols, tableColumn(labels, labelWidth+1, s.TableLabel, s.Highlight, cursor))
	if keyWidth > 0 {
		cols = append(cols, tableColumn(keys, keyWidth, s.TableKey, s.Highlight, cursor))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if marks {
		rows := strings.Split(body, "\n")
		for i := range rows {
			rows[i] = zone.Mark(d.ZoneID(offset+i), rows[i])
		}
		body = strings.Join(rows, "\n")
	}
	return panel.Render(body)
}

// tableColumn renders one column of the action table with bubbles/table.
// Table styles apply to every column alike, so each column is a table of
// its own sharing the cursor. Cells stay plain inside the table so the
// Selected style never wraps styled text; the other rows take style after.
// A negative cursor highlights nothing.
func tableColumn(rows []table.Row, width int, style, highlight lipgloss.Style, cursor int) string {
	plain := lipgloss.NewStyle()
	styles := table.Styles{Header: plain, Cell: plain, Selected: plain}
	if cursor >= 0 {
		styles.Selected = highlight.Inherit(style)
	}

	t := table.New(
		table.WithColumns([]table.Column{{Width: width}}),
		table.WithRows(rows),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+1),
		table.WithWidth(width),
	)
	t.SetCursor(max(cursor, 0))

	// The first line is the header row, which is always blank here.
	_, view, _ := strings.Cut(t.View(), "\n")
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if i != cursor {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (d Dashboard) avatarPanel() Panel {
	if d.avatarBlock != nil {
		return *d.avatarBlock
	}
	return BorderedPanel().BorderStyle(d.styles.AvatarBorder)
}

func (d Dashboard) tablePanel() Panel {
	if d.tableBlock != nil {
		return *d.tableBlock
	}
	return BorderedPanel().BorderStyle(d.styles.Table)
}

// splitLines breaks a text block on newlines, dropping one trailing newline
// and carriage returns.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// expandTabs replaces tabs with spaces up to the next eight column tab
// stop. Escape sequences in line take no columns and are kept.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	parts := strings.Split(line, "\t")
	stops := cellbuf.DefaultTabStops(ansi.StringWidth(line) + cellbuf.DefaultTabInterval*len(parts))

	var b strings.Builder
	col := 0
	for i, part := range parts {
		if i > 0 {
			next := stops.Next(col)
			b.WriteString(strings.Repeat(" ", next-col))
			col = next
		}
		b.WriteString(part)
		col += ansi.StringWidth(part)
	}
	return b.String()
}
