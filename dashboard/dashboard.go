// Package dashboard implements a decorative start screen widget: a big
// title and subtitle, an avatar panel of pre-drawn text art next to a table
// of actions and their key hints, and a few centred footer lines.
//
// A Dashboard is assembled with a Builder and drawn once per frame with
// Render (or View), which reads the caller owned TableState to decide
// which action is highlighted. The widget never moves the selection.
package dashboard

import (
	"slices"
	"strconv"
)

// TableItem is one row of the action table.
type TableItem struct {
	Label string `yaml:"label" json:"label"`
	Key   string `yaml:"key" json:"key"`
}

// NewTableItem returns an action row.
func NewTableItem(label, key string) TableItem {
	return TableItem{Label: label, Key: key}
}

// Proportions controls how the body band is split between the avatar and
// the action table.
type Proportions struct {
	// AvatarPercent is the share of the body width given to the avatar.
	AvatarPercent int `yaml:"avatar_percent" json:"avatar_percent"`
}

// DefaultProportions returns the stock split.
func DefaultProportions() Proportions {
	return Proportions{AvatarPercent: 45}
}

func (p Proportions) avatarPercent() int {
	return min(max(p.AvatarPercent, 0), 100)
}

// Dashboard is the built, immutable widget.
type Dashboard struct {
	generalTitle string
	subtitle     string
	avatar       string
	avatarBlock  *Panel
	table        []TableItem
	tableBlock   *Panel
	footer       []string

	styles      Styles
	proportions Proportions
	bigTitle    bool
	titleFont   string
	zonePrefix  string

	// bigRows is the title drawn in titleFont, nil when it cannot be drawn.
	bigRows []string
}

// GeneralTitle returns the title.
func (d Dashboard) GeneralTitle() string { return d.generalTitle }

// Subtitle returns the subtitle.
func (d Dashboard) Subtitle() string { return d.subtitle }

// Avatar returns the avatar text block.
func (d Dashboard) Avatar() string { return d.avatar }

// Table returns a copy of the action rows.
func (d Dashboard) Table() []TableItem { return slices.Clone(d.table) }

// Footer returns a copy of the footer lines.
func (d Dashboard) Footer() []string { return slices.Clone(d.footer) }

// Len returns the number of action rows.
func (d Dashboard) Len() int { return len(d.table) }

// ZoneID returns the bubblezone id of action row i, or "" when zones are off.
func (d Dashboard) ZoneID(i int) string {
	if d.zonePrefix == "" {
		return ""
	}
	return d.zonePrefix + strconv.Itoa(i)
}

// Builder accumulates the dashboard content. Every field is optional.
type Builder struct {
	d Dashboard
}

// NewBuilder returns a builder with the default styles and proportions.
func NewBuilder() *Builder {
	return &Builder{d: Dashboard{
		styles:      DefaultStyles(),
		proportions: DefaultProportions(),
		bigTitle:    true,
	}}
}

// GeneralTitle sets the title drawn at the top.
func (b *Builder) GeneralTitle(title string) *Builder {
	b.d.generalTitle = title
	return b
}

// Subtitle sets the line drawn under the title.
func (b *Builder) Subtitle(subtitle string) *Builder {
	b.d.subtitle = subtitle
	return b
}

// Avatar sets the avatar text block. Lines are drawn as given.
func (b *Builder) Avatar(avatar string) *Builder {
	b.d.avatar = avatar
	return b
}

// AvatarBlock sets the frame around the avatar, replacing the default
// plain border. Use NewPanel() for no border.
func (b *Builder) AvatarBlock(panel Panel) *Builder {
	b.d.avatarBlock = &panel
	return b
}

// Table sets the action rows, in order. Duplicates are kept.
func (b *Builder) Table(items ...TableItem) *Builder {
	b.d.table = slices.Clone(items)
	return b
}

// TableBlock sets the frame around the action table, replacing the default
// plain border.
func (b *Builder) TableBlock(panel Panel) *Builder {
	b.d.tableBlock = &panel
	return b
}

// Footer sets the lines drawn centred at the bottom, in order.
func (b *Builder) Footer(lines ...string) *Builder {
	b.d.footer = slices.Clone(lines)
	return b
}

// Styles replaces the colours and highlight symbol.
func (b *Builder) Styles(styles Styles) *Builder {
	b.d.styles = styles
	return b
}

// Proportions replaces the avatar/table split.
func (b *Builder) Proportions(p Proportions) *Builder {
	b.d.proportions = p
	return b
}

// BigTitle toggles drawing the title as figlet text.
func (b *Builder) BigTitle(on bool) *Builder {
	b.d.bigTitle = on
	return b
}

// TitleFont picks the figlet font of the big title. Unknown fonts draw the
// plain title.
func (b *Builder) TitleFont(font string) *Builder {
	b.d.titleFont = font
	return b
}

// ZonePrefix turns on bubblezone marks for the action rows, named prefix
// followed by the row index. Marks are only written while the global zone
// manager runs; the host scans its view.
func (b *Builder) ZonePrefix(prefix string) *Builder {
	b.d.zonePrefix = prefix
	return b
}

// Build returns the dashboard. It never fails.
func (b *Builder) Build() Dashboard {
	d := b.d
	d.bigRows = nil
	if d.bigTitle {
		d.bigRows = bigTitle(d.generalTitle, d.titleFont)
	}
	return d
}
