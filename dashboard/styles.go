package dashboard

import "github.com/charmbracelet/lipgloss"

// Styles holds the look of every dashboard part.
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Avatar       lipgloss.Style
	AvatarBorder lipgloss.Style
	TableLabel   lipgloss.Style
	TableKey     lipgloss.Style
	// Table styles the default table border and the highlight column.
	Table     lipgloss.Style
	Highlight lipgloss.Style
	Footer    lipgloss.Style

	HighlightSymbol string
}

// DefaultStyles returns the stock 16 colour look.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Avatar:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		AvatarBorder: lipgloss.NewStyle(),
		TableLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		TableKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Table:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Highlight:    lipgloss.NewStyle().Italic(true).Bold(true).Underline(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Italic(true),

		HighlightSymbol: " >> ",
	}
}
