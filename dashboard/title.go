package dashboard

import (
	"github.com/common-nighthawk/go-figure"
)

// DefaultTitleFont is the figlet font used for the big title.
const DefaultTitleFont = "standard"

// FontExists reports whether name is one of the figlet fonts bundled with
// go-figure.
func FontExists(name string) bool {
	_, err := figure.Asset("fonts/" + name + ".flf")
	return err == nil
}

// bigTitle draws text in a figlet font. It returns nil when the font is
// unknown or text has characters outside printable ASCII, which the fonts
// do not cover.
func bigTitle(text, font string) []string {
	if text == "" {
		return nil
	}
	for _, r := range text {
		if r < ' ' || r > '~' {
			return nil
		}
	}
	if font == "" {
		font = DefaultTitleFont
	}
	if !FontExists(font) {
		return nil
	}
	return figure.NewFigure(text, font, false).Slicify()
}
