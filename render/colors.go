package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-pong/core"
)

// Neon palette
var (
	RgbCyan    = tcell.NewRGBColor(0, 255, 255)
	RgbMagenta = tcell.NewRGBColor(255, 0, 255)
	RgbYellow  = tcell.NewRGBColor(255, 255, 0)
	RgbRed     = tcell.NewRGBColor(255, 0, 68)
	RgbGreen   = tcell.NewRGBColor(0, 255, 136)
	RgbPurple  = tcell.NewRGBColor(170, 0, 255)
	RgbWhite   = tcell.NewRGBColor(255, 255, 255)

	RgbBackground = tcell.NewRGBColor(10, 10, 15) // Near-black field
	RgbGrid       = tcell.NewRGBColor(0, 70, 70)  // Center line
	RgbHint       = tcell.NewRGBColor(120, 120, 140)
)

var tintColors = [...]tcell.Color{
	core.TintCyan:    RgbCyan,
	core.TintMagenta: RgbMagenta,
	core.TintYellow:  RgbYellow,
	core.TintRed:     RgbRed,
	core.TintGreen:   RgbGreen,
	core.TintPurple:  RgbPurple,
	core.TintWhite:   RgbWhite,
}

// Palette resolves logical tints to terminal styles
type Palette struct {
	tints    [len(tintColors)]tcell.Style
	Base     tcell.Style
	Grid     tcell.Style
	Hint     tcell.Style
	Title    tcell.Style
	Subtitle tcell.Style
}

// NewPalette builds the neon palette
// color=false keeps terminal default colors and distinguishes elements by attribute only
func NewPalette(color bool) Palette {
	if !color {
		base := tcell.StyleDefault
		p := Palette{
			Base:     base,
			Grid:     base.Dim(true),
			Hint:     base.Dim(true),
			Title:    base.Bold(true),
			Subtitle: base,
		}
		for i := range p.tints {
			p.tints[i] = base
		}
		p.tints[core.TintWhite] = base.Bold(true)
		return p
	}

	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbWhite)
	p := Palette{
		Base:     base,
		Grid:     base.Foreground(RgbGrid),
		Hint:     base.Foreground(RgbHint),
		Title:    base.Foreground(RgbCyan).Bold(true),
		Subtitle: base.Foreground(RgbMagenta),
	}
	for i, c := range tintColors {
		p.tints[i] = base.Foreground(c)
	}
	return p
}

// Tint returns the style for a logical tint, Base for unknown tints
func (p Palette) Tint(t core.Tint) tcell.Style {
	if int(t) >= len(p.tints) {
		return p.Base
	}
	return p.tints[t]
}

// Faded is Tint dimmed, for trails and dying particles
func (p Palette) Faded(t core.Tint) tcell.Style {
	return p.Tint(t).Dim(true)
}
