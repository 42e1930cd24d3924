package pipe

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// GlyphSet holds the box drawing characters of one line style
type GlyphSet struct {
	Name string

	Vertical   rune
	Horizontal rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

var (
	// GlyphsDouble is the default ╔═╗║╚╝ style
	GlyphsDouble = GlyphSet{
		Name:        "double",
		Vertical:    '║',
		Horizontal:  '═',
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
	}

	// GlyphsSingle uses the line drawing runes tcell exposes for its own borders
	GlyphsSingle = GlyphSet{
		Name:        "single",
		Vertical:    tcell.RuneVLine,
		Horizontal:  tcell.RuneHLine,
		TopLeft:     tcell.RuneULCorner,
		TopRight:    tcell.RuneURCorner,
		BottomLeft:  tcell.RuneLLCorner,
		BottomRight: tcell.RuneLRCorner,
	}

	GlyphsHeavy = GlyphSet{
		Name:        "heavy",
		Vertical:    '┃',
		Horizontal:  '━',
		TopLeft:     '┏',
		TopRight:    '┓',
		BottomLeft:  '┗',
		BottomRight: '┛',
	}

	GlyphsRounded = GlyphSet{
		Name:        "rounded",
		Vertical:    '│',
		Horizontal:  '─',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
	}
)

var glyphSets = []GlyphSet{GlyphsDouble, GlyphsSingle, GlyphsHeavy, GlyphsRounded}

// GlyphSetByName looks up a style case-insensitively
func GlyphSetByName(name string) (GlyphSet, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range glyphSets {
		if g.Name == name {
			return g, true
		}
	}
	return GlyphSet{}, false
}

// Straight returns the bar glyph for travel in d
func (g GlyphSet) Straight(d Direction) rune {
	if d.Vertical() {
		return g.Vertical
	}
	return g.Horizontal
}

// Corner returns the glyph for a turn from one heading to another
// Corners are named by the box side they close: heading right then down draws the top-right corner
// Panics on reversals and non-turns, which Turn never produces
func (g GlyphSet) Corner(from, to Direction) rune {
	switch {
	case from == Right && to == Down, from == Up && to == Left:
		return g.TopRight
	case from == Down && to == Right, from == Left && to == Up:
		return g.BottomLeft
	case from == Down && to == Left, from == Right && to == Up:
		return g.BottomRight
	case from == Up && to == Right, from == Left && to == Down:
		return g.TopLeft
	}
	panic(fmt.Sprintf("pipe: no corner from %s to %s", from, to))
}
