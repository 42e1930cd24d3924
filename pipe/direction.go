package pipe

import "math/rand/v2"

// Direction is the current travel heading of the pipe head
type Direction uint8

const (
	Left Direction = iota
	Down
	Up
	Right
)

var directionNames = [...]string{
	Left:  "left",
	Down:  "down",
	Up:    "up",
	Right: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// RandomDirection picks one of the four headings uniformly
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.IntN(4))
}

// Delta returns the per-frame movement in screen space (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Vertical reports whether the heading moves along the y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Turn flips a coin between the two perpendicular headings
// Never returns d itself or its opposite
func (d Direction) Turn(rng *rand.Rand) Direction {
	first := rng.IntN(2) == 0
	if d.Vertical() {
		if first {
			return Left
		}
		return Right
	}
	if first {
		return Down
	}
	return Up
}

// TurnAndGlyph turns the heading in place and returns the corner glyph joining old and new
func (d *Direction) TurnAndGlyph(rng *rand.Rand, glyphs GlyphSet) rune {
	next := d.Turn(rng)
	r := glyphs.Corner(*d, next)
	*d = next
	return r
}
