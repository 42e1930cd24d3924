package pipe

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allDirections = []Direction{Left, Down, Up, Right}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Left, -1, 0},
		{Right, 1, 0},
		{Up, 0, -1},
		{Down, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)

			odx, ody := tt.dir.Opposite().Delta()
			assert.Equal(t, -dx, odx)
			assert.Equal(t, -dy, ody)
		})
	}
}

func TestTurnIsPerpendicular(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, d := range allDirections {
		seen := make(map[Direction]bool)
		for i := 0; i < 200; i++ {
			next := d.Turn(rng)
			assert.NotEqual(t, d, next)
			assert.NotEqual(t, d.Opposite(), next)
			assert.NotEqual(t, d.Vertical(), next.Vertical())
			seen[next] = true
		}
		assert.Len(t, seen, 2, "both perpendicular headings reachable from %s", d)
	}
}

func TestTurnTable(t *testing.T) {
	expected := map[Direction][2]Direction{
		Up:    {Left, Right},
		Down:  {Left, Right},
		Left:  {Down, Up},
		Right: {Down, Up},
	}

	for _, d := range allDirections {
		for seed := uint64(0); seed < 32; seed++ {
			probe := rand.New(rand.NewPCG(seed, seed))
			first := probe.IntN(2) == 0

			got := d.Turn(rand.New(rand.NewPCG(seed, seed)))
			if first {
				assert.Equal(t, expected[d][0], got)
			} else {
				assert.Equal(t, expected[d][1], got)
			}
		}
	}
}

func TestTurnAndGlyphReplacesHeading(t *testing.T) {
	for _, start := range allDirections {
		for seed := uint64(0); seed < 16; seed++ {
			d := start
			glyph := d.TurnAndGlyph(rand.New(rand.NewPCG(seed, 7)), GlyphsDouble)

			assert.NotEqual(t, start, d)
			assert.NotEqual(t, start.Opposite(), d)
			assert.Equal(t, GlyphsDouble.Corner(start, d), glyph)
		}
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "invalid", Direction(9).String())
}
