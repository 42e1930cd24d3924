// Package pipe implements the wandering pipe animation: a single line segment that
// moves across a wraparound grid, turns at right angles and cycles its color hue.
package pipe

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/pipes/constant"
	"github.com/lixenwraith/pipes/terminal"
	"github.com/lixenwraith/pipes/vmath"
)

// ErrInvalidBounds is returned when the grid has no cells
var ErrInvalidBounds = errors.New("invalid grid bounds")

// Screen receives one cell per frame
type Screen interface {
	Clear()
	SetCell(x, y int, fg terminal.RGB, r rune)
	Flush() error
}

// Frame describes the cell drawn by one step
type Frame struct {
	X, Y   uint32
	Color  terminal.RGB
	Glyph  rune
	Turned bool
}

// Pipe owns the whole animation state; it is not safe for concurrent use
type Pipe struct {
	color     terminal.RGB
	dir       Direction
	countdown uint32
	x, y      vmath.Wrap
	rng       *rand.Rand

	glyphs GlyphSet
	delay  time.Duration
	screen Screen
	log    *zap.Logger

	frames      uint64
	writeErrors uint64
}

// New seeds position, heading, color and countdown from rng within a width x height grid
func New(cfg Config, width, height int, screen Screen, rng *rand.Rand, logger *zap.Logger) (*Pipe, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, width, height)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	glyphs := cfg.Glyphs
	if glyphs.Name == "" {
		glyphs = GlyphsDouble
	}

	p := &Pipe{
		x:      vmath.NewWrap(rng.Uint32N(uint32(width)), uint32(width-1)),
		y:      vmath.NewWrap(rng.Uint32N(uint32(height)), uint32(height-1)),
		rng:    rng,
		glyphs: glyphs,
		delay:  cfg.Delay,
		screen: screen,
		log:    logger,
	}
	p.dir = RandomDirection(rng)
	p.color = terminal.RGB{
		R: uint8(rng.UintN(256)),
		G: uint8(rng.UintN(256)),
		B: uint8(rng.UintN(256)),
	}
	p.countdown = rng.Uint32N(constant.MaxRunLength)

	p.log.Debug("pipe seeded",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("x", p.x),
		zap.Stringer("y", p.y),
		zap.Stringer("direction", p.dir),
		zap.Uint32("countdown", p.countdown),
		zap.String("glyphs", glyphs.Name),
	)
	return p, nil
}

// Direction returns the current heading
func (p *Pipe) Direction() Direction { return p.dir }

// Position returns the current head cell (0-indexed)
func (p *Pipe) Position() (x, y vmath.Wrap) { return p.x, p.y }

// Color returns the current color
func (p *Pipe) Color() terminal.RGB { return p.color }

// Countdown returns the frames left before the next turn
func (p *Pipe) Countdown() uint32 { return p.countdown }

// Step advances the animation by one frame and draws it
func (p *Pipe) Step() Frame {
	p.color = p.color.AdvanceHue(constant.HueStep)

	dx, dy := p.dir.Delta()
	p.x = p.x.Step(dx)
	p.y = p.y.Step(dy)

	var glyph rune
	turned := p.countdown == 0
	if turned {
		p.countdown = p.rng.Uint32N(constant.MaxRunLength)
		from := p.dir
		glyph = p.dir.TurnAndGlyph(p.rng, p.glyphs)
		p.log.Debug("turn",
			zap.Stringer("from", from),
			zap.Stringer("to", p.dir),
			zap.Uint32("run", p.countdown),
		)
	} else {
		p.countdown--
		glyph = p.glyphs.Straight(p.dir)
	}

	p.screen.SetCell(int(p.x.N), int(p.y.N), p.color, glyph)
	p.flush()
	p.frames++

	return Frame{
		X:      p.x.N,
		Y:      p.y.N,
		Color:  p.color,
		Glyph:  glyph,
		Turned: turned,
	}
}

// Run clears the screen and steps once per delay until ctx is cancelled
func (p *Pipe) Run(ctx context.Context) error {
	p.screen.Clear()
	p.flush()
	p.log.Info("animation started", zap.Duration("delay", p.delay))

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	for {
		p.Step()

		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		// Cancellation wins even when the timer fired in the same instant
		if err := ctx.Err(); err != nil {
			p.log.Info("animation stopped",
				zap.Uint64("frames", p.frames),
				zap.Uint64("write_errors", p.writeErrors),
			)
			return err
		}
		timer.Reset(p.delay)
	}
}

// flush delivers the frame; failures are counted and otherwise ignored
func (p *Pipe) flush() {
	err := p.screen.Flush()
	if err == nil {
		return
	}
	p.writeErrors++
	if p.writeErrors == 1 {
		p.log.Warn("output write failed, continuing", zap.Error(err))
		return
	}
	p.log.Debug("output write failed", zap.Error(err), zap.Uint64("count", p.writeErrors))
}
