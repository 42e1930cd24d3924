package constant

import "time"

// Animation Loop Timing
const (
	// DefaultFrameDelay is the inter-frame sleep when no valid delay argument is given
	DefaultFrameDelay = 50 * time.Millisecond

	// MaxRunLength is the exclusive upper bound of the frames-until-turn countdown
	MaxRunLength = 20
)

// Environment configuration keys
const (
	// EnvStyle selects the glyph set by name (double, single, heavy, rounded)
	EnvStyle = "PIPES_STYLE"

	// EnvSeed fixes the PRNG seed for reproducible runs
	EnvSeed = "PIPES_SEED"

	// EnvDebug enables file logging when non-empty
	EnvDebug = "PIPES_DEBUG"
)
