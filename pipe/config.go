package pipe

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/pipes/constant"
)

// Config holds startup options resolved from arguments and environment
type Config struct {
	Delay  time.Duration
	Glyphs GlyphSet

	// Seed is used only when HasSeed is set
	Seed    uint64
	HasSeed bool

	Debug bool
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	glyphs, ok := GlyphSetByName(constant.DefaultStyle)
	if !ok {
		glyphs = GlyphsDouble
	}
	return Config{
		Delay:  constant.DefaultFrameDelay,
		Glyphs: glyphs,
	}
}

// LoadConfig resolves options from positional arguments and an environment lookup
// Invalid values never fail; each falls back to its default
func LoadConfig(args []string, getenv func(string) string) Config {
	cfg := DefaultConfig()
	cfg.Delay = ParseDelay(args)

	if g, ok := GlyphSetByName(getenv(constant.EnvStyle)); ok {
		cfg.Glyphs = g
	}

	if s := strings.TrimSpace(getenv(constant.EnvSeed)); s != "" {
		if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = seed
			cfg.HasSeed = true
		}
	}

	cfg.Debug = getenv(constant.EnvDebug) != ""
	return cfg
}

// ParseDelay interprets the first argument as a frame delay in milliseconds
// Missing or unparsable input yields the default delay
func ParseDelay(args []string) time.Duration {
	if len(args) == 0 {
		return constant.DefaultFrameDelay
	}
	ms, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return constant.DefaultFrameDelay
	}
	if ms > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

// NewRand builds the PRNG owned by the pipe, fixed when a seed is configured
func (c Config) NewRand() *rand.Rand {
	if c.HasSeed {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
