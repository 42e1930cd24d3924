package vmath

import "strconv"

// Wrap is an unsigned coordinate confined to [0, Max] with wraparound arithmetic
// The space is circular with Max+1 positions, one screen axis per instance
type Wrap struct {
	N   uint32
	Max uint32
}

// NewWrap creates a coordinate, reducing n into range
func NewWrap(n, max uint32) Wrap {
	return Wrap{N: uint32(uint64(n) % span(max)), Max: max}
}

// span returns the modulus Max+1 widened to avoid overflow at math.MaxUint32
func span(max uint32) uint64 {
	return uint64(max) + 1
}

// Add returns (N + delta) mod (Max + 1)
func (w Wrap) Add(delta uint32) Wrap {
	return Wrap{N: uint32((uint64(w.N) + uint64(delta)) % span(w.Max)), Max: w.Max}
}

// Sub returns (N - delta) mod (Max + 1) without unsigned underflow
func (w Wrap) Sub(delta uint32) Wrap {
	if w.N >= delta {
		return Wrap{N: w.N - delta, Max: w.Max}
	}
	m := span(w.Max)
	underflow := uint64(delta-w.N) % m
	// underflow == 0 means delta-N is a whole number of cycles; land back on 0, not Max+1
	return Wrap{N: uint32((m - underflow) % m), Max: w.Max}
}

// AddWrap adds another coordinate of the same axis
func (w Wrap) AddWrap(o Wrap) Wrap {
	mustMatch(w, o)
	return w.Add(o.N)
}

// SubWrap subtracts another coordinate of the same axis
func (w Wrap) SubWrap(o Wrap) Wrap {
	mustMatch(w, o)
	return w.Sub(o.N)
}

// Step applies a signed delta, dispatching to Add or Sub
func (w Wrap) Step(d int) Wrap {
	switch {
	case d > 0:
		return w.Add(uint32(d))
	case d < 0:
		return w.Sub(uint32(-d))
	}
	return w
}

func (w Wrap) String() string {
	return strconv.FormatUint(uint64(w.N), 10)
}

func mustMatch(a, b Wrap) {
	if a.Max != b.Max {
		panic("vmath: wrap coordinates with different bounds: " +
			strconv.FormatUint(uint64(a.Max), 10) + " != " + strconv.FormatUint(uint64(b.Max), 10))
	}
}
