// Package dice provides the injectable randomness used by combat
// resolution. Rollers are seedable so scenario tests can force exact
// outcome tiers.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Roller produces die rolls. Implementations must be deterministic for a
// given seed.
type Roller interface {
	// Roll returns a uniform value in [1, sides].
	Roll(sides int) int
}

type seededRoller struct {
	r *rand.Rand
}

// New returns a Roller seeded with the given value.
func New(seed int64) Roller {
	return &seededRoller{r: rand.New(rand.NewSource(seed))}
}

func (s *seededRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return s.r.Intn(sides) + 1
}

// NewSeed generates a fresh seed using crypto/rand, for callers that want
// unpredictable play but still record the seed for replay.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Fixed returns a Roller that yields the given values in order, then
// repeats the last one. Intended for tests.
func Fixed(values ...int) Roller {
	return &fixedRoller{values: values}
}

type fixedRoller struct {
	values []int
	next   int
}

func (f *fixedRoller) Roll(sides int) int {
	if len(f.values) == 0 {
		return 1
	}
	v := f.values[f.next]
	if f.next < len(f.values)-1 {
		f.next++
	}
	if v > sides {
		v = sides
	}
	return v
}
