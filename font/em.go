package font

import (
	"fmt"
	"math"
)

// Em is a length relative to the font size. 1 Em equals the font size.
type Em float64

// FromUnits converts font design units to Em.
// A non-positive units-per-em yields 0.
func FromUnits(units, unitsPerEm float64) Em {
	if unitsPerEm <= 0 {
		return 0
	}
	return Em(units / unitsPerEm)
}

// Resolve converts an Em value to an absolute length, given a font size.
func (em Em) Resolve(size float64) float64 {
	return float64(em) * size
}

// Abs returns the absolute value of em.
func (em Em) Abs() Em {
	return Em(math.Abs(float64(em)))
}

func (em Em) String() string {
	return fmt.Sprintf("%gem", float64(em))
}
