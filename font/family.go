package font

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Family is a generic or a named font family.
type Family struct {
	generic genericFamily
	name    string
}

type genericFamily uint8

const (
	namedFamily genericFamily = iota
	serif
	sansSerif
	monospace
)

// Generic font families.
var (
	// Serif is a family with small strokes attached to letters.
	Serif = Family{generic: serif}
	// SansSerif is a family without serifs.
	SansSerif = Family{generic: sansSerif}
	// Monospace is a family in which (almost) all glyphs are of equal width.
	Monospace = Family{generic: monospace}
)

// Named creates a family with a specific name.
// Names of the generic families yield the generic family.
func Named(name string) Family {
	switch familyKey(name) {
	case "serif":
		return Serif
	case "sans-serif":
		return SansSerif
	case "monospace":
		return Monospace
	}
	return Family{name: name}
}

// IsGeneric is true for Serif, SansSerif and Monospace.
func (f Family) IsGeneric() bool {
	return f.generic != namedFamily
}

func (f Family) String() string {
	switch f.generic {
	case serif:
		return "serif"
	case sansSerif:
		return "sans-serif"
	case monospace:
		return "monospace"
	}
	return f.name
}

// familyKey folds a family name for case-insensitive lookup. Names are
// brought into NFC first, so that composed and decomposed spellings match.
// A Caser is stateful, therefore we create one per call.
func familyKey(name string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(name))
}
