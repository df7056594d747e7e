package font

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// --- Style -----------------------------------------------------------------

// Style is the posture of a face.
type Style uint8

const (
	StyleNormal  Style = iota // upright
	StyleItalic               // cursive
	StyleOblique              // slanted
)

var styleNames = [...]string{"normal", "italic", "oblique"}

// ParseStyle creates a style from a lowercase name like "italic".
func ParseStyle(name string) (Style, bool) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), true
		}
	}
	return StyleNormal, false
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "Style(" + strconv.Itoa(int(s)) + ")"
}

// MarshalText encodes a style by its lowercase name.
func (s Style) MarshalText() ([]byte, error) {
	if int(s) >= len(styleNames) {
		return nil, fmt.Errorf("font: invalid style %d", s)
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText decodes a style from its lowercase name.
func (s *Style) UnmarshalText(text []byte) error {
	st, ok := ParseStyle(string(text))
	if !ok {
		return fmt.Errorf("font: unknown style %q", text)
	}
	*s = st
	return nil
}

// --- Weight ----------------------------------------------------------------

// Weight describes how heavy a face is, from 100 (thin) to 900 (black).
type Weight uint16

// Named weights.
const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Regular    Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

var weightNames = map[Weight]string{
	Thin:       "thin",
	ExtraLight: "extralight",
	Light:      "light",
	Regular:    "regular",
	Medium:     "medium",
	SemiBold:   "semibold",
	Bold:       "bold",
	ExtraBold:  "extrabold",
	Black:      "black",
}

// WeightFromNumber creates a weight from a number, clamping it to [100…900].
func WeightFromNumber(n int) Weight {
	return Weight(min(max(n, int(Thin)), int(Black)))
}

// ParseWeight creates a weight from a lowercase name like "semibold".
func ParseWeight(name string) (Weight, bool) {
	for w, n := range weightNames {
		if n == name {
			return w, true
		}
	}
	return Regular, false
}

// Number returns the weight as a number between 100 and 900.
func (w Weight) Number() int {
	return int(w)
}

// Name returns the lowercase name of w, if w is one of the named weights.
func (w Weight) Name() (string, bool) {
	n, ok := weightNames[w]
	return n, ok
}

// Thicken adds (or, for negative delta, removes) weight, saturating at the
// boundaries 100 and 900.
func (w Weight) Thicken(delta int) Weight {
	return WeightFromNumber(int(w) + delta)
}

// Distance is the absolute numeric distance between two weights.
func (w Weight) Distance(other Weight) uint16 {
	if w > other {
		return uint16(w - other)
	}
	return uint16(other - w)
}

func (w Weight) String() string {
	if n, ok := weightNames[w]; ok {
		return n
	}
	return strconv.Itoa(int(w))
}

// UnmarshalJSON accepts a number (clamped) or a weight name.
func (w *Weight) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*w = WeightFromNumber(n)
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("font: weight must be a number or a name: %s", b)
	}
	wt, ok := ParseWeight(name)
	if !ok {
		return fmt.Errorf("font: unknown weight %q", name)
	}
	*w = wt
	return nil
}

// --- Stretch ---------------------------------------------------------------

// Stretch describes how condensed or expanded a face is, as a ratio to the
// normal width in permille, from 500 (50%) to 2000 (200%).
type Stretch uint16

// Named stretches.
const (
	UltraCondensed Stretch = 500
	ExtraCondensed Stretch = 625
	Condensed      Stretch = 750
	SemiCondensed  Stretch = 875
	StretchNormal  Stretch = 1000
	SemiExpanded   Stretch = 1125
	Expanded       Stretch = 1250
	ExtraExpanded  Stretch = 1500
	UltraExpanded  Stretch = 2000
)

// stretches by OpenType width class, 1…9
var widthClasses = [...]Stretch{
	UltraCondensed, ExtraCondensed, Condensed, SemiCondensed, StretchNormal,
	SemiExpanded, Expanded, ExtraExpanded, UltraExpanded,
}

var stretchNames = map[Stretch]string{
	UltraCondensed: "ultra-condensed",
	ExtraCondensed: "extra-condensed",
	Condensed:      "condensed",
	SemiCondensed:  "semi-condensed",
	StretchNormal:  "normal",
	SemiExpanded:   "semi-expanded",
	Expanded:       "expanded",
	ExtraExpanded:  "extra-expanded",
	UltraExpanded:  "ultra-expanded",
}

// StretchFromRatio creates a stretch from a ratio, clamping it to [0.5…2.0].
func StretchFromRatio(ratio float32) Stretch {
	if math.IsNaN(float64(ratio)) {
		return StretchNormal
	}
	r := min(max(ratio, 0.5), 2.0)
	return Stretch(r * 1000)
}

// StretchFromNumber creates a stretch from an OpenType width class (1…9).
// Classes below 1 map to ultra-condensed, classes above 9 to ultra-expanded.
func StretchFromNumber(class int) Stretch {
	switch {
	case class <= 1:
		return UltraCondensed
	case class >= len(widthClasses):
		return UltraExpanded
	}
	return widthClasses[class-1]
}

// ParseStretch creates a stretch from a lowercase name like "semi-condensed".
func ParseStretch(name string) (Stretch, bool) {
	for s, n := range stretchNames {
		if n == name {
			return s, true
		}
	}
	return StretchNormal, false
}

// Ratio returns the stretch as a ratio between 0.5 and 2.0.
func (s Stretch) Ratio() float32 {
	return float32(s) / 1000
}

// Name returns the lowercase name of s, if s is one of the named stretches.
func (s Stretch) Name() (string, bool) {
	n, ok := stretchNames[s]
	return n, ok
}

// Distance is the absolute distance between the ratios of two stretches.
func (s Stretch) Distance(other Stretch) float32 {
	d := s.Ratio() - other.Ratio()
	if d < 0 {
		return -d
	}
	return d
}

func (s Stretch) String() string {
	if n, ok := stretchNames[s]; ok {
		return n
	}
	return strconv.FormatFloat(float64(s.Ratio()), 'g', -1, 32)
}

// UnmarshalJSON accepts a permille number (clamped) or a stretch name.
func (s *Stretch) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*s = Stretch(min(max(n, int(UltraCondensed)), int(UltraExpanded)))
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("font: stretch must be a number or a name: %s", b)
	}
	st, ok := ParseStretch(name)
	if !ok {
		return fmt.Errorf("font: unknown stretch %q", name)
	}
	*s = st
	return nil
}

// --- Variant ---------------------------------------------------------------

// Variant holds the properties which distinguish a face from other faces
// of the same family. Variants are comparable with ==.
type Variant struct {
	Style   Style   `json:"style"`
	Weight  Weight  `json:"weight"`
	Stretch Stretch `json:"stretch"`
}

// NewVariant creates a variant from its three components. Weight and stretch
// are clamped to their valid ranges.
func NewVariant(style Style, weight Weight, stretch Stretch) Variant {
	return Variant{Style: style, Weight: weight, Stretch: stretch}.Normalize()
}

// DefaultVariant is a normal style, regular weight, normal stretch variant.
func DefaultVariant() Variant {
	return Variant{Style: StyleNormal, Weight: Regular, Stretch: StretchNormal}
}

// Normalize replaces unset (zero) weight and stretch by their defaults and
// clamps the remaining values to their valid ranges.
func (v Variant) Normalize() Variant {
	if v.Weight == 0 {
		v.Weight = Regular
	}
	if v.Stretch == 0 {
		v.Stretch = StretchNormal
	}
	v.Weight = WeightFromNumber(int(v.Weight))
	v.Stretch = Stretch(min(max(v.Stretch, UltraCondensed), UltraExpanded))
	return v
}

func (v Variant) String() string {
	return fmt.Sprintf("%s %s %s", v.Style, v.Weight, v.Stretch)
}

// matchKey orders candidate faces for a requested variant. Style matters most,
// then stretch distance, then weight distance.
type matchKey struct {
	styleMismatch bool
	stretch       float32
	weight        uint16
}

func (v Variant) matchKey(want Variant) matchKey {
	return matchKey{
		styleMismatch: v.Style != want.Style,
		stretch:       v.Stretch.Distance(want.Stretch),
		weight:        v.Weight.Distance(want.Weight),
	}
}

// less reports whether k is a strictly better match than other.
func (k matchKey) less(other matchKey) bool {
	if k.styleMismatch != other.styleMismatch {
		return !k.styleMismatch
	}
	if k.stretch != other.stretch {
		return k.stretch < other.stretch
	}
	return k.weight < other.weight
}
