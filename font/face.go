package font

import (
	"fmt"
	"sync"

	"github.com/npillmayer/fontworld"
	"github.com/npillmayer/fontworld/otquery"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Face is a parsed font face. It shares its backing buffer with all other
// faces loaded from the same file.
//
// Metrics are computed once at parse time; a Face is immutable afterwards and
// safe for concurrent use.
type Face struct {
	buffer     fontworld.Buffer
	index      uint32
	font       *gotext.Font
	unitsPerEm float64
	numGlyphs  int

	mu       sync.Mutex   // guards advancer
	advancer *gotext.Face // private shaping face, used for advance queries

	Ascender      Em
	CapHeight     Em
	XHeight       Em
	Descender     Em
	Strikethrough LineMetrics
	Underline     LineMetrics
	Overline      LineMetrics
}

// LineMetrics describes a decorative line.
type LineMetrics struct {
	Thickness Em // stroke width of the line
	Position  Em // vertical offset from the baseline, positive upwards
}

// Fallback values for fonts lacking decoration metrics.
const (
	defaultLineThickness    Em = 0.06
	defaultStrikeoutPos     Em = 0.25
	defaultUnderlinePos     Em = -0.2
	overlineCapHeightOffset Em = 0.1
)

// NewFace parses the face with collection index index from buf.
// It returns an error if buf does not contain a font or index is out of
// range for the collection.
func NewFace(buf fontworld.Buffer, index uint32) (*Face, error) {
	loaders, err := opentype.NewLoaders(buf.Reader())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAFont, err)
	}
	if int(index) >= len(loaders) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFaceIndex, index, len(loaders))
	}
	ld := loaders[index]
	ft, err := gotext.NewFont(ld)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAFont, err)
	}
	upem := float64(ft.Upem())
	if upem <= 0 {
		return nil, ErrUnitsPerEm
	}
	face := &Face{
		buffer:     buf,
		index:      index,
		font:       ft,
		unitsPerEm: upem,
		advancer:   gotext.NewFace(ft),
	}
	if maxp, ok := otquery.MaxPInfo(ld); ok {
		face.numGlyphs = int(maxp.NumGlyphs)
	}
	face.deriveMetrics(ld)
	tracer().Debugf("parsed face %d: upem=%g, ascender=%s", index, upem, face.Ascender)
	return face, nil
}

// deriveMetrics sets the vertical and decoration metrics, following the
// fallback chains for fonts with missing tables or entries.
func (f *Face) deriveMetrics(src otquery.Tables) {
	hhea, _ := otquery.HHeaInfo(src)
	os2, hasOS2 := otquery.OS2Info(src)
	post, hasPost := otquery.PostInfo(src)
	//
	if hasOS2 {
		f.Ascender = f.ToEm(float64(os2.TypoAscender))
		f.Descender = f.ToEm(float64(os2.TypoDescender))
	} else {
		f.Ascender = f.ToEm(float64(hhea.Ascender))
		f.Descender = f.ToEm(float64(hhea.Descender))
	}
	f.CapHeight, f.XHeight = f.Ascender, f.Ascender
	if hasOS2 && os2.HasHeights {
		if os2.CapHeight > 0 {
			f.CapHeight = f.ToEm(float64(os2.CapHeight))
		}
		if os2.XHeight > 0 {
			f.XHeight = f.ToEm(float64(os2.XHeight))
		}
	}
	//
	var strikeout, underline *LineMetrics
	if hasOS2 {
		strikeout = &LineMetrics{
			Thickness: f.ToEm(float64(os2.StrikeoutSize)),
			Position:  f.ToEm(float64(os2.StrikeoutPosition)),
		}
	}
	if hasPost {
		underline = &LineMetrics{
			Thickness: f.ToEm(float64(post.UnderlineThickness)),
			Position:  f.ToEm(float64(post.UnderlinePosition)),
		}
	}
	f.Strikethrough = LineMetrics{Thickness: defaultLineThickness, Position: defaultStrikeoutPos}
	f.Underline = LineMetrics{Thickness: defaultLineThickness, Position: defaultUnderlinePos}
	switch {
	case strikeout != nil:
		f.Strikethrough.Thickness = strikeout.Thickness
	case underline != nil:
		f.Strikethrough.Thickness = underline.Thickness
	}
	if strikeout != nil {
		f.Strikethrough.Position = strikeout.Position
	}
	switch {
	case underline != nil:
		f.Underline.Thickness = underline.Thickness
	case strikeout != nil:
		f.Underline.Thickness = strikeout.Thickness
	}
	if underline != nil {
		f.Underline.Position = underline.Position
	}
	f.Overline = LineMetrics{
		Thickness: f.Underline.Thickness,
		Position:  f.CapHeight + overlineCapHeightOffset,
	}
}

// Buffer returns the buffer backing this face.
func (f *Face) Buffer() fontworld.Buffer {
	return f.buffer
}

// Index returns the collection index of this face inside its file.
func (f *Face) Index() uint32 {
	return f.index
}

// Font returns the parsed go-text font view. It is safe for concurrent use.
func (f *Face) Font() *gotext.Font {
	return f.font
}

// ShapingFace returns a fresh go-text face for shaping. Unlike Face, the
// result is not safe for concurrent use; every goroutine should request its own.
func (f *Face) ShapingFace() *gotext.Face {
	return gotext.NewFace(f.font)
}

// UnitsPerEm returns the number of design units per em.
func (f *Face) UnitsPerEm() float64 {
	return f.unitsPerEm
}

// NumGlyphs returns the number of glyphs in this face.
func (f *Face) NumGlyphs() int {
	return f.numGlyphs
}

// ToEm converts design units to Em.
func (f *Face) ToEm(units float64) Em {
	return FromUnits(units, f.unitsPerEm)
}

// Advance looks up the horizontal advance width of a glyph. It returns false
// if the glyph does not exist in this face.
func (f *Face) Advance(glyph uint16) (Em, bool) {
	if int(glyph) >= f.numGlyphs {
		return 0, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ToEm(float64(f.advancer.HorizontalAdvance(gotext.GID(glyph)))), true
}

// VerticalMetric looks up a vertical metric.
func (f *Face) VerticalMetric(metric VerticalMetric) Em {
	switch metric {
	case Ascender:
		return f.Ascender
	case CapHeight:
		return f.CapHeight
	case XHeight:
		return f.XHeight
	case Descender:
		return f.Descender
	}
	return 0 // baseline
}

// VerticalMetric identifies a vertical metric of a face.
type VerticalMetric uint8

const (
	// Ascender is the distance from the baseline to the typographic ascender.
	// It corresponds to the typographic ascender of table OS/2 if present and
	// falls back to the ascender of table hhea otherwise.
	Ascender VerticalMetric = iota
	// CapHeight is the approximate height of uppercase letters.
	CapHeight
	// XHeight is the approximate height of non-ascending lowercase letters.
	XHeight
	// Baseline is the line on which the letters rest.
	Baseline
	// Descender is the distance from the baseline to the typographic descender,
	// with the same fallback as Ascender.
	Descender
)

var verticalMetricNames = [...]string{"ascender", "cap-height", "x-height", "baseline", "descender"}

func (m VerticalMetric) String() string {
	if int(m) < len(verticalMetricNames) {
		return verticalMetricNames[m]
	}
	return fmt.Sprintf("VerticalMetric(%d)", m)
}

// ParseVerticalMetric finds a vertical metric by name, e.g. "x-height".
func ParseVerticalMetric(name string) (VerticalMetric, bool) {
	for i, n := range verticalMetricNames {
		if n == name {
			return VerticalMetric(i), true
		}
	}
	return Baseline, false
}
