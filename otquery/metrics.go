package otquery

import "golang.org/x/image/font/sfnt"

// FontMetrics retrieves selected metrics of a font.
//
// Ascent, descent and line gap are taken from 'hhea'. If 'hhea' does not
// carry them, the typographic values of 'OS/2' are used instead.
// A font without a decodable 'head' table has UnitsPerEm 0.
func FontMetrics(src Tables) FontMetricsInfo {
	metrics := FontMetricsInfo{}
	if hhea, ok := HHeaInfo(src); ok {
		metrics.Ascent = sfnt.Units(hhea.Ascender)
		metrics.Descent = sfnt.Units(hhea.Descender)
		metrics.LineGap = sfnt.Units(hhea.LineGap)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
	}
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if os2, ok := OS2Info(src); ok {
			tracer().Debugf("OS/2")
			a := sfnt.Units(os2.TypoAscender)
			if a > metrics.Ascent {
				tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
				metrics.Ascent = a
			}
			d := sfnt.Units(os2.TypoDescender)
			if d < metrics.Descent {
				tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
				metrics.Descent = d
			}
			if metrics.LineGap == 0 {
				metrics.LineGap = sfnt.Units(os2.TypoLineGap)
			}
		}
	}
	if head, ok := HeadInfo(src); ok {
		metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
		metrics.BBox = head.BBox
	}
	if maxp, ok := MaxPInfo(src); ok {
		metrics.NumGlyphs = int(maxp.NumGlyphs)
	}
	return metrics
}
