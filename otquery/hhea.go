package otquery

// HHeaTableInfo is a typed query view over OpenType table 'hhea'.
type HHeaTableInfo struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	AdvanceWidthMax  uint16
	NumberOfHMetrics uint16
}

const hheaTableSize = 36

// HHeaInfo decodes table 'hhea' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func HHeaInfo(src Tables) (HHeaTableInfo, bool) {
	var info HHeaTableInfo
	b := rawTable(src, TagHHea)
	if len(b) < hheaTableSize {
		return info, false
	}
	info.Ascender = i16(b[4:6])
	info.Descender = i16(b[6:8])
	info.LineGap = i16(b[8:10])
	info.AdvanceWidthMax = u16(b[10:12])
	info.NumberOfHMetrics = u16(b[34:36])
	return info, true
}
