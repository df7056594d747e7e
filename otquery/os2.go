package otquery

// OS2TableInfo is a typed query view over OpenType table 'OS/2'.
//
// Fields introduced with later table versions are only valid if the
// corresponding Has… flag is set. Version 0 tables of Apple fonts may end
// right after the typographic metrics; those are accepted, too.
type OS2TableInfo struct {
	Version           uint16
	WeightClass       uint16
	WidthClass        uint16
	StrikeoutSize     int16
	StrikeoutPosition int16
	FsSelection       uint16
	TypoAscender      int16
	TypoDescender     int16
	TypoLineGap       int16
	WinAscent         uint16
	WinDescent        uint16
	HasHeights        bool  // table version >= 2
	XHeight           int16 // valid if HasHeights
	CapHeight         int16 // valid if HasHeights
}

// Bits of field fsSelection.
const (
	FsSelectionItalic  uint16 = 1 << 0
	FsSelectionBold    uint16 = 1 << 5
	FsSelectionRegular uint16 = 1 << 6
	FsSelectionUseTypo uint16 = 1 << 7
	FsSelectionOblique uint16 = 1 << 9
)

const (
	os2MinSize     = 68 + 6 // up to and including typographic metrics
	os2V0Size      = 78
	os2HeightsSize = 90 // up to and including sCapHeight
)

// OS2Info decodes table 'OS/2' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func OS2Info(src Tables) (OS2TableInfo, bool) {
	var info OS2TableInfo
	b := rawTable(src, TagOS2)
	if len(b) < os2MinSize {
		return info, false
	}
	info.Version = u16(b[0:2])
	info.WeightClass = u16(b[4:6])
	info.WidthClass = u16(b[6:8])
	info.StrikeoutSize = i16(b[26:28])
	info.StrikeoutPosition = i16(b[28:30])
	info.FsSelection = u16(b[62:64])
	info.TypoAscender = i16(b[68:70])
	info.TypoDescender = i16(b[70:72])
	info.TypoLineGap = i16(b[72:74])
	if len(b) >= os2V0Size {
		info.WinAscent = u16(b[74:76])
		info.WinDescent = u16(b[76:78])
	}
	if info.Version >= 2 && len(b) >= os2HeightsSize {
		info.HasHeights = true
		info.XHeight = i16(b[86:88])
		info.CapHeight = i16(b[88:90])
	}
	return info, true
}

// IsItalic reports whether the italic bit of fsSelection is set.
func (info OS2TableInfo) IsItalic() bool {
	return info.FsSelection&FsSelectionItalic != 0
}

// IsOblique reports whether the oblique bit of fsSelection is set.
// The bit is defined for table versions 4 and later only.
func (info OS2TableInfo) IsOblique() bool {
	return info.Version >= 4 && info.FsSelection&FsSelectionOblique != 0
}
