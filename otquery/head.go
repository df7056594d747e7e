package otquery

import "golang.org/x/image/font/sfnt"

// HeadTableInfo holds the fields of table 'head' which the font store needs.
type HeadTableInfo struct {
	MajorVersion uint16
	MinorVersion uint16
	UnitsPerEm   uint16
	BBox         BoundingBox // union of all glyph bounding boxes
	MacStyle     MacStyle
}

// MacStyle is the 'head' table's style bit set.
type MacStyle uint16

const (
	MacStyleBold   MacStyle = 1 << 0
	MacStyleItalic MacStyle = 1 << 1
)

func (s MacStyle) IsBold() bool   { return s&MacStyleBold != 0 }
func (s MacStyle) IsItalic() bool { return s&MacStyleItalic != 0 }

const (
	headTableSize = 54
	headMagic     = 0x5F0F3CF5
)

// HeadInfo decodes table 'head'. It returns false if the table is missing,
// truncated or carries a wrong magic number.
func HeadInfo(src Tables) (HeadTableInfo, bool) {
	var info HeadTableInfo
	b := rawTable(src, TagHead)
	if len(b) < headTableSize {
		return info, false
	}
	if u32(b[12:16]) != headMagic {
		tracer().Debugf("table 'head' has bad magic number %#x", u32(b[12:16]))
		return info, false
	}
	info.MajorVersion = u16(b[0:2])
	info.MinorVersion = u16(b[2:4])
	info.UnitsPerEm = u16(b[18:20])
	info.BBox = BoundingBox{
		MinX: sfnt.Units(i16(b[36:38])),
		MinY: sfnt.Units(i16(b[38:40])),
		MaxX: sfnt.Units(i16(b[40:42])),
		MaxY: sfnt.Units(i16(b[42:44])),
	}
	info.MacStyle = MacStyle(u16(b[44:46]))
	return info, true
}
