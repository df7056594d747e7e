package otquery

// PostTableInfo is a typed query view over the header of OpenType table 'post'.
type PostTableInfo struct {
	VersionFixed       uint32
	ItalicAngleFixed   int32 // 16.16 fixed point
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
}

const postHeaderSize = 32

// PostInfo decodes the header of table 'post' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func PostInfo(src Tables) (PostTableInfo, bool) {
	var info PostTableInfo
	b := rawTable(src, TagPost)
	if len(b) < postHeaderSize {
		return info, false
	}
	info.VersionFixed = u32(b[0:4])
	info.ItalicAngleFixed = int32(u32(b[4:8]))
	info.UnderlinePosition = i16(b[8:10])
	info.UnderlineThickness = i16(b[10:12])
	info.IsFixedPitch = u32(b[12:16]) != 0
	return info, true
}

// ItalicAngle returns the italic angle in counter-clockwise degrees from the vertical.
func (info PostTableInfo) ItalicAngle() float64 {
	return float64(info.ItalicAngleFixed) / 65536
}
