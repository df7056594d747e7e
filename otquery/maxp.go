package otquery

// MaxPTableInfo is a typed query view over OpenType table 'maxp'.
// Only the fields common to version 0.5 (CFF) and 1.0 (TrueType) are decoded.
type MaxPTableInfo struct {
	VersionFixed uint32
	NumGlyphs    uint16
}

const (
	maxpMinSize   = 6
	maxpVersion05 = 0x00005000
	maxpVersion10 = 0x00010000
)

// MaxPInfo decodes table 'maxp'. It returns false if the table is missing,
// truncated or of an unknown version.
func MaxPInfo(src Tables) (MaxPTableInfo, bool) {
	var info MaxPTableInfo
	b := rawTable(src, TagMaxP)
	if len(b) < maxpMinSize {
		return info, false
	}
	info.VersionFixed = u32(b[0:4])
	if info.VersionFixed != maxpVersion05 && info.VersionFixed != maxpVersion10 {
		tracer().Debugf("table 'maxp' has unknown version %#x", info.VersionFixed)
		return MaxPTableInfo{}, false
	}
	info.NumGlyphs = u16(b[4:6])
	return info, true
}
