package otquery

import (
	"fmt"
	"iter"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDMacRoman      EncodingID = 0 // platform Macintosh
	EncodingIDWindowsBMP    EncodingID = 1
	EncodingIDUnicodeBMP    EncodingID = 3
)

const (
	languageWindowsEnUS uint16 = 0x0409
	languageMacEnglish  uint16 = 0
)

// NameRecord is one decoded entry of table 'name'.
type NameRecord struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16
	Name     sfnt.NameID
	Value    string
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only currently supported encodings are yielded (Unicode BMP, Windows BMP and
// Mac Roman), and malformed or out-of-bounds records are skipped.
func NamesRange(src Tables) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		for rec := range nameRecords(src) {
			if !yield(rec.Name, rec.Value) {
				return
			}
		}
	}
}

// Name returns the best entry for a name ID. Windows US-English entries are
// preferred over other Unicode entries, which are preferred over Mac Roman entries.
func Name(src Tables, id sfnt.NameID) (string, bool) {
	best, bestScore := "", 0
	for rec := range nameRecords(src) {
		if rec.Name != id {
			continue
		}
		if score := nameScore(rec); score > bestScore {
			best, bestScore = rec.Value, score
		}
	}
	return best, bestScore > 0
}

// FamilyName returns the typographic family name of a font, falling back to
// the legacy family name if no typographic family is present.
func FamilyName(src Tables) (string, bool) {
	if family, ok := Name(src, sfnt.NameIDTypographicFamily); ok {
		return family, true
	}
	return Name(src, sfnt.NameIDFamily)
}

func nameScore(rec NameRecord) int {
	switch {
	case rec.Platform == PlatformIDWindows && rec.Language == languageWindowsEnUS:
		return 4
	case rec.Platform == PlatformIDWindows || rec.Platform == PlatformIDUnicode:
		return 3
	case rec.Language == languageMacEnglish:
		return 2
	}
	return 1
}

func nameRecords(src Tables) iter.Seq[NameRecord] {
	binary := checkNameTableSafe(src)
	return func(yield func(NameRecord) bool) {
		if binary == nil {
			return
		}
		count := int(u16(binary[2:4])) // number of name records
		stringStorageOffset := int(u16(binary[4:6]))
		for i := range count {
			recordSlice := binary[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(recordSlice[0:2])),
				Encoding: EncodingID(u16(recordSlice[2:4])),
				Language: u16(recordSlice[4:6]),
				Name:     sfnt.NameID(u16(recordSlice[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			strLen := int(u16(recordSlice[8:10]))
			recordOffset := int(u16(recordSlice[10:12]))
			start := stringStorageOffset + recordOffset
			end := start + strLen
			if end > len(binary) {
				continue
			}
			stringValue, err := decodeName(key, binary[start:end])
			if err != nil || stringValue == "" {
				continue
			}
			rec := NameRecord{
				Platform: key.Platform,
				Encoding: key.Encoding,
				Language: key.Language,
				Name:     key.Name,
				Value:    stringValue,
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc. It returns the table bytes or nil.
func checkNameTableSafe(src Tables) []byte {
	b := rawTable(src, TagName)
	if b == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return b
}

func isSupportedNameEncoding(key nameKey) bool {
	switch key.Platform {
	case PlatformIDUnicode:
		return true // all Unicode platform encodings are UTF-16BE
	case PlatformIDWindows:
		return key.Encoding == EncodingIDWindowsBMP
	case PlatformIDMacintosh:
		return key.Encoding == EncodingIDMacRoman
	}
	return false
}

func decodeName(key nameKey, str []byte) (string, error) {
	if key.Platform == PlatformIDMacintosh {
		s, err := charmap.Macintosh.NewDecoder().Bytes(str)
		if err != nil {
			return "", fmt.Errorf("decoding Mac Roman error: %v", err)
		}
		return string(s), nil
	}
	return decodeNameUTF16(str)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
