package otquery

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	regular *opentype.Loader
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelError)
	env.regular = loadTestFont(env.T(), goregular.TTF)
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestHeadInfo() {
	h, ok := HeadInfo(env.regular)
	env.Require().True(ok, "expected to decode table 'head'")
	env.Equal(uint16(2048), h.UnitsPerEm, "expected Go fonts to use 2048 units per em")
	env.Equal(uint16(1), h.MajorVersion)
	env.False(h.BBox.IsEmpty(), "expected a font bounding box")
	env.False(h.MacStyle.IsBold() || h.MacStyle.IsItalic(), "expected regular face to carry no mac style bits")
}

func (env *InfoTestEnviron) TestMaxPInfo() {
	m, ok := MaxPInfo(env.regular)
	env.Require().True(ok, "expected to decode table 'maxp'")
	env.NotZero(m.NumGlyphs, "expected glyphs in test font")
	env.Equal(uint32(0x00010000), m.VersionFixed, "expected TrueType maxp version 1.0")
}

func (env *InfoTestEnviron) TestHHeaInfo() {
	h, ok := HHeaInfo(env.regular)
	env.Require().True(ok, "expected to decode table 'hhea'")
	env.Greater(h.Ascender, int16(0))
	env.Less(h.Descender, int16(0))
	env.NotZero(h.NumberOfHMetrics)
}

func (env *InfoTestEnviron) TestOS2Info() {
	os2, ok := OS2Info(env.regular)
	env.Require().True(ok, "expected to decode table 'OS/2'")
	env.Equal(uint16(400), os2.WeightClass)
	env.Equal(uint16(5), os2.WidthClass, "expected medium (normal) width")
	env.False(os2.IsItalic())
	if os2.HasHeights {
		env.Greater(os2.CapHeight, os2.XHeight, "cap-height should exceed x-height")
	}
	bold, ok := OS2Info(loadTestFont(env.T(), gobold.TTF))
	env.Require().True(ok)
	env.Greater(bold.WeightClass, os2.WeightClass, "expected bold face to be heavier than regular")
	env.LessOrEqual(bold.WeightClass, uint16(900))
	italic, ok := OS2Info(loadTestFont(env.T(), goitalic.TTF))
	env.Require().True(ok)
	env.True(italic.IsItalic())
}

func (env *InfoTestEnviron) TestPostInfo() {
	p, ok := PostInfo(env.regular)
	env.Require().True(ok, "expected to decode table 'post'")
	env.Less(p.UnderlinePosition, int16(0), "underline should sit below the baseline")
	env.Greater(p.UnderlineThickness, int16(0))
	env.Zero(p.ItalicAngle())
}

func (env *InfoTestEnviron) TestFamilyName() {
	fam, ok := FamilyName(env.regular)
	env.Require().True(ok, "font family identifier not found in font info")
	env.Equal("Go", fam, "expected font family name 'Go'")
	count := 0
	for id, value := range NamesRange(env.regular) {
		env.NotEmpty(value, "name %d has empty value", id)
		count++
	}
	env.NotZero(count)
}

func (env *InfoTestEnviron) TestFontMetrics() {
	m := FontMetrics(env.regular)
	env.Equal(sfnt.Units(2048), m.UnitsPerEm)
	env.Greater(m.Ascent, sfnt.Units(0))
	env.Less(m.Descent, sfnt.Units(0))
	env.False(m.BBox.IsEmpty())
	env.Greater(m.BBox.Dy(), m.Ascent)
	env.NotZero(m.NumGlyphs)
}

// --- Table-driven tests on synthetic tables ---------------------------

type mapTables map[opentype.Tag][]byte

func (m mapTables) RawTable(tag opentype.Tag) ([]byte, error) {
	if b, ok := m[tag]; ok {
		return b, nil
	}
	return nil, errors.New("missing table")
}

type nameEntry struct {
	platform, encoding, language, id uint16
	value                            []byte
}

func buildNameTable(entries ...nameEntry) []byte {
	var header, storage bytes.Buffer
	w := func(b *bytes.Buffer, v uint16) { _ = binary.Write(b, binary.BigEndian, v) }
	w(&header, 0)
	w(&header, uint16(len(entries)))
	w(&header, uint16(nameHeaderSize+len(entries)*nameRecordSize))
	for _, e := range entries {
		w(&header, e.platform)
		w(&header, e.encoding)
		w(&header, e.language)
		w(&header, e.id)
		w(&header, uint16(len(e.value)))
		w(&header, uint16(storage.Len()))
		storage.Write(e.value)
	}
	return append(header.Bytes(), storage.Bytes()...)
}

func utf16be(s string) []byte {
	var b []byte
	for _, r := range s {
		b = append(b, byte(r>>8), byte(r))
	}
	return b
}

func TestNamePreferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	tests := []struct {
		name    string
		entries []nameEntry
		family  string
		ok      bool
	}{
		{"empty", nil, "", false},
		{"legacy only", []nameEntry{
			{3, 1, 0x0409, 1, utf16be("Legacy")},
		}, "Legacy", true},
		{"typographic wins", []nameEntry{
			{3, 1, 0x0409, 1, utf16be("Legacy Light")},
			{3, 1, 0x0409, 16, utf16be("Typo")},
		}, "Typo", true},
		{"mac roman", []nameEntry{
			{1, 0, 0, 1, []byte{'C', 'a', 'f', 0x8E}}, // 0x8E is é in Mac Roman
		}, "Café", true},
		{"windows beats mac", []nameEntry{
			{1, 0, 0, 1, []byte("Mac")},
			{3, 1, 0x0407, 1, utf16be("Win")},
		}, "Win", true},
		{"en-US beats other language", []nameEntry{
			{3, 1, 0x0407, 1, utf16be("Deutsch")},
			{3, 1, 0x0409, 1, utf16be("English")},
		}, "English", true},
		{"unsupported encoding skipped", []nameEntry{
			{3, 10, 0x0409, 1, utf16be("UCS4")},
		}, "", false},
	}
	for _, tt := range tests {
		src := mapTables{TagName: buildNameTable(tt.entries...)}
		family, ok := FamilyName(src)
		if ok != tt.ok || family != tt.family {
			t.Errorf("%s: expected family (%q, %v), have (%q, %v)", tt.name, tt.family, tt.ok, family, ok)
		}
	}
}

func TestMalformedTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	truncated := buildNameTable(nameEntry{3, 1, 0x0409, 1, utf16be("Cut")})
	src := mapTables{
		TagName: truncated[:len(truncated)-2],
		TagHead: make([]byte, 20),
		TagOS2:  make([]byte, 40),
	}
	if _, ok := FamilyName(src); ok {
		t.Errorf("expected out-of-bounds name record to be skipped")
	}
	if _, ok := HeadInfo(src); ok {
		t.Errorf("expected short head table to be rejected")
	}
	if _, ok := HeadInfo(mapTables{TagHead: make([]byte, headTableSize)}); ok {
		t.Errorf("expected head table without magic number to be rejected")
	}
	if _, ok := OS2Info(src); ok {
		t.Errorf("expected short OS/2 table to be rejected")
	}
	if _, ok := HHeaInfo(src); ok {
		t.Errorf("expected missing hhea table to be rejected")
	}
	if m := FontMetrics(nil); m.UnitsPerEm != 0 {
		t.Errorf("expected zero metrics for nil source")
	}
}

func TestOS2Versions(t *testing.T) {
	os2 := make([]byte, os2HeightsSize)
	binary.BigEndian.PutUint16(os2[62:], FsSelectionOblique)
	binary.BigEndian.PutUint16(os2[88:], 700)
	for _, tt := range []struct {
		version      uint16
		heights, obl bool
	}{
		{0, false, false},
		{1, false, false},
		{2, true, false},
		{4, true, true},
	} {
		binary.BigEndian.PutUint16(os2[0:], tt.version)
		info, ok := OS2Info(mapTables{TagOS2: os2})
		if !ok {
			t.Fatalf("version %d: expected OS/2 to decode", tt.version)
		}
		if info.HasHeights != tt.heights {
			t.Errorf("version %d: expected HasHeights=%v", tt.version, tt.heights)
		}
		if info.IsOblique() != tt.obl {
			t.Errorf("version %d: expected IsOblique=%v", tt.version, tt.obl)
		}
		if tt.heights && info.CapHeight != 700 {
			t.Errorf("version %d: expected cap-height 700, have %d", tt.version, info.CapHeight)
		}
	}
}

// --- Helpers ----------------------------------------------------------

func loadTestFont(t *testing.T, data []byte) *opentype.Loader {
	t.Helper()
	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return ld
}
