package fontload

import (
	"fmt"

	"github.com/npillmayer/fontworld/hostfs"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
// It is meant for one-off inspection of font files, independent of a store.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads face index of an OpenType font or collection from a file.
func LoadOpenTypeFont(fsys hostfs.FS, fontfile string, index int) (*ScalableFont, error) {
	bytez, err := fsys.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez, index)
}

// ParseOpenTypeFont parses face index of an OpenType font or collection from memory.
// Single fonts are treated as collections with one member.
func ParseOpenTypeFont(fbytes []byte, index int) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	coll, err := sfnt.ParseCollection(fbytes)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("fontload: face index %d out of range [0…%d)", index, coll.NumFonts())
	}
	if f.SFNT, err = coll.Font(index); err != nil {
		return nil, err
	}
	if name, err := f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		f.Fontname = name
		tracer().Debugf("loaded and parsed SFNT %s", name)
	}
	return f, nil
}
