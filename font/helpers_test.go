package font

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// buildCollection packs single fonts into a TrueType collection.
// Table offsets of every member are shifted to their new position.
func buildCollection(fonts ...[]byte) []byte {
	header := 12 + 4*len(fonts)
	offsets := make([]int, len(fonts))
	size := header
	for i, f := range fonts {
		offsets[i] = size
		size += (len(f) + 3) &^ 3
	}
	ttc := make([]byte, size)
	copy(ttc, "ttcf")
	binary.BigEndian.PutUint32(ttc[4:], 0x00010000)
	binary.BigEndian.PutUint32(ttc[8:], uint32(len(fonts)))
	for i, f := range fonts {
		base := offsets[i]
		binary.BigEndian.PutUint32(ttc[12+4*i:], uint32(base))
		copy(ttc[base:], f)
		numTables := int(binary.BigEndian.Uint16(f[4:6]))
		for t := range numTables {
			rec := base + 12 + 16*t
			off := binary.BigEndian.Uint32(ttc[rec+8:])
			binary.BigEndian.PutUint32(ttc[rec+8:], off+uint32(base))
		}
	}
	return ttc
}

// patchOS2Version returns a copy of a single font with the version field of
// table OS/2 replaced.
func patchOS2Version(data []byte, version uint16) []byte {
	patched := append([]byte(nil), data...)
	numTables := int(binary.BigEndian.Uint16(patched[4:6]))
	for t := range numTables {
		rec := 12 + 16*t
		if string(patched[rec:rec+4]) == "OS/2" {
			off := binary.BigEndian.Uint32(patched[rec+8:])
			binary.BigEndian.PutUint16(patched[off:], version)
			return patched
		}
	}
	panic("test font has no OS/2 table")
}

// testFonts maps test file paths to real font data.
var testFonts = map[string][]byte{
	"/fonts/Go-Regular.ttf": goregular.TTF,
	"/fonts/Go-Bold.ttf":    gobold.TTF,
	"/fonts/Go-Italic.ttf":  goitalic.TTF,
	"/fonts/Go.ttc":         buildCollection(goregular.TTF, gobold.TTF, goitalic.TTF),
	"/fonts/broken.ttf":     []byte("this is not a font"),
}

// stubLoader serves faces from memory and counts calls to Load.
type stubLoader struct {
	mu    sync.Mutex
	faces []FaceInfo
	files map[string][]byte
	loads map[string]int
}

func newStubLoader(faces ...FaceInfo) *stubLoader {
	return &stubLoader{faces: faces, files: testFonts, loads: make(map[string]int)}
}

func (l *stubLoader) Faces() []FaceInfo {
	return l.faces
}

func (l *stubLoader) Resolve(path string) (FileHash, error) {
	if _, ok := l.files[path]; !ok {
		return 0, fmt.Errorf("no such file: %s", path)
	}
	var h FileHash
	for _, c := range path {
		h = h*31 + FileHash(c)
	}
	return h, nil
}

func (l *stubLoader) Load(path string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads[path]++
	data, ok := l.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (l *stubLoader) loadCount(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads[path]
}

func face(path string, index uint32, family string, style Style, weight Weight, stretch Stretch) FaceInfo {
	return FaceInfo{
		Path:    path,
		Index:   index,
		Family:  family,
		Variant: Variant{Style: style, Weight: weight, Stretch: stretch},
	}
}
