package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/fontworld/otquery"
)

// FaceInfo describes a single face: where to find it and what it looks like.
//
// FaceInfo serializes to JSON with the variant flattened into the top level:
//
//	{"path":"/fonts/Go-Bold.ttf","index":0,"family":"Go","style":"normal","weight":700,"stretch":1000}
type FaceInfo struct {
	Path    string `json:"path"`   // path of the font file
	Index   uint32 `json:"index"`  // collection index inside the file
	Family  string `json:"family"` // typographic family name
	Variant        // properties distinguishing this face from its siblings
}

func (info FaceInfo) String() string {
	return fmt.Sprintf("%s[%d] %q (%s)", info.Path, info.Index, info.Family, info.Variant)
}

// ParseFaceInfos determines descriptors for all faces found in data, which is
// the content of the file at path. Collections yield one descriptor per member
// face, single fonts at most one.
//
// Faces without a family name are skipped, as are faces which cannot be
// parsed into a shaping view. Data which is not a font yields no descriptors.
func ParseFaceInfos(path string, data []byte) []FaceInfo {
	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		tracer().Debugf("%s is not a font: %v", path, err)
		return nil
	}
	infos := make([]FaceInfo, 0, len(loaders))
	for i, ld := range loaders {
		info, err := parseFaceInfo(ld)
		if err != nil {
			tracer().Infof("skipping face %d of %s: %v", i, path, err)
			continue
		}
		info.Path = path
		info.Index = uint32(i)
		infos = append(infos, info)
	}
	return infos
}

func parseFaceInfo(ld *opentype.Loader) (FaceInfo, error) {
	family, ok := otquery.FamilyName(ld)
	if !ok {
		return FaceInfo{}, ErrNoFamily
	}
	if _, err := gotext.NewFont(ld); err != nil {
		return FaceInfo{}, err
	}
	return FaceInfo{Family: family, Variant: variantOf(ld)}, nil
}

// variantOf derives a variant from table OS/2. Faces without OS/2 are
// normal, regular and of normal width.
func variantOf(src otquery.Tables) Variant {
	os2, ok := otquery.OS2Info(src)
	if !ok {
		return DefaultVariant()
	}
	style := StyleNormal
	if os2.IsItalic() {
		style = StyleItalic
	} else if os2.IsOblique() {
		style = StyleOblique
	}
	return Variant{
		Style:   style,
		Weight:  WeightFromNumber(int(os2.WeightClass)),
		Stretch: StretchFromNumber(int(os2.WidthClass)),
	}
}
