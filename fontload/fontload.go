/*
Package fontload provides a file-system backed loader for font stores.

A Loader serves a fixed list of face descriptors. Descriptors are either
found by scanning files and directories (Scan), or read from a catalog file
written earlier (LoadCatalog, SaveCatalog):

	faces, err := fontload.Scan(hostfs.NewReal(), "/usr/share/fonts/truetype/go")
	...
	store := font.NewStore(fontload.New(hostfs.NewReal(), faces))

Scanning does not look for fonts installed on the system; it only examines
the paths it is given.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"fmt"
	"hash/fnv"
	"path/filepath"
	"slices"
	"strings"

	"github.com/npillmayer/fontworld/font"
	"github.com/npillmayer/fontworld/hostfs"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

// Loader implements font.Loader on top of a host file system.
type Loader struct {
	fsys  hostfs.FS
	faces []font.FaceInfo
}

var _ font.Loader = (*Loader)(nil)

// New creates a loader serving faces, reading files from fsys.
func New(fsys hostfs.FS, faces []font.FaceInfo) *Loader {
	return &Loader{
		fsys:  fsys,
		faces: slices.Clone(faces),
	}
}

// Faces returns the face descriptors served by this loader.
func (l *Loader) Faces() []font.FaceInfo {
	return l.faces
}

// Resolve checks that path names a file and hashes its canonical path.
// Different spellings of a path to the same file yield the same hash.
func (l *Loader) Resolve(path string) (font.FileHash, error) {
	canonical, err := canonicalPath(path)
	if err != nil {
		return 0, err
	}
	info, err := l.fsys.Stat(canonical)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("fontload: %s: %w", path, hostfs.ErrIsDirectory)
	}
	h := fnv.New64a()
	h.Write([]byte(canonical))
	return font.FileHash(h.Sum64()), nil
}

// Load reads the complete file at path.
func (l *Loader) Load(path string) ([]byte, error) {
	tracer().Debugf("loading font file %s", path)
	return l.fsys.ReadFile(path)
}

// canonicalPath makes a path absolute and lexically clean.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("fontload: %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}

// fontExtensions are the file extensions Scan considers.
var fontExtensions = []string{".ttf", ".otf", ".ttc", ".otc"}

// IsFontFile reports whether a file name has one of the extensions of
// OpenType fonts and collections. The comparison ignores case.
func IsFontFile(name string) bool {
	return slices.Contains(fontExtensions, strings.ToLower(filepath.Ext(name)))
}

// Scan examines files and directories for fonts and returns descriptors for
// all faces found. Directories are searched recursively. Paths in the result
// are canonical; within a directory, files are visited in name order.
//
// Scan returns an error if one of paths does not exist. Font files which
// cannot be read or parsed are skipped.
func Scan(fsys hostfs.FS, paths ...string) ([]font.FaceInfo, error) {
	var faces []font.FaceInfo
	for _, p := range paths {
		canonical, err := canonicalPath(p)
		if err != nil {
			return nil, err
		}
		info, err := fsys.Stat(canonical)
		if err != nil {
			return nil, fmt.Errorf("fontload: cannot scan %s: %w", p, err)
		}
		if info.IsDir() {
			faces = scanDir(fsys, canonical, faces)
		} else {
			faces = scanFile(fsys, canonical, faces)
		}
	}
	tracer().Infof("scanned %d font faces", len(faces))
	return faces, nil
}

func scanDir(fsys hostfs.FS, dir string, faces []font.FaceInfo) []font.FaceInfo {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		tracer().Errorf("cannot read directory %s: %v", dir, err)
		return faces
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			faces = scanDir(fsys, path, faces)
		} else if IsFontFile(entry.Name()) {
			faces = scanFile(fsys, path, faces)
		}
	}
	return faces
}

func scanFile(fsys hostfs.FS, path string, faces []font.FaceInfo) []font.FaceInfo {
	data, err := fsys.ReadFile(path)
	if err != nil {
		tracer().Errorf("cannot read font file %s: %v", path, err)
		return faces
	}
	infos := font.ParseFaceInfos(path, data)
	if len(infos) == 0 {
		tracer().Infof("no usable faces in %s", path)
	}
	return append(faces, infos...)
}
