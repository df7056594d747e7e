package fontload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/natefinch/atomic"
	"github.com/npillmayer/fontworld/font"
	"github.com/npillmayer/fontworld/hostfs"
	"github.com/tailscale/hujson"
)

// CatalogVersion is the format version written by SaveCatalog.
const CatalogVersion = 1

// Errors returned when reading catalogs.
var (
	ErrCatalogInvalid = errors.New("fontload: invalid catalog")
	ErrCatalogVersion = errors.New("fontload: unsupported catalog version")
)

// catalog is the persisted form of a list of face descriptors.
// Catalogs are JSON; comments and trailing commas are accepted on input.
type catalog struct {
	Version int             `json:"version"`
	Faces   []font.FaceInfo `json:"faces"`
}

// LoadCatalog reads face descriptors from a catalog file.
// Weight and stretch may be given either as numbers or by name.
func LoadCatalog(fsys hostfs.FS, path string) ([]font.FaceInfo, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontload: cannot read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes face descriptors from catalog data.
func ParseCatalog(data []byte) ([]font.FaceInfo, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogInvalid, err)
	}
	var c catalog
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogInvalid, err)
	}
	if c.Version != CatalogVersion {
		return nil, fmt.Errorf("%w: %d", ErrCatalogVersion, c.Version)
	}
	for i, info := range c.Faces {
		if info.Path == "" || info.Family == "" {
			return nil, fmt.Errorf("%w: face %d lacks path or family", ErrCatalogInvalid, i)
		}
		c.Faces[i].Variant = info.Variant.Normalize()
	}
	tracer().Debugf("catalog with %d faces", len(c.Faces))
	return c.Faces, nil
}

// SaveCatalog writes face descriptors to a catalog file. The file is
// replaced atomically, readers never see a partially written catalog.
func SaveCatalog(path string, faces []font.FaceInfo) error {
	if faces == nil {
		faces = []font.FaceInfo{}
	}
	data, err := json.MarshalIndent(catalog{Version: CatalogVersion, Faces: faces}, "", "  ")
	if err != nil {
		return fmt.Errorf("fontload: cannot encode catalog: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fontload: cannot write catalog: %w", err)
	}
	return nil
}
