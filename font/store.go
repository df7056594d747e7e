package font

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/fontworld"
)

// FaceID identifies a face of a Store. IDs are dense: the i-th descriptor
// of the store's loader has FaceID i.
type FaceID uint32

// FromRaw creates a face ID from a raw value previously returned by Raw.
func FromRaw(v uint32) FaceID {
	return FaceID(v)
}

// Raw returns the underlying value of id.
func (id FaceID) Raw() uint32 {
	return uint32(id)
}

// FileHash identifies the content source of a font file. Two paths naming
// the same file must resolve to the same hash.
type FileHash uint64

func (h FileHash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// Loader provides the face descriptors of a Store and the bytes backing them.
type Loader interface {
	// Faces lists descriptors for all faces available to the store.
	// The list must not change over the lifetime of a store.
	Faces() []FaceInfo
	// Resolve maps a path to the identity of the file it names.
	Resolve(path string) (FileHash, error)
	// Load returns the complete content of a file.
	Load(path string) ([]byte, error)
}

// LoadObserver is called once for every face a Store loads.
type LoadObserver func(FaceID, *Face)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithObserver registers a callback which is invoked each time a face is loaded.
func WithObserver(fn LoadObserver) StoreOption {
	return func(s *Store) {
		s.onLoad = fn
	}
}

// WithGeneric maps a generic family to a list of named families, which
// SelectFamily tries in order.
func WithGeneric(generic Family, families ...string) StoreOption {
	return func(s *Store) {
		s.generics[generic] = append([]string(nil), families...)
	}
}

// Store holds the faces available from a Loader and loads them lazily.
//
// A Store is safe for concurrent use. Faces are loaded at most once; faces of
// one collection file share a single buffer.
type Store struct {
	mu       sync.Mutex
	loader   Loader
	infos    []FaceInfo
	faces    []*Face             // nil until loaded
	families map[string][]FaceID // folded family name → faces, in registration order
	names    map[string]string   // folded family name → display name
	buffers  map[FileHash]fontworld.Buffer
	generics map[Family][]string
	onLoad   LoadObserver
}

// NewStore creates a store for the faces listed by loader.
// No file is loaded until a face is selected.
func NewStore(loader Loader, opts ...StoreOption) *Store {
	infos := loader.Faces()
	s := &Store{
		loader:   loader,
		infos:    make([]FaceInfo, len(infos)),
		faces:    make([]*Face, len(infos)),
		families: make(map[string][]FaceID),
		names:    make(map[string]string),
		buffers:  make(map[FileHash]fontworld.Buffer),
		generics: make(map[Family][]string),
	}
	for i, info := range infos {
		info.Variant = info.Variant.Normalize()
		s.infos[i] = info
		key := familyKey(info.Family)
		s.families[key] = append(s.families[key], FaceID(i))
		if _, ok := s.names[key]; !ok {
			s.names[key] = info.Family
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	tracer().Debugf("font store with %d faces in %d families", len(infos), len(s.families))
	return s
}

// OnLoad registers a callback which is invoked each time a face is loaded.
// It replaces any observer registered before.
func (s *Store) OnLoad(fn LoadObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLoad = fn
}

// Select finds the face of family which most closely matches variant and
// makes sure it is loaded. Family names are compared case-insensitively.
//
// A face with exactly the requested variant always wins. Otherwise faces
// with matching style are preferred, then faces with the closest stretch,
// then those with the closest weight. Among equally good faces the one
// listed first by the loader wins.
//
// Select returns false if the family is unknown, or if the selected face
// cannot be loaded or parsed. Failures are not remembered: a later call will
// try again.
func (s *Store) Select(family string, variant Variant) (FaceID, bool) {
	variant = variant.Normalize()
	s.mu.Lock()
	id, ok := s.best(familyKey(family), variant)
	if !ok {
		s.mu.Unlock()
		tracer().Debugf("no face for family %q", family)
		return 0, false
	}
	if face := s.faces[id]; face != nil {
		s.mu.Unlock()
		return id, true
	}
	face, err := s.load(id)
	if err != nil {
		s.mu.Unlock()
		tracer().Errorf("cannot load face for %q: %v", family, err)
		return 0, false
	}
	s.faces[id] = face
	observer := s.onLoad
	s.mu.Unlock()
	tracer().Infof("loaded face %d: %s", id, s.infos[id])
	if observer != nil {
		observer(id, face)
	}
	return id, true
}

// SelectFamily is like Select, but accepts generic families. A generic family
// tries each of the families registered for it with WithGeneric in turn.
func (s *Store) SelectFamily(family Family, variant Variant) (FaceID, bool) {
	if !family.IsGeneric() {
		return s.Select(family.String(), variant)
	}
	s.mu.Lock()
	candidates := s.generics[family]
	s.mu.Unlock()
	for _, name := range candidates {
		if id, ok := s.Select(name, variant); ok {
			return id, true
		}
	}
	return s.Select(family.String(), variant)
}

// best finds the best match within a family. Must be called with s.mu held.
func (s *Store) best(key string, want Variant) (FaceID, bool) {
	var best FaceID
	var bestKey matchKey
	found := false
	for _, id := range s.families[key] {
		current := s.infos[id].Variant
		if current == want {
			return id, true
		}
		k := current.matchKey(want)
		if !found || k.less(bestKey) {
			best, bestKey, found = id, k, true
		}
	}
	return best, found
}

// load reads and parses a face. Must be called with s.mu held.
func (s *Store) load(id FaceID) (*Face, error) {
	info := s.infos[id]
	hash, err := s.loader.Resolve(info.Path)
	if err != nil {
		return nil, &LoadError{Path: info.Path, Index: info.Index, Err: err}
	}
	buffer, ok := s.buffers[hash]
	if ok {
		tracer().Debugf("buffer cache hit for %s", info.Path)
	} else {
		data, err := s.loader.Load(info.Path)
		if err != nil {
			return nil, &LoadError{Path: info.Path, Index: info.Index, Err: err}
		}
		buffer = fontworld.NewBuffer(data)
		s.buffers[hash] = buffer
	}
	face, err := NewFace(buffer, info.Index)
	if err != nil {
		return nil, &LoadError{Path: info.Path, Index: info.Index, Err: err}
	}
	return face, nil
}

// Get returns a loaded face.
//
// Get panics if the face with id has not been loaded. It should only be called
// with IDs returned by Select.
func (s *Store) Get(id FaceID) *Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(id) >= len(s.faces) || s.faces[id] == nil {
		panic(fmt.Sprintf("font: face %d was not loaded", id))
	}
	return s.faces[id]
}

// Loaded reports whether the face with id has been loaded.
func (s *Store) Loaded(id FaceID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(id) < len(s.faces) && s.faces[id] != nil
}

// Info returns the descriptor of a face. It panics for unknown IDs.
func (s *Store) Info(id FaceID) FaceInfo {
	return s.infos[id]
}

// Faces returns the descriptors of all faces, indexed by FaceID.
func (s *Store) Faces() []FaceInfo {
	return append([]FaceInfo(nil), s.infos...)
}

// Families returns the names of all families, sorted case-insensitively.
func (s *Store) Families() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.names))
	for key := range s.names {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = s.names[key]
	}
	return names
}

// Variants returns the IDs of all faces of a family, in registration order.
func (s *Store) Variants(family string) []FaceID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]FaceID(nil), s.families[familyKey(family)]...)
}
