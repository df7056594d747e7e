package font

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type StoreTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	suite.Run(t, new(StoreTestEnviron))
}

func (env *StoreTestEnviron) SetupSuite() {
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *StoreTestEnviron) TestExactMatch() {
	loader := newStubLoader(
		face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal),
		face("/fonts/Go-Bold.ttf", 0, "Go", StyleNormal, Bold, StretchNormal),
		face("/fonts/Go-Italic.ttf", 0, "Go", StyleItalic, Regular, StretchNormal),
	)
	store := NewStore(loader)
	id, ok := store.Select("Go", NewVariant(StyleNormal, Bold, StretchNormal))
	env.Require().True(ok)
	env.Equal(FaceID(1), id)
	env.Equal(1, loader.loadCount("/fonts/Go-Bold.ttf"))
	env.Zero(loader.loadCount("/fonts/Go-Regular.ttf"), "only the selected face should be loaded")
	env.False(store.Loaded(0))
	env.True(store.Loaded(1))
}

func (env *StoreTestEnviron) TestUnknownFamily() {
	store := NewStore(newStubLoader(face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal)))
	_, ok := store.Select("Helvetica", DefaultVariant())
	env.False(ok)
}

func (env *StoreTestEnviron) TestCaseInsensitiveFamily() {
	store := NewStore(newStubLoader(face("/fonts/Go-Regular.ttf", 0, "Go Sans", StyleNormal, Regular, StretchNormal)))
	id, ok := store.Select("GO SANS", DefaultVariant())
	env.True(ok)
	env.Equal(FaceID(0), id)
	env.Equal([]string{"Go Sans"}, store.Families())
}

func (env *StoreTestEnviron) TestTieBreakFirstWins() {
	store := NewStore(newStubLoader(
		face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Light, StretchNormal),
		face("/fonts/Go-Bold.ttf", 0, "Go", StyleNormal, Medium, StretchNormal),
	))
	id, ok := store.Select("Go", NewVariant(StyleNormal, Regular, StretchNormal))
	env.Require().True(ok)
	env.Equal(FaceID(0), id, "equidistant faces: first registered should win")
}

func (env *StoreTestEnviron) TestStyleBeforeStretchBeforeWeight() {
	store := NewStore(newStubLoader(
		face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Bold, StretchNormal),
		face("/fonts/Go-Bold.ttf", 0, "Go", StyleItalic, Thin, Expanded),
		face("/fonts/Go-Italic.ttf", 0, "Go", StyleItalic, Thin, StretchNormal),
	))
	id, ok := store.Select("Go", NewVariant(StyleItalic, Bold, StretchNormal))
	env.Require().True(ok)
	env.Equal(FaceID(2), id)
}

func (env *StoreTestEnviron) TestCollectionSharesBuffer() {
	loader := newStubLoader(
		face("/fonts/Go.ttc", 0, "Go", StyleNormal, Regular, StretchNormal),
		face("/fonts/Go.ttc", 1, "Go", StyleNormal, Bold, StretchNormal),
	)
	store := NewStore(loader)
	a, ok := store.Select("Go", NewVariant(StyleNormal, Regular, StretchNormal))
	env.Require().True(ok)
	b, ok := store.Select("Go", NewVariant(StyleNormal, Bold, StretchNormal))
	env.Require().True(ok)
	env.NotEqual(a, b)
	env.Equal(1, loader.loadCount("/fonts/Go.ttc"), "collection file should be loaded once")
	env.True(store.Get(a).Buffer().Shares(store.Get(b).Buffer()))
	env.Equal(uint32(1), store.Get(b).Index())
}

func (env *StoreTestEnviron) TestLoadOnce() {
	loader := newStubLoader(face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal))
	calls := 0
	var seen FaceID
	store := NewStore(loader, WithObserver(func(id FaceID, f *Face) {
		calls++
		seen = id
	}))
	for range 3 {
		id, ok := store.Select("Go", DefaultVariant())
		env.Require().True(ok)
		env.Equal(FaceID(0), id)
	}
	env.Equal(1, calls, "observer should fire once per loaded face")
	env.Equal(FaceID(0), seen)
	env.Equal(1, loader.loadCount("/fonts/Go-Regular.ttf"))
}

func (env *StoreTestEnviron) TestConcurrentSelectLoadsOnce() {
	loader := newStubLoader(face("/fonts/Go.ttc", 2, "Go", StyleItalic, Regular, StretchNormal))
	var mu sync.Mutex
	calls := 0
	store := NewStore(loader)
	store.OnLoad(func(FaceID, *Face) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Select("go", NewVariant(StyleItalic, Regular, StretchNormal))
		}()
	}
	wg.Wait()
	env.Equal(1, calls)
	env.Equal(1, loader.loadCount("/fonts/Go.ttc"))
}

func (env *StoreTestEnviron) TestObserverMayGet() {
	loader := newStubLoader(face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal))
	var store *Store
	var got *Face
	store = NewStore(loader, WithObserver(func(id FaceID, f *Face) {
		got = store.Get(id)
	}))
	id, ok := store.Select("Go", DefaultVariant())
	env.Require().True(ok)
	env.Same(store.Get(id), got)
}

func (env *StoreTestEnviron) TestParseFailureNotMemoized() {
	loader := newStubLoader(face("/fonts/broken.ttf", 0, "Broken", StyleNormal, Regular, StretchNormal))
	calls := 0
	store := NewStore(loader, WithObserver(func(FaceID, *Face) { calls++ }))
	for range 2 {
		_, ok := store.Select("Broken", DefaultVariant())
		env.False(ok)
		env.False(store.Loaded(0))
	}
	env.Zero(calls)
	env.Equal(1, loader.loadCount("/fonts/broken.ttf"), "buffer should stay cached across retries")
}

func (env *StoreTestEnviron) TestMissingFile() {
	loader := newStubLoader(face("/fonts/missing.ttf", 0, "Missing", StyleNormal, Regular, StretchNormal))
	store := NewStore(loader)
	_, ok := store.Select("Missing", DefaultVariant())
	env.False(ok)
	env.Zero(loader.loadCount("/fonts/missing.ttf"), "unresolvable path should not be loaded")
}

func (env *StoreTestEnviron) TestGetPanicsForUnloaded() {
	store := NewStore(newStubLoader(face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal)))
	env.Panics(func() { store.Get(0) })
	env.Panics(func() { store.Get(99) })
}

func (env *StoreTestEnviron) TestGenericFamilies() {
	loader := newStubLoader(
		face("/fonts/Go-Regular.ttf", 0, "Go", StyleNormal, Regular, StretchNormal),
		face("/fonts/Go-Bold.ttf", 0, "Go Mono", StyleNormal, Regular, StretchNormal),
	)
	store := NewStore(loader, WithGeneric(Monospace, "Courier", "Go Mono"))
	id, ok := store.SelectFamily(Monospace, DefaultVariant())
	env.Require().True(ok)
	env.Equal(FaceID(1), id)
	_, ok = store.SelectFamily(Serif, DefaultVariant())
	env.False(ok)
	id, ok = store.SelectFamily(Named("go"), DefaultVariant())
	env.True(ok)
	env.Equal(FaceID(0), id)
}

func (env *StoreTestEnviron) TestCatalogAccess() {
	loader := newStubLoader(
		face("/fonts/Go-Bold.ttf", 0, "Zeta", StyleNormal, Regular, StretchNormal),
		face("/fonts/Go-Regular.ttf", 0, "alpha", StyleNormal, 0, 0),
	)
	store := NewStore(loader)
	env.Equal([]string{"alpha", "Zeta"}, store.Families())
	env.Len(store.Faces(), 2)
	env.Equal(DefaultVariant(), store.Info(1).Variant, "unset variant values should be normalized")
	env.Equal([]FaceID{0}, store.Variants("zeta"))
	env.Equal(FaceID(7), FromRaw(FaceID(7).Raw()))
}
