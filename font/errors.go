package font

import (
	"errors"
	"fmt"
)

// Errors returned when parsing faces.
var (
	ErrNotAFont   = errors.New("font: data is not a font or font collection")
	ErrFaceIndex  = errors.New("font: face index out of range")
	ErrNoFamily   = errors.New("font: face has no family name")
	ErrUnitsPerEm = errors.New("font: face has invalid units per em")
)

// LoadError is an error which occurred while loading the file backing a face.
type LoadError struct {
	Path  string
	Index uint32
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("font: cannot load face %d of %q: %v", e.Index, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
