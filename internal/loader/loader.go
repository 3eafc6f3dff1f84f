// Package loader opens the system Vulkan loader library and resolves its
// exported symbols without cgo.
package loader

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrLibraryNotFound is returned when none of the candidate library names
// could be opened.
var ErrLibraryNotFound = errors.New("vulkan loader library not found")

type Library struct {
	handle uintptr
	path   string
}

// Open loads the first library in names that the dynamic linker accepts.
// With no names it tries DefaultNames.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		names = DefaultNames()
	}
	if len(names) == 0 {
		return nil, errors.Wrapf(ErrLibraryNotFound, "no candidate names for this platform")
	}

	var lastErr error
	for _, name := range names {
		handle, err := openLibrary(name)
		if err == nil && handle != 0 {
			return &Library{handle: handle, path: name}, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, errors.Wrapf(ErrLibraryNotFound, "tried %s: %v", strings.Join(names, ", "), lastErr)
	}
	return nil, errors.Wrapf(ErrLibraryNotFound, "tried %s", strings.Join(names, ", "))
}

func (l *Library) Path() string {
	return l.path
}

// Lookup returns the address of an exported symbol.
func (l *Library) Lookup(name string) (uintptr, error) {
	addr, err := lookupSymbol(l.handle, name)
	if err != nil {
		return 0, errors.Wrapf(err, "resolve %s in %s", name, l.path)
	}
	if addr == 0 {
		return 0, errors.Newf("symbol %s not found in %s", name, l.path)
	}
	return addr, nil
}

func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	if err != nil {
		return errors.Wrapf(err, "close %s", l.path)
	}
	return nil
}
