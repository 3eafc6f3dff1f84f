//go:build android || !(darwin || freebsd || linux || windows)

package loader

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

func DefaultNames() []string {
	return nil
}

func openLibrary(name string) (uintptr, error) {
	return 0, errors.Newf("dynamic loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, errors.Newf("dynamic loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}

func closeLibrary(handle uintptr) error {
	return nil
}
