//go:build !((darwin || freebsd || linux || windows) && !android && (amd64 || arm64))

package vkcore

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

type symbolResolver interface {
	Lookup(name string) (uintptr, error)
}

func registerCommands(lib symbolResolver, entries []commandEntry, log *slog.Logger) ([]string, error) {
	return nil, errors.Newf("vulkan commands cannot be registered on %s/%s", runtime.GOOS, runtime.GOARCH)
}

func registerProc(fn any, addr uintptr) bool {
	return false
}
