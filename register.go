//go:build (darwin || freebsd || linux || windows) && !android && (amd64 || arm64)

package vkcore

import (
	"github.com/ebitengine/purego"
	"golang.org/x/exp/slog"
)

type symbolResolver interface {
	Lookup(name string) (uintptr, error)
}

func registerCommands(lib symbolResolver, entries []commandEntry, log *slog.Logger) ([]string, error) {
	var missing []string
	for _, entry := range entries {
		addr, err := lib.Lookup(entry.name)
		if err != nil {
			log.Debug("vulkan command unavailable", slog.String("command", entry.name))
			missing = append(missing, entry.name)
			continue
		}
		purego.RegisterFunc(entry.fn, addr)
	}
	return missing, nil
}

func registerProc(fn any, addr uintptr) bool {
	if addr == 0 {
		return false
	}
	purego.RegisterFunc(fn, addr)
	return true
}
