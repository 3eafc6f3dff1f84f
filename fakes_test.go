package vkcore

import (
	"testing"
	"unsafe"
)

// withCommands swaps in empty command tables for the duration of the test
// and returns the live core table for the test to populate.
func withCommands(t *testing.T) *Commands {
	t.Helper()

	loadMu.Lock()
	saved, savedExt := commands, extensionCommands
	commands, extensionCommands = Commands{}, ExtensionCommands{}
	loadMu.Unlock()

	t.Cleanup(func() {
		loadMu.Lock()
		commands, extensionCommands = saved, savedExt
		loadMu.Unlock()
	})
	return &commands
}

// fillFrom copies src into the count-sized array at dst, reporting
// INCOMPLETE when the caller's array is too small.
func fillFrom[T any](src []T, count *uint32, dst *T) Result {
	if dst == nil {
		*count = uint32(len(src))
		return SUCCESS
	}
	n := min(int(*count), len(src))
	copy(unsafe.Slice(dst, *count), src[:n])
	*count = uint32(n)
	if n < len(src) {
		return INCOMPLETE
	}
	return SUCCESS
}

func unsafeStrings(p **byte, n uint32) []string {
	out := make([]string, n)
	for i, s := range unsafe.Slice(p, n) {
		out[i] = GoString(s)
	}
	return out
}
