//go:build windows

package loader

import "syscall"

func DefaultNames() []string {
	return []string{"vulkan-1.dll"}
}

func openLibrary(name string) (uintptr, error) {
	dll, err := syscall.LoadDLL(name)
	if err != nil {
		return 0, err
	}
	return uintptr(dll.Handle), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return syscall.GetProcAddress(syscall.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return syscall.FreeLibrary(syscall.Handle(handle))
}
