package vkcore

import "unsafe"

// CString returns a NUL-terminated copy of s in Go memory. The pointer must
// stay reachable until the Vulkan call that reads it returns.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CStringArray returns a pointer to an array of NUL-terminated strings, or
// nil when names is empty.
func CStringArray(names []string) **byte {
	if len(names) == 0 {
		return nil
	}
	ptrs := make([]*byte, len(names))
	for i, name := range names {
		ptrs[i] = CString(name)
	}
	return &ptrs[0]
}

// GoString copies a NUL-terminated C string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func fixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func firstOrNil[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func bytesPointer(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func lenU32[T any](s []T) uint32 {
	return uint32(len(s))
}
