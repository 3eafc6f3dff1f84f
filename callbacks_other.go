//go:build !((darwin || freebsd || linux || windows) && !android && (amd64 || arm64))

package vkcore

import "unsafe"

// Callbacks cannot be built on this platform; every constructor returns a
// null function pointer.

func NewAllocationFunction(fn func(userData unsafe.Pointer, size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer) AllocationFunction {
	return 0
}

func NewReallocationFunction(fn func(userData, original unsafe.Pointer, size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer) ReallocationFunction {
	return 0
}

func NewFreeFunction(fn func(userData, memory unsafe.Pointer)) FreeFunction {
	return 0
}

func NewInternalAllocationNotification(fn func(userData unsafe.Pointer, size uintptr, allocationType InternalAllocationType, scope SystemAllocationScope)) InternalAllocationNotification {
	return 0
}

func NewInternalFreeNotification(fn func(userData unsafe.Pointer, size uintptr, allocationType InternalAllocationType, scope SystemAllocationScope)) InternalFreeNotification {
	return 0
}

func NewDebugReportCallback(fn func(report DebugReport) bool) DebugReportCallbackFunction {
	return 0
}
