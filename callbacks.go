//go:build (darwin || freebsd || linux || windows) && !android && (amd64 || arm64)

package vkcore

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Callback trampolines are never released; the process can create at most a
// few thousand. Build them once and reuse them.
//
// The uintptr arguments a trampoline receives are C pointers owned by the
// Vulkan loader and valid for the duration of the call, so converting them to
// unsafe.Pointer here is sound even though vet cannot prove it.

func NewAllocationFunction(fn func(userData unsafe.Pointer, size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer) AllocationFunction {
	return AllocationFunction(purego.NewCallback(func(userData, size, alignment, scope uintptr) uintptr {
		return uintptr(fn(unsafe.Pointer(userData), size, alignment, SystemAllocationScope(int32(scope))))
	}))
}

func NewReallocationFunction(fn func(userData, original unsafe.Pointer, size, alignment uintptr, scope SystemAllocationScope) unsafe.Pointer) ReallocationFunction {
	return ReallocationFunction(purego.NewCallback(func(userData, original, size, alignment, scope uintptr) uintptr {
		return uintptr(fn(unsafe.Pointer(userData), unsafe.Pointer(original), size, alignment, SystemAllocationScope(int32(scope))))
	}))
}

func NewFreeFunction(fn func(userData, memory unsafe.Pointer)) FreeFunction {
	return FreeFunction(purego.NewCallback(func(userData, memory uintptr) uintptr {
		fn(unsafe.Pointer(userData), unsafe.Pointer(memory))
		return 0
	}))
}

func NewInternalAllocationNotification(fn func(userData unsafe.Pointer, size uintptr, allocationType InternalAllocationType, scope SystemAllocationScope)) InternalAllocationNotification {
	return InternalAllocationNotification(purego.NewCallback(func(userData, size, allocationType, scope uintptr) uintptr {
		fn(unsafe.Pointer(userData), size, InternalAllocationType(int32(allocationType)), SystemAllocationScope(int32(scope)))
		return 0
	}))
}

func NewInternalFreeNotification(fn func(userData unsafe.Pointer, size uintptr, allocationType InternalAllocationType, scope SystemAllocationScope)) InternalFreeNotification {
	return InternalFreeNotification(purego.NewCallback(func(userData, size, allocationType, scope uintptr) uintptr {
		fn(unsafe.Pointer(userData), size, InternalAllocationType(int32(allocationType)), SystemAllocationScope(int32(scope)))
		return 0
	}))
}

// NewDebugReportCallback wraps fn as a PFN_vkDebugReportCallbackEXT.
// Returning true asks the layer to abort the call that triggered the report.
func NewDebugReportCallback(fn func(report DebugReport) bool) DebugReportCallbackFunction {
	return DebugReportCallbackFunction(purego.NewCallback(func(flags, objectType, object, location, messageCode, layerPrefix, message, userData uintptr) uintptr {
		abort := fn(DebugReport{
			Flags:       DebugReportFlagsEXT(uint32(flags)),
			ObjectType:  DebugReportObjectTypeEXT(int32(objectType)),
			Object:      uint64(object),
			Location:    location,
			MessageCode: int32(messageCode),
			LayerPrefix: GoString((*byte)(unsafe.Pointer(layerPrefix))),
			Message:     GoString((*byte)(unsafe.Pointer(message))),
			UserData:    unsafe.Pointer(userData),
		})
		return uintptr(BoolToBool32(abort))
	}))
}
