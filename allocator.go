package vkcore

import "unsafe"

// Host allocation callback pointers. Values are C-callable function
// addresses, built with NewAllocationFunction and friends or obtained
// from C code.
type (
	AllocationFunction             uintptr
	ReallocationFunction           uintptr
	FreeFunction                   uintptr
	InternalAllocationNotification uintptr
	InternalFreeNotification       uintptr
)

// AllocationCallbacks routes the driver's host allocations through the
// application. Every create and destroy method accepts one; nil selects the
// driver's own allocator. The table and PUserData must outlive every object
// created with it, and memory returned by PfnAllocation must not be Go
// managed.
type AllocationCallbacks struct {
	PUserData             unsafe.Pointer
	PfnAllocation         AllocationFunction
	PfnReallocation       ReallocationFunction
	PfnFree               FreeFunction
	PfnInternalAllocation InternalAllocationNotification
	PfnInternalFree       InternalFreeNotification
}
