// sync.go
package vkcore

import "unsafe"

type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags FenceCreateFlags
}

func NewFenceCreateInfo() FenceCreateInfo {
	return FenceCreateInfo{SType: STRUCTURE_TYPE_FENCE_CREATE_INFO}
}

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags SemaphoreCreateFlags
}

func NewSemaphoreCreateInfo() SemaphoreCreateInfo {
	return SemaphoreCreateInfo{SType: STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO}
}

type EventCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags EventCreateFlags
}

func NewEventCreateInfo() EventCreateInfo {
	return EventCreateInfo{SType: STRUCTURE_TYPE_EVENT_CREATE_INFO}
}

// Fence
func (device Device) CreateFence(createInfo *FenceCreateInfo, allocator *AllocationCallbacks) (Fence, error) {
	var fence Fence
	result := commands.CreateFence(device, createInfo, allocator, &fence)
	if result != SUCCESS {
		return 0, result
	}
	return fence, nil
}

func (device Device) DestroyFence(fence Fence, allocator *AllocationCallbacks) {
	commands.DestroyFence(device, fence, allocator)
}

func (device Device) ResetFences(fences []Fence) Result {
	return commands.ResetFences(device, lenU32(fences), firstOrNil(fences))
}

// GetFenceStatus returns SUCCESS when signaled and NOT_READY when not.
func (device Device) GetFenceStatus(fence Fence) Result {
	return commands.GetFenceStatus(device, fence)
}

// WaitForFences blocks for up to timeout nanoseconds. TIMEOUT is returned
// when the condition was not met in time.
func (device Device) WaitForFences(fences []Fence, waitAll bool, timeout uint64) Result {
	return commands.WaitForFences(device, lenU32(fences), firstOrNil(fences), BoolToBool32(waitAll), timeout)
}

// Semaphore
func (device Device) CreateSemaphore(createInfo *SemaphoreCreateInfo, allocator *AllocationCallbacks) (Semaphore, error) {
	var semaphore Semaphore
	result := commands.CreateSemaphore(device, createInfo, allocator, &semaphore)
	if result != SUCCESS {
		return 0, result
	}
	return semaphore, nil
}

func (device Device) DestroySemaphore(semaphore Semaphore, allocator *AllocationCallbacks) {
	commands.DestroySemaphore(device, semaphore, allocator)
}

// Event
func (device Device) CreateEvent(createInfo *EventCreateInfo, allocator *AllocationCallbacks) (Event, error) {
	var event Event
	result := commands.CreateEvent(device, createInfo, allocator, &event)
	if result != SUCCESS {
		return 0, result
	}
	return event, nil
}

func (device Device) DestroyEvent(event Event, allocator *AllocationCallbacks) {
	commands.DestroyEvent(device, event, allocator)
}

// GetEventStatus returns EVENT_SET or EVENT_RESET on success.
func (device Device) GetEventStatus(event Event) Result {
	return commands.GetEventStatus(device, event)
}

func (device Device) SetEvent(event Event) Result {
	return commands.SetEvent(device, event)
}

func (device Device) ResetEvent(event Event) Result {
	return commands.ResetEvent(device, event)
}
