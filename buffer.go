package vkcore

import "unsafe"

type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 BufferCreateFlags
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

func NewBufferCreateInfo() BufferCreateInfo {
	return BufferCreateInfo{SType: STRUCTURE_TYPE_BUFFER_CREATE_INFO}
}

func (info *BufferCreateInfo) SetQueueFamilyIndices(indices []uint32) {
	info.QueueFamilyIndexCount = lenU32(indices)
	info.PQueueFamilyIndices = firstOrNil(indices)
}

type BufferViewCreateInfo struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  BufferViewCreateFlags
	Buffer Buffer
	Format Format
	Offset DeviceSize
	Range  DeviceSize
}

func NewBufferViewCreateInfo() BufferViewCreateInfo {
	return BufferViewCreateInfo{SType: STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO}
}

func (device Device) CreateBuffer(createInfo *BufferCreateInfo, allocator *AllocationCallbacks) (Buffer, error) {
	var buffer Buffer
	result := commands.CreateBuffer(device, createInfo, allocator, &buffer)
	if result != SUCCESS {
		return 0, result
	}
	return buffer, nil
}

func (device Device) DestroyBuffer(buffer Buffer, allocator *AllocationCallbacks) {
	commands.DestroyBuffer(device, buffer, allocator)
}

func (device Device) CreateBufferView(createInfo *BufferViewCreateInfo, allocator *AllocationCallbacks) (BufferView, error) {
	var view BufferView
	result := commands.CreateBufferView(device, createInfo, allocator, &view)
	if result != SUCCESS {
		return 0, result
	}
	return view, nil
}

func (device Device) DestroyBufferView(view BufferView, allocator *AllocationCallbacks) {
	commands.DestroyBufferView(device, view, allocator)
}
