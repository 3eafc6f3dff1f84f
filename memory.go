package vkcore

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// ErrUnsizedMapping is returned by MapMemoryBytes when asked to map
// WHOLE_SIZE, since the length of the view would be unknown.
var ErrUnsizedMapping = errors.New("vkcore: byte view of a mapping needs an explicit size")

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

func NewMemoryAllocateInfo() MemoryAllocateInfo {
	return MemoryAllocateInfo{SType: STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO}
}

type MappedMemoryRange struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}

func NewMappedMemoryRange() MappedMemoryRange {
	return MappedMemoryRange{SType: STRUCTURE_TYPE_MAPPED_MEMORY_RANGE}
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

func (device Device) AllocateMemory(allocateInfo *MemoryAllocateInfo, allocator *AllocationCallbacks) (DeviceMemory, error) {
	var memory DeviceMemory
	result := commands.AllocateMemory(device, allocateInfo, allocator, &memory)
	if result != SUCCESS {
		return 0, result
	}
	return memory, nil
}

func (device Device) FreeMemory(memory DeviceMemory, allocator *AllocationCallbacks) {
	commands.FreeMemory(device, memory, allocator)
}

// MapMemory maps a range of host-visible memory and returns the host address.
func (device Device) MapMemory(memory DeviceMemory, offset, size DeviceSize, flags MemoryMapFlags) (unsafe.Pointer, error) {
	var data unsafe.Pointer
	result := commands.MapMemory(device, memory, offset, size, flags, &data)
	if result != SUCCESS {
		return nil, result
	}
	return data, nil
}

// MapMemoryBytes maps size bytes at offset and returns them as a slice. The
// slice is only valid until UnmapMemory.
func (device Device) MapMemoryBytes(memory DeviceMemory, offset, size DeviceSize, flags MemoryMapFlags) ([]byte, error) {
	if size == WHOLE_SIZE {
		return nil, ErrUnsizedMapping
	}
	data, err := device.MapMemory(memory, offset, size, flags)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(data), size), nil
}

func (device Device) UnmapMemory(memory DeviceMemory) {
	commands.UnmapMemory(device, memory)
}

func (device Device) FlushMappedMemoryRanges(ranges []MappedMemoryRange) Result {
	return commands.FlushMappedMemoryRanges(device, lenU32(ranges), firstOrNil(ranges))
}

func (device Device) InvalidateMappedMemoryRanges(ranges []MappedMemoryRange) Result {
	return commands.InvalidateMappedMemoryRanges(device, lenU32(ranges), firstOrNil(ranges))
}

func (device Device) GetMemoryCommitment(memory DeviceMemory) DeviceSize {
	var committed DeviceSize
	commands.GetDeviceMemoryCommitment(device, memory, &committed)
	return committed
}

func (device Device) BindBufferMemory(buffer Buffer, memory DeviceMemory, offset DeviceSize) Result {
	return commands.BindBufferMemory(device, buffer, memory, offset)
}

func (device Device) BindImageMemory(image Image, memory DeviceMemory, offset DeviceSize) Result {
	return commands.BindImageMemory(device, image, memory, offset)
}

func (device Device) GetBufferMemoryRequirements(buffer Buffer) MemoryRequirements {
	var requirements MemoryRequirements
	commands.GetBufferMemoryRequirements(device, buffer, &requirements)
	return requirements
}

func (device Device) GetImageMemoryRequirements(image Image) MemoryRequirements {
	var requirements MemoryRequirements
	commands.GetImageMemoryRequirements(device, image, &requirements)
	return requirements
}
