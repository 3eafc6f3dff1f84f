package vkcore

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapMemoryBytes(t *testing.T) {
	cmds := withCommands(t)
	backing := make([]byte, 64)
	cmds.MapMemory = func(_ Device, _ DeviceMemory, offset, _ DeviceSize, _ MemoryMapFlags, out *unsafe.Pointer) Result {
		*out = unsafe.Pointer(&backing[offset])
		return SUCCESS
	}

	view, err := Device(1).MapMemoryBytes(DeviceMemory(9), 16, 8, 0)
	require.NoError(t, err)
	require.Len(t, view, 8)

	copy(view, "mapped!!")
	assert.Equal(t, "mapped!!", string(backing[16:24]))
}

func TestMapMemoryBytesNeedsSize(t *testing.T) {
	cmds := withCommands(t)
	cmds.MapMemory = func(Device, DeviceMemory, DeviceSize, DeviceSize, MemoryMapFlags, *unsafe.Pointer) Result {
		t.Fatal("driver must not be called for an unsized mapping")
		return SUCCESS
	}

	_, err := Device(1).MapMemoryBytes(DeviceMemory(9), 0, WHOLE_SIZE, 0)
	assert.True(t, errors.Is(err, ErrUnsizedMapping))
}

func TestMapMemoryFailure(t *testing.T) {
	cmds := withCommands(t)
	cmds.MapMemory = func(_ Device, _ DeviceMemory, _, _ DeviceSize, _ MemoryMapFlags, out *unsafe.Pointer) Result {
		var scratch byte
		*out = unsafe.Pointer(&scratch)
		return ERROR_MEMORY_MAP_FAILED
	}

	data, err := Device(1).MapMemory(DeviceMemory(9), 0, WHOLE_SIZE, 0)
	assert.Equal(t, ERROR_MEMORY_MAP_FAILED, err)
	assert.Nil(t, data)
}

func TestAllocateMemory(t *testing.T) {
	cmds := withCommands(t)
	cmds.AllocateMemory = func(_ Device, info *MemoryAllocateInfo, _ *AllocationCallbacks, out *DeviceMemory) Result {
		if info.AllocationSize > 1<<20 {
			*out = 0xffff
			return ERROR_OUT_OF_DEVICE_MEMORY
		}
		*out = DeviceMemory(info.MemoryTypeIndex + 100)
		return SUCCESS
	}

	info := NewMemoryAllocateInfo()
	info.AllocationSize = 4096
	info.MemoryTypeIndex = 2
	memory, err := Device(1).AllocateMemory(&info, nil)
	require.NoError(t, err)
	assert.Equal(t, DeviceMemory(102), memory)

	info.AllocationSize = 1 << 30
	memory, err = Device(1).AllocateMemory(&info, nil)
	assert.Equal(t, ERROR_OUT_OF_DEVICE_MEMORY, err)
	assert.True(t, memory.IsNull())
}

func TestMemoryStatusOperations(t *testing.T) {
	cmds := withCommands(t)
	var flushed []MappedMemoryRange
	cmds.FlushMappedMemoryRanges = func(_ Device, count uint32, ranges *MappedMemoryRange) Result {
		flushed = unsafe.Slice(ranges, count)
		return SUCCESS
	}
	cmds.InvalidateMappedMemoryRanges = func(Device, uint32, *MappedMemoryRange) Result {
		return ERROR_OUT_OF_HOST_MEMORY
	}
	cmds.BindBufferMemory = func(_ Device, _ Buffer, _ DeviceMemory, offset DeviceSize) Result {
		if offset%256 != 0 {
			return ERROR_VALIDATION_FAILED_EXT
		}
		return SUCCESS
	}

	r := NewMappedMemoryRange()
	r.Memory = 5
	r.Size = WHOLE_SIZE
	assert.Equal(t, SUCCESS, Device(1).FlushMappedMemoryRanges([]MappedMemoryRange{r}))
	require.Len(t, flushed, 1)
	assert.Equal(t, DeviceMemory(5), flushed[0].Memory)

	assert.Equal(t, ERROR_OUT_OF_HOST_MEMORY, Device(1).InvalidateMappedMemoryRanges([]MappedMemoryRange{r}))

	assert.Equal(t, SUCCESS, Device(1).BindBufferMemory(Buffer(1), DeviceMemory(5), 512))
	assert.Equal(t, ERROR_VALIDATION_FAILED_EXT, Device(1).BindBufferMemory(Buffer(1), DeviceMemory(5), 4))
}

func TestMemoryRequirements(t *testing.T) {
	cmds := withCommands(t)
	cmds.GetBufferMemoryRequirements = func(_ Device, _ Buffer, out *MemoryRequirements) {
		*out = MemoryRequirements{Size: 1024, Alignment: 256, MemoryTypeBits: 0b1010}
	}
	cmds.GetDeviceMemoryCommitment = func(_ Device, _ DeviceMemory, out *DeviceSize) {
		*out = 4096
	}

	reqs := Device(1).GetBufferMemoryRequirements(Buffer(3))
	assert.EqualValues(t, 1024, reqs.Size)
	assert.EqualValues(t, 256, reqs.Alignment)
	assert.EqualValues(t, 0b1010, reqs.MemoryTypeBits)
	assert.EqualValues(t, 4096, Device(1).GetMemoryCommitment(DeviceMemory(1)))
}
