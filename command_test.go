package vkcore

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateCommandBuffers(t *testing.T) {
	cmds := withCommands(t)
	cmds.AllocateCommandBuffers = func(_ Device, info *CommandBufferAllocateInfo, out *CommandBuffer) Result {
		if info.CommandPool.IsNull() {
			return ERROR_OUT_OF_DEVICE_MEMORY
		}
		buffers := unsafe.Slice(out, info.CommandBufferCount)
		for i := range buffers {
			buffers[i] = CommandBuffer(0x100 + i)
		}
		return SUCCESS
	}
	var freed []CommandBuffer
	cmds.FreeCommandBuffers = func(_ Device, _ CommandPool, count uint32, buffers *CommandBuffer) {
		freed = append(freed, unsafe.Slice(buffers, count)...)
	}

	info := NewCommandBufferAllocateInfo()
	info.CommandPool = 3
	info.Level = COMMAND_BUFFER_LEVEL_PRIMARY
	info.CommandBufferCount = 3

	buffers, err := Device(1).AllocateCommandBuffers(&info)
	require.NoError(t, err)
	assert.Equal(t, []CommandBuffer{0x100, 0x101, 0x102}, buffers)

	Device(1).FreeCommandBuffers(info.CommandPool, buffers)
	assert.Equal(t, buffers, freed)

	info.CommandPool = 0
	buffers, err = Device(1).AllocateCommandBuffers(&info)
	assert.Equal(t, ERROR_OUT_OF_DEVICE_MEMORY, err)
	assert.Nil(t, buffers)
}

func TestRecordingReturnsResult(t *testing.T) {
	cmds := withCommands(t)
	var usage CommandBufferUsageFlags
	cmds.BeginCommandBuffer = func(_ CommandBuffer, info *CommandBufferBeginInfo) Result {
		usage = info.Flags
		return SUCCESS
	}
	cmds.EndCommandBuffer = func(CommandBuffer) Result { return ERROR_OUT_OF_DEVICE_MEMORY }
	cmds.ResetCommandBuffer = func(CommandBuffer, CommandBufferResetFlags) Result { return SUCCESS }

	begin := NewCommandBufferBeginInfo()
	begin.Flags = COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT

	cmd := CommandBuffer(8)
	assert.Equal(t, SUCCESS, cmd.Begin(&begin))
	assert.Equal(t, COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT, usage)
	assert.Equal(t, ERROR_OUT_OF_DEVICE_MEMORY, cmd.End())
	assert.Equal(t, SUCCESS, cmd.Reset(0))
}

func TestCmdBindVertexBuffers(t *testing.T) {
	cmds := withCommands(t)
	var gotFirst, gotCount uint32
	var gotBuffers []Buffer
	var gotOffsets []DeviceSize
	cmds.CmdBindVertexBuffers = func(_ CommandBuffer, first, count uint32, buffers *Buffer, offsets *DeviceSize) {
		gotFirst, gotCount = first, count
		gotBuffers = append([]Buffer(nil), unsafe.Slice(buffers, count)...)
		gotOffsets = append([]DeviceSize(nil), unsafe.Slice(offsets, count)...)
	}

	cmd := CommandBuffer(1)
	cmd.CmdBindVertexBuffers(2, []Buffer{10, 11}, []DeviceSize{0, 64})
	assert.EqualValues(t, 2, gotFirst)
	assert.EqualValues(t, 2, gotCount)
	assert.Equal(t, []Buffer{10, 11}, gotBuffers)
	assert.Equal(t, []DeviceSize{0, 64}, gotOffsets)

	gotCount = 99
	assert.Panics(t, func() {
		cmd.CmdBindVertexBuffers(0, []Buffer{10, 11}, []DeviceSize{0})
	})
	assert.EqualValues(t, 99, gotCount, "driver must not be reached on a length mismatch")
}

func TestCmdPushConstantsAndUpdateBuffer(t *testing.T) {
	cmds := withCommands(t)
	var pushed []byte
	var pushOffset uint32
	cmds.CmdPushConstants = func(_ CommandBuffer, _ PipelineLayout, stages ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
		assert.Equal(t, SHADER_STAGE_VERTEX_BIT, stages)
		pushOffset = offset
		pushed = append([]byte(nil), unsafe.Slice((*byte)(values), size)...)
	}
	var updated []byte
	var updateSize DeviceSize
	cmds.CmdUpdateBuffer = func(_ CommandBuffer, _ Buffer, _ DeviceSize, size DeviceSize, data unsafe.Pointer) {
		updateSize = size
		if data != nil {
			updated = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
		}
	}

	cmd := CommandBuffer(1)
	cmd.CmdPushConstants(PipelineLayout(2), SHADER_STAGE_VERTEX_BIT, 16, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.EqualValues(t, 16, pushOffset)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, pushed)

	cmd.CmdUpdateBuffer(Buffer(3), 0, []byte("abcd"))
	assert.EqualValues(t, 4, updateSize)
	assert.Equal(t, "abcd", string(updated))
}

func TestCmdPipelineBarrierCounts(t *testing.T) {
	cmds := withCommands(t)
	var memCount, bufCount, imgCount uint32
	var barrier ImageMemoryBarrier
	cmds.CmdPipelineBarrier = func(_ CommandBuffer, _, _ PipelineStageFlags, _ DependencyFlags,
		mc uint32, mem *MemoryBarrier, bc uint32, buf *BufferMemoryBarrier, ic uint32, img *ImageMemoryBarrier) {
		memCount, bufCount, imgCount = mc, bc, ic
		assert.Nil(t, mem)
		assert.Nil(t, buf)
		barrier = *img
	}

	b := NewImageMemoryBarrier()
	b.OldLayout = IMAGE_LAYOUT_UNDEFINED
	b.NewLayout = IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL
	b.DstAccessMask = ACCESS_TRANSFER_WRITE_BIT
	b.SrcQueueFamilyIndex = QUEUE_FAMILY_IGNORED
	b.DstQueueFamilyIndex = QUEUE_FAMILY_IGNORED
	b.Image = 5
	b.SubresourceRange = ImageSubresourceRange{AspectMask: IMAGE_ASPECT_COLOR_BIT, LevelCount: REMAINING_MIP_LEVELS, LayerCount: 1}

	CommandBuffer(1).CmdPipelineBarrier(PIPELINE_STAGE_TOP_OF_PIPE_BIT, PIPELINE_STAGE_TRANSFER_BIT, 0, nil, nil, []ImageMemoryBarrier{b})
	assert.Zero(t, memCount)
	assert.Zero(t, bufCount)
	assert.EqualValues(t, 1, imgCount)
	assert.Equal(t, b, barrier)
	assert.Equal(t, STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER, barrier.SType)
}

func TestCmdSetBlendConstants(t *testing.T) {
	cmds := withCommands(t)
	var got [4]float32
	cmds.CmdSetBlendConstants = func(_ CommandBuffer, constants *[4]float32) {
		got = *constants
	}

	CommandBuffer(1).CmdSetBlendConstants([4]float32{0.25, 0.5, 0.75, 1})
	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, got)
}

func TestClearValues(t *testing.T) {
	color := ClearColorFloat32(0.1, 0.2, 0.3, 1)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, color.Float32())
	assert.Equal(t, [4]int32{-1, 0, 7, -8}, ClearColorInt32(-1, 0, 7, -8).Int32())

	value := ClearValueColor(color)
	assert.Equal(t, color, value.Color())

	ds := ClearValueDepthStencil(1, 0xff).DepthStencil()
	assert.Equal(t, float32(1), ds.Depth)
	assert.EqualValues(t, 0xff, ds.Stencil)
}

func TestCmdClearColorImage(t *testing.T) {
	cmds := withCommands(t)
	var gotColor ClearColorValue
	var gotRanges []ImageSubresourceRange
	cmds.CmdClearColorImage = func(_ CommandBuffer, _ Image, layout ImageLayout, color *ClearColorValue, count uint32, ranges *ImageSubresourceRange) {
		assert.Equal(t, IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, layout)
		gotColor = *color
		gotRanges = append([]ImageSubresourceRange(nil), unsafe.Slice(ranges, count)...)
	}

	color := ClearColorFloat32(0, 0, 0, 1)
	ranges := []ImageSubresourceRange{{AspectMask: IMAGE_ASPECT_COLOR_BIT, LevelCount: 1, LayerCount: 1}}
	CommandBuffer(1).CmdClearColorImage(Image(2), IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, &color, ranges)
	assert.Equal(t, color, gotColor)
	assert.Equal(t, ranges, gotRanges)
}
