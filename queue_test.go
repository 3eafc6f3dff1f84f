package vkcore

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueSubmit(t *testing.T) {
	cmds := withCommands(t)
	var submits []SubmitInfo
	var gotFence Fence
	cmds.QueueSubmit = func(_ Queue, count uint32, infos *SubmitInfo, fence Fence) Result {
		submits = append([]SubmitInfo(nil), unsafe.Slice(infos, count)...)
		gotFence = fence
		return SUCCESS
	}
	cmds.QueueWaitIdle = func(Queue) Result { return ERROR_DEVICE_LOST }

	waits := []Semaphore{1}
	stages := []PipelineStageFlags{PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT}
	buffers := []CommandBuffer{0x40}
	signals := []Semaphore{2}

	submit := NewSubmitInfo()
	submit.SetWaitSemaphores(waits, stages)
	submit.SetCommandBuffers(buffers)
	submit.SetSignalSemaphores(signals)

	queue := Queue(3)
	assert.Equal(t, SUCCESS, queue.Submit([]SubmitInfo{submit}, Fence(9)))
	require.Len(t, submits, 1)
	assert.Equal(t, Fence(9), gotFence)
	assert.EqualValues(t, 1, submits[0].WaitSemaphoreCount)
	assert.Equal(t, PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT, *submits[0].PWaitDstStageMask)
	assert.Equal(t, CommandBuffer(0x40), *submits[0].PCommandBuffers)
	assert.Equal(t, Semaphore(2), *submits[0].PSignalSemaphores)

	assert.Equal(t, ERROR_DEVICE_LOST, queue.WaitIdle())
}

func TestQueueSubmitEmpty(t *testing.T) {
	cmds := withCommands(t)
	cmds.QueueSubmit = func(_ Queue, count uint32, infos *SubmitInfo, fence Fence) Result {
		assert.Zero(t, count)
		assert.Nil(t, infos)
		assert.True(t, fence.IsNull())
		return SUCCESS
	}

	assert.Equal(t, SUCCESS, Queue(1).Submit(nil, 0))
}

func TestQueueBindSparse(t *testing.T) {
	cmds := withCommands(t)
	var got []SparseMemoryBind
	cmds.QueueBindSparse = func(_ Queue, count uint32, infos *BindSparseInfo, _ Fence) Result {
		require.EqualValues(t, 1, count)
		buffer := *infos.PBufferBinds
		got = append([]SparseMemoryBind(nil), unsafe.Slice(buffer.PBinds, buffer.BindCount)...)
		return SUCCESS
	}

	binds := []SparseMemoryBind{{ResourceOffset: 0, Size: 65536, Memory: 4}, {ResourceOffset: 65536, Size: 65536, Memory: 5}}
	info := NewBindSparseInfo()
	info.SetBufferBinds([]SparseBufferMemoryBindInfo{{Buffer: 8, BindCount: lenU32(binds), PBinds: &binds[0]}})

	assert.Equal(t, SUCCESS, Queue(1).BindSparse([]BindSparseInfo{info}, 0))
	assert.Equal(t, binds, got)
}

func TestImageSparseMemoryRequirements(t *testing.T) {
	cmds := withCommands(t)
	reqs := []SparseImageMemoryRequirements{
		{ImageMipTailFirstLod: 3, ImageMipTailSize: 65536},
		{ImageMipTailFirstLod: 1},
	}
	cmds.GetImageSparseMemoryRequirements = func(_ Device, _ Image, count *uint32, out *SparseImageMemoryRequirements) {
		fillFrom(reqs, count, out)
	}

	device := Device(1)
	assert.EqualValues(t, 2, device.CountImageSparseMemoryRequirements(Image(1)))
	assert.Equal(t, reqs, device.GetAllImageSparseMemoryRequirements(Image(1)))
	assert.Equal(t, reqs[:1], device.GetImageSparseMemoryRequirements(Image(1), 1))
}

func TestGetDeviceQueue(t *testing.T) {
	cmds := withCommands(t)
	cmds.GetDeviceQueue = func(_ Device, family, index uint32, out *Queue) {
		*out = Queue(family<<4 | index)
	}

	assert.Equal(t, Queue(0x21), Device(1).GetQueue(2, 1))
}
