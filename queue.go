package vkcore

import "unsafe"

type SubmitInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *PipelineStageFlags
	CommandBufferCount   uint32
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

func NewSubmitInfo() SubmitInfo {
	return SubmitInfo{SType: STRUCTURE_TYPE_SUBMIT_INFO}
}

// SetWaitSemaphores pairs each semaphore with the stage that waits on it.
// It panics if the slices differ in length.
func (info *SubmitInfo) SetWaitSemaphores(semaphores []Semaphore, stages []PipelineStageFlags) {
	if len(semaphores) != len(stages) {
		panic("vkcore: wait semaphores and stage masks differ in length")
	}
	info.WaitSemaphoreCount = lenU32(semaphores)
	info.PWaitSemaphores = firstOrNil(semaphores)
	info.PWaitDstStageMask = firstOrNil(stages)
}

func (info *SubmitInfo) SetCommandBuffers(buffers []CommandBuffer) {
	info.CommandBufferCount = lenU32(buffers)
	info.PCommandBuffers = firstOrNil(buffers)
}

func (info *SubmitInfo) SetSignalSemaphores(semaphores []Semaphore) {
	info.SignalSemaphoreCount = lenU32(semaphores)
	info.PSignalSemaphores = firstOrNil(semaphores)
}

// Submit queues the batches and signals fence, if not null, once all of
// them complete.
func (queue Queue) Submit(submits []SubmitInfo, fence Fence) Result {
	return commands.QueueSubmit(queue, lenU32(submits), firstOrNil(submits), fence)
}

func (queue Queue) WaitIdle() Result {
	return commands.QueueWaitIdle(queue)
}

func (queue Queue) BindSparse(bindInfos []BindSparseInfo, fence Fence) Result {
	return commands.QueueBindSparse(queue, lenU32(bindInfos), firstOrNil(bindInfos), fence)
}
