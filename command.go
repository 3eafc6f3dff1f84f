// command.go
package vkcore

import (
	"fmt"
	"unsafe"
)

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

func NewCommandPoolCreateInfo() CommandPoolCreateInfo {
	return CommandPoolCreateInfo{SType: STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO}
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

func NewCommandBufferAllocateInfo() CommandBufferAllocateInfo {
	return CommandBufferAllocateInfo{SType: STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO}
}

type CommandBufferInheritanceInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           QueryControlFlags
	PipelineStatistics   QueryPipelineStatisticFlags
}

func NewCommandBufferInheritanceInfo() CommandBufferInheritanceInfo {
	return CommandBufferInheritanceInfo{SType: STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO}
}

type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandBufferUsageFlags
	PInheritanceInfo *CommandBufferInheritanceInfo
}

func NewCommandBufferBeginInfo() CommandBufferBeginInfo {
	return CommandBufferBeginInfo{SType: STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO}
}

// Copy regions

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

// BufferImageCopy describes a copy between a buffer and an image.
// BufferRowLength and BufferImageHeight of zero mean tightly packed.
type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageResolve struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

// Barriers

type MemoryBarrier struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

func NewMemoryBarrier() MemoryBarrier {
	return MemoryBarrier{SType: STRUCTURE_TYPE_MEMORY_BARRIER}
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

func NewBufferMemoryBarrier() BufferMemoryBarrier {
	return BufferMemoryBarrier{SType: STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER}
}

type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

func NewImageMemoryBarrier() ImageMemoryBarrier {
	return ImageMemoryBarrier{SType: STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER}
}

// Indirect command layouts, as read from the buffer by the indirect draws.

type DrawIndirectCommand struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

type DrawIndexedIndirectCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}

type DispatchIndirectCommand struct {
	X uint32
	Y uint32
	Z uint32
}

// Command Pool
func (device Device) CreateCommandPool(createInfo *CommandPoolCreateInfo, allocator *AllocationCallbacks) (CommandPool, error) {
	var pool CommandPool
	result := commands.CreateCommandPool(device, createInfo, allocator, &pool)
	if result != SUCCESS {
		return 0, result
	}
	return pool, nil
}

func (device Device) DestroyCommandPool(pool CommandPool, allocator *AllocationCallbacks) {
	commands.DestroyCommandPool(device, pool, allocator)
}

func (device Device) ResetCommandPool(pool CommandPool, flags CommandPoolResetFlags) Result {
	return commands.ResetCommandPool(device, pool, flags)
}

// Command Buffer Allocation

// AllocateCommandBuffers returns CommandBufferCount buffers, or nil on failure.
func (device Device) AllocateCommandBuffers(allocateInfo *CommandBufferAllocateInfo) ([]CommandBuffer, error) {
	buffers := make([]CommandBuffer, allocateInfo.CommandBufferCount)
	result := commands.AllocateCommandBuffers(device, allocateInfo, firstOrNil(buffers))
	if result != SUCCESS {
		return nil, result
	}
	return buffers, nil
}

func (device Device) FreeCommandBuffers(pool CommandPool, buffers []CommandBuffer) {
	commands.FreeCommandBuffers(device, pool, lenU32(buffers), firstOrNil(buffers))
}

// Command Buffer Recording
func (cmd CommandBuffer) Begin(beginInfo *CommandBufferBeginInfo) Result {
	return commands.BeginCommandBuffer(cmd, beginInfo)
}

func (cmd CommandBuffer) End() Result {
	return commands.EndCommandBuffer(cmd)
}

func (cmd CommandBuffer) Reset(flags CommandBufferResetFlags) Result {
	return commands.ResetCommandBuffer(cmd, flags)
}

// Pipeline state
func (cmd CommandBuffer) CmdBindPipeline(bindPoint PipelineBindPoint, pipeline Pipeline) {
	commands.CmdBindPipeline(cmd, bindPoint, pipeline)
}

func (cmd CommandBuffer) CmdSetViewport(firstViewport uint32, viewports []Viewport) {
	commands.CmdSetViewport(cmd, firstViewport, lenU32(viewports), firstOrNil(viewports))
}

func (cmd CommandBuffer) CmdSetScissor(firstScissor uint32, scissors []Rect2D) {
	commands.CmdSetScissor(cmd, firstScissor, lenU32(scissors), firstOrNil(scissors))
}

func (cmd CommandBuffer) CmdSetLineWidth(lineWidth float32) {
	commands.CmdSetLineWidth(cmd, lineWidth)
}

func (cmd CommandBuffer) CmdSetDepthBias(constantFactor, clamp, slopeFactor float32) {
	commands.CmdSetDepthBias(cmd, constantFactor, clamp, slopeFactor)
}

func (cmd CommandBuffer) CmdSetBlendConstants(blendConstants [4]float32) {
	commands.CmdSetBlendConstants(cmd, &blendConstants)
}

func (cmd CommandBuffer) CmdSetDepthBounds(minDepthBounds, maxDepthBounds float32) {
	commands.CmdSetDepthBounds(cmd, minDepthBounds, maxDepthBounds)
}

func (cmd CommandBuffer) CmdSetStencilCompareMask(faceMask StencilFaceFlags, compareMask uint32) {
	commands.CmdSetStencilCompareMask(cmd, faceMask, compareMask)
}

func (cmd CommandBuffer) CmdSetStencilWriteMask(faceMask StencilFaceFlags, writeMask uint32) {
	commands.CmdSetStencilWriteMask(cmd, faceMask, writeMask)
}

func (cmd CommandBuffer) CmdSetStencilReference(faceMask StencilFaceFlags, reference uint32) {
	commands.CmdSetStencilReference(cmd, faceMask, reference)
}

// Resource binding
func (cmd CommandBuffer) CmdBindDescriptorSets(
	bindPoint PipelineBindPoint,
	layout PipelineLayout,
	firstSet uint32,
	sets []DescriptorSet,
	dynamicOffsets []uint32,
) {
	commands.CmdBindDescriptorSets(cmd, bindPoint, layout, firstSet,
		lenU32(sets), firstOrNil(sets),
		lenU32(dynamicOffsets), firstOrNil(dynamicOffsets))
}

func (cmd CommandBuffer) CmdBindIndexBuffer(buffer Buffer, offset DeviceSize, indexType IndexType) {
	commands.CmdBindIndexBuffer(cmd, buffer, offset, indexType)
}

// CmdBindVertexBuffers binds buffers[i] at offsets[i] to binding
// firstBinding+i. It panics if the slices differ in length.
func (cmd CommandBuffer) CmdBindVertexBuffers(firstBinding uint32, buffers []Buffer, offsets []DeviceSize) {
	if len(buffers) != len(offsets) {
		panic(fmt.Sprintf("vkcore: CmdBindVertexBuffers: %d buffers but %d offsets", len(buffers), len(offsets)))
	}
	commands.CmdBindVertexBuffers(cmd, firstBinding, lenU32(buffers), firstOrNil(buffers), firstOrNil(offsets))
}

// Draw Commands
func (cmd CommandBuffer) CmdDraw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	commands.CmdDraw(cmd, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (cmd CommandBuffer) CmdDrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	commands.CmdDrawIndexed(cmd, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (cmd CommandBuffer) CmdDrawIndirect(buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	commands.CmdDrawIndirect(cmd, buffer, offset, drawCount, stride)
}

func (cmd CommandBuffer) CmdDrawIndexedIndirect(buffer Buffer, offset DeviceSize, drawCount, stride uint32) {
	commands.CmdDrawIndexedIndirect(cmd, buffer, offset, drawCount, stride)
}

func (cmd CommandBuffer) CmdDispatch(groupCountX, groupCountY, groupCountZ uint32) {
	commands.CmdDispatch(cmd, groupCountX, groupCountY, groupCountZ)
}

func (cmd CommandBuffer) CmdDispatchIndirect(buffer Buffer, offset DeviceSize) {
	commands.CmdDispatchIndirect(cmd, buffer, offset)
}

// Transfer
func (cmd CommandBuffer) CmdCopyBuffer(srcBuffer, dstBuffer Buffer, regions []BufferCopy) {
	commands.CmdCopyBuffer(cmd, srcBuffer, dstBuffer, lenU32(regions), firstOrNil(regions))
}

func (cmd CommandBuffer) CmdCopyImage(srcImage Image, srcLayout ImageLayout, dstImage Image, dstLayout ImageLayout, regions []ImageCopy) {
	commands.CmdCopyImage(cmd, srcImage, srcLayout, dstImage, dstLayout, lenU32(regions), firstOrNil(regions))
}

func (cmd CommandBuffer) CmdBlitImage(srcImage Image, srcLayout ImageLayout, dstImage Image, dstLayout ImageLayout, regions []ImageBlit, filter Filter) {
	commands.CmdBlitImage(cmd, srcImage, srcLayout, dstImage, dstLayout, lenU32(regions), firstOrNil(regions), filter)
}

func (cmd CommandBuffer) CmdCopyBufferToImage(srcBuffer Buffer, dstImage Image, dstLayout ImageLayout, regions []BufferImageCopy) {
	commands.CmdCopyBufferToImage(cmd, srcBuffer, dstImage, dstLayout, lenU32(regions), firstOrNil(regions))
}

func (cmd CommandBuffer) CmdCopyImageToBuffer(srcImage Image, srcLayout ImageLayout, dstBuffer Buffer, regions []BufferImageCopy) {
	commands.CmdCopyImageToBuffer(cmd, srcImage, srcLayout, dstBuffer, lenU32(regions), firstOrNil(regions))
}

// CmdUpdateBuffer writes data inline into the command buffer. The driver
// limits data to 65536 bytes and requires a multiple of 4.
func (cmd CommandBuffer) CmdUpdateBuffer(dstBuffer Buffer, dstOffset DeviceSize, data []byte) {
	commands.CmdUpdateBuffer(cmd, dstBuffer, dstOffset, DeviceSize(len(data)), bytesPointer(data))
}

func (cmd CommandBuffer) CmdFillBuffer(dstBuffer Buffer, dstOffset, size DeviceSize, data uint32) {
	commands.CmdFillBuffer(cmd, dstBuffer, dstOffset, size, data)
}

func (cmd CommandBuffer) CmdResolveImage(srcImage Image, srcLayout ImageLayout, dstImage Image, dstLayout ImageLayout, regions []ImageResolve) {
	commands.CmdResolveImage(cmd, srcImage, srcLayout, dstImage, dstLayout, lenU32(regions), firstOrNil(regions))
}

// Synchronization
func (cmd CommandBuffer) CmdSetEvent(event Event, stageMask PipelineStageFlags) {
	commands.CmdSetEvent(cmd, event, stageMask)
}

func (cmd CommandBuffer) CmdResetEvent(event Event, stageMask PipelineStageFlags) {
	commands.CmdResetEvent(cmd, event, stageMask)
}

func (cmd CommandBuffer) CmdWaitEvents(
	events []Event,
	srcStageMask, dstStageMask PipelineStageFlags,
	memoryBarriers []MemoryBarrier,
	bufferBarriers []BufferMemoryBarrier,
	imageBarriers []ImageMemoryBarrier,
) {
	commands.CmdWaitEvents(cmd, lenU32(events), firstOrNil(events), srcStageMask, dstStageMask,
		lenU32(memoryBarriers), firstOrNil(memoryBarriers),
		lenU32(bufferBarriers), firstOrNil(bufferBarriers),
		lenU32(imageBarriers), firstOrNil(imageBarriers))
}

func (cmd CommandBuffer) CmdPipelineBarrier(
	srcStageMask, dstStageMask PipelineStageFlags,
	dependencyFlags DependencyFlags,
	memoryBarriers []MemoryBarrier,
	bufferBarriers []BufferMemoryBarrier,
	imageBarriers []ImageMemoryBarrier,
) {
	commands.CmdPipelineBarrier(cmd, srcStageMask, dstStageMask, dependencyFlags,
		lenU32(memoryBarriers), firstOrNil(memoryBarriers),
		lenU32(bufferBarriers), firstOrNil(bufferBarriers),
		lenU32(imageBarriers), firstOrNil(imageBarriers))
}

// Queries
func (cmd CommandBuffer) CmdBeginQuery(pool QueryPool, query uint32, flags QueryControlFlags) {
	commands.CmdBeginQuery(cmd, pool, query, flags)
}

func (cmd CommandBuffer) CmdEndQuery(pool QueryPool, query uint32) {
	commands.CmdEndQuery(cmd, pool, query)
}

func (cmd CommandBuffer) CmdResetQueryPool(pool QueryPool, firstQuery, queryCount uint32) {
	commands.CmdResetQueryPool(cmd, pool, firstQuery, queryCount)
}

func (cmd CommandBuffer) CmdWriteTimestamp(stage PipelineStageFlags, pool QueryPool, query uint32) {
	commands.CmdWriteTimestamp(cmd, stage, pool, query)
}

func (cmd CommandBuffer) CmdCopyQueryPoolResults(pool QueryPool, firstQuery, queryCount uint32, dstBuffer Buffer, dstOffset, stride DeviceSize, flags QueryResultFlags) {
	commands.CmdCopyQueryPoolResults(cmd, pool, firstQuery, queryCount, dstBuffer, dstOffset, stride, flags)
}

// CmdPushConstants updates push constant values. offset and len(data) are
// in bytes and must be multiples of 4.
func (cmd CommandBuffer) CmdPushConstants(layout PipelineLayout, stageFlags ShaderStageFlags, offset uint32, data []byte) {
	commands.CmdPushConstants(cmd, layout, stageFlags, offset, lenU32(data), bytesPointer(data))
}

// Render passes
func (cmd CommandBuffer) CmdBeginRenderPass(beginInfo *RenderPassBeginInfo, contents SubpassContents) {
	commands.CmdBeginRenderPass(cmd, beginInfo, contents)
}

func (cmd CommandBuffer) CmdNextSubpass(contents SubpassContents) {
	commands.CmdNextSubpass(cmd, contents)
}

func (cmd CommandBuffer) CmdEndRenderPass() {
	commands.CmdEndRenderPass(cmd)
}

func (cmd CommandBuffer) CmdExecuteCommands(secondary []CommandBuffer) {
	commands.CmdExecuteCommands(cmd, lenU32(secondary), firstOrNil(secondary))
}
