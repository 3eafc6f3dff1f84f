package vkcore

import "unsafe"

// Commands is the table of Vulkan 1.0 entry points. Each field has the C
// signature of the command it is named after, minus the vk prefix.
type Commands struct {
	// Instance level
	CreateInstance                       func(pCreateInfo *InstanceCreateInfo, pAllocator *AllocationCallbacks, pInstance *Instance) Result
	DestroyInstance                      func(instance Instance, pAllocator *AllocationCallbacks)
	EnumeratePhysicalDevices             func(instance Instance, pPhysicalDeviceCount *uint32, pPhysicalDevices *PhysicalDevice) Result
	GetInstanceProcAddr                  func(instance Instance, pName *byte) uintptr
	EnumerateInstanceExtensionProperties func(pLayerName *byte, pPropertyCount *uint32, pProperties *ExtensionProperties) Result
	EnumerateInstanceLayerProperties     func(pPropertyCount *uint32, pProperties *LayerProperties) Result

	// PhysicalDevice level
	GetPhysicalDeviceFeatures                    func(physicalDevice PhysicalDevice, pFeatures *PhysicalDeviceFeatures)
	GetPhysicalDeviceFormatProperties            func(physicalDevice PhysicalDevice, format Format, pFormatProperties *FormatProperties)
	GetPhysicalDeviceImageFormatProperties       func(physicalDevice PhysicalDevice, format Format, imageType ImageType, tiling ImageTiling, usage ImageUsageFlags, flags ImageCreateFlags, pImageFormatProperties *ImageFormatProperties) Result
	GetPhysicalDeviceProperties                  func(physicalDevice PhysicalDevice, pProperties *PhysicalDeviceProperties)
	GetPhysicalDeviceQueueFamilyProperties       func(physicalDevice PhysicalDevice, pQueueFamilyPropertyCount *uint32, pQueueFamilyProperties *QueueFamilyProperties)
	GetPhysicalDeviceMemoryProperties            func(physicalDevice PhysicalDevice, pMemoryProperties *PhysicalDeviceMemoryProperties)
	GetPhysicalDeviceSparseImageFormatProperties func(physicalDevice PhysicalDevice, format Format, imageType ImageType, samples SampleCountFlags, usage ImageUsageFlags, tiling ImageTiling, pPropertyCount *uint32, pProperties *SparseImageFormatProperties)
	CreateDevice                                 func(physicalDevice PhysicalDevice, pCreateInfo *DeviceCreateInfo, pAllocator *AllocationCallbacks, pDevice *Device) Result
	EnumerateDeviceExtensionProperties           func(physicalDevice PhysicalDevice, pLayerName *byte, pPropertyCount *uint32, pProperties *ExtensionProperties) Result
	EnumerateDeviceLayerProperties               func(physicalDevice PhysicalDevice, pPropertyCount *uint32, pProperties *LayerProperties) Result

	// Device level
	GetDeviceProcAddr                func(device Device, pName *byte) uintptr
	DestroyDevice                    func(device Device, pAllocator *AllocationCallbacks)
	GetDeviceQueue                   func(device Device, queueFamilyIndex uint32, queueIndex uint32, pQueue *Queue)
	DeviceWaitIdle                   func(device Device) Result
	AllocateMemory                   func(device Device, pAllocateInfo *MemoryAllocateInfo, pAllocator *AllocationCallbacks, pMemory *DeviceMemory) Result
	FreeMemory                       func(device Device, memory DeviceMemory, pAllocator *AllocationCallbacks)
	MapMemory                        func(device Device, memory DeviceMemory, offset DeviceSize, size DeviceSize, flags MemoryMapFlags, ppData *unsafe.Pointer) Result
	UnmapMemory                      func(device Device, memory DeviceMemory)
	FlushMappedMemoryRanges          func(device Device, memoryRangeCount uint32, pMemoryRanges *MappedMemoryRange) Result
	InvalidateMappedMemoryRanges     func(device Device, memoryRangeCount uint32, pMemoryRanges *MappedMemoryRange) Result
	GetDeviceMemoryCommitment        func(device Device, memory DeviceMemory, pCommittedMemoryInBytes *DeviceSize)
	BindBufferMemory                 func(device Device, buffer Buffer, memory DeviceMemory, memoryOffset DeviceSize) Result
	BindImageMemory                  func(device Device, image Image, memory DeviceMemory, memoryOffset DeviceSize) Result
	GetBufferMemoryRequirements      func(device Device, buffer Buffer, pMemoryRequirements *MemoryRequirements)
	GetImageMemoryRequirements       func(device Device, image Image, pMemoryRequirements *MemoryRequirements)
	GetImageSparseMemoryRequirements func(device Device, image Image, pSparseMemoryRequirementCount *uint32, pSparseMemoryRequirements *SparseImageMemoryRequirements)
	CreateFence                      func(device Device, pCreateInfo *FenceCreateInfo, pAllocator *AllocationCallbacks, pFence *Fence) Result
	DestroyFence                     func(device Device, fence Fence, pAllocator *AllocationCallbacks)
	ResetFences                      func(device Device, fenceCount uint32, pFences *Fence) Result
	GetFenceStatus                   func(device Device, fence Fence) Result
	WaitForFences                    func(device Device, fenceCount uint32, pFences *Fence, waitAll Bool32, timeout uint64) Result
	CreateSemaphore                  func(device Device, pCreateInfo *SemaphoreCreateInfo, pAllocator *AllocationCallbacks, pSemaphore *Semaphore) Result
	DestroySemaphore                 func(device Device, semaphore Semaphore, pAllocator *AllocationCallbacks)
	CreateEvent                      func(device Device, pCreateInfo *EventCreateInfo, pAllocator *AllocationCallbacks, pEvent *Event) Result
	DestroyEvent                     func(device Device, event Event, pAllocator *AllocationCallbacks)
	GetEventStatus                   func(device Device, event Event) Result
	SetEvent                         func(device Device, event Event) Result
	ResetEvent                       func(device Device, event Event) Result
	CreateQueryPool                  func(device Device, pCreateInfo *QueryPoolCreateInfo, pAllocator *AllocationCallbacks, pQueryPool *QueryPool) Result
	DestroyQueryPool                 func(device Device, queryPool QueryPool, pAllocator *AllocationCallbacks)
	GetQueryPoolResults              func(device Device, queryPool QueryPool, firstQuery uint32, queryCount uint32, dataSize uintptr, pData unsafe.Pointer, stride DeviceSize, flags QueryResultFlags) Result
	CreateBuffer                     func(device Device, pCreateInfo *BufferCreateInfo, pAllocator *AllocationCallbacks, pBuffer *Buffer) Result
	DestroyBuffer                    func(device Device, buffer Buffer, pAllocator *AllocationCallbacks)
	CreateBufferView                 func(device Device, pCreateInfo *BufferViewCreateInfo, pAllocator *AllocationCallbacks, pView *BufferView) Result
	DestroyBufferView                func(device Device, bufferView BufferView, pAllocator *AllocationCallbacks)
	CreateImage                      func(device Device, pCreateInfo *ImageCreateInfo, pAllocator *AllocationCallbacks, pImage *Image) Result
	DestroyImage                     func(device Device, image Image, pAllocator *AllocationCallbacks)
	GetImageSubresourceLayout        func(device Device, image Image, pSubresource *ImageSubresource, pLayout *SubresourceLayout)
	CreateImageView                  func(device Device, pCreateInfo *ImageViewCreateInfo, pAllocator *AllocationCallbacks, pView *ImageView) Result
	DestroyImageView                 func(device Device, imageView ImageView, pAllocator *AllocationCallbacks)
	CreateShaderModule               func(device Device, pCreateInfo *ShaderModuleCreateInfo, pAllocator *AllocationCallbacks, pShaderModule *ShaderModule) Result
	DestroyShaderModule              func(device Device, shaderModule ShaderModule, pAllocator *AllocationCallbacks)
	CreatePipelineCache              func(device Device, pCreateInfo *PipelineCacheCreateInfo, pAllocator *AllocationCallbacks, pPipelineCache *PipelineCache) Result
	DestroyPipelineCache             func(device Device, pipelineCache PipelineCache, pAllocator *AllocationCallbacks)
	GetPipelineCacheData             func(device Device, pipelineCache PipelineCache, pDataSize *uintptr, pData unsafe.Pointer) Result
	MergePipelineCaches              func(device Device, dstCache PipelineCache, srcCacheCount uint32, pSrcCaches *PipelineCache) Result
	CreateGraphicsPipelines          func(device Device, pipelineCache PipelineCache, createInfoCount uint32, pCreateInfos *GraphicsPipelineCreateInfo, pAllocator *AllocationCallbacks, pPipelines *Pipeline) Result
	CreateComputePipelines           func(device Device, pipelineCache PipelineCache, createInfoCount uint32, pCreateInfos *ComputePipelineCreateInfo, pAllocator *AllocationCallbacks, pPipelines *Pipeline) Result
	DestroyPipeline                  func(device Device, pipeline Pipeline, pAllocator *AllocationCallbacks)
	CreatePipelineLayout             func(device Device, pCreateInfo *PipelineLayoutCreateInfo, pAllocator *AllocationCallbacks, pPipelineLayout *PipelineLayout) Result
	DestroyPipelineLayout            func(device Device, pipelineLayout PipelineLayout, pAllocator *AllocationCallbacks)
	CreateSampler                    func(device Device, pCreateInfo *SamplerCreateInfo, pAllocator *AllocationCallbacks, pSampler *Sampler) Result
	DestroySampler                   func(device Device, sampler Sampler, pAllocator *AllocationCallbacks)
	CreateDescriptorSetLayout        func(device Device, pCreateInfo *DescriptorSetLayoutCreateInfo, pAllocator *AllocationCallbacks, pSetLayout *DescriptorSetLayout) Result
	DestroyDescriptorSetLayout       func(device Device, descriptorSetLayout DescriptorSetLayout, pAllocator *AllocationCallbacks)
	CreateDescriptorPool             func(device Device, pCreateInfo *DescriptorPoolCreateInfo, pAllocator *AllocationCallbacks, pDescriptorPool *DescriptorPool) Result
	DestroyDescriptorPool            func(device Device, descriptorPool DescriptorPool, pAllocator *AllocationCallbacks)
	ResetDescriptorPool              func(device Device, descriptorPool DescriptorPool, flags DescriptorPoolResetFlags) Result
	AllocateDescriptorSets           func(device Device, pAllocateInfo *DescriptorSetAllocateInfo, pDescriptorSets *DescriptorSet) Result
	FreeDescriptorSets               func(device Device, descriptorPool DescriptorPool, descriptorSetCount uint32, pDescriptorSets *DescriptorSet) Result
	UpdateDescriptorSets             func(device Device, descriptorWriteCount uint32, pDescriptorWrites *WriteDescriptorSet, descriptorCopyCount uint32, pDescriptorCopies *CopyDescriptorSet)
	CreateFramebuffer                func(device Device, pCreateInfo *FramebufferCreateInfo, pAllocator *AllocationCallbacks, pFramebuffer *Framebuffer) Result
	DestroyFramebuffer               func(device Device, framebuffer Framebuffer, pAllocator *AllocationCallbacks)
	CreateRenderPass                 func(device Device, pCreateInfo *RenderPassCreateInfo, pAllocator *AllocationCallbacks, pRenderPass *RenderPass) Result
	DestroyRenderPass                func(device Device, renderPass RenderPass, pAllocator *AllocationCallbacks)
	GetRenderAreaGranularity         func(device Device, renderPass RenderPass, pGranularity *Extent2D)
	CreateCommandPool                func(device Device, pCreateInfo *CommandPoolCreateInfo, pAllocator *AllocationCallbacks, pCommandPool *CommandPool) Result
	DestroyCommandPool               func(device Device, commandPool CommandPool, pAllocator *AllocationCallbacks)
	ResetCommandPool                 func(device Device, commandPool CommandPool, flags CommandPoolResetFlags) Result
	AllocateCommandBuffers           func(device Device, pAllocateInfo *CommandBufferAllocateInfo, pCommandBuffers *CommandBuffer) Result
	FreeCommandBuffers               func(device Device, commandPool CommandPool, commandBufferCount uint32, pCommandBuffers *CommandBuffer)

	// Queue level
	QueueSubmit     func(queue Queue, submitCount uint32, pSubmits *SubmitInfo, fence Fence) Result
	QueueWaitIdle   func(queue Queue) Result
	QueueBindSparse func(queue Queue, bindInfoCount uint32, pBindInfo *BindSparseInfo, fence Fence) Result

	// CommandBuffer level
	BeginCommandBuffer        func(commandBuffer CommandBuffer, pBeginInfo *CommandBufferBeginInfo) Result
	EndCommandBuffer          func(commandBuffer CommandBuffer) Result
	ResetCommandBuffer        func(commandBuffer CommandBuffer, flags CommandBufferResetFlags) Result
	CmdBindPipeline           func(commandBuffer CommandBuffer, pipelineBindPoint PipelineBindPoint, pipeline Pipeline)
	CmdSetViewport            func(commandBuffer CommandBuffer, firstViewport uint32, viewportCount uint32, pViewports *Viewport)
	CmdSetScissor             func(commandBuffer CommandBuffer, firstScissor uint32, scissorCount uint32, pScissors *Rect2D)
	CmdSetLineWidth           func(commandBuffer CommandBuffer, lineWidth float32)
	CmdSetDepthBias           func(commandBuffer CommandBuffer, depthBiasConstantFactor float32, depthBiasClamp float32, depthBiasSlopeFactor float32)
	CmdSetBlendConstants      func(commandBuffer CommandBuffer, blendConstants *[4]float32)
	CmdSetDepthBounds         func(commandBuffer CommandBuffer, minDepthBounds float32, maxDepthBounds float32)
	CmdSetStencilCompareMask  func(commandBuffer CommandBuffer, faceMask StencilFaceFlags, compareMask uint32)
	CmdSetStencilWriteMask    func(commandBuffer CommandBuffer, faceMask StencilFaceFlags, writeMask uint32)
	CmdSetStencilReference    func(commandBuffer CommandBuffer, faceMask StencilFaceFlags, reference uint32)
	CmdBindDescriptorSets     func(commandBuffer CommandBuffer, pipelineBindPoint PipelineBindPoint, layout PipelineLayout, firstSet uint32, descriptorSetCount uint32, pDescriptorSets *DescriptorSet, dynamicOffsetCount uint32, pDynamicOffsets *uint32)
	CmdBindIndexBuffer        func(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize, indexType IndexType)
	CmdBindVertexBuffers      func(commandBuffer CommandBuffer, firstBinding uint32, bindingCount uint32, pBuffers *Buffer, pOffsets *DeviceSize)
	CmdDraw                   func(commandBuffer CommandBuffer, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32)
	CmdDrawIndexed            func(commandBuffer CommandBuffer, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdDrawIndirect           func(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize, drawCount uint32, stride uint32)
	CmdDrawIndexedIndirect    func(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize, drawCount uint32, stride uint32)
	CmdDispatch               func(commandBuffer CommandBuffer, groupCountX uint32, groupCountY uint32, groupCountZ uint32)
	CmdDispatchIndirect       func(commandBuffer CommandBuffer, buffer Buffer, offset DeviceSize)
	CmdCopyBuffer             func(commandBuffer CommandBuffer, srcBuffer Buffer, dstBuffer Buffer, regionCount uint32, pRegions *BufferCopy)
	CmdCopyImage              func(commandBuffer CommandBuffer, srcImage Image, srcImageLayout ImageLayout, dstImage Image, dstImageLayout ImageLayout, regionCount uint32, pRegions *ImageCopy)
	CmdBlitImage              func(commandBuffer CommandBuffer, srcImage Image, srcImageLayout ImageLayout, dstImage Image, dstImageLayout ImageLayout, regionCount uint32, pRegions *ImageBlit, filter Filter)
	CmdCopyBufferToImage      func(commandBuffer CommandBuffer, srcBuffer Buffer, dstImage Image, dstImageLayout ImageLayout, regionCount uint32, pRegions *BufferImageCopy)
	CmdCopyImageToBuffer      func(commandBuffer CommandBuffer, srcImage Image, srcImageLayout ImageLayout, dstBuffer Buffer, regionCount uint32, pRegions *BufferImageCopy)
	CmdUpdateBuffer           func(commandBuffer CommandBuffer, dstBuffer Buffer, dstOffset DeviceSize, dataSize DeviceSize, pData unsafe.Pointer)
	CmdFillBuffer             func(commandBuffer CommandBuffer, dstBuffer Buffer, dstOffset DeviceSize, size DeviceSize, data uint32)
	CmdClearColorImage        func(commandBuffer CommandBuffer, image Image, imageLayout ImageLayout, pColor *ClearColorValue, rangeCount uint32, pRanges *ImageSubresourceRange)
	CmdClearDepthStencilImage func(commandBuffer CommandBuffer, image Image, imageLayout ImageLayout, pDepthStencil *ClearDepthStencilValue, rangeCount uint32, pRanges *ImageSubresourceRange)
	CmdClearAttachments       func(commandBuffer CommandBuffer, attachmentCount uint32, pAttachments *ClearAttachment, rectCount uint32, pRects *ClearRect)
	CmdResolveImage           func(commandBuffer CommandBuffer, srcImage Image, srcImageLayout ImageLayout, dstImage Image, dstImageLayout ImageLayout, regionCount uint32, pRegions *ImageResolve)
	CmdSetEvent               func(commandBuffer CommandBuffer, event Event, stageMask PipelineStageFlags)
	CmdResetEvent             func(commandBuffer CommandBuffer, event Event, stageMask PipelineStageFlags)
	CmdWaitEvents             func(commandBuffer CommandBuffer, eventCount uint32, pEvents *Event, srcStageMask PipelineStageFlags, dstStageMask PipelineStageFlags, memoryBarrierCount uint32, pMemoryBarriers *MemoryBarrier, bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *BufferMemoryBarrier, imageMemoryBarrierCount uint32, pImageMemoryBarriers *ImageMemoryBarrier)
	CmdPipelineBarrier        func(commandBuffer CommandBuffer, srcStageMask PipelineStageFlags, dstStageMask PipelineStageFlags, dependencyFlags DependencyFlags, memoryBarrierCount uint32, pMemoryBarriers *MemoryBarrier, bufferMemoryBarrierCount uint32, pBufferMemoryBarriers *BufferMemoryBarrier, imageMemoryBarrierCount uint32, pImageMemoryBarriers *ImageMemoryBarrier)
	CmdBeginQuery             func(commandBuffer CommandBuffer, queryPool QueryPool, query uint32, flags QueryControlFlags)
	CmdEndQuery               func(commandBuffer CommandBuffer, queryPool QueryPool, query uint32)
	CmdResetQueryPool         func(commandBuffer CommandBuffer, queryPool QueryPool, firstQuery uint32, queryCount uint32)
	CmdWriteTimestamp         func(commandBuffer CommandBuffer, pipelineStage PipelineStageFlags, queryPool QueryPool, query uint32)
	CmdCopyQueryPoolResults   func(commandBuffer CommandBuffer, queryPool QueryPool, firstQuery uint32, queryCount uint32, dstBuffer Buffer, dstOffset DeviceSize, stride DeviceSize, flags QueryResultFlags)
	CmdPushConstants          func(commandBuffer CommandBuffer, layout PipelineLayout, stageFlags ShaderStageFlags, offset uint32, size uint32, pValues unsafe.Pointer)
	CmdBeginRenderPass        func(commandBuffer CommandBuffer, pRenderPassBegin *RenderPassBeginInfo, contents SubpassContents)
	CmdNextSubpass            func(commandBuffer CommandBuffer, contents SubpassContents)
	CmdEndRenderPass          func(commandBuffer CommandBuffer)
	CmdExecuteCommands        func(commandBuffer CommandBuffer, commandBufferCount uint32, pCommandBuffers *CommandBuffer)
}

var commands Commands

// Raw returns a copy of the loaded entry point table for callers that need
// the C ABI directly. Fields are nil until Load succeeds.
func Raw() Commands {
	return commands
}

type commandEntry struct {
	name string
	fn   any
}

func (c *Commands) entries() []commandEntry {
	return []commandEntry{
		{"vkCreateInstance", &c.CreateInstance},
		{"vkDestroyInstance", &c.DestroyInstance},
		{"vkEnumeratePhysicalDevices", &c.EnumeratePhysicalDevices},
		{"vkGetInstanceProcAddr", &c.GetInstanceProcAddr},
		{"vkEnumerateInstanceExtensionProperties", &c.EnumerateInstanceExtensionProperties},
		{"vkEnumerateInstanceLayerProperties", &c.EnumerateInstanceLayerProperties},
		{"vkGetPhysicalDeviceFeatures", &c.GetPhysicalDeviceFeatures},
		{"vkGetPhysicalDeviceFormatProperties", &c.GetPhysicalDeviceFormatProperties},
		{"vkGetPhysicalDeviceImageFormatProperties", &c.GetPhysicalDeviceImageFormatProperties},
		{"vkGetPhysicalDeviceProperties", &c.GetPhysicalDeviceProperties},
		{"vkGetPhysicalDeviceQueueFamilyProperties", &c.GetPhysicalDeviceQueueFamilyProperties},
		{"vkGetPhysicalDeviceMemoryProperties", &c.GetPhysicalDeviceMemoryProperties},
		{"vkGetPhysicalDeviceSparseImageFormatProperties", &c.GetPhysicalDeviceSparseImageFormatProperties},
		{"vkCreateDevice", &c.CreateDevice},
		{"vkEnumerateDeviceExtensionProperties", &c.EnumerateDeviceExtensionProperties},
		{"vkEnumerateDeviceLayerProperties", &c.EnumerateDeviceLayerProperties},
		{"vkGetDeviceProcAddr", &c.GetDeviceProcAddr},
		{"vkDestroyDevice", &c.DestroyDevice},
		{"vkGetDeviceQueue", &c.GetDeviceQueue},
		{"vkDeviceWaitIdle", &c.DeviceWaitIdle},
		{"vkAllocateMemory", &c.AllocateMemory},
		{"vkFreeMemory", &c.FreeMemory},
		{"vkMapMemory", &c.MapMemory},
		{"vkUnmapMemory", &c.UnmapMemory},
		{"vkFlushMappedMemoryRanges", &c.FlushMappedMemoryRanges},
		{"vkInvalidateMappedMemoryRanges", &c.InvalidateMappedMemoryRanges},
		{"vkGetDeviceMemoryCommitment", &c.GetDeviceMemoryCommitment},
		{"vkBindBufferMemory", &c.BindBufferMemory},
		{"vkBindImageMemory", &c.BindImageMemory},
		{"vkGetBufferMemoryRequirements", &c.GetBufferMemoryRequirements},
		{"vkGetImageMemoryRequirements", &c.GetImageMemoryRequirements},
		{"vkGetImageSparseMemoryRequirements", &c.GetImageSparseMemoryRequirements},
		{"vkCreateFence", &c.CreateFence},
		{"vkDestroyFence", &c.DestroyFence},
		{"vkResetFences", &c.ResetFences},
		{"vkGetFenceStatus", &c.GetFenceStatus},
		{"vkWaitForFences", &c.WaitForFences},
		{"vkCreateSemaphore", &c.CreateSemaphore},
		{"vkDestroySemaphore", &c.DestroySemaphore},
		{"vkCreateEvent", &c.CreateEvent},
		{"vkDestroyEvent", &c.DestroyEvent},
		{"vkGetEventStatus", &c.GetEventStatus},
		{"vkSetEvent", &c.SetEvent},
		{"vkResetEvent", &c.ResetEvent},
		{"vkCreateQueryPool", &c.CreateQueryPool},
		{"vkDestroyQueryPool", &c.DestroyQueryPool},
		{"vkGetQueryPoolResults", &c.GetQueryPoolResults},
		{"vkCreateBuffer", &c.CreateBuffer},
		{"vkDestroyBuffer", &c.DestroyBuffer},
		{"vkCreateBufferView", &c.CreateBufferView},
		{"vkDestroyBufferView", &c.DestroyBufferView},
		{"vkCreateImage", &c.CreateImage},
		{"vkDestroyImage", &c.DestroyImage},
		{"vkGetImageSubresourceLayout", &c.GetImageSubresourceLayout},
		{"vkCreateImageView", &c.CreateImageView},
		{"vkDestroyImageView", &c.DestroyImageView},
		{"vkCreateShaderModule", &c.CreateShaderModule},
		{"vkDestroyShaderModule", &c.DestroyShaderModule},
		{"vkCreatePipelineCache", &c.CreatePipelineCache},
		{"vkDestroyPipelineCache", &c.DestroyPipelineCache},
		{"vkGetPipelineCacheData", &c.GetPipelineCacheData},
		{"vkMergePipelineCaches", &c.MergePipelineCaches},
		{"vkCreateGraphicsPipelines", &c.CreateGraphicsPipelines},
		{"vkCreateComputePipelines", &c.CreateComputePipelines},
		{"vkDestroyPipeline", &c.DestroyPipeline},
		{"vkCreatePipelineLayout", &c.CreatePipelineLayout},
		{"vkDestroyPipelineLayout", &c.DestroyPipelineLayout},
		{"vkCreateSampler", &c.CreateSampler},
		{"vkDestroySampler", &c.DestroySampler},
		{"vkCreateDescriptorSetLayout", &c.CreateDescriptorSetLayout},
		{"vkDestroyDescriptorSetLayout", &c.DestroyDescriptorSetLayout},
		{"vkCreateDescriptorPool", &c.CreateDescriptorPool},
		{"vkDestroyDescriptorPool", &c.DestroyDescriptorPool},
		{"vkResetDescriptorPool", &c.ResetDescriptorPool},
		{"vkAllocateDescriptorSets", &c.AllocateDescriptorSets},
		{"vkFreeDescriptorSets", &c.FreeDescriptorSets},
		{"vkUpdateDescriptorSets", &c.UpdateDescriptorSets},
		{"vkCreateFramebuffer", &c.CreateFramebuffer},
		{"vkDestroyFramebuffer", &c.DestroyFramebuffer},
		{"vkCreateRenderPass", &c.CreateRenderPass},
		{"vkDestroyRenderPass", &c.DestroyRenderPass},
		{"vkGetRenderAreaGranularity", &c.GetRenderAreaGranularity},
		{"vkCreateCommandPool", &c.CreateCommandPool},
		{"vkDestroyCommandPool", &c.DestroyCommandPool},
		{"vkResetCommandPool", &c.ResetCommandPool},
		{"vkAllocateCommandBuffers", &c.AllocateCommandBuffers},
		{"vkFreeCommandBuffers", &c.FreeCommandBuffers},
		{"vkQueueSubmit", &c.QueueSubmit},
		{"vkQueueWaitIdle", &c.QueueWaitIdle},
		{"vkQueueBindSparse", &c.QueueBindSparse},
		{"vkBeginCommandBuffer", &c.BeginCommandBuffer},
		{"vkEndCommandBuffer", &c.EndCommandBuffer},
		{"vkResetCommandBuffer", &c.ResetCommandBuffer},
		{"vkCmdBindPipeline", &c.CmdBindPipeline},
		{"vkCmdSetViewport", &c.CmdSetViewport},
		{"vkCmdSetScissor", &c.CmdSetScissor},
		{"vkCmdSetLineWidth", &c.CmdSetLineWidth},
		{"vkCmdSetDepthBias", &c.CmdSetDepthBias},
		{"vkCmdSetBlendConstants", &c.CmdSetBlendConstants},
		{"vkCmdSetDepthBounds", &c.CmdSetDepthBounds},
		{"vkCmdSetStencilCompareMask", &c.CmdSetStencilCompareMask},
		{"vkCmdSetStencilWriteMask", &c.CmdSetStencilWriteMask},
		{"vkCmdSetStencilReference", &c.CmdSetStencilReference},
		{"vkCmdBindDescriptorSets", &c.CmdBindDescriptorSets},
		{"vkCmdBindIndexBuffer", &c.CmdBindIndexBuffer},
		{"vkCmdBindVertexBuffers", &c.CmdBindVertexBuffers},
		{"vkCmdDraw", &c.CmdDraw},
		{"vkCmdDrawIndexed", &c.CmdDrawIndexed},
		{"vkCmdDrawIndirect", &c.CmdDrawIndirect},
		{"vkCmdDrawIndexedIndirect", &c.CmdDrawIndexedIndirect},
		{"vkCmdDispatch", &c.CmdDispatch},
		{"vkCmdDispatchIndirect", &c.CmdDispatchIndirect},
		{"vkCmdCopyBuffer", &c.CmdCopyBuffer},
		{"vkCmdCopyImage", &c.CmdCopyImage},
		{"vkCmdBlitImage", &c.CmdBlitImage},
		{"vkCmdCopyBufferToImage", &c.CmdCopyBufferToImage},
		{"vkCmdCopyImageToBuffer", &c.CmdCopyImageToBuffer},
		{"vkCmdUpdateBuffer", &c.CmdUpdateBuffer},
		{"vkCmdFillBuffer", &c.CmdFillBuffer},
		{"vkCmdClearColorImage", &c.CmdClearColorImage},
		{"vkCmdClearDepthStencilImage", &c.CmdClearDepthStencilImage},
		{"vkCmdClearAttachments", &c.CmdClearAttachments},
		{"vkCmdResolveImage", &c.CmdResolveImage},
		{"vkCmdSetEvent", &c.CmdSetEvent},
		{"vkCmdResetEvent", &c.CmdResetEvent},
		{"vkCmdWaitEvents", &c.CmdWaitEvents},
		{"vkCmdPipelineBarrier", &c.CmdPipelineBarrier},
		{"vkCmdBeginQuery", &c.CmdBeginQuery},
		{"vkCmdEndQuery", &c.CmdEndQuery},
		{"vkCmdResetQueryPool", &c.CmdResetQueryPool},
		{"vkCmdWriteTimestamp", &c.CmdWriteTimestamp},
		{"vkCmdCopyQueryPoolResults", &c.CmdCopyQueryPoolResults},
		{"vkCmdPushConstants", &c.CmdPushConstants},
		{"vkCmdBeginRenderPass", &c.CmdBeginRenderPass},
		{"vkCmdNextSubpass", &c.CmdNextSubpass},
		{"vkCmdEndRenderPass", &c.CmdEndRenderPass},
		{"vkCmdExecuteCommands", &c.CmdExecuteCommands},
	}
}
