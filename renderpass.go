package vkcore

import "unsafe"

type AttachmentDescription struct {
	Flags          AttachmentDescriptionFlags
	Format         Format
	Samples        SampleCountFlags
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	Flags                   SubpassDescriptionFlags
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       *AttachmentReference
	ColorAttachmentCount    uint32
	PColorAttachments       *AttachmentReference
	PResolveAttachments     *AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    *uint32
}

// SetColorAttachments sets the color references. resolve may be nil;
// otherwise it must be as long as color.
func (subpass *SubpassDescription) SetColorAttachments(color, resolve []AttachmentReference) {
	if resolve != nil && len(resolve) != len(color) {
		panic("vkcore: resolve attachments must match color attachments")
	}
	subpass.ColorAttachmentCount = lenU32(color)
	subpass.PColorAttachments = firstOrNil(color)
	subpass.PResolveAttachments = firstOrNil(resolve)
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           RenderPassCreateFlags
	AttachmentCount uint32
	PAttachments    *AttachmentDescription
	SubpassCount    uint32
	PSubpasses      *SubpassDescription
	DependencyCount uint32
	PDependencies   *SubpassDependency
}

func NewRenderPassCreateInfo() RenderPassCreateInfo {
	return RenderPassCreateInfo{SType: STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO}
}

func (info *RenderPassCreateInfo) SetAttachments(attachments []AttachmentDescription) {
	info.AttachmentCount = lenU32(attachments)
	info.PAttachments = firstOrNil(attachments)
}

func (info *RenderPassCreateInfo) SetSubpasses(subpasses []SubpassDescription) {
	info.SubpassCount = lenU32(subpasses)
	info.PSubpasses = firstOrNil(subpasses)
}

func (info *RenderPassCreateInfo) SetDependencies(dependencies []SubpassDependency) {
	info.DependencyCount = lenU32(dependencies)
	info.PDependencies = firstOrNil(dependencies)
}

type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           FramebufferCreateFlags
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    *ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

func NewFramebufferCreateInfo() FramebufferCreateInfo {
	return FramebufferCreateInfo{SType: STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO}
}

func (info *FramebufferCreateInfo) SetAttachments(views []ImageView) {
	info.AttachmentCount = lenU32(views)
	info.PAttachments = firstOrNil(views)
}

type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    *ClearValue
}

func NewRenderPassBeginInfo() RenderPassBeginInfo {
	return RenderPassBeginInfo{SType: STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO}
}

func (info *RenderPassBeginInfo) SetClearValues(values []ClearValue) {
	info.ClearValueCount = lenU32(values)
	info.PClearValues = firstOrNil(values)
}

func (device Device) CreateRenderPass(createInfo *RenderPassCreateInfo, allocator *AllocationCallbacks) (RenderPass, error) {
	var renderPass RenderPass
	result := commands.CreateRenderPass(device, createInfo, allocator, &renderPass)
	if result != SUCCESS {
		return 0, result
	}
	return renderPass, nil
}

func (device Device) DestroyRenderPass(renderPass RenderPass, allocator *AllocationCallbacks) {
	commands.DestroyRenderPass(device, renderPass, allocator)
}

func (device Device) GetRenderAreaGranularity(renderPass RenderPass) Extent2D {
	var granularity Extent2D
	commands.GetRenderAreaGranularity(device, renderPass, &granularity)
	return granularity
}

func (device Device) CreateFramebuffer(createInfo *FramebufferCreateInfo, allocator *AllocationCallbacks) (Framebuffer, error) {
	var framebuffer Framebuffer
	result := commands.CreateFramebuffer(device, createInfo, allocator, &framebuffer)
	if result != SUCCESS {
		return 0, result
	}
	return framebuffer, nil
}

func (device Device) DestroyFramebuffer(framebuffer Framebuffer, allocator *AllocationCallbacks) {
	commands.DestroyFramebuffer(device, framebuffer, allocator)
}
