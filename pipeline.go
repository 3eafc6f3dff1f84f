package vkcore

import "unsafe"

type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uintptr
}

type SpecializationInfo struct {
	MapEntryCount uint32
	PMapEntries   *SpecializationMapEntry
	DataSize      uintptr
	PData         unsafe.Pointer
}

type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               PipelineShaderStageCreateFlags
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               *byte
	PSpecializationInfo *SpecializationInfo
}

func NewPipelineShaderStageCreateInfo() PipelineShaderStageCreateInfo {
	return PipelineShaderStageCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO}
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	Flags                           PipelineVertexInputStateCreateFlags
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      *VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    *VertexInputAttributeDescription
}

func NewPipelineVertexInputStateCreateInfo() PipelineVertexInputStateCreateInfo {
	return PipelineVertexInputStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO}
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  PipelineInputAssemblyStateCreateFlags
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

func NewPipelineInputAssemblyStateCreateInfo() PipelineInputAssemblyStateCreateInfo {
	return PipelineInputAssemblyStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO}
}

type PipelineTessellationStateCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              PipelineTessellationStateCreateFlags
	PatchControlPoints uint32
}

func NewPipelineTessellationStateCreateInfo() PipelineTessellationStateCreateInfo {
	return PipelineTessellationStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO}
}

type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         PipelineViewportStateCreateFlags
	ViewportCount uint32
	PViewports    *Viewport
	ScissorCount  uint32
	PScissors     *Rect2D
}

func NewPipelineViewportStateCreateInfo() PipelineViewportStateCreateInfo {
	return PipelineViewportStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO}
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   PipelineRasterizationStateCreateFlags
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

func NewPipelineRasterizationStateCreateInfo() PipelineRasterizationStateCreateInfo {
	return PipelineRasterizationStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO}
}

type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 PipelineMultisampleStateCreateFlags
	RasterizationSamples  SampleCountFlags
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           *SampleMask
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

func NewPipelineMultisampleStateCreateInfo() PipelineMultisampleStateCreateInfo {
	return PipelineMultisampleStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO}
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 PipelineDepthStencilStateCreateFlags
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

func NewPipelineDepthStencilStateCreateInfo() PipelineDepthStencilStateCreateInfo {
	return PipelineDepthStencilStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO}
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           PipelineColorBlendStateCreateFlags
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	PAttachments    *PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

func NewPipelineColorBlendStateCreateInfo() PipelineColorBlendStateCreateInfo {
	return PipelineColorBlendStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO}
}

type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	Flags             PipelineDynamicStateCreateFlags
	DynamicStateCount uint32
	PDynamicStates    *DynamicState
}

func NewPipelineDynamicStateCreateInfo() PipelineDynamicStateCreateInfo {
	return PipelineDynamicStateCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO}
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               PipelineCreateFlags
	StageCount          uint32
	PStages             *PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  *PipelineTessellationStateCreateInfo
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

func NewGraphicsPipelineCreateInfo() GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{SType: STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO}
}

func (info *GraphicsPipelineCreateInfo) SetStages(stages []PipelineShaderStageCreateInfo) {
	info.StageCount = lenU32(stages)
	info.PStages = firstOrNil(stages)
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              PipelineCreateFlags
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

// NewComputePipelineCreateInfo also defaults the nested stage info.
func NewComputePipelineCreateInfo() ComputePipelineCreateInfo {
	return ComputePipelineCreateInfo{
		SType: STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO,
		Stage: NewPipelineShaderStageCreateInfo(),
	}
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  PipelineLayoutCreateFlags
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    *PushConstantRange
}

func NewPipelineLayoutCreateInfo() PipelineLayoutCreateInfo {
	return PipelineLayoutCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO}
}

type PipelineCacheCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           PipelineCacheCreateFlags
	InitialDataSize uintptr
	PInitialData    unsafe.Pointer
}

func NewPipelineCacheCreateInfo() PipelineCacheCreateInfo {
	return PipelineCacheCreateInfo{SType: STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO}
}

// SetInitialData seeds the cache with data previously returned by
// GetPipelineCacheData.
func (info *PipelineCacheCreateInfo) SetInitialData(data []byte) {
	info.InitialDataSize = uintptr(len(data))
	info.PInitialData = bytesPointer(data)
}

// Pipeline cache
func (device Device) CreatePipelineCache(createInfo *PipelineCacheCreateInfo, allocator *AllocationCallbacks) (PipelineCache, error) {
	var cache PipelineCache
	result := commands.CreatePipelineCache(device, createInfo, allocator, &cache)
	if result != SUCCESS {
		return 0, result
	}
	return cache, nil
}

func (device Device) DestroyPipelineCache(cache PipelineCache, allocator *AllocationCallbacks) {
	commands.DestroyPipelineCache(device, cache, allocator)
}

// GetPipelineCacheData returns the serialized cache contents.
func (device Device) GetPipelineCacheData(cache PipelineCache) ([]byte, error) {
	var size uintptr
	if result := commands.GetPipelineCacheData(device, cache, &size, nil); result != SUCCESS {
		return nil, result
	}
	data := make([]byte, size)
	if result := commands.GetPipelineCacheData(device, cache, &size, bytesPointer(data)); result != SUCCESS {
		return nil, result
	}
	return data[:size], nil
}

func (device Device) MergePipelineCaches(dst PipelineCache, src []PipelineCache) Result {
	return commands.MergePipelineCaches(device, dst, lenU32(src), firstOrNil(src))
}

// Pipeline layout
func (device Device) CreatePipelineLayout(createInfo *PipelineLayoutCreateInfo, allocator *AllocationCallbacks) (PipelineLayout, error) {
	var layout PipelineLayout
	result := commands.CreatePipelineLayout(device, createInfo, allocator, &layout)
	if result != SUCCESS {
		return 0, result
	}
	return layout, nil
}

func (device Device) DestroyPipelineLayout(layout PipelineLayout, allocator *AllocationCallbacks) {
	commands.DestroyPipelineLayout(device, layout, allocator)
}

// Pipelines

// CreateGraphicsPipelines creates one pipeline per create info. The status
// applies to the batch: on failure no pipelines are returned.
func (device Device) CreateGraphicsPipelines(cache PipelineCache, createInfos []GraphicsPipelineCreateInfo, allocator *AllocationCallbacks) ([]Pipeline, error) {
	pipelines := make([]Pipeline, len(createInfos))
	result := commands.CreateGraphicsPipelines(device, cache, lenU32(createInfos), firstOrNil(createInfos), allocator, firstOrNil(pipelines))
	if result != SUCCESS {
		return nil, result
	}
	return pipelines, nil
}

func (device Device) CreateComputePipelines(cache PipelineCache, createInfos []ComputePipelineCreateInfo, allocator *AllocationCallbacks) ([]Pipeline, error) {
	pipelines := make([]Pipeline, len(createInfos))
	result := commands.CreateComputePipelines(device, cache, lenU32(createInfos), firstOrNil(createInfos), allocator, firstOrNil(pipelines))
	if result != SUCCESS {
		return nil, result
	}
	return pipelines, nil
}

func (device Device) DestroyPipeline(pipeline Pipeline, allocator *AllocationCallbacks) {
	commands.DestroyPipeline(device, pipeline, allocator)
}
