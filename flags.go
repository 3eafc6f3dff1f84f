package vkcore

type FormatFeatureFlags uint32

const (
	FORMAT_FEATURE_SAMPLED_IMAGE_BIT               FormatFeatureFlags = 0x1
	FORMAT_FEATURE_STORAGE_IMAGE_BIT               FormatFeatureFlags = 0x2
	FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT        FormatFeatureFlags = 0x4
	FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT        FormatFeatureFlags = 0x8
	FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT        FormatFeatureFlags = 0x10
	FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT FormatFeatureFlags = 0x20
	FORMAT_FEATURE_VERTEX_BUFFER_BIT               FormatFeatureFlags = 0x40
	FORMAT_FEATURE_COLOR_ATTACHMENT_BIT            FormatFeatureFlags = 0x80
	FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT      FormatFeatureFlags = 0x100
	FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT    FormatFeatureFlags = 0x200
	FORMAT_FEATURE_BLIT_SRC_BIT                    FormatFeatureFlags = 0x400
	FORMAT_FEATURE_BLIT_DST_BIT                    FormatFeatureFlags = 0x800
	FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT FormatFeatureFlags = 0x1000
)

type ImageUsageFlags uint32

const (
	IMAGE_USAGE_TRANSFER_SRC_BIT             ImageUsageFlags = 0x1
	IMAGE_USAGE_TRANSFER_DST_BIT             ImageUsageFlags = 0x2
	IMAGE_USAGE_SAMPLED_BIT                  ImageUsageFlags = 0x4
	IMAGE_USAGE_STORAGE_BIT                  ImageUsageFlags = 0x8
	IMAGE_USAGE_COLOR_ATTACHMENT_BIT         ImageUsageFlags = 0x10
	IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT ImageUsageFlags = 0x20
	IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     ImageUsageFlags = 0x40
	IMAGE_USAGE_INPUT_ATTACHMENT_BIT         ImageUsageFlags = 0x80
)

type ImageCreateFlags uint32

const (
	IMAGE_CREATE_SPARSE_BINDING_BIT   ImageCreateFlags = 0x1
	IMAGE_CREATE_SPARSE_RESIDENCY_BIT ImageCreateFlags = 0x2
	IMAGE_CREATE_SPARSE_ALIASED_BIT   ImageCreateFlags = 0x4
	IMAGE_CREATE_MUTABLE_FORMAT_BIT   ImageCreateFlags = 0x8
	IMAGE_CREATE_CUBE_COMPATIBLE_BIT  ImageCreateFlags = 0x10
)

type SampleCountFlags uint32

const (
	SAMPLE_COUNT_1_BIT  SampleCountFlags = 0x1
	SAMPLE_COUNT_2_BIT  SampleCountFlags = 0x2
	SAMPLE_COUNT_4_BIT  SampleCountFlags = 0x4
	SAMPLE_COUNT_8_BIT  SampleCountFlags = 0x8
	SAMPLE_COUNT_16_BIT SampleCountFlags = 0x10
	SAMPLE_COUNT_32_BIT SampleCountFlags = 0x20
	SAMPLE_COUNT_64_BIT SampleCountFlags = 0x40
)

type QueueFlags uint32

const (
	QUEUE_GRAPHICS_BIT       QueueFlags = 0x1
	QUEUE_COMPUTE_BIT        QueueFlags = 0x2
	QUEUE_TRANSFER_BIT       QueueFlags = 0x4
	QUEUE_SPARSE_BINDING_BIT QueueFlags = 0x8
)

type MemoryPropertyFlags uint32

const (
	MEMORY_PROPERTY_DEVICE_LOCAL_BIT     MemoryPropertyFlags = 0x1
	MEMORY_PROPERTY_HOST_VISIBLE_BIT     MemoryPropertyFlags = 0x2
	MEMORY_PROPERTY_HOST_COHERENT_BIT    MemoryPropertyFlags = 0x4
	MEMORY_PROPERTY_HOST_CACHED_BIT      MemoryPropertyFlags = 0x8
	MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT MemoryPropertyFlags = 0x10
)

type MemoryHeapFlags uint32

const (
	MEMORY_HEAP_DEVICE_LOCAL_BIT MemoryHeapFlags = 0x1
)

type PipelineStageFlags uint32

const (
	PIPELINE_STAGE_TOP_OF_PIPE_BIT                    PipelineStageFlags = 0x1
	PIPELINE_STAGE_DRAW_INDIRECT_BIT                  PipelineStageFlags = 0x2
	PIPELINE_STAGE_VERTEX_INPUT_BIT                   PipelineStageFlags = 0x4
	PIPELINE_STAGE_VERTEX_SHADER_BIT                  PipelineStageFlags = 0x8
	PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT    PipelineStageFlags = 0x10
	PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT PipelineStageFlags = 0x20
	PIPELINE_STAGE_GEOMETRY_SHADER_BIT                PipelineStageFlags = 0x40
	PIPELINE_STAGE_FRAGMENT_SHADER_BIT                PipelineStageFlags = 0x80
	PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT           PipelineStageFlags = 0x100
	PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT            PipelineStageFlags = 0x200
	PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT        PipelineStageFlags = 0x400
	PIPELINE_STAGE_COMPUTE_SHADER_BIT                 PipelineStageFlags = 0x800
	PIPELINE_STAGE_TRANSFER_BIT                       PipelineStageFlags = 0x1000
	PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT                 PipelineStageFlags = 0x2000
	PIPELINE_STAGE_HOST_BIT                           PipelineStageFlags = 0x4000
	PIPELINE_STAGE_ALL_GRAPHICS_BIT                   PipelineStageFlags = 0x8000
	PIPELINE_STAGE_ALL_COMMANDS_BIT                   PipelineStageFlags = 0x10000
)

type ImageAspectFlags uint32

const (
	IMAGE_ASPECT_COLOR_BIT    ImageAspectFlags = 0x1
	IMAGE_ASPECT_DEPTH_BIT    ImageAspectFlags = 0x2
	IMAGE_ASPECT_STENCIL_BIT  ImageAspectFlags = 0x4
	IMAGE_ASPECT_METADATA_BIT ImageAspectFlags = 0x8
)

type SparseImageFormatFlags uint32

const (
	SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT         SparseImageFormatFlags = 0x1
	SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT       SparseImageFormatFlags = 0x2
	SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT SparseImageFormatFlags = 0x4
)

type SparseMemoryBindFlags uint32

const (
	SPARSE_MEMORY_BIND_METADATA_BIT SparseMemoryBindFlags = 0x1
)

type FenceCreateFlags uint32

const (
	FENCE_CREATE_SIGNALED_BIT FenceCreateFlags = 0x1
)

type QueryPipelineStatisticFlags uint32

const (
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT                    QueryPipelineStatisticFlags = 0x1
	QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT                  QueryPipelineStatisticFlags = 0x2
	QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT                  QueryPipelineStatisticFlags = 0x4
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlags = 0x8
	QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT                 QueryPipelineStatisticFlags = 0x10
	QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT                       QueryPipelineStatisticFlags = 0x20
	QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT                        QueryPipelineStatisticFlags = 0x40
	QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT                QueryPipelineStatisticFlags = 0x80
	QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT        QueryPipelineStatisticFlags = 0x100
	QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT QueryPipelineStatisticFlags = 0x200
	QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT                 QueryPipelineStatisticFlags = 0x400
)

type QueryResultFlags uint32

const (
	QUERY_RESULT_64_BIT                QueryResultFlags = 0x1
	QUERY_RESULT_WAIT_BIT              QueryResultFlags = 0x2
	QUERY_RESULT_WITH_AVAILABILITY_BIT QueryResultFlags = 0x4
	QUERY_RESULT_PARTIAL_BIT           QueryResultFlags = 0x8
)

type BufferCreateFlags uint32

const (
	BUFFER_CREATE_SPARSE_BINDING_BIT   BufferCreateFlags = 0x1
	BUFFER_CREATE_SPARSE_RESIDENCY_BIT BufferCreateFlags = 0x2
	BUFFER_CREATE_SPARSE_ALIASED_BIT   BufferCreateFlags = 0x4
)

type BufferUsageFlags uint32

const (
	BUFFER_USAGE_TRANSFER_SRC_BIT         BufferUsageFlags = 0x1
	BUFFER_USAGE_TRANSFER_DST_BIT         BufferUsageFlags = 0x2
	BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT BufferUsageFlags = 0x4
	BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT BufferUsageFlags = 0x8
	BUFFER_USAGE_UNIFORM_BUFFER_BIT       BufferUsageFlags = 0x10
	BUFFER_USAGE_STORAGE_BUFFER_BIT       BufferUsageFlags = 0x20
	BUFFER_USAGE_INDEX_BUFFER_BIT         BufferUsageFlags = 0x40
	BUFFER_USAGE_VERTEX_BUFFER_BIT        BufferUsageFlags = 0x80
	BUFFER_USAGE_INDIRECT_BUFFER_BIT      BufferUsageFlags = 0x100
)

type PipelineCreateFlags uint32

const (
	PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT PipelineCreateFlags = 0x1
	PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT    PipelineCreateFlags = 0x2
	PIPELINE_CREATE_DERIVATIVE_BIT           PipelineCreateFlags = 0x4
)

type ShaderStageFlags uint32

const (
	SHADER_STAGE_VERTEX_BIT                  ShaderStageFlags = 0x1
	SHADER_STAGE_TESSELLATION_CONTROL_BIT    ShaderStageFlags = 0x2
	SHADER_STAGE_TESSELLATION_EVALUATION_BIT ShaderStageFlags = 0x4
	SHADER_STAGE_GEOMETRY_BIT                ShaderStageFlags = 0x8
	SHADER_STAGE_FRAGMENT_BIT                ShaderStageFlags = 0x10
	SHADER_STAGE_COMPUTE_BIT                 ShaderStageFlags = 0x20
	SHADER_STAGE_ALL_GRAPHICS                ShaderStageFlags = 0x1F
	SHADER_STAGE_ALL                         ShaderStageFlags = 0x7FFFFFFF
)

type CullModeFlags uint32

const (
	CULL_MODE_NONE           CullModeFlags = 0x0
	CULL_MODE_FRONT_BIT      CullModeFlags = 0x1
	CULL_MODE_BACK_BIT       CullModeFlags = 0x2
	CULL_MODE_FRONT_AND_BACK CullModeFlags = 0x3
)

type ColorComponentFlags uint32

const (
	COLOR_COMPONENT_R_BIT ColorComponentFlags = 0x1
	COLOR_COMPONENT_G_BIT ColorComponentFlags = 0x2
	COLOR_COMPONENT_B_BIT ColorComponentFlags = 0x4
	COLOR_COMPONENT_A_BIT ColorComponentFlags = 0x8
)

type DescriptorPoolCreateFlags uint32

const (
	DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT DescriptorPoolCreateFlags = 0x1
)

type AttachmentDescriptionFlags uint32

const (
	ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT AttachmentDescriptionFlags = 0x1
)

type AccessFlags uint32

const (
	ACCESS_INDIRECT_COMMAND_READ_BIT          AccessFlags = 0x1
	ACCESS_INDEX_READ_BIT                     AccessFlags = 0x2
	ACCESS_VERTEX_ATTRIBUTE_READ_BIT          AccessFlags = 0x4
	ACCESS_UNIFORM_READ_BIT                   AccessFlags = 0x8
	ACCESS_INPUT_ATTACHMENT_READ_BIT          AccessFlags = 0x10
	ACCESS_SHADER_READ_BIT                    AccessFlags = 0x20
	ACCESS_SHADER_WRITE_BIT                   AccessFlags = 0x40
	ACCESS_COLOR_ATTACHMENT_READ_BIT          AccessFlags = 0x80
	ACCESS_COLOR_ATTACHMENT_WRITE_BIT         AccessFlags = 0x100
	ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT  AccessFlags = 0x200
	ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT AccessFlags = 0x400
	ACCESS_TRANSFER_READ_BIT                  AccessFlags = 0x800
	ACCESS_TRANSFER_WRITE_BIT                 AccessFlags = 0x1000
	ACCESS_HOST_READ_BIT                      AccessFlags = 0x2000
	ACCESS_HOST_WRITE_BIT                     AccessFlags = 0x4000
	ACCESS_MEMORY_READ_BIT                    AccessFlags = 0x8000
	ACCESS_MEMORY_WRITE_BIT                   AccessFlags = 0x10000
)

type DependencyFlags uint32

const (
	DEPENDENCY_BY_REGION_BIT DependencyFlags = 0x1
)

type CommandPoolCreateFlags uint32

const (
	COMMAND_POOL_CREATE_TRANSIENT_BIT            CommandPoolCreateFlags = 0x1
	COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT CommandPoolCreateFlags = 0x2
)

type CommandPoolResetFlags uint32

const (
	COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT CommandPoolResetFlags = 0x1
)

type CommandBufferUsageFlags uint32

const (
	COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT      CommandBufferUsageFlags = 0x1
	COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT CommandBufferUsageFlags = 0x2
	COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT     CommandBufferUsageFlags = 0x4
)

type QueryControlFlags uint32

const (
	QUERY_CONTROL_PRECISE_BIT QueryControlFlags = 0x1
)

type CommandBufferResetFlags uint32

const (
	COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT CommandBufferResetFlags = 0x1
)

type StencilFaceFlags uint32

const (
	STENCIL_FACE_FRONT_BIT StencilFaceFlags = 0x1
	STENCIL_FACE_BACK_BIT  StencilFaceFlags = 0x2
	STENCIL_FRONT_AND_BACK StencilFaceFlags = 0x3
)

// Reserved for future use; these must be zero.
type (
	InstanceCreateFlags                   Flags
	DeviceCreateFlags                     Flags
	DeviceQueueCreateFlags                Flags
	MemoryMapFlags                        Flags
	SemaphoreCreateFlags                  Flags
	EventCreateFlags                      Flags
	QueryPoolCreateFlags                  Flags
	BufferViewCreateFlags                 Flags
	ImageViewCreateFlags                  Flags
	ShaderModuleCreateFlags               Flags
	PipelineCacheCreateFlags              Flags
	PipelineShaderStageCreateFlags        Flags
	PipelineVertexInputStateCreateFlags   Flags
	PipelineInputAssemblyStateCreateFlags Flags
	PipelineTessellationStateCreateFlags  Flags
	PipelineViewportStateCreateFlags      Flags
	PipelineRasterizationStateCreateFlags Flags
	PipelineMultisampleStateCreateFlags   Flags
	PipelineDepthStencilStateCreateFlags  Flags
	PipelineColorBlendStateCreateFlags    Flags
	PipelineDynamicStateCreateFlags       Flags
	PipelineLayoutCreateFlags             Flags
	SamplerCreateFlags                    Flags
	DescriptorSetLayoutCreateFlags        Flags
	DescriptorPoolResetFlags              Flags
	FramebufferCreateFlags                Flags
	RenderPassCreateFlags                 Flags
	SubpassDescriptionFlags               Flags
)

func (f FormatFeatureFlags) Has(bit FormatFeatureFlags) bool                   { return f&bit == bit }
func (f ImageUsageFlags) Has(bit ImageUsageFlags) bool                         { return f&bit == bit }
func (f ImageCreateFlags) Has(bit ImageCreateFlags) bool                       { return f&bit == bit }
func (f SampleCountFlags) Has(bit SampleCountFlags) bool                       { return f&bit == bit }
func (f QueueFlags) Has(bit QueueFlags) bool                                   { return f&bit == bit }
func (f MemoryPropertyFlags) Has(bit MemoryPropertyFlags) bool                 { return f&bit == bit }
func (f MemoryHeapFlags) Has(bit MemoryHeapFlags) bool                         { return f&bit == bit }
func (f PipelineStageFlags) Has(bit PipelineStageFlags) bool                   { return f&bit == bit }
func (f ImageAspectFlags) Has(bit ImageAspectFlags) bool                       { return f&bit == bit }
func (f SparseImageFormatFlags) Has(bit SparseImageFormatFlags) bool           { return f&bit == bit }
func (f SparseMemoryBindFlags) Has(bit SparseMemoryBindFlags) bool             { return f&bit == bit }
func (f FenceCreateFlags) Has(bit FenceCreateFlags) bool                       { return f&bit == bit }
func (f QueryPipelineStatisticFlags) Has(bit QueryPipelineStatisticFlags) bool { return f&bit == bit }
func (f QueryResultFlags) Has(bit QueryResultFlags) bool                       { return f&bit == bit }
func (f BufferCreateFlags) Has(bit BufferCreateFlags) bool                     { return f&bit == bit }
func (f BufferUsageFlags) Has(bit BufferUsageFlags) bool                       { return f&bit == bit }
func (f PipelineCreateFlags) Has(bit PipelineCreateFlags) bool                 { return f&bit == bit }
func (f ShaderStageFlags) Has(bit ShaderStageFlags) bool                       { return f&bit == bit }
func (f CullModeFlags) Has(bit CullModeFlags) bool                             { return f&bit == bit }
func (f ColorComponentFlags) Has(bit ColorComponentFlags) bool                 { return f&bit == bit }
func (f DescriptorPoolCreateFlags) Has(bit DescriptorPoolCreateFlags) bool     { return f&bit == bit }
func (f AttachmentDescriptionFlags) Has(bit AttachmentDescriptionFlags) bool   { return f&bit == bit }
func (f AccessFlags) Has(bit AccessFlags) bool                                 { return f&bit == bit }
func (f DependencyFlags) Has(bit DependencyFlags) bool                         { return f&bit == bit }
func (f CommandPoolCreateFlags) Has(bit CommandPoolCreateFlags) bool           { return f&bit == bit }
func (f CommandPoolResetFlags) Has(bit CommandPoolResetFlags) bool             { return f&bit == bit }
func (f CommandBufferUsageFlags) Has(bit CommandBufferUsageFlags) bool         { return f&bit == bit }
func (f QueryControlFlags) Has(bit QueryControlFlags) bool                     { return f&bit == bit }
func (f CommandBufferResetFlags) Has(bit CommandBufferResetFlags) bool         { return f&bit == bit }
func (f StencilFaceFlags) Has(bit StencilFaceFlags) bool                       { return f&bit == bit }
