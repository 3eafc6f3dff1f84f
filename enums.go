package vkcore

type SystemAllocationScope int32

const (
	SYSTEM_ALLOCATION_SCOPE_COMMAND  SystemAllocationScope = 0
	SYSTEM_ALLOCATION_SCOPE_OBJECT   SystemAllocationScope = 1
	SYSTEM_ALLOCATION_SCOPE_CACHE    SystemAllocationScope = 2
	SYSTEM_ALLOCATION_SCOPE_DEVICE   SystemAllocationScope = 3
	SYSTEM_ALLOCATION_SCOPE_INSTANCE SystemAllocationScope = 4
)

type InternalAllocationType int32

const (
	INTERNAL_ALLOCATION_TYPE_EXECUTABLE InternalAllocationType = 0
)

type PhysicalDeviceType int32

const (
	PHYSICAL_DEVICE_TYPE_OTHER          PhysicalDeviceType = 0
	PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU PhysicalDeviceType = 1
	PHYSICAL_DEVICE_TYPE_DISCRETE_GPU   PhysicalDeviceType = 2
	PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU    PhysicalDeviceType = 3
	PHYSICAL_DEVICE_TYPE_CPU            PhysicalDeviceType = 4
)

type ImageType int32

const (
	IMAGE_TYPE_1D ImageType = 0
	IMAGE_TYPE_2D ImageType = 1
	IMAGE_TYPE_3D ImageType = 2
)

type ImageTiling int32

const (
	IMAGE_TILING_OPTIMAL ImageTiling = 0
	IMAGE_TILING_LINEAR  ImageTiling = 1
)

type QueryType int32

const (
	QUERY_TYPE_OCCLUSION           QueryType = 0
	QUERY_TYPE_PIPELINE_STATISTICS QueryType = 1
	QUERY_TYPE_TIMESTAMP           QueryType = 2
)

type SharingMode int32

const (
	SHARING_MODE_EXCLUSIVE  SharingMode = 0
	SHARING_MODE_CONCURRENT SharingMode = 1
)

type ImageLayout int32

const (
	IMAGE_LAYOUT_UNDEFINED                        ImageLayout = 0
	IMAGE_LAYOUT_GENERAL                          ImageLayout = 1
	IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         ImageLayout = 2
	IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL ImageLayout = 3
	IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL  ImageLayout = 4
	IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         ImageLayout = 5
	IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL             ImageLayout = 6
	IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL             ImageLayout = 7
	IMAGE_LAYOUT_PREINITIALIZED                   ImageLayout = 8
	IMAGE_LAYOUT_PRESENT_SRC_KHR                  ImageLayout = 1000001002
)

type ImageViewType int32

const (
	IMAGE_VIEW_TYPE_1D         ImageViewType = 0
	IMAGE_VIEW_TYPE_2D         ImageViewType = 1
	IMAGE_VIEW_TYPE_3D         ImageViewType = 2
	IMAGE_VIEW_TYPE_CUBE       ImageViewType = 3
	IMAGE_VIEW_TYPE_1D_ARRAY   ImageViewType = 4
	IMAGE_VIEW_TYPE_2D_ARRAY   ImageViewType = 5
	IMAGE_VIEW_TYPE_CUBE_ARRAY ImageViewType = 6
)

type ComponentSwizzle int32

const (
	COMPONENT_SWIZZLE_IDENTITY ComponentSwizzle = 0
	COMPONENT_SWIZZLE_ZERO     ComponentSwizzle = 1
	COMPONENT_SWIZZLE_ONE      ComponentSwizzle = 2
	COMPONENT_SWIZZLE_R        ComponentSwizzle = 3
	COMPONENT_SWIZZLE_G        ComponentSwizzle = 4
	COMPONENT_SWIZZLE_B        ComponentSwizzle = 5
	COMPONENT_SWIZZLE_A        ComponentSwizzle = 6
)

type VertexInputRate int32

const (
	VERTEX_INPUT_RATE_VERTEX   VertexInputRate = 0
	VERTEX_INPUT_RATE_INSTANCE VertexInputRate = 1
)

type PrimitiveTopology int32

const (
	PRIMITIVE_TOPOLOGY_POINT_LIST                    PrimitiveTopology = 0
	PRIMITIVE_TOPOLOGY_LINE_LIST                     PrimitiveTopology = 1
	PRIMITIVE_TOPOLOGY_LINE_STRIP                    PrimitiveTopology = 2
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST                 PrimitiveTopology = 3
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP                PrimitiveTopology = 4
	PRIMITIVE_TOPOLOGY_TRIANGLE_FAN                  PrimitiveTopology = 5
	PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY      PrimitiveTopology = 6
	PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY     PrimitiveTopology = 7
	PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY  PrimitiveTopology = 8
	PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY PrimitiveTopology = 9
	PRIMITIVE_TOPOLOGY_PATCH_LIST                    PrimitiveTopology = 10
)

type PolygonMode int32

const (
	POLYGON_MODE_FILL  PolygonMode = 0
	POLYGON_MODE_LINE  PolygonMode = 1
	POLYGON_MODE_POINT PolygonMode = 2
)

type FrontFace int32

const (
	FRONT_FACE_COUNTER_CLOCKWISE FrontFace = 0
	FRONT_FACE_CLOCKWISE         FrontFace = 1
)

type CompareOp int32

const (
	COMPARE_OP_NEVER            CompareOp = 0
	COMPARE_OP_LESS             CompareOp = 1
	COMPARE_OP_EQUAL            CompareOp = 2
	COMPARE_OP_LESS_OR_EQUAL    CompareOp = 3
	COMPARE_OP_GREATER          CompareOp = 4
	COMPARE_OP_NOT_EQUAL        CompareOp = 5
	COMPARE_OP_GREATER_OR_EQUAL CompareOp = 6
	COMPARE_OP_ALWAYS           CompareOp = 7
)

type StencilOp int32

const (
	STENCIL_OP_KEEP                StencilOp = 0
	STENCIL_OP_ZERO                StencilOp = 1
	STENCIL_OP_REPLACE             StencilOp = 2
	STENCIL_OP_INCREMENT_AND_CLAMP StencilOp = 3
	STENCIL_OP_DECREMENT_AND_CLAMP StencilOp = 4
	STENCIL_OP_INVERT              StencilOp = 5
	STENCIL_OP_INCREMENT_AND_WRAP  StencilOp = 6
	STENCIL_OP_DECREMENT_AND_WRAP  StencilOp = 7
)

type LogicOp int32

const (
	LOGIC_OP_CLEAR         LogicOp = 0
	LOGIC_OP_AND           LogicOp = 1
	LOGIC_OP_AND_REVERSE   LogicOp = 2
	LOGIC_OP_COPY          LogicOp = 3
	LOGIC_OP_AND_INVERTED  LogicOp = 4
	LOGIC_OP_NO_OP         LogicOp = 5
	LOGIC_OP_XOR           LogicOp = 6
	LOGIC_OP_OR            LogicOp = 7
	LOGIC_OP_NOR           LogicOp = 8
	LOGIC_OP_EQUIVALENT    LogicOp = 9
	LOGIC_OP_INVERT        LogicOp = 10
	LOGIC_OP_OR_REVERSE    LogicOp = 11
	LOGIC_OP_COPY_INVERTED LogicOp = 12
	LOGIC_OP_OR_INVERTED   LogicOp = 13
	LOGIC_OP_NAND          LogicOp = 14
	LOGIC_OP_SET           LogicOp = 15
)

type BlendFactor int32

const (
	BLEND_FACTOR_ZERO                     BlendFactor = 0
	BLEND_FACTOR_ONE                      BlendFactor = 1
	BLEND_FACTOR_SRC_COLOR                BlendFactor = 2
	BLEND_FACTOR_ONE_MINUS_SRC_COLOR      BlendFactor = 3
	BLEND_FACTOR_DST_COLOR                BlendFactor = 4
	BLEND_FACTOR_ONE_MINUS_DST_COLOR      BlendFactor = 5
	BLEND_FACTOR_SRC_ALPHA                BlendFactor = 6
	BLEND_FACTOR_ONE_MINUS_SRC_ALPHA      BlendFactor = 7
	BLEND_FACTOR_DST_ALPHA                BlendFactor = 8
	BLEND_FACTOR_ONE_MINUS_DST_ALPHA      BlendFactor = 9
	BLEND_FACTOR_CONSTANT_COLOR           BlendFactor = 10
	BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR BlendFactor = 11
	BLEND_FACTOR_CONSTANT_ALPHA           BlendFactor = 12
	BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA BlendFactor = 13
	BLEND_FACTOR_SRC_ALPHA_SATURATE       BlendFactor = 14
	BLEND_FACTOR_SRC1_COLOR               BlendFactor = 15
	BLEND_FACTOR_ONE_MINUS_SRC1_COLOR     BlendFactor = 16
	BLEND_FACTOR_SRC1_ALPHA               BlendFactor = 17
	BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA     BlendFactor = 18
)

type BlendOp int32

const (
	BLEND_OP_ADD              BlendOp = 0
	BLEND_OP_SUBTRACT         BlendOp = 1
	BLEND_OP_REVERSE_SUBTRACT BlendOp = 2
	BLEND_OP_MIN              BlendOp = 3
	BLEND_OP_MAX              BlendOp = 4
)

type DynamicState int32

const (
	DYNAMIC_STATE_VIEWPORT             DynamicState = 0
	DYNAMIC_STATE_SCISSOR              DynamicState = 1
	DYNAMIC_STATE_LINE_WIDTH           DynamicState = 2
	DYNAMIC_STATE_DEPTH_BIAS           DynamicState = 3
	DYNAMIC_STATE_BLEND_CONSTANTS      DynamicState = 4
	DYNAMIC_STATE_DEPTH_BOUNDS         DynamicState = 5
	DYNAMIC_STATE_STENCIL_COMPARE_MASK DynamicState = 6
	DYNAMIC_STATE_STENCIL_WRITE_MASK   DynamicState = 7
	DYNAMIC_STATE_STENCIL_REFERENCE    DynamicState = 8
)

type Filter int32

const (
	FILTER_NEAREST Filter = 0
	FILTER_LINEAR  Filter = 1
)

type SamplerMipmapMode int32

const (
	SAMPLER_MIPMAP_MODE_NEAREST SamplerMipmapMode = 0
	SAMPLER_MIPMAP_MODE_LINEAR  SamplerMipmapMode = 1
)

type SamplerAddressMode int32

const (
	SAMPLER_ADDRESS_MODE_REPEAT               SamplerAddressMode = 0
	SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT      SamplerAddressMode = 1
	SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE        SamplerAddressMode = 2
	SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER      SamplerAddressMode = 3
	SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE SamplerAddressMode = 4
)

type BorderColor int32

const (
	BORDER_COLOR_FLOAT_TRANSPARENT_BLACK BorderColor = 0
	BORDER_COLOR_INT_TRANSPARENT_BLACK   BorderColor = 1
	BORDER_COLOR_FLOAT_OPAQUE_BLACK      BorderColor = 2
	BORDER_COLOR_INT_OPAQUE_BLACK        BorderColor = 3
	BORDER_COLOR_FLOAT_OPAQUE_WHITE      BorderColor = 4
	BORDER_COLOR_INT_OPAQUE_WHITE        BorderColor = 5
)

type DescriptorType int32

const (
	DESCRIPTOR_TYPE_SAMPLER                DescriptorType = 0
	DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER DescriptorType = 1
	DESCRIPTOR_TYPE_SAMPLED_IMAGE          DescriptorType = 2
	DESCRIPTOR_TYPE_STORAGE_IMAGE          DescriptorType = 3
	DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER   DescriptorType = 4
	DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER   DescriptorType = 5
	DESCRIPTOR_TYPE_UNIFORM_BUFFER         DescriptorType = 6
	DESCRIPTOR_TYPE_STORAGE_BUFFER         DescriptorType = 7
	DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC DescriptorType = 8
	DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC DescriptorType = 9
	DESCRIPTOR_TYPE_INPUT_ATTACHMENT       DescriptorType = 10
)

type AttachmentLoadOp int32

const (
	ATTACHMENT_LOAD_OP_LOAD      AttachmentLoadOp = 0
	ATTACHMENT_LOAD_OP_CLEAR     AttachmentLoadOp = 1
	ATTACHMENT_LOAD_OP_DONT_CARE AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	ATTACHMENT_STORE_OP_STORE     AttachmentStoreOp = 0
	ATTACHMENT_STORE_OP_DONT_CARE AttachmentStoreOp = 1
)

type PipelineBindPoint int32

const (
	PIPELINE_BIND_POINT_GRAPHICS PipelineBindPoint = 0
	PIPELINE_BIND_POINT_COMPUTE  PipelineBindPoint = 1
)

type CommandBufferLevel int32

const (
	COMMAND_BUFFER_LEVEL_PRIMARY   CommandBufferLevel = 0
	COMMAND_BUFFER_LEVEL_SECONDARY CommandBufferLevel = 1
)

type IndexType int32

const (
	INDEX_TYPE_UINT16 IndexType = 0
	INDEX_TYPE_UINT32 IndexType = 1
)

type SubpassContents int32

const (
	SUBPASS_CONTENTS_INLINE                    SubpassContents = 0
	SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS SubpassContents = 1
)

type PipelineCacheHeaderVersion int32

const (
	PIPELINE_CACHE_HEADER_VERSION_ONE PipelineCacheHeaderVersion = 1
)
