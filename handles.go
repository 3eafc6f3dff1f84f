package vkcore

import "math"

type (
	Bool32     uint32
	DeviceSize uint64
	SampleMask uint32
	Flags      uint32
)

const (
	FALSE Bool32 = 0
	TRUE  Bool32 = 1
)

// BoolToBool32 converts a Go bool into a Vulkan boolean.
func BoolToBool32(b bool) Bool32 {
	if b {
		return TRUE
	}
	return FALSE
}

func (b Bool32) Bool() bool {
	return b != FALSE
}

// Dispatchable handles are pointer sized.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles are 64-bit regardless of pointer width.
type (
	Semaphore           uint64
	Fence               uint64
	DeviceMemory        uint64
	Buffer              uint64
	Image               uint64
	Event               uint64
	QueryPool           uint64
	BufferView          uint64
	ImageView           uint64
	ShaderModule        uint64
	PipelineCache       uint64
	PipelineLayout      uint64
	RenderPass          uint64
	Pipeline            uint64
	DescriptorSetLayout uint64
	Sampler             uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Framebuffer         uint64
	CommandPool         uint64
)

func (h Instance) IsNull() bool            { return h == 0 }
func (h PhysicalDevice) IsNull() bool      { return h == 0 }
func (h Device) IsNull() bool              { return h == 0 }
func (h Queue) IsNull() bool               { return h == 0 }
func (h CommandBuffer) IsNull() bool       { return h == 0 }
func (h Semaphore) IsNull() bool           { return h == 0 }
func (h Fence) IsNull() bool               { return h == 0 }
func (h DeviceMemory) IsNull() bool        { return h == 0 }
func (h Buffer) IsNull() bool              { return h == 0 }
func (h Image) IsNull() bool               { return h == 0 }
func (h Event) IsNull() bool               { return h == 0 }
func (h QueryPool) IsNull() bool           { return h == 0 }
func (h BufferView) IsNull() bool          { return h == 0 }
func (h ImageView) IsNull() bool           { return h == 0 }
func (h ShaderModule) IsNull() bool        { return h == 0 }
func (h PipelineCache) IsNull() bool       { return h == 0 }
func (h PipelineLayout) IsNull() bool      { return h == 0 }
func (h RenderPass) IsNull() bool          { return h == 0 }
func (h Pipeline) IsNull() bool            { return h == 0 }
func (h DescriptorSetLayout) IsNull() bool { return h == 0 }
func (h Sampler) IsNull() bool             { return h == 0 }
func (h DescriptorPool) IsNull() bool      { return h == 0 }
func (h DescriptorSet) IsNull() bool       { return h == 0 }
func (h Framebuffer) IsNull() bool         { return h == 0 }
func (h CommandPool) IsNull() bool         { return h == 0 }

const (
	LOD_CLAMP_NONE                float32    = 1000.0
	REMAINING_MIP_LEVELS          uint32     = math.MaxUint32
	REMAINING_ARRAY_LAYERS        uint32     = math.MaxUint32
	WHOLE_SIZE                    DeviceSize = math.MaxUint64
	ATTACHMENT_UNUSED             uint32     = math.MaxUint32
	QUEUE_FAMILY_IGNORED          uint32     = math.MaxUint32
	SUBPASS_EXTERNAL              uint32     = math.MaxUint32
	MAX_PHYSICAL_DEVICE_NAME_SIZE            = 256
	UUID_SIZE                                = 16
	MAX_MEMORY_TYPES                         = 32
	MAX_MEMORY_HEAPS                         = 16
	MAX_EXTENSION_NAME_SIZE                  = 256
	MAX_DESCRIPTION_SIZE                     = 256
)

// MakeVersion packs a version number the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

func VersionMajor(version uint32) uint32 { return version >> 22 }
func VersionMinor(version uint32) uint32 { return (version >> 12) & 0x3FF }
func VersionPatch(version uint32) uint32 { return version & 0xFFF }

const API_VERSION_1_0 uint32 = 1 << 22
