package vkcore

import "unsafe"

type DebugReportCallbackEXT uint64

func (h DebugReportCallbackEXT) IsNull() bool { return h == 0 }

// DebugReportCallbackFunction is a C-callable PFN_vkDebugReportCallbackEXT.
type DebugReportCallbackFunction uintptr

type DebugReportFlagsEXT uint32

const (
	DEBUG_REPORT_INFORMATION_BIT_EXT         DebugReportFlagsEXT = 0x1
	DEBUG_REPORT_WARNING_BIT_EXT             DebugReportFlagsEXT = 0x2
	DEBUG_REPORT_PERFORMANCE_WARNING_BIT_EXT DebugReportFlagsEXT = 0x4
	DEBUG_REPORT_ERROR_BIT_EXT               DebugReportFlagsEXT = 0x8
	DEBUG_REPORT_DEBUG_BIT_EXT               DebugReportFlagsEXT = 0x10
)

func (f DebugReportFlagsEXT) Has(bit DebugReportFlagsEXT) bool { return f&bit == bit }

type DebugReportObjectTypeEXT int32

const (
	DEBUG_REPORT_OBJECT_TYPE_UNKNOWN_EXT               DebugReportObjectTypeEXT = 0
	DEBUG_REPORT_OBJECT_TYPE_INSTANCE_EXT              DebugReportObjectTypeEXT = 1
	DEBUG_REPORT_OBJECT_TYPE_PHYSICAL_DEVICE_EXT       DebugReportObjectTypeEXT = 2
	DEBUG_REPORT_OBJECT_TYPE_DEVICE_EXT                DebugReportObjectTypeEXT = 3
	DEBUG_REPORT_OBJECT_TYPE_QUEUE_EXT                 DebugReportObjectTypeEXT = 4
	DEBUG_REPORT_OBJECT_TYPE_SEMAPHORE_EXT             DebugReportObjectTypeEXT = 5
	DEBUG_REPORT_OBJECT_TYPE_COMMAND_BUFFER_EXT        DebugReportObjectTypeEXT = 6
	DEBUG_REPORT_OBJECT_TYPE_FENCE_EXT                 DebugReportObjectTypeEXT = 7
	DEBUG_REPORT_OBJECT_TYPE_DEVICE_MEMORY_EXT         DebugReportObjectTypeEXT = 8
	DEBUG_REPORT_OBJECT_TYPE_BUFFER_EXT                DebugReportObjectTypeEXT = 9
	DEBUG_REPORT_OBJECT_TYPE_IMAGE_EXT                 DebugReportObjectTypeEXT = 10
	DEBUG_REPORT_OBJECT_TYPE_EVENT_EXT                 DebugReportObjectTypeEXT = 11
	DEBUG_REPORT_OBJECT_TYPE_QUERY_POOL_EXT            DebugReportObjectTypeEXT = 12
	DEBUG_REPORT_OBJECT_TYPE_BUFFER_VIEW_EXT           DebugReportObjectTypeEXT = 13
	DEBUG_REPORT_OBJECT_TYPE_IMAGE_VIEW_EXT            DebugReportObjectTypeEXT = 14
	DEBUG_REPORT_OBJECT_TYPE_SHADER_MODULE_EXT         DebugReportObjectTypeEXT = 15
	DEBUG_REPORT_OBJECT_TYPE_PIPELINE_CACHE_EXT        DebugReportObjectTypeEXT = 16
	DEBUG_REPORT_OBJECT_TYPE_PIPELINE_LAYOUT_EXT       DebugReportObjectTypeEXT = 17
	DEBUG_REPORT_OBJECT_TYPE_RENDER_PASS_EXT           DebugReportObjectTypeEXT = 18
	DEBUG_REPORT_OBJECT_TYPE_PIPELINE_EXT              DebugReportObjectTypeEXT = 19
	DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT_EXT DebugReportObjectTypeEXT = 20
	DEBUG_REPORT_OBJECT_TYPE_SAMPLER_EXT               DebugReportObjectTypeEXT = 21
	DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_POOL_EXT       DebugReportObjectTypeEXT = 22
	DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_SET_EXT        DebugReportObjectTypeEXT = 23
	DEBUG_REPORT_OBJECT_TYPE_FRAMEBUFFER_EXT           DebugReportObjectTypeEXT = 24
	DEBUG_REPORT_OBJECT_TYPE_COMMAND_POOL_EXT          DebugReportObjectTypeEXT = 25
	DEBUG_REPORT_OBJECT_TYPE_SURFACE_KHR_EXT           DebugReportObjectTypeEXT = 26
	DEBUG_REPORT_OBJECT_TYPE_SWAPCHAIN_KHR_EXT         DebugReportObjectTypeEXT = 27
	DEBUG_REPORT_OBJECT_TYPE_DEBUG_REPORT_EXT          DebugReportObjectTypeEXT = 28
)

// DebugReport is one message delivered to a callback built with
// NewDebugReportCallback.
type DebugReport struct {
	Flags       DebugReportFlagsEXT
	ObjectType  DebugReportObjectTypeEXT
	Object      uint64
	Location    uintptr
	MessageCode int32
	LayerPrefix string
	Message     string
	UserData    unsafe.Pointer
}

type DebugReportCallbackCreateInfoEXT struct {
	SType       StructureType
	PNext       unsafe.Pointer
	Flags       DebugReportFlagsEXT
	PfnCallback DebugReportCallbackFunction
	PUserData   unsafe.Pointer
}

func NewDebugReportCallbackCreateInfoEXT() DebugReportCallbackCreateInfoEXT {
	return DebugReportCallbackCreateInfoEXT{SType: STRUCTURE_TYPE_DEBUG_REPORT_CALLBACK_CREATE_INFO_EXT}
}

func (instance Instance) CreateDebugReportCallbackEXT(createInfo *DebugReportCallbackCreateInfoEXT, allocator *AllocationCallbacks) (DebugReportCallbackEXT, error) {
	fn := extensionCommands.CreateDebugReportCallbackEXT
	if fn == nil {
		return 0, ERROR_EXTENSION_NOT_PRESENT
	}
	var callback DebugReportCallbackEXT
	if result := fn(instance, createInfo, allocator, &callback); result != SUCCESS {
		return 0, result
	}
	return callback, nil
}

func (instance Instance) DestroyDebugReportCallbackEXT(callback DebugReportCallbackEXT, allocator *AllocationCallbacks) {
	if fn := extensionCommands.DestroyDebugReportCallbackEXT; fn != nil {
		fn(instance, callback, allocator)
	}
}
