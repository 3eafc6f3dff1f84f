package vkcore

import "fmt"

// Result is a VkResult status code. Non-negative values are success-like
// statuses and negative values are errors.
type Result int32

const (
	SUCCESS                        Result = 0
	NOT_READY                      Result = 1
	TIMEOUT                        Result = 2
	EVENT_SET                      Result = 3
	EVENT_RESET                    Result = 4
	INCOMPLETE                     Result = 5
	ERROR_OUT_OF_HOST_MEMORY       Result = -1
	ERROR_OUT_OF_DEVICE_MEMORY     Result = -2
	ERROR_INITIALIZATION_FAILED    Result = -3
	ERROR_DEVICE_LOST              Result = -4
	ERROR_MEMORY_MAP_FAILED        Result = -5
	ERROR_LAYER_NOT_PRESENT        Result = -6
	ERROR_EXTENSION_NOT_PRESENT    Result = -7
	ERROR_FEATURE_NOT_PRESENT      Result = -8
	ERROR_INCOMPATIBLE_DRIVER      Result = -9
	ERROR_TOO_MANY_OBJECTS         Result = -10
	ERROR_FORMAT_NOT_SUPPORTED     Result = -11
	ERROR_FRAGMENTED_POOL          Result = -12
	ERROR_SURFACE_LOST_KHR         Result = -1000000000
	ERROR_NATIVE_WINDOW_IN_USE_KHR Result = -1000000001
	SUBOPTIMAL_KHR                 Result = 1000001003
	ERROR_OUT_OF_DATE_KHR          Result = -1000001004
	ERROR_INCOMPATIBLE_DISPLAY_KHR Result = -1000003001
	ERROR_VALIDATION_FAILED_EXT    Result = -1000011001
)

// ResultClass groups statuses by how callers are expected to react to them.
type ResultClass int

const (
	ResultSuccess ResultClass = iota
	ResultInformational
	ResultRecoverable
	ResultFatal
)

func (c ResultClass) String() string {
	switch c {
	case ResultSuccess:
		return "success"
	case ResultInformational:
		return "informational"
	case ResultRecoverable:
		return "recoverable"
	case ResultFatal:
		return "fatal"
	default:
		return fmt.Sprintf("ResultClass(%d)", int(c))
	}
}

func (r Result) Error() string {
	return r.String()
}

func (r Result) String() string {
	switch r {
	case SUCCESS:
		return "Success"
	case NOT_READY:
		return "Not Ready"
	case TIMEOUT:
		return "Timeout"
	case EVENT_SET:
		return "Event Set"
	case EVENT_RESET:
		return "Event Reset"
	case INCOMPLETE:
		return "Incomplete"
	case SUBOPTIMAL_KHR:
		return "Suboptimal KHR"
	case ERROR_OUT_OF_HOST_MEMORY:
		return "Error (Out of Host Memory)"
	case ERROR_OUT_OF_DEVICE_MEMORY:
		return "Error (Out of Device Memory)"
	case ERROR_INITIALIZATION_FAILED:
		return "Error (Initialization Failed)"
	case ERROR_DEVICE_LOST:
		return "Error (Device Lost)"
	case ERROR_MEMORY_MAP_FAILED:
		return "Error (Memory Map Failed)"
	case ERROR_LAYER_NOT_PRESENT:
		return "Error (Layer Not Present)"
	case ERROR_EXTENSION_NOT_PRESENT:
		return "Error (Extension Not Present)"
	case ERROR_FEATURE_NOT_PRESENT:
		return "Error (Feature Not Present)"
	case ERROR_INCOMPATIBLE_DRIVER:
		return "Error (Incompatible Driver)"
	case ERROR_TOO_MANY_OBJECTS:
		return "Error (Too Many Objects)"
	case ERROR_FORMAT_NOT_SUPPORTED:
		return "Error (Format Not Supported)"
	case ERROR_FRAGMENTED_POOL:
		return "Error (Fragmented Pool)"
	case ERROR_SURFACE_LOST_KHR:
		return "Error (Surface Lost KHR)"
	case ERROR_NATIVE_WINDOW_IN_USE_KHR:
		return "Error (Native Window in Use KHR)"
	case ERROR_OUT_OF_DATE_KHR:
		return "Error (Out of Date KHR)"
	case ERROR_INCOMPATIBLE_DISPLAY_KHR:
		return "Error (Incompatible Display KHR)"
	case ERROR_VALIDATION_FAILED_EXT:
		return "Error (Validation Failed EXT)"
	}
	if r < 0 {
		return fmt.Sprintf("Error (Unknown VkResult %d)", int32(r))
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// Err returns nil for SUCCESS and the Result itself otherwise.
func (r Result) Err() error {
	if r == SUCCESS {
		return nil
	}
	return r
}

func (r Result) IsError() bool {
	return r < 0
}

func (r Result) Class() ResultClass {
	switch r {
	case SUCCESS:
		return ResultSuccess
	case ERROR_DEVICE_LOST,
		ERROR_INITIALIZATION_FAILED,
		ERROR_SURFACE_LOST_KHR,
		ERROR_OUT_OF_DATE_KHR,
		ERROR_NATIVE_WINDOW_IN_USE_KHR,
		ERROR_INCOMPATIBLE_DISPLAY_KHR,
		ERROR_VALIDATION_FAILED_EXT:
		return ResultFatal
	}
	if r < 0 {
		return ResultRecoverable
	}
	return ResultInformational
}

type StructureType int32

const (
	STRUCTURE_TYPE_APPLICATION_INFO                          StructureType = 0
	STRUCTURE_TYPE_INSTANCE_CREATE_INFO                      StructureType = 1
	STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO                  StructureType = 2
	STRUCTURE_TYPE_DEVICE_CREATE_INFO                        StructureType = 3
	STRUCTURE_TYPE_SUBMIT_INFO                               StructureType = 4
	STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO                      StructureType = 5
	STRUCTURE_TYPE_MAPPED_MEMORY_RANGE                       StructureType = 6
	STRUCTURE_TYPE_BIND_SPARSE_INFO                          StructureType = 7
	STRUCTURE_TYPE_FENCE_CREATE_INFO                         StructureType = 8
	STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO                     StructureType = 9
	STRUCTURE_TYPE_EVENT_CREATE_INFO                         StructureType = 10
	STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO                    StructureType = 11
	STRUCTURE_TYPE_BUFFER_CREATE_INFO                        StructureType = 12
	STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO                   StructureType = 13
	STRUCTURE_TYPE_IMAGE_CREATE_INFO                         StructureType = 14
	STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO                    StructureType = 15
	STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO                 StructureType = 16
	STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO                StructureType = 17
	STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO         StructureType = 18
	STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO   StructureType = 19
	STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO StructureType = 20
	STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO   StructureType = 21
	STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO       StructureType = 22
	STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO  StructureType = 23
	STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO    StructureType = 24
	STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO  StructureType = 25
	STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO    StructureType = 26
	STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO        StructureType = 27
	STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO             StructureType = 28
	STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO              StructureType = 29
	STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO               StructureType = 30
	STRUCTURE_TYPE_SAMPLER_CREATE_INFO                       StructureType = 31
	STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO         StructureType = 32
	STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO               StructureType = 33
	STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO              StructureType = 34
	STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET                      StructureType = 35
	STRUCTURE_TYPE_COPY_DESCRIPTOR_SET                       StructureType = 36
	STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO                   StructureType = 37
	STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO                   StructureType = 38
	STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO                  StructureType = 39
	STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO              StructureType = 40
	STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO           StructureType = 41
	STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO                 StructureType = 42
	STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO                    StructureType = 43
	STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER                     StructureType = 44
	STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER                      StructureType = 45
	STRUCTURE_TYPE_MEMORY_BARRIER                            StructureType = 46
	STRUCTURE_TYPE_LOADER_INSTANCE_CREATE_INFO               StructureType = 47
	STRUCTURE_TYPE_LOADER_DEVICE_CREATE_INFO                 StructureType = 48

	STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR             StructureType = 1000001000
	STRUCTURE_TYPE_PRESENT_INFO_KHR                      StructureType = 1000001001
	STRUCTURE_TYPE_DISPLAY_MODE_CREATE_INFO_KHR          StructureType = 1000002000
	STRUCTURE_TYPE_DISPLAY_SURFACE_CREATE_INFO_KHR       StructureType = 1000002001
	STRUCTURE_TYPE_DISPLAY_PRESENT_INFO_KHR              StructureType = 1000003000
	STRUCTURE_TYPE_XLIB_SURFACE_CREATE_INFO_KHR          StructureType = 1000004000
	STRUCTURE_TYPE_XCB_SURFACE_CREATE_INFO_KHR           StructureType = 1000005000
	STRUCTURE_TYPE_WAYLAND_SURFACE_CREATE_INFO_KHR       StructureType = 1000006000
	STRUCTURE_TYPE_MIR_SURFACE_CREATE_INFO_KHR           StructureType = 1000007000
	STRUCTURE_TYPE_ANDROID_SURFACE_CREATE_INFO_KHR       StructureType = 1000008000
	STRUCTURE_TYPE_WIN32_SURFACE_CREATE_INFO_KHR         StructureType = 1000009000
	STRUCTURE_TYPE_DEBUG_REPORT_CALLBACK_CREATE_INFO_EXT StructureType = 1000011000
)
