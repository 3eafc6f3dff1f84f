// surface.go
package vkcore

// SurfaceKHR is created by window-system code (SDL, GLFW, platform
// surface extensions) and handed to this package as a raw handle.
type SurfaceKHR uint64

func (h SurfaceKHR) IsNull() bool { return h == 0 }

type ColorSpaceKHR int32

const (
	COLOR_SPACE_SRGB_NONLINEAR_KHR ColorSpaceKHR = 0
)

type PresentModeKHR int32

const (
	PRESENT_MODE_IMMEDIATE_KHR    PresentModeKHR = 0
	PRESENT_MODE_MAILBOX_KHR      PresentModeKHR = 1
	PRESENT_MODE_FIFO_KHR         PresentModeKHR = 2
	PRESENT_MODE_FIFO_RELAXED_KHR PresentModeKHR = 3
)

type SurfaceTransformFlagsKHR uint32

const (
	SURFACE_TRANSFORM_IDENTITY_BIT_KHR                     SurfaceTransformFlagsKHR = 0x1
	SURFACE_TRANSFORM_ROTATE_90_BIT_KHR                    SurfaceTransformFlagsKHR = 0x2
	SURFACE_TRANSFORM_ROTATE_180_BIT_KHR                   SurfaceTransformFlagsKHR = 0x4
	SURFACE_TRANSFORM_ROTATE_270_BIT_KHR                   SurfaceTransformFlagsKHR = 0x8
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR            SurfaceTransformFlagsKHR = 0x10
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR  SurfaceTransformFlagsKHR = 0x20
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR SurfaceTransformFlagsKHR = 0x40
	SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR SurfaceTransformFlagsKHR = 0x80
	SURFACE_TRANSFORM_INHERIT_BIT_KHR                      SurfaceTransformFlagsKHR = 0x100
)

func (f SurfaceTransformFlagsKHR) Has(bit SurfaceTransformFlagsKHR) bool { return f&bit == bit }

type CompositeAlphaFlagsKHR uint32

const (
	COMPOSITE_ALPHA_OPAQUE_BIT_KHR          CompositeAlphaFlagsKHR = 0x1
	COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR  CompositeAlphaFlagsKHR = 0x2
	COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR CompositeAlphaFlagsKHR = 0x4
	COMPOSITE_ALPHA_INHERIT_BIT_KHR         CompositeAlphaFlagsKHR = 0x8
)

func (f CompositeAlphaFlagsKHR) Has(bit CompositeAlphaFlagsKHR) bool { return f&bit == bit }

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

func (instance Instance) DestroySurfaceKHR(surface SurfaceKHR, allocator *AllocationCallbacks) {
	if fn := extensionCommands.DestroySurfaceKHR; fn != nil {
		fn(instance, surface, allocator)
	}
}

// GetSurfaceSupportKHR reports whether queueFamilyIndex can present to
// surface.
func (device PhysicalDevice) GetSurfaceSupportKHR(queueFamilyIndex uint32, surface SurfaceKHR) (bool, error) {
	fn := extensionCommands.GetPhysicalDeviceSurfaceSupportKHR
	if fn == nil {
		return false, ERROR_EXTENSION_NOT_PRESENT
	}
	var supported Bool32
	if result := fn(device, queueFamilyIndex, surface, &supported); result != SUCCESS {
		return false, result
	}
	return supported.Bool(), nil
}

func (device PhysicalDevice) GetSurfaceCapabilitiesKHR(surface SurfaceKHR) (SurfaceCapabilitiesKHR, error) {
	fn := extensionCommands.GetPhysicalDeviceSurfaceCapabilitiesKHR
	if fn == nil {
		return SurfaceCapabilitiesKHR{}, ERROR_EXTENSION_NOT_PRESENT
	}
	var caps SurfaceCapabilitiesKHR
	if result := fn(device, surface, &caps); result != SUCCESS {
		return SurfaceCapabilitiesKHR{}, result
	}
	return caps, nil
}

func (device PhysicalDevice) GetSurfaceFormatsKHR(surface SurfaceKHR) ([]SurfaceFormatKHR, error) {
	fn := extensionCommands.GetPhysicalDeviceSurfaceFormatsKHR
	if fn == nil {
		return nil, ERROR_EXTENSION_NOT_PRESENT
	}
	call := func(count *uint32, formats *SurfaceFormatKHR) Result {
		return fn(device, surface, count, formats)
	}
	count, err := countOf(call)
	if err != nil {
		return nil, err
	}
	return enumerate(count, call)
}

func (device PhysicalDevice) GetSurfacePresentModesKHR(surface SurfaceKHR) ([]PresentModeKHR, error) {
	fn := extensionCommands.GetPhysicalDeviceSurfacePresentModesKHR
	if fn == nil {
		return nil, ERROR_EXTENSION_NOT_PRESENT
	}
	call := func(count *uint32, modes *PresentModeKHR) Result {
		return fn(device, surface, count, modes)
	}
	count, err := countOf(call)
	if err != nil {
		return nil, err
	}
	return enumerate(count, call)
}
