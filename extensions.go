package vkcore

import (
	"reflect"

	"golang.org/x/exp/slog"
)

const (
	KHR_SURFACE_EXTENSION_NAME      = "VK_KHR_surface"
	KHR_SWAPCHAIN_EXTENSION_NAME    = "VK_KHR_swapchain"
	EXT_DEBUG_REPORT_EXTENSION_NAME = "VK_EXT_debug_report"
)

// ExtensionCommands holds the extension entry points this package wraps.
// They are not exported by the loader library and must be fetched through
// GetProcAddr once an instance or device exists. A nil field means the
// extension was not enabled or not loaded.
type ExtensionCommands struct {
	// VK_KHR_surface
	DestroySurfaceKHR                       func(instance Instance, surface SurfaceKHR, pAllocator *AllocationCallbacks)
	GetPhysicalDeviceSurfaceSupportKHR      func(physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, pSupported *Bool32) Result
	GetPhysicalDeviceSurfaceCapabilitiesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, pSurfaceCapabilities *SurfaceCapabilitiesKHR) Result
	GetPhysicalDeviceSurfaceFormatsKHR      func(physicalDevice PhysicalDevice, surface SurfaceKHR, pSurfaceFormatCount *uint32, pSurfaceFormats *SurfaceFormatKHR) Result
	GetPhysicalDeviceSurfacePresentModesKHR func(physicalDevice PhysicalDevice, surface SurfaceKHR, pPresentModeCount *uint32, pPresentModes *PresentModeKHR) Result

	// VK_EXT_debug_report
	CreateDebugReportCallbackEXT  func(instance Instance, pCreateInfo *DebugReportCallbackCreateInfoEXT, pAllocator *AllocationCallbacks, pCallback *DebugReportCallbackEXT) Result
	DestroyDebugReportCallbackEXT func(instance Instance, callback DebugReportCallbackEXT, pAllocator *AllocationCallbacks)

	// VK_KHR_swapchain
	CreateSwapchainKHR    func(device Device, pCreateInfo *SwapchainCreateInfoKHR, pAllocator *AllocationCallbacks, pSwapchain *SwapchainKHR) Result
	DestroySwapchainKHR   func(device Device, swapchain SwapchainKHR, pAllocator *AllocationCallbacks)
	GetSwapchainImagesKHR func(device Device, swapchain SwapchainKHR, pSwapchainImageCount *uint32, pSwapchainImages *Image) Result
	AcquireNextImageKHR   func(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, pImageIndex *uint32) Result
	QueuePresentKHR       func(queue Queue, pPresentInfo *PresentInfoKHR) Result
}

var extensionCommands ExtensionCommands

// RawExtensions returns a copy of the extension command table.
func RawExtensions() ExtensionCommands {
	loadMu.Lock()
	defer loadMu.Unlock()
	return extensionCommands
}

func (c *ExtensionCommands) instanceEntries() []commandEntry {
	return []commandEntry{
		{"vkDestroySurfaceKHR", &c.DestroySurfaceKHR},
		{"vkGetPhysicalDeviceSurfaceSupportKHR", &c.GetPhysicalDeviceSurfaceSupportKHR},
		{"vkGetPhysicalDeviceSurfaceCapabilitiesKHR", &c.GetPhysicalDeviceSurfaceCapabilitiesKHR},
		{"vkGetPhysicalDeviceSurfaceFormatsKHR", &c.GetPhysicalDeviceSurfaceFormatsKHR},
		{"vkGetPhysicalDeviceSurfacePresentModesKHR", &c.GetPhysicalDeviceSurfacePresentModesKHR},
		{"vkCreateDebugReportCallbackEXT", &c.CreateDebugReportCallbackEXT},
		{"vkDestroyDebugReportCallbackEXT", &c.DestroyDebugReportCallbackEXT},
	}
}

func (c *ExtensionCommands) deviceEntries() []commandEntry {
	return []commandEntry{
		{"vkCreateSwapchainKHR", &c.CreateSwapchainKHR},
		{"vkDestroySwapchainKHR", &c.DestroySwapchainKHR},
		{"vkGetSwapchainImagesKHR", &c.GetSwapchainImagesKHR},
		{"vkAcquireNextImageKHR", &c.AcquireNextImageKHR},
		{"vkQueuePresentKHR", &c.QueuePresentKHR},
	}
}

// LoadInstanceExtensions resolves every extension command through
// vkGetInstanceProcAddr. Device commands obtained this way dispatch through
// the loader; LoadDeviceExtensions replaces them with direct device entry
// points. It returns the number of commands resolved.
func LoadInstanceExtensions(instance Instance) int {
	loadMu.Lock()
	defer loadMu.Unlock()

	if commands.GetInstanceProcAddr == nil {
		return 0
	}
	table := extensionCommands
	entries := append(table.instanceEntries(), table.deviceEntries()...)
	n := resolveProcs(entries, func(name *byte) uintptr {
		return commands.GetInstanceProcAddr(instance, name)
	})
	extensionCommands = table
	return n
}

// LoadDeviceExtensions resolves the device-level extension commands through
// vkGetDeviceProcAddr. The table is process wide, so with several devices
// the last one loaded wins.
func LoadDeviceExtensions(device Device) int {
	loadMu.Lock()
	defer loadMu.Unlock()

	if commands.GetDeviceProcAddr == nil {
		return 0
	}
	table := extensionCommands
	n := resolveProcs(table.deviceEntries(), func(name *byte) uintptr {
		return commands.GetDeviceProcAddr(device, name)
	})
	extensionCommands = table
	return n
}

func resolveProcs(entries []commandEntry, getProcAddr func(name *byte) uintptr) int {
	resolved := 0
	for _, entry := range entries {
		if registerProc(entry.fn, getProcAddr(CString(entry.name))) {
			resolved++
			continue
		}
		// drop any pointer left over from an earlier instance or device
		v := reflect.ValueOf(entry.fn).Elem()
		v.Set(reflect.Zero(v.Type()))
		logger.Debug("vulkan extension command unavailable", slog.String("command", entry.name))
	}
	return resolved
}
