// swapchain.go
package vkcore

import "unsafe"

type SwapchainKHR uint64

func (h SwapchainKHR) IsNull() bool { return h == 0 }

type SwapchainCreateFlagsKHR Flags

type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 SwapchainCreateFlagsKHR
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

func NewSwapchainCreateInfoKHR() SwapchainCreateInfoKHR {
	return SwapchainCreateInfoKHR{SType: STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR}
}

// SetQueueFamilyIndices is only read with SHARING_MODE_CONCURRENT.
func (info *SwapchainCreateInfoKHR) SetQueueFamilyIndices(indices []uint32) {
	info.QueueFamilyIndexCount = lenU32(indices)
	info.PQueueFamilyIndices = firstOrNil(indices)
}

type PresentInfoKHR struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    *Semaphore
	SwapchainCount     uint32
	PSwapchains        *SwapchainKHR
	PImageIndices      *uint32
	PResults           *Result
}

func NewPresentInfoKHR() PresentInfoKHR {
	return PresentInfoKHR{SType: STRUCTURE_TYPE_PRESENT_INFO_KHR}
}

func (info *PresentInfoKHR) SetWaitSemaphores(semaphores []Semaphore) {
	info.WaitSemaphoreCount = lenU32(semaphores)
	info.PWaitSemaphores = firstOrNil(semaphores)
}

// SetSwapchains presents imageIndices[i] on swapchains[i]. results may be
// nil; otherwise it receives one status per swapchain. It panics if the
// lengths disagree.
func (info *PresentInfoKHR) SetSwapchains(swapchains []SwapchainKHR, imageIndices []uint32, results []Result) {
	if len(swapchains) != len(imageIndices) || (results != nil && len(results) != len(swapchains)) {
		panic("vkcore: swapchains, image indices and results differ in length")
	}
	info.SwapchainCount = lenU32(swapchains)
	info.PSwapchains = firstOrNil(swapchains)
	info.PImageIndices = firstOrNil(imageIndices)
	info.PResults = firstOrNil(results)
}

func (device Device) CreateSwapchainKHR(createInfo *SwapchainCreateInfoKHR, allocator *AllocationCallbacks) (SwapchainKHR, error) {
	fn := extensionCommands.CreateSwapchainKHR
	if fn == nil {
		return 0, ERROR_EXTENSION_NOT_PRESENT
	}
	var swapchain SwapchainKHR
	if result := fn(device, createInfo, allocator, &swapchain); result != SUCCESS {
		return 0, result
	}
	return swapchain, nil
}

func (device Device) DestroySwapchainKHR(swapchain SwapchainKHR, allocator *AllocationCallbacks) {
	if fn := extensionCommands.DestroySwapchainKHR; fn != nil {
		fn(device, swapchain, allocator)
	}
}

func (device Device) swapchainImages(swapchain SwapchainKHR) func(*uint32, *Image) Result {
	fn := extensionCommands.GetSwapchainImagesKHR
	return func(count *uint32, images *Image) Result {
		if fn == nil {
			return ERROR_EXTENSION_NOT_PRESENT
		}
		return fn(device, swapchain, count, images)
	}
}

func (device Device) CountSwapchainImagesKHR(swapchain SwapchainKHR) (uint32, error) {
	return countOf(device.swapchainImages(swapchain))
}

func (device Device) GetSwapchainImagesKHR(swapchain SwapchainKHR, count uint32) ([]Image, error) {
	return enumerate(count, device.swapchainImages(swapchain))
}

func (device Device) GetAllSwapchainImagesKHR(swapchain SwapchainKHR) ([]Image, error) {
	call := device.swapchainImages(swapchain)
	count, err := countOf(call)
	if err != nil {
		return nil, err
	}
	return enumerate(count, call)
}

// AcquireNextImageKHR returns the index of the next presentable image with
// the raw status, since SUBOPTIMAL_KHR, TIMEOUT and NOT_READY are all
// useful to the caller.
func (device Device) AcquireNextImageKHR(swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence) (uint32, Result) {
	fn := extensionCommands.AcquireNextImageKHR
	if fn == nil {
		return 0, ERROR_EXTENSION_NOT_PRESENT
	}
	var index uint32
	result := fn(device, swapchain, timeout, semaphore, fence, &index)
	return index, result
}

func (queue Queue) PresentKHR(presentInfo *PresentInfoKHR) Result {
	fn := extensionCommands.QueuePresentKHR
	if fn == nil {
		return ERROR_EXTENSION_NOT_PRESENT
	}
	return fn(queue, presentInfo)
}
