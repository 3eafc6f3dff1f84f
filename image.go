package vkcore

import "unsafe"

type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlags
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	InitialLayout         ImageLayout
}

func NewImageCreateInfo() ImageCreateInfo {
	return ImageCreateInfo{SType: STRUCTURE_TYPE_IMAGE_CREATE_INFO}
}

func (info *ImageCreateInfo) SetQueueFamilyIndices(indices []uint32) {
	info.QueueFamilyIndexCount = lenU32(indices)
	info.PQueueFamilyIndices = firstOrNil(indices)
}

type ImageSubresource struct {
	AspectMask ImageAspectFlags
	MipLevel   uint32
	ArrayLayer uint32
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type SubresourceLayout struct {
	Offset     DeviceSize
	Size       DeviceSize
	RowPitch   DeviceSize
	ArrayPitch DeviceSize
	DepthPitch DeviceSize
}

func (device Device) CreateImage(createInfo *ImageCreateInfo, allocator *AllocationCallbacks) (Image, error) {
	var image Image
	result := commands.CreateImage(device, createInfo, allocator, &image)
	if result != SUCCESS {
		return 0, result
	}
	return image, nil
}

func (device Device) DestroyImage(image Image, allocator *AllocationCallbacks) {
	commands.DestroyImage(device, image, allocator)
}

// GetImageSubresourceLayout is only meaningful for linearly tiled images.
func (device Device) GetImageSubresourceLayout(image Image, subresource *ImageSubresource) SubresourceLayout {
	var layout SubresourceLayout
	commands.GetImageSubresourceLayout(device, image, subresource, &layout)
	return layout
}
