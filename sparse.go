// sparse.go - sparse resource queries and binding structures
package vkcore

import "unsafe"

// SparseImageFormatProperties describes sparse image format properties
type SparseImageFormatProperties struct {
	AspectMask       ImageAspectFlags
	ImageGranularity Extent3D
	Flags            SparseImageFormatFlags
}

// SparseImageMemoryRequirements describes sparse memory requirements for an image
type SparseImageMemoryRequirements struct {
	FormatProperties     SparseImageFormatProperties
	ImageMipTailFirstLod uint32
	ImageMipTailSize     DeviceSize
	ImageMipTailOffset   DeviceSize
	ImageMipTailStride   DeviceSize
}

// SparseMemoryBind binds a range of an opaque resource to memory
type SparseMemoryBind struct {
	ResourceOffset DeviceSize
	Size           DeviceSize
	Memory         DeviceMemory
	MemoryOffset   DeviceSize
	Flags          SparseMemoryBindFlags
}

type SparseBufferMemoryBindInfo struct {
	Buffer    Buffer
	BindCount uint32
	PBinds    *SparseMemoryBind
}

type SparseImageOpaqueMemoryBindInfo struct {
	Image     Image
	BindCount uint32
	PBinds    *SparseMemoryBind
}

// SparseImageMemoryBind binds a block-aligned region of an image to memory
type SparseImageMemoryBind struct {
	Subresource  ImageSubresource
	Offset       Offset3D
	Extent       Extent3D
	Memory       DeviceMemory
	MemoryOffset DeviceSize
	Flags        SparseMemoryBindFlags
}

type SparseImageMemoryBindInfo struct {
	Image     Image
	BindCount uint32
	PBinds    *SparseImageMemoryBind
}

type BindSparseInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	BufferBindCount      uint32
	PBufferBinds         *SparseBufferMemoryBindInfo
	ImageOpaqueBindCount uint32
	PImageOpaqueBinds    *SparseImageOpaqueMemoryBindInfo
	ImageBindCount       uint32
	PImageBinds          *SparseImageMemoryBindInfo
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

func NewBindSparseInfo() BindSparseInfo {
	return BindSparseInfo{SType: STRUCTURE_TYPE_BIND_SPARSE_INFO}
}

func (info *BindSparseInfo) SetBufferBinds(binds []SparseBufferMemoryBindInfo) {
	info.BufferBindCount = lenU32(binds)
	info.PBufferBinds = firstOrNil(binds)
}

func (info *BindSparseInfo) SetImageOpaqueBinds(binds []SparseImageOpaqueMemoryBindInfo) {
	info.ImageOpaqueBindCount = lenU32(binds)
	info.PImageOpaqueBinds = firstOrNil(binds)
}

func (info *BindSparseInfo) SetImageBinds(binds []SparseImageMemoryBindInfo) {
	info.ImageBindCount = lenU32(binds)
	info.PImageBinds = firstOrNil(binds)
}

// Physical device sparse format queries

type sparseFormatQuery struct {
	physicalDevice PhysicalDevice
	format         Format
	imageType      ImageType
	samples        SampleCountFlags
	usage          ImageUsageFlags
	tiling         ImageTiling
}

func (q sparseFormatQuery) call(count *uint32, properties *SparseImageFormatProperties) {
	commands.GetPhysicalDeviceSparseImageFormatProperties(q.physicalDevice, q.format, q.imageType, q.samples, q.usage, q.tiling, count, properties)
}

func (physicalDevice PhysicalDevice) CountSparseImageFormatProperties(format Format, imageType ImageType, samples SampleCountFlags, usage ImageUsageFlags, tiling ImageTiling) uint32 {
	q := sparseFormatQuery{physicalDevice, format, imageType, samples, usage, tiling}
	return countOfVoid(q.call)
}

func (physicalDevice PhysicalDevice) GetSparseImageFormatProperties(format Format, imageType ImageType, samples SampleCountFlags, usage ImageUsageFlags, tiling ImageTiling, count uint32) []SparseImageFormatProperties {
	q := sparseFormatQuery{physicalDevice, format, imageType, samples, usage, tiling}
	return enumerateVoid(count, q.call)
}

func (physicalDevice PhysicalDevice) GetAllSparseImageFormatProperties(format Format, imageType ImageType, samples SampleCountFlags, usage ImageUsageFlags, tiling ImageTiling) []SparseImageFormatProperties {
	q := sparseFormatQuery{physicalDevice, format, imageType, samples, usage, tiling}
	return enumerateVoid(countOfVoid(q.call), q.call)
}

// Image sparse memory requirements

func (device Device) imageSparseRequirements(image Image) func(*uint32, *SparseImageMemoryRequirements) {
	return func(count *uint32, requirements *SparseImageMemoryRequirements) {
		commands.GetImageSparseMemoryRequirements(device, image, count, requirements)
	}
}

func (device Device) CountImageSparseMemoryRequirements(image Image) uint32 {
	return countOfVoid(device.imageSparseRequirements(image))
}

func (device Device) GetImageSparseMemoryRequirements(image Image, count uint32) []SparseImageMemoryRequirements {
	return enumerateVoid(count, device.imageSparseRequirements(image))
}

// GetAllImageSparseMemoryRequirements queries sparse memory requirements for an image
func (device Device) GetAllImageSparseMemoryRequirements(image Image) []SparseImageMemoryRequirements {
	call := device.imageSparseRequirements(image)
	return enumerateVoid(countOfVoid(call), call)
}
