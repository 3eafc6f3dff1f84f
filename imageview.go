package vkcore

import "unsafe"

type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            ImageViewCreateFlags
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

func NewImageViewCreateInfo() ImageViewCreateInfo {
	return ImageViewCreateInfo{SType: STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO}
}

func (device Device) CreateImageView(createInfo *ImageViewCreateInfo, allocator *AllocationCallbacks) (ImageView, error) {
	var view ImageView
	result := commands.CreateImageView(device, createInfo, allocator, &view)
	if result != SUCCESS {
		return 0, result
	}
	return view, nil
}

func (device Device) DestroyImageView(view ImageView, allocator *AllocationCallbacks) {
	commands.DestroyImageView(device, view, allocator)
}
