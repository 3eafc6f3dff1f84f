package vkcore

import "unsafe"

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   SamplerCreateFlags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

func NewSamplerCreateInfo() SamplerCreateInfo {
	return SamplerCreateInfo{SType: STRUCTURE_TYPE_SAMPLER_CREATE_INFO}
}

func (device Device) CreateSampler(createInfo *SamplerCreateInfo, allocator *AllocationCallbacks) (Sampler, error) {
	var sampler Sampler
	result := commands.CreateSampler(device, createInfo, allocator, &sampler)
	if result != SUCCESS {
		return 0, result
	}
	return sampler, nil
}

func (device Device) DestroySampler(sampler Sampler, allocator *AllocationCallbacks) {
	commands.DestroySampler(device, sampler, allocator)
}
