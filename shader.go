package vkcore

import "unsafe"

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    ShaderModuleCreateFlags
	CodeSize uintptr
	PCode    *uint32
}

func NewShaderModuleCreateInfo() ShaderModuleCreateInfo {
	return ShaderModuleCreateInfo{SType: STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO}
}

// SetCode points the create info at SPIR-V words. CodeSize is in bytes.
func (info *ShaderModuleCreateInfo) SetCode(code []uint32) {
	info.CodeSize = uintptr(len(code)) * 4
	info.PCode = firstOrNil(code)
}

func (device Device) CreateShaderModule(createInfo *ShaderModuleCreateInfo, allocator *AllocationCallbacks) (ShaderModule, error) {
	var module ShaderModule
	result := commands.CreateShaderModule(device, createInfo, allocator, &module)
	if result != SUCCESS {
		return 0, result
	}
	return module, nil
}

func (device Device) DestroyShaderModule(module ShaderModule, allocator *AllocationCallbacks) {
	commands.DestroyShaderModule(device, module, allocator)
}
