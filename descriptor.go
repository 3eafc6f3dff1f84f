package vkcore

import "unsafe"

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers *Sampler
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

func NewDescriptorSetLayoutCreateInfo() DescriptorSetLayoutCreateInfo {
	return DescriptorSetLayoutCreateInfo{SType: STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO}
}

func (info *DescriptorSetLayoutCreateInfo) SetBindings(bindings []DescriptorSetLayoutBinding) {
	info.BindingCount = lenU32(bindings)
	info.PBindings = firstOrNil(bindings)
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

func NewDescriptorPoolCreateInfo() DescriptorPoolCreateInfo {
	return DescriptorPoolCreateInfo{SType: STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO}
}

func (info *DescriptorPoolCreateInfo) SetPoolSizes(sizes []DescriptorPoolSize) {
	info.PoolSizeCount = lenU32(sizes)
	info.PPoolSizes = firstOrNil(sizes)
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        *DescriptorSetLayout
}

func NewDescriptorSetAllocateInfo() DescriptorSetAllocateInfo {
	return DescriptorSetAllocateInfo{SType: STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO}
}

func (info *DescriptorSetAllocateInfo) SetSetLayouts(layouts []DescriptorSetLayout) {
	info.DescriptorSetCount = lenU32(layouts)
	info.PSetLayouts = firstOrNil(layouts)
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type WriteDescriptorSet struct {
	SType            StructureType
	PNext            unsafe.Pointer
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       *DescriptorImageInfo
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView *BufferView
}

func NewWriteDescriptorSet() WriteDescriptorSet {
	return WriteDescriptorSet{SType: STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET}
}

type CopyDescriptorSet struct {
	SType           StructureType
	PNext           unsafe.Pointer
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

func NewCopyDescriptorSet() CopyDescriptorSet {
	return CopyDescriptorSet{SType: STRUCTURE_TYPE_COPY_DESCRIPTOR_SET}
}

func (device Device) CreateDescriptorSetLayout(createInfo *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks) (DescriptorSetLayout, error) {
	var layout DescriptorSetLayout
	result := commands.CreateDescriptorSetLayout(device, createInfo, allocator, &layout)
	if result != SUCCESS {
		return 0, result
	}
	return layout, nil
}

func (device Device) DestroyDescriptorSetLayout(layout DescriptorSetLayout, allocator *AllocationCallbacks) {
	commands.DestroyDescriptorSetLayout(device, layout, allocator)
}

func (device Device) CreateDescriptorPool(createInfo *DescriptorPoolCreateInfo, allocator *AllocationCallbacks) (DescriptorPool, error) {
	var pool DescriptorPool
	result := commands.CreateDescriptorPool(device, createInfo, allocator, &pool)
	if result != SUCCESS {
		return 0, result
	}
	return pool, nil
}

func (device Device) DestroyDescriptorPool(pool DescriptorPool, allocator *AllocationCallbacks) {
	commands.DestroyDescriptorPool(device, pool, allocator)
}

// ResetDescriptorPool frees every set allocated from pool.
func (device Device) ResetDescriptorPool(pool DescriptorPool, flags DescriptorPoolResetFlags) Result {
	return commands.ResetDescriptorPool(device, pool, flags)
}

// AllocateDescriptorSets returns DescriptorSetCount sets, or nil on failure.
func (device Device) AllocateDescriptorSets(allocateInfo *DescriptorSetAllocateInfo) ([]DescriptorSet, error) {
	sets := make([]DescriptorSet, allocateInfo.DescriptorSetCount)
	result := commands.AllocateDescriptorSets(device, allocateInfo, firstOrNil(sets))
	if result != SUCCESS {
		return nil, result
	}
	return sets, nil
}

// FreeDescriptorSets requires a pool created with
// DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT.
func (device Device) FreeDescriptorSets(pool DescriptorPool, sets []DescriptorSet) Result {
	return commands.FreeDescriptorSets(device, pool, lenU32(sets), firstOrNil(sets))
}

func (device Device) UpdateDescriptorSets(writes []WriteDescriptorSet, copies []CopyDescriptorSet) {
	commands.UpdateDescriptorSets(device, lenU32(writes), firstOrNil(writes), lenU32(copies), firstOrNil(copies))
}
