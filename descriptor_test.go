package vkcore

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateDescriptorSets(t *testing.T) {
	cmds := withCommands(t)
	cmds.AllocateDescriptorSets = func(_ Device, info *DescriptorSetAllocateInfo, out *DescriptorSet) Result {
		layouts := unsafe.Slice(info.PSetLayouts, info.DescriptorSetCount)
		sets := unsafe.Slice(out, info.DescriptorSetCount)
		for i, layout := range layouts {
			sets[i] = DescriptorSet(uint64(layout) << 8)
		}
		return SUCCESS
	}

	info := NewDescriptorSetAllocateInfo()
	info.DescriptorPool = 1
	info.SetSetLayouts([]DescriptorSetLayout{1, 2})

	sets, err := Device(1).AllocateDescriptorSets(&info)
	require.NoError(t, err)
	assert.Equal(t, []DescriptorSet{0x100, 0x200}, sets)
}

func TestAllocateDescriptorSetsFailure(t *testing.T) {
	cmds := withCommands(t)
	cmds.AllocateDescriptorSets = func(Device, *DescriptorSetAllocateInfo, *DescriptorSet) Result {
		return ERROR_FRAGMENTED_POOL
	}

	info := NewDescriptorSetAllocateInfo()
	info.SetSetLayouts([]DescriptorSetLayout{1})
	sets, err := Device(1).AllocateDescriptorSets(&info)
	assert.Equal(t, ERROR_FRAGMENTED_POOL, err)
	assert.Nil(t, sets)
}

func TestUpdateDescriptorSets(t *testing.T) {
	cmds := withCommands(t)
	var writes []WriteDescriptorSet
	var copyCount uint32
	var copies *CopyDescriptorSet
	cmds.UpdateDescriptorSets = func(_ Device, wc uint32, w *WriteDescriptorSet, cc uint32, c *CopyDescriptorSet) {
		writes = append([]WriteDescriptorSet(nil), unsafe.Slice(w, wc)...)
		copyCount, copies = cc, c
	}

	bufferInfo := DescriptorBufferInfo{Buffer: 3, Offset: 0, Range: WHOLE_SIZE}
	write := NewWriteDescriptorSet()
	write.DstSet = 7
	write.DescriptorCount = 1
	write.DescriptorType = DESCRIPTOR_TYPE_UNIFORM_BUFFER
	write.PBufferInfo = &bufferInfo

	Device(1).UpdateDescriptorSets([]WriteDescriptorSet{write}, nil)
	require.Len(t, writes, 1)
	assert.Equal(t, DescriptorSet(7), writes[0].DstSet)
	assert.Equal(t, WHOLE_SIZE, writes[0].PBufferInfo.Range)
	assert.Zero(t, copyCount)
	assert.Nil(t, copies)
}

func TestDescriptorPoolLifecycle(t *testing.T) {
	cmds := withCommands(t)
	var sizes []DescriptorPoolSize
	cmds.CreateDescriptorPool = func(_ Device, info *DescriptorPoolCreateInfo, _ *AllocationCallbacks, out *DescriptorPool) Result {
		sizes = append([]DescriptorPoolSize(nil), unsafe.Slice(info.PPoolSizes, info.PoolSizeCount)...)
		*out = 21
		return SUCCESS
	}
	cmds.FreeDescriptorSets = func(_ Device, _ DescriptorPool, count uint32, _ *DescriptorSet) Result {
		if count == 0 {
			return ERROR_VALIDATION_FAILED_EXT
		}
		return SUCCESS
	}
	cmds.ResetDescriptorPool = func(Device, DescriptorPool, DescriptorPoolResetFlags) Result { return SUCCESS }

	info := NewDescriptorPoolCreateInfo()
	info.Flags = DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT
	info.MaxSets = 4
	info.SetPoolSizes([]DescriptorPoolSize{
		{Type: DESCRIPTOR_TYPE_UNIFORM_BUFFER, DescriptorCount: 4},
		{Type: DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER, DescriptorCount: 8},
	})

	pool, err := Device(1).CreateDescriptorPool(&info, nil)
	require.NoError(t, err)
	assert.Equal(t, DescriptorPool(21), pool)
	require.Len(t, sizes, 2)
	assert.EqualValues(t, 8, sizes[1].DescriptorCount)

	assert.Equal(t, SUCCESS, Device(1).FreeDescriptorSets(pool, []DescriptorSet{1}))
	assert.Equal(t, ERROR_VALIDATION_FAILED_EXT, Device(1).FreeDescriptorSets(pool, nil))
	assert.Equal(t, SUCCESS, Device(1).ResetDescriptorPool(pool, 0))
}

func TestDescriptorSetLayoutBindings(t *testing.T) {
	cmds := withCommands(t)
	var bindings []DescriptorSetLayoutBinding
	cmds.CreateDescriptorSetLayout = func(_ Device, info *DescriptorSetLayoutCreateInfo, _ *AllocationCallbacks, out *DescriptorSetLayout) Result {
		bindings = append([]DescriptorSetLayoutBinding(nil), unsafe.Slice(info.PBindings, info.BindingCount)...)
		*out = 30
		return SUCCESS
	}

	info := NewDescriptorSetLayoutCreateInfo()
	info.SetBindings([]DescriptorSetLayoutBinding{
		{Binding: 0, DescriptorType: DESCRIPTOR_TYPE_UNIFORM_BUFFER, DescriptorCount: 1, StageFlags: SHADER_STAGE_VERTEX_BIT},
		{Binding: 1, DescriptorType: DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER, DescriptorCount: 1, StageFlags: SHADER_STAGE_FRAGMENT_BIT},
	})

	layout, err := Device(1).CreateDescriptorSetLayout(&info, nil)
	require.NoError(t, err)
	assert.Equal(t, DescriptorSetLayout(30), layout)
	require.Len(t, bindings, 2)
	assert.Equal(t, SHADER_STAGE_FRAGMENT_BIT, bindings[1].StageFlags)
}
