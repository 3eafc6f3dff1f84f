package vkcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFamilyProperties(t *testing.T) {
	cmds := withCommands(t)
	families := []QueueFamilyProperties{
		{QueueFlags: QUEUE_TRANSFER_BIT, QueueCount: 2},
		{QueueFlags: QUEUE_GRAPHICS_BIT | QUEUE_COMPUTE_BIT | QUEUE_TRANSFER_BIT, QueueCount: 16, TimestampValidBits: 64},
	}
	cmds.GetPhysicalDeviceQueueFamilyProperties = func(_ PhysicalDevice, count *uint32, out *QueueFamilyProperties) {
		fillFrom(families, count, out)
	}

	pd := PhysicalDevice(7)
	assert.EqualValues(t, 2, pd.CountQueueFamilyProperties())
	assert.Equal(t, families, pd.GetAllQueueFamilyProperties())
	assert.Equal(t, families[:1], pd.GetQueueFamilyProperties(1))
	assert.Empty(t, pd.GetQueueFamilyProperties(0))
}

func TestPhysicalDeviceProperties(t *testing.T) {
	cmds := withCommands(t)
	cmds.GetPhysicalDeviceProperties = func(_ PhysicalDevice, out *PhysicalDeviceProperties) {
		out.ApiVersion = MakeVersion(1, 0, 65)
		out.DeviceType = PHYSICAL_DEVICE_TYPE_DISCRETE_GPU
		copy(out.DeviceName[:], "Test GPU")
		out.Limits.MaxImageDimension2D = 16384
		out.SparseProperties.ResidencyStandard2DBlockShape = TRUE
	}

	props := PhysicalDevice(1).GetProperties()
	assert.Equal(t, "Test GPU", props.Name())
	assert.Equal(t, PHYSICAL_DEVICE_TYPE_DISCRETE_GPU, props.DeviceType)
	assert.EqualValues(t, 16384, props.Limits.MaxImageDimension2D)
	assert.True(t, props.SparseProperties.ResidencyStandard2DBlockShape.Bool())
}

func TestFindMemoryType(t *testing.T) {
	var props PhysicalDeviceMemoryProperties
	props.MemoryTypeCount = 3
	props.MemoryTypes[0].PropertyFlags = MEMORY_PROPERTY_DEVICE_LOCAL_BIT
	props.MemoryTypes[1].PropertyFlags = MEMORY_PROPERTY_HOST_VISIBLE_BIT
	props.MemoryTypes[2].PropertyFlags = MEMORY_PROPERTY_HOST_VISIBLE_BIT | MEMORY_PROPERTY_HOST_COHERENT_BIT

	hostCoherent := MEMORY_PROPERTY_HOST_VISIBLE_BIT | MEMORY_PROPERTY_HOST_COHERENT_BIT

	index, ok := props.FindMemoryType(0b111, hostCoherent)
	require.True(t, ok)
	assert.EqualValues(t, 2, index)

	index, ok = props.FindMemoryType(0b111, MEMORY_PROPERTY_HOST_VISIBLE_BIT)
	require.True(t, ok)
	assert.EqualValues(t, 1, index)

	_, ok = props.FindMemoryType(0b011, hostCoherent)
	assert.False(t, ok)
}

func TestImageFormatPropertiesError(t *testing.T) {
	cmds := withCommands(t)
	cmds.GetPhysicalDeviceImageFormatProperties = func(_ PhysicalDevice, format Format, _ ImageType, _ ImageTiling, _ ImageUsageFlags, _ ImageCreateFlags, out *ImageFormatProperties) Result {
		if format == FORMAT_UNDEFINED {
			return ERROR_FORMAT_NOT_SUPPORTED
		}
		out.MaxMipLevels = 12
		return SUCCESS
	}

	pd := PhysicalDevice(1)
	_, err := pd.GetImageFormatProperties(FORMAT_UNDEFINED, IMAGE_TYPE_2D, IMAGE_TILING_OPTIMAL, IMAGE_USAGE_SAMPLED_BIT, 0)
	assert.Equal(t, ERROR_FORMAT_NOT_SUPPORTED, err)

	props, err := pd.GetImageFormatProperties(FORMAT_R8G8B8A8_UNORM, IMAGE_TYPE_2D, IMAGE_TILING_OPTIMAL, IMAGE_USAGE_SAMPLED_BIT, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 12, props.MaxMipLevels)
}

func TestCreateDevice(t *testing.T) {
	cmds := withCommands(t)
	cmds.CreateDevice = func(pd PhysicalDevice, info *DeviceCreateInfo, _ *AllocationCallbacks, out *Device) Result {
		if info.QueueCreateInfoCount == 0 {
			*out = 0xbad
			return ERROR_INITIALIZATION_FAILED
		}
		*out = Device(pd) + 1
		return SUCCESS
	}

	info := NewDeviceCreateInfo()
	device, err := PhysicalDevice(40).CreateDevice(&info, nil)
	assert.Equal(t, ERROR_INITIALIZATION_FAILED, err)
	assert.True(t, device.IsNull())

	queue := NewDeviceQueueCreateInfo()
	queue.SetQueuePriorities([]float32{1})
	info.SetQueueCreateInfos([]DeviceQueueCreateInfo{queue})
	device, err = PhysicalDevice(40).CreateDevice(&info, nil)
	require.NoError(t, err)
	assert.Equal(t, Device(41), device)
}

func TestEnumerateDeviceExtensions(t *testing.T) {
	cmds := withCommands(t)
	var swapchain ExtensionProperties
	copy(swapchain.ExtensionName[:], KHR_SWAPCHAIN_EXTENSION_NAME)
	cmds.EnumerateDeviceExtensionProperties = func(_ PhysicalDevice, layer *byte, count *uint32, out *ExtensionProperties) Result {
		assert.Nil(t, layer)
		return fillFrom([]ExtensionProperties{swapchain}, count, out)
	}
	cmds.EnumerateDeviceLayerProperties = func(_ PhysicalDevice, count *uint32, out *LayerProperties) Result {
		return fillFrom([]LayerProperties{}, count, out)
	}

	exts, err := PhysicalDevice(1).EnumerateAllDeviceExtensionProperties("")
	require.NoError(t, err)
	require.Len(t, exts, 1)
	assert.Equal(t, "VK_KHR_swapchain", exts[0].Name())

	layers, err := PhysicalDevice(1).EnumerateAllDeviceLayerProperties()
	require.NoError(t, err)
	assert.Empty(t, layers)
}

func TestSparseImageFormatProperties(t *testing.T) {
	cmds := withCommands(t)
	want := []SparseImageFormatProperties{{AspectMask: IMAGE_ASPECT_COLOR_BIT, ImageGranularity: Extent3D{64, 64, 1}}}
	cmds.GetPhysicalDeviceSparseImageFormatProperties = func(_ PhysicalDevice, _ Format, _ ImageType, samples SampleCountFlags, _ ImageUsageFlags, _ ImageTiling, count *uint32, out *SparseImageFormatProperties) {
		if samples != SAMPLE_COUNT_1_BIT {
			*count = 0
			return
		}
		fillFrom(want, count, out)
	}

	pd := PhysicalDevice(1)
	got := pd.GetAllSparseImageFormatProperties(FORMAT_R8G8B8A8_UNORM, IMAGE_TYPE_2D, SAMPLE_COUNT_1_BIT, IMAGE_USAGE_SAMPLED_BIT, IMAGE_TILING_OPTIMAL)
	assert.Equal(t, want, got)
	assert.Zero(t, pd.CountSparseImageFormatProperties(FORMAT_R8G8B8A8_UNORM, IMAGE_TYPE_2D, SAMPLE_COUNT_4_BIT, IMAGE_USAGE_SAMPLED_BIT, IMAGE_TILING_OPTIMAL))
}
