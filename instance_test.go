package vkcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInstance(t *testing.T) {
	cmds := withCommands(t)

	var gotInfo *InstanceCreateInfo
	var gotAllocator *AllocationCallbacks
	cmds.CreateInstance = func(info *InstanceCreateInfo, allocator *AllocationCallbacks, out *Instance) Result {
		gotInfo, gotAllocator = info, allocator
		*out = 0xbeef
		return SUCCESS
	}

	app := NewApplicationInfo()
	app.PApplicationName = CString("Testing")
	info := NewInstanceCreateInfo()
	info.PApplicationInfo = &app

	instance, err := CreateInstance(&info, nil)
	require.NoError(t, err)
	assert.Equal(t, Instance(0xbeef), instance)
	assert.Same(t, &info, gotInfo)
	assert.Nil(t, gotAllocator)

	allocator := &AllocationCallbacks{}
	_, err = CreateInstance(&info, allocator)
	require.NoError(t, err)
	assert.Same(t, allocator, gotAllocator)
}

func TestCreateInstanceFailureHidesHandle(t *testing.T) {
	cmds := withCommands(t)
	cmds.CreateInstance = func(_ *InstanceCreateInfo, _ *AllocationCallbacks, out *Instance) Result {
		*out = 0xdead
		return ERROR_INCOMPATIBLE_DRIVER
	}

	info := NewInstanceCreateInfo()
	instance, err := CreateInstance(&info, nil)
	assert.Equal(t, ERROR_INCOMPATIBLE_DRIVER, err)
	assert.True(t, instance.IsNull())
}

func TestEnumeratePhysicalDevices(t *testing.T) {
	cmds := withCommands(t)
	devices := []PhysicalDevice{11, 22, 33}
	calls := 0
	cmds.EnumeratePhysicalDevices = func(_ Instance, count *uint32, out *PhysicalDevice) Result {
		calls++
		return fillFrom(devices, count, out)
	}

	n, err := Instance(1).CountPhysicalDevices()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	all, err := Instance(1).EnumerateAllPhysicalDevices()
	require.NoError(t, err)
	assert.Equal(t, devices, all)

	_, err = Instance(1).EnumeratePhysicalDevices(2)
	assert.Equal(t, INCOMPLETE, err)

	five, err := Instance(1).EnumeratePhysicalDevices(5)
	require.NoError(t, err)
	assert.Equal(t, []PhysicalDevice{11, 22, 33, 0, 0}, five)

	calls = 0
	none, err := Instance(1).EnumeratePhysicalDevices(0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, 1, calls)
}

func TestEnumeratePassesNilForZeroCount(t *testing.T) {
	cmds := withCommands(t)
	var sawNil bool
	cmds.EnumerateInstanceLayerProperties = func(count *uint32, out *LayerProperties) Result {
		sawNil = out == nil
		assert.Zero(t, *count)
		return SUCCESS
	}

	layers, err := EnumerateInstanceLayerProperties(0)
	require.NoError(t, err)
	assert.Empty(t, layers)
	assert.True(t, sawNil)
}

func TestEnumerateInstanceExtensions(t *testing.T) {
	cmds := withCommands(t)

	var surface, debug ExtensionProperties
	copy(surface.ExtensionName[:], KHR_SURFACE_EXTENSION_NAME)
	surface.SpecVersion = 25
	copy(debug.ExtensionName[:], EXT_DEBUG_REPORT_EXTENSION_NAME)

	var layers []string
	cmds.EnumerateInstanceExtensionProperties = func(layer *byte, count *uint32, out *ExtensionProperties) Result {
		layers = append(layers, GoString(layer))
		if layer != nil {
			return ERROR_LAYER_NOT_PRESENT
		}
		return fillFrom([]ExtensionProperties{surface, debug}, count, out)
	}

	exts, err := EnumerateAllInstanceExtensionProperties("")
	require.NoError(t, err)
	require.Len(t, exts, 2)
	assert.Equal(t, "VK_KHR_surface", exts[0].Name())
	assert.EqualValues(t, 25, exts[0].SpecVersion)
	assert.Equal(t, "VK_EXT_debug_report", exts[1].Name())

	_, err = CountInstanceExtensionProperties("VK_LAYER_missing")
	assert.Equal(t, ERROR_LAYER_NOT_PRESENT, err)
	assert.Equal(t, []string{"", "", "VK_LAYER_missing"}, layers)
}

func TestLayerPropertiesStrings(t *testing.T) {
	var layer LayerProperties
	copy(layer.LayerName[:], "VK_LAYER_KHRONOS_validation")
	copy(layer.Description[:], "Khronos validation")
	assert.Equal(t, "VK_LAYER_KHRONOS_validation", layer.Name())
	assert.Equal(t, "Khronos validation", layer.DescriptionString())
}

func TestInstanceGetProcAddr(t *testing.T) {
	cmds := withCommands(t)
	cmds.GetInstanceProcAddr = func(_ Instance, name *byte) uintptr {
		if GoString(name) == "vkCreateDebugReportCallbackEXT" {
			return 0x1000
		}
		return 0
	}

	assert.EqualValues(t, 0x1000, Instance(1).GetProcAddr("vkCreateDebugReportCallbackEXT"))
	assert.Zero(t, Instance(1).GetProcAddr("vkNope"))
}
