package vkcore

import "unsafe"

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            DeviceQueueCreateFlags
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

func NewDeviceQueueCreateInfo() DeviceQueueCreateInfo {
	return DeviceQueueCreateInfo{SType: STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO}
}

// SetQueuePriorities sets QueueCount and PQueuePriorities from priorities.
func (info *DeviceQueueCreateInfo) SetQueuePriorities(priorities []float32) {
	info.QueueCount = lenU32(priorities)
	info.PQueuePriorities = firstOrNil(priorities)
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   DeviceCreateFlags
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
	PEnabledFeatures        *PhysicalDeviceFeatures
}

func NewDeviceCreateInfo() DeviceCreateInfo {
	return DeviceCreateInfo{SType: STRUCTURE_TYPE_DEVICE_CREATE_INFO}
}

func (info *DeviceCreateInfo) SetQueueCreateInfos(queues []DeviceQueueCreateInfo) {
	info.QueueCreateInfoCount = lenU32(queues)
	info.PQueueCreateInfos = firstOrNil(queues)
}

func (info *DeviceCreateInfo) SetEnabledLayers(names []string) {
	info.EnabledLayerCount = lenU32(names)
	info.PpEnabledLayerNames = CStringArray(names)
}

func (info *DeviceCreateInfo) SetEnabledExtensions(names []string) {
	info.EnabledExtensionCount = lenU32(names)
	info.PpEnabledExtensionNames = CStringArray(names)
}

func (device Device) Destroy(allocator *AllocationCallbacks) {
	commands.DestroyDevice(device, allocator)
}

func (device Device) GetQueue(queueFamilyIndex, queueIndex uint32) Queue {
	var queue Queue
	commands.GetDeviceQueue(device, queueFamilyIndex, queueIndex, &queue)
	return queue
}

func (device Device) WaitIdle() Result {
	return commands.DeviceWaitIdle(device)
}

// GetProcAddr returns the address of a device-level command, or 0.
func (device Device) GetProcAddr(name string) uintptr {
	return commands.GetDeviceProcAddr(device, CString(name))
}
