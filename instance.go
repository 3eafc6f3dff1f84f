package vkcore

import "unsafe"

type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	ApiVersion         uint32
}

func NewApplicationInfo() ApplicationInfo {
	return ApplicationInfo{SType: STRUCTURE_TYPE_APPLICATION_INFO}
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   InstanceCreateFlags
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

func NewInstanceCreateInfo() InstanceCreateInfo {
	return InstanceCreateInfo{SType: STRUCTURE_TYPE_INSTANCE_CREATE_INFO}
}

// SetEnabledLayers fills the layer name count and pointer from names.
func (info *InstanceCreateInfo) SetEnabledLayers(names []string) {
	info.EnabledLayerCount = lenU32(names)
	info.PpEnabledLayerNames = CStringArray(names)
}

// SetEnabledExtensions fills the extension name count and pointer from names.
func (info *InstanceCreateInfo) SetEnabledExtensions(names []string) {
	info.EnabledExtensionCount = lenU32(names)
	info.PpEnabledExtensionNames = CStringArray(names)
}

type ExtensionProperties struct {
	ExtensionName [MAX_EXTENSION_NAME_SIZE]byte
	SpecVersion   uint32
}

func (p ExtensionProperties) Name() string {
	return fixedString(p.ExtensionName[:])
}

type LayerProperties struct {
	LayerName             [MAX_EXTENSION_NAME_SIZE]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [MAX_DESCRIPTION_SIZE]byte
}

func (p LayerProperties) Name() string {
	return fixedString(p.LayerName[:])
}

func (p LayerProperties) DescriptionString() string {
	return fixedString(p.Description[:])
}

// CreateInstance creates a Vulkan instance. It reports
// ERROR_INITIALIZATION_FAILED when Load has not succeeded.
func CreateInstance(createInfo *InstanceCreateInfo, allocator *AllocationCallbacks) (Instance, error) {
	if commands.CreateInstance == nil {
		return 0, ERROR_INITIALIZATION_FAILED
	}

	var instance Instance
	result := commands.CreateInstance(createInfo, allocator, &instance)
	if result != SUCCESS {
		return 0, result
	}
	return instance, nil
}

func (instance Instance) Destroy(allocator *AllocationCallbacks) {
	commands.DestroyInstance(instance, allocator)
}

func (instance Instance) enumeratePhysicalDevices(count *uint32, devices *PhysicalDevice) Result {
	return commands.EnumeratePhysicalDevices(instance, count, devices)
}

func (instance Instance) CountPhysicalDevices() (uint32, error) {
	return countOf(instance.enumeratePhysicalDevices)
}

// EnumeratePhysicalDevices returns exactly count physical devices.
func (instance Instance) EnumeratePhysicalDevices(count uint32) ([]PhysicalDevice, error) {
	return enumerate(count, instance.enumeratePhysicalDevices)
}

func (instance Instance) EnumerateAllPhysicalDevices() ([]PhysicalDevice, error) {
	n, err := instance.CountPhysicalDevices()
	if err != nil {
		return nil, err
	}
	return instance.EnumeratePhysicalDevices(n)
}

// GetProcAddr returns the address of an instance-level command, or 0 when
// the loader does not know it.
func (instance Instance) GetProcAddr(name string) uintptr {
	return commands.GetInstanceProcAddr(instance, CString(name))
}

func layerNamePointer(layerName string) *byte {
	if layerName == "" {
		return nil
	}
	return CString(layerName)
}

func enumerateInstanceLayers(count *uint32, properties *LayerProperties) Result {
	if commands.EnumerateInstanceLayerProperties == nil {
		return ERROR_INITIALIZATION_FAILED
	}
	return commands.EnumerateInstanceLayerProperties(count, properties)
}

func CountInstanceLayerProperties() (uint32, error) {
	return countOf(enumerateInstanceLayers)
}

func EnumerateInstanceLayerProperties(count uint32) ([]LayerProperties, error) {
	return enumerate(count, enumerateInstanceLayers)
}

func EnumerateAllInstanceLayerProperties() ([]LayerProperties, error) {
	n, err := CountInstanceLayerProperties()
	if err != nil {
		return nil, err
	}
	return EnumerateInstanceLayerProperties(n)
}

func instanceExtensionEnumerator(layerName string) func(*uint32, *ExtensionProperties) Result {
	name := layerNamePointer(layerName)
	return func(count *uint32, properties *ExtensionProperties) Result {
		if commands.EnumerateInstanceExtensionProperties == nil {
			return ERROR_INITIALIZATION_FAILED
		}
		return commands.EnumerateInstanceExtensionProperties(name, count, properties)
	}
}

// CountInstanceExtensionProperties counts the extensions of layerName, or of
// the implementation and implicit layers when layerName is empty.
func CountInstanceExtensionProperties(layerName string) (uint32, error) {
	return countOf(instanceExtensionEnumerator(layerName))
}

func EnumerateInstanceExtensionProperties(layerName string, count uint32) ([]ExtensionProperties, error) {
	return enumerate(count, instanceExtensionEnumerator(layerName))
}

func EnumerateAllInstanceExtensionProperties(layerName string) ([]ExtensionProperties, error) {
	n, err := CountInstanceExtensionProperties(layerName)
	if err != nil {
		return nil, err
	}
	return EnumerateInstanceExtensionProperties(layerName, n)
}
