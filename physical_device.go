package vkcore

type PhysicalDeviceFeatures struct {
	RobustBufferAccess                      Bool32
	FullDrawIndexUint32                     Bool32
	ImageCubeArray                          Bool32
	IndependentBlend                        Bool32
	GeometryShader                          Bool32
	TessellationShader                      Bool32
	SampleRateShading                       Bool32
	DualSrcBlend                            Bool32
	LogicOp                                 Bool32
	MultiDrawIndirect                       Bool32
	DrawIndirectFirstInstance               Bool32
	DepthClamp                              Bool32
	DepthBiasClamp                          Bool32
	FillModeNonSolid                        Bool32
	DepthBounds                             Bool32
	WideLines                               Bool32
	LargePoints                             Bool32
	AlphaToOne                              Bool32
	MultiViewport                           Bool32
	SamplerAnisotropy                       Bool32
	TextureCompressionETC2                  Bool32
	TextureCompressionASTC_LDR              Bool32
	TextureCompressionBC                    Bool32
	OcclusionQueryPrecise                   Bool32
	PipelineStatisticsQuery                 Bool32
	VertexPipelineStoresAndAtomics          Bool32
	FragmentStoresAndAtomics                Bool32
	ShaderTessellationAndGeometryPointSize  Bool32
	ShaderImageGatherExtended               Bool32
	ShaderStorageImageExtendedFormats       Bool32
	ShaderStorageImageMultisample           Bool32
	ShaderStorageImageReadWithoutFormat     Bool32
	ShaderStorageImageWriteWithoutFormat    Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing  Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing  Bool32
	ShaderClipDistance                      Bool32
	ShaderCullDistance                      Bool32
	ShaderFloat64                           Bool32
	ShaderInt64                             Bool32
	ShaderInt16                             Bool32
	ShaderResourceResidency                 Bool32
	ShaderResourceMinLod                    Bool32
	SparseBinding                           Bool32
	SparseResidencyBuffer                   Bool32
	SparseResidencyImage2D                  Bool32
	SparseResidencyImage3D                  Bool32
	SparseResidency2Samples                 Bool32
	SparseResidency4Samples                 Bool32
	SparseResidency8Samples                 Bool32
	SparseResidency16Samples                Bool32
	SparseResidencyAliased                  Bool32
	VariableMultisampleRate                 Bool32
	InheritedQueries                        Bool32
}

type FormatProperties struct {
	LinearTilingFeatures  FormatFeatureFlags
	OptimalTilingFeatures FormatFeatureFlags
	BufferFeatures        FormatFeatureFlags
}

type ImageFormatProperties struct {
	MaxExtent       Extent3D
	MaxMipLevels    uint32
	MaxArrayLayers  uint32
	SampleCounts    SampleCountFlags
	MaxResourceSize DeviceSize
}

type PhysicalDeviceLimits struct {
	MaxImageDimension1D                             uint32
	MaxImageDimension2D                             uint32
	MaxImageDimension3D                             uint32
	MaxImageDimensionCube                           uint32
	MaxImageArrayLayers                             uint32
	MaxTexelBufferElements                          uint32
	MaxUniformBufferRange                           uint32
	MaxStorageBufferRange                           uint32
	MaxPushConstantsSize                            uint32
	MaxMemoryAllocationCount                        uint32
	MaxSamplerAllocationCount                       uint32
	BufferImageGranularity                          DeviceSize
	SparseAddressSpaceSize                          DeviceSize
	MaxBoundDescriptorSets                          uint32
	MaxPerStageDescriptorSamplers                   uint32
	MaxPerStageDescriptorUniformBuffers             uint32
	MaxPerStageDescriptorStorageBuffers             uint32
	MaxPerStageDescriptorSampledImages              uint32
	MaxPerStageDescriptorStorageImages              uint32
	MaxPerStageDescriptorInputAttachments           uint32
	MaxPerStageResources                            uint32
	MaxDescriptorSetSamplers                        uint32
	MaxDescriptorSetUniformBuffers                  uint32
	MaxDescriptorSetUniformBuffersDynamic           uint32
	MaxDescriptorSetStorageBuffers                  uint32
	MaxDescriptorSetStorageBuffersDynamic           uint32
	MaxDescriptorSetSampledImages                   uint32
	MaxDescriptorSetStorageImages                   uint32
	MaxDescriptorSetInputAttachments                uint32
	MaxVertexInputAttributes                        uint32
	MaxVertexInputBindings                          uint32
	MaxVertexInputAttributeOffset                   uint32
	MaxVertexInputBindingStride                     uint32
	MaxVertexOutputComponents                       uint32
	MaxTessellationGenerationLevel                  uint32
	MaxTessellationPatchSize                        uint32
	MaxTessellationControlPerVertexInputComponents  uint32
	MaxTessellationControlPerVertexOutputComponents uint32
	MaxTessellationControlPerPatchOutputComponents  uint32
	MaxTessellationControlTotalOutputComponents     uint32
	MaxTessellationEvaluationInputComponents        uint32
	MaxTessellationEvaluationOutputComponents       uint32
	MaxGeometryShaderInvocations                    uint32
	MaxGeometryInputComponents                      uint32
	MaxGeometryOutputComponents                     uint32
	MaxGeometryOutputVertices                       uint32
	MaxGeometryTotalOutputComponents                uint32
	MaxFragmentInputComponents                      uint32
	MaxFragmentOutputAttachments                    uint32
	MaxFragmentDualSrcAttachments                   uint32
	MaxFragmentCombinedOutputResources              uint32
	MaxComputeSharedMemorySize                      uint32
	MaxComputeWorkGroupCount                        [3]uint32
	MaxComputeWorkGroupInvocations                  uint32
	MaxComputeWorkGroupSize                         [3]uint32
	SubPixelPrecisionBits                           uint32
	SubTexelPrecisionBits                           uint32
	MipmapPrecisionBits                             uint32
	MaxDrawIndexedIndexValue                        uint32
	MaxDrawIndirectCount                            uint32
	MaxSamplerLodBias                               float32
	MaxSamplerAnisotropy                            float32
	MaxViewports                                    uint32
	MaxViewportDimensions                           [2]uint32
	ViewportBoundsRange                             [2]float32
	ViewportSubPixelBits                            uint32
	MinMemoryMapAlignment                           uintptr
	MinTexelBufferOffsetAlignment                   DeviceSize
	MinUniformBufferOffsetAlignment                 DeviceSize
	MinStorageBufferOffsetAlignment                 DeviceSize
	MinTexelOffset                                  int32
	MaxTexelOffset                                  uint32
	MinTexelGatherOffset                            int32
	MaxTexelGatherOffset                            uint32
	MinInterpolationOffset                          float32
	MaxInterpolationOffset                          float32
	SubPixelInterpolationOffsetBits                 uint32
	MaxFramebufferWidth                             uint32
	MaxFramebufferHeight                            uint32
	MaxFramebufferLayers                            uint32
	FramebufferColorSampleCounts                    SampleCountFlags
	FramebufferDepthSampleCounts                    SampleCountFlags
	FramebufferStencilSampleCounts                  SampleCountFlags
	FramebufferNoAttachmentsSampleCounts            SampleCountFlags
	MaxColorAttachments                             uint32
	SampledImageColorSampleCounts                   SampleCountFlags
	SampledImageIntegerSampleCounts                 SampleCountFlags
	SampledImageDepthSampleCounts                   SampleCountFlags
	SampledImageStencilSampleCounts                 SampleCountFlags
	StorageImageSampleCounts                        SampleCountFlags
	MaxSampleMaskWords                              uint32
	TimestampComputeAndGraphics                     Bool32
	TimestampPeriod                                 float32
	MaxClipDistances                                uint32
	MaxCullDistances                                uint32
	MaxCombinedClipAndCullDistances                 uint32
	DiscreteQueuePriorities                         uint32
	PointSizeRange                                  [2]float32
	LineWidthRange                                  [2]float32
	PointSizeGranularity                            float32
	LineWidthGranularity                            float32
	StrictLines                                     Bool32
	StandardSampleLocations                         Bool32
	OptimalBufferCopyOffsetAlignment                DeviceSize
	OptimalBufferCopyRowPitchAlignment              DeviceSize
	NonCoherentAtomSize                             DeviceSize
}

type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape            Bool32
	ResidencyStandard2DMultisampleBlockShape Bool32
	ResidencyStandard3DBlockShape            Bool32
	ResidencyAlignedMipSize                  Bool32
	ResidencyNonResidentStrict               Bool32
}

type PhysicalDeviceProperties struct {
	ApiVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [MAX_PHYSICAL_DEVICE_NAME_SIZE]byte
	PipelineCacheUUID [UUID_SIZE]byte
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
}

func (p PhysicalDeviceProperties) Name() string {
	return fixedString(p.DeviceName[:])
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [MAX_MEMORY_TYPES]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [MAX_MEMORY_HEAPS]MemoryHeap
}

// FindMemoryType returns the index of the first memory type allowed by
// typeBits that has every flag in properties.
func (p *PhysicalDeviceMemoryProperties) FindMemoryType(typeBits uint32, properties MemoryPropertyFlags) (uint32, bool) {
	for i := uint32(0); i < p.MemoryTypeCount && i < MAX_MEMORY_TYPES; i++ {
		if typeBits&(1<<i) != 0 && p.MemoryTypes[i].PropertyFlags.Has(properties) {
			return i, true
		}
	}
	return 0, false
}

func (physicalDevice PhysicalDevice) GetFeatures() PhysicalDeviceFeatures {
	var features PhysicalDeviceFeatures
	commands.GetPhysicalDeviceFeatures(physicalDevice, &features)
	return features
}

func (physicalDevice PhysicalDevice) GetFormatProperties(format Format) FormatProperties {
	var properties FormatProperties
	commands.GetPhysicalDeviceFormatProperties(physicalDevice, format, &properties)
	return properties
}

func (physicalDevice PhysicalDevice) GetImageFormatProperties(format Format, imageType ImageType, tiling ImageTiling, usage ImageUsageFlags, flags ImageCreateFlags) (ImageFormatProperties, error) {
	var properties ImageFormatProperties
	result := commands.GetPhysicalDeviceImageFormatProperties(physicalDevice, format, imageType, tiling, usage, flags, &properties)
	if result != SUCCESS {
		return ImageFormatProperties{}, result
	}
	return properties, nil
}

func (physicalDevice PhysicalDevice) GetProperties() PhysicalDeviceProperties {
	var properties PhysicalDeviceProperties
	commands.GetPhysicalDeviceProperties(physicalDevice, &properties)
	return properties
}

func (physicalDevice PhysicalDevice) getQueueFamilyProperties(count *uint32, properties *QueueFamilyProperties) {
	commands.GetPhysicalDeviceQueueFamilyProperties(physicalDevice, count, properties)
}

func (physicalDevice PhysicalDevice) CountQueueFamilyProperties() uint32 {
	return countOfVoid(physicalDevice.getQueueFamilyProperties)
}

func (physicalDevice PhysicalDevice) GetQueueFamilyProperties(count uint32) []QueueFamilyProperties {
	return enumerateVoid(count, physicalDevice.getQueueFamilyProperties)
}

func (physicalDevice PhysicalDevice) GetAllQueueFamilyProperties() []QueueFamilyProperties {
	return physicalDevice.GetQueueFamilyProperties(physicalDevice.CountQueueFamilyProperties())
}

func (physicalDevice PhysicalDevice) GetMemoryProperties() PhysicalDeviceMemoryProperties {
	var properties PhysicalDeviceMemoryProperties
	commands.GetPhysicalDeviceMemoryProperties(physicalDevice, &properties)
	return properties
}

func (physicalDevice PhysicalDevice) CreateDevice(createInfo *DeviceCreateInfo, allocator *AllocationCallbacks) (Device, error) {
	var device Device
	result := commands.CreateDevice(physicalDevice, createInfo, allocator, &device)
	if result != SUCCESS {
		return 0, result
	}
	return device, nil
}

func (physicalDevice PhysicalDevice) enumerateLayers(count *uint32, properties *LayerProperties) Result {
	return commands.EnumerateDeviceLayerProperties(physicalDevice, count, properties)
}

func (physicalDevice PhysicalDevice) CountDeviceLayerProperties() (uint32, error) {
	return countOf(physicalDevice.enumerateLayers)
}

func (physicalDevice PhysicalDevice) EnumerateDeviceLayerProperties(count uint32) ([]LayerProperties, error) {
	return enumerate(count, physicalDevice.enumerateLayers)
}

func (physicalDevice PhysicalDevice) EnumerateAllDeviceLayerProperties() ([]LayerProperties, error) {
	n, err := physicalDevice.CountDeviceLayerProperties()
	if err != nil {
		return nil, err
	}
	return physicalDevice.EnumerateDeviceLayerProperties(n)
}

func (physicalDevice PhysicalDevice) extensionEnumerator(layerName string) func(*uint32, *ExtensionProperties) Result {
	name := layerNamePointer(layerName)
	return func(count *uint32, properties *ExtensionProperties) Result {
		return commands.EnumerateDeviceExtensionProperties(physicalDevice, name, count, properties)
	}
}

func (physicalDevice PhysicalDevice) CountDeviceExtensionProperties(layerName string) (uint32, error) {
	return countOf(physicalDevice.extensionEnumerator(layerName))
}

func (physicalDevice PhysicalDevice) EnumerateDeviceExtensionProperties(layerName string, count uint32) ([]ExtensionProperties, error) {
	return enumerate(count, physicalDevice.extensionEnumerator(layerName))
}

func (physicalDevice PhysicalDevice) EnumerateAllDeviceExtensionProperties(layerName string) ([]ExtensionProperties, error) {
	n, err := physicalDevice.CountDeviceExtensionProperties(layerName)
	if err != nil {
		return nil, err
	}
	return physicalDevice.EnumerateDeviceExtensionProperties(layerName, n)
}
