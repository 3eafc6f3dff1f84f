package vkcore

import "unsafe"

type QueryPoolCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              QueryPoolCreateFlags
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics QueryPipelineStatisticFlags
}

func NewQueryPoolCreateInfo() QueryPoolCreateInfo {
	return QueryPoolCreateInfo{SType: STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO}
}

func (device Device) CreateQueryPool(createInfo *QueryPoolCreateInfo, allocator *AllocationCallbacks) (QueryPool, error) {
	var pool QueryPool
	result := commands.CreateQueryPool(device, createInfo, allocator, &pool)
	if result != SUCCESS {
		return 0, result
	}
	return pool, nil
}

func (device Device) DestroyQueryPool(pool QueryPool, allocator *AllocationCallbacks) {
	commands.DestroyQueryPool(device, pool, allocator)
}

// GetQueryPoolResults writes queryCount results into data, one every stride
// bytes. NOT_READY means some results were unavailable and were not written.
func (device Device) GetQueryPoolResults(pool QueryPool, firstQuery, queryCount uint32, data []byte, stride DeviceSize, flags QueryResultFlags) Result {
	return commands.GetQueryPoolResults(device, pool, firstQuery, queryCount, uintptr(len(data)), bytesPointer(data), stride, flags)
}
