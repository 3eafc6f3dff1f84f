package vkcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCreate writes a handle even when it reports failure, the way some
// drivers leave garbage in the output parameter.
func stubCreate[Info any, H ~uint64](result Result) func(Device, *Info, *AllocationCallbacks, *H) Result {
	return func(_ Device, _ *Info, _ *AllocationCallbacks, out *H) Result {
		*out = 0xdeadbeef
		return result
	}
}

func createWith[Info any, H ~uint64](create func(Device, *Info, *AllocationCallbacks) (H, error), info Info) func() (uint64, error) {
	return func() (uint64, error) {
		handle, err := create(Device(1), &info, nil)
		return uint64(handle), err
	}
}

func TestCreateReturnsNullHandleOnFailure(t *testing.T) {
	cases := []struct {
		name    string
		install func(c *Commands, result Result)
		create  func() (uint64, error)
	}{
		{
			"Buffer",
			func(c *Commands, r Result) { c.CreateBuffer = stubCreate[BufferCreateInfo, Buffer](r) },
			createWith(Device.CreateBuffer, NewBufferCreateInfo()),
		},
		{
			"BufferView",
			func(c *Commands, r Result) { c.CreateBufferView = stubCreate[BufferViewCreateInfo, BufferView](r) },
			createWith(Device.CreateBufferView, NewBufferViewCreateInfo()),
		},
		{
			"Image",
			func(c *Commands, r Result) { c.CreateImage = stubCreate[ImageCreateInfo, Image](r) },
			createWith(Device.CreateImage, NewImageCreateInfo()),
		},
		{
			"ImageView",
			func(c *Commands, r Result) { c.CreateImageView = stubCreate[ImageViewCreateInfo, ImageView](r) },
			createWith(Device.CreateImageView, NewImageViewCreateInfo()),
		},
		{
			"Sampler",
			func(c *Commands, r Result) { c.CreateSampler = stubCreate[SamplerCreateInfo, Sampler](r) },
			createWith(Device.CreateSampler, NewSamplerCreateInfo()),
		},
		{
			"ShaderModule",
			func(c *Commands, r Result) { c.CreateShaderModule = stubCreate[ShaderModuleCreateInfo, ShaderModule](r) },
			createWith(Device.CreateShaderModule, NewShaderModuleCreateInfo()),
		},
		{
			"PipelineCache",
			func(c *Commands, r Result) { c.CreatePipelineCache = stubCreate[PipelineCacheCreateInfo, PipelineCache](r) },
			createWith(Device.CreatePipelineCache, NewPipelineCacheCreateInfo()),
		},
		{
			"PipelineLayout",
			func(c *Commands, r Result) { c.CreatePipelineLayout = stubCreate[PipelineLayoutCreateInfo, PipelineLayout](r) },
			createWith(Device.CreatePipelineLayout, NewPipelineLayoutCreateInfo()),
		},
		{
			"DescriptorSetLayout",
			func(c *Commands, r Result) {
				c.CreateDescriptorSetLayout = stubCreate[DescriptorSetLayoutCreateInfo, DescriptorSetLayout](r)
			},
			createWith(Device.CreateDescriptorSetLayout, NewDescriptorSetLayoutCreateInfo()),
		},
		{
			"DescriptorPool",
			func(c *Commands, r Result) { c.CreateDescriptorPool = stubCreate[DescriptorPoolCreateInfo, DescriptorPool](r) },
			createWith(Device.CreateDescriptorPool, NewDescriptorPoolCreateInfo()),
		},
		{
			"Framebuffer",
			func(c *Commands, r Result) { c.CreateFramebuffer = stubCreate[FramebufferCreateInfo, Framebuffer](r) },
			createWith(Device.CreateFramebuffer, NewFramebufferCreateInfo()),
		},
		{
			"RenderPass",
			func(c *Commands, r Result) { c.CreateRenderPass = stubCreate[RenderPassCreateInfo, RenderPass](r) },
			createWith(Device.CreateRenderPass, NewRenderPassCreateInfo()),
		},
		{
			"QueryPool",
			func(c *Commands, r Result) { c.CreateQueryPool = stubCreate[QueryPoolCreateInfo, QueryPool](r) },
			createWith(Device.CreateQueryPool, NewQueryPoolCreateInfo()),
		},
		{
			"Event",
			func(c *Commands, r Result) { c.CreateEvent = stubCreate[EventCreateInfo, Event](r) },
			createWith(Device.CreateEvent, NewEventCreateInfo()),
		},
		{
			"Fence",
			func(c *Commands, r Result) { c.CreateFence = stubCreate[FenceCreateInfo, Fence](r) },
			createWith(Device.CreateFence, NewFenceCreateInfo()),
		},
		{
			"Semaphore",
			func(c *Commands, r Result) { c.CreateSemaphore = stubCreate[SemaphoreCreateInfo, Semaphore](r) },
			createWith(Device.CreateSemaphore, NewSemaphoreCreateInfo()),
		},
		{
			"CommandPool",
			func(c *Commands, r Result) { c.CreateCommandPool = stubCreate[CommandPoolCreateInfo, CommandPool](r) },
			createWith(Device.CreateCommandPool, NewCommandPoolCreateInfo()),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmds := withCommands(t)

			tc.install(cmds, SUCCESS)
			handle, err := tc.create()
			require.NoError(t, err)
			assert.EqualValues(t, 0xdeadbeef, handle)

			for _, result := range []Result{ERROR_OUT_OF_HOST_MEMORY, ERROR_OUT_OF_DEVICE_MEMORY, ERROR_DEVICE_LOST} {
				tc.install(cmds, result)
				handle, err = tc.create()
				assert.Equal(t, result, err)
				assert.Zero(t, handle, "%s leaked the handle written with %s", tc.name, result)
			}
		})
	}
}
