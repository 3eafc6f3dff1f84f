package vkcore

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentCalls(t *testing.T) {
	cmds := withCommands(t)

	var created, recorded atomic.Int64
	cmds.CreateFence = func(_ Device, _ *FenceCreateInfo, _ *AllocationCallbacks, out *Fence) Result {
		*out = Fence(created.Add(1))
		return SUCCESS
	}
	cmds.CmdDraw = func(_ CommandBuffer, vertexCount, _, _, _ uint32) {
		recorded.Add(int64(vertexCount))
	}
	devices := []PhysicalDevice{1, 2, 3, 4}
	cmds.EnumeratePhysicalDevices = func(_ Instance, count *uint32, out *PhysicalDevice) Result {
		return fillFrom(devices, count, out)
	}

	const workers = 16
	const perWorker = 50

	var g errgroup.Group
	fences := make([][]Fence, workers)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			info := NewFenceCreateInfo()
			cmd := CommandBuffer(w + 1)
			for i := 0; i < perWorker; i++ {
				fence, err := Device(1).CreateFence(&info, nil)
				if err != nil {
					return err
				}
				fences[w] = append(fences[w], fence)
				cmd.CmdDraw(3, 1, 0, 0)

				all, err := Instance(1).EnumerateAllPhysicalDevices()
				if err != nil {
					return err
				}
				if len(all) != len(devices) {
					return INCOMPLETE
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, workers*perWorker, created.Load())
	assert.EqualValues(t, workers*perWorker*3, recorded.Load())

	seen := map[Fence]bool{}
	for _, list := range fences {
		for _, f := range list {
			assert.False(t, seen[f], "fence %d handed out twice", f)
			seen[f] = true
		}
	}
}
