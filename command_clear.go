package vkcore

import (
	"math"
	"unsafe"
)

// ClearColorValue holds the union of float32[4], int32[4] and uint32[4].
// Which view applies depends on the format of the image being cleared.
type ClearColorValue [4]uint32

func ClearColorFloat32(r, g, b, a float32) ClearColorValue {
	return ClearColorValue{math.Float32bits(r), math.Float32bits(g), math.Float32bits(b), math.Float32bits(a)}
}

func ClearColorInt32(r, g, b, a int32) ClearColorValue {
	return ClearColorValue{uint32(r), uint32(g), uint32(b), uint32(a)}
}

func ClearColorUint32(r, g, b, a uint32) ClearColorValue {
	return ClearColorValue{r, g, b, a}
}

func (c ClearColorValue) Float32() [4]float32 {
	return [4]float32{
		math.Float32frombits(c[0]),
		math.Float32frombits(c[1]),
		math.Float32frombits(c[2]),
		math.Float32frombits(c[3]),
	}
}

func (c ClearColorValue) Int32() [4]int32 {
	return [4]int32{int32(c[0]), int32(c[1]), int32(c[2]), int32(c[3])}
}

func (c ClearColorValue) Uint32() [4]uint32 {
	return c
}

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is the union of ClearColorValue and ClearDepthStencilValue.
type ClearValue [4]uint32

func ClearValueColor(color ClearColorValue) ClearValue {
	return ClearValue(color)
}

func ClearValueDepthStencil(depth float32, stencil uint32) ClearValue {
	return ClearValue{math.Float32bits(depth), stencil}
}

func (v ClearValue) Color() ClearColorValue {
	return ClearColorValue(v)
}

func (v ClearValue) DepthStencil() ClearDepthStencilValue {
	return *(*ClearDepthStencilValue)(unsafe.Pointer(&v))
}

type ClearAttachment struct {
	AspectMask      ImageAspectFlags
	ColorAttachment uint32
	ClearValue      ClearValue
}

type ClearRect struct {
	Rect           Rect2D
	BaseArrayLayer uint32
	LayerCount     uint32
}

// CmdClearColorImage fills ranges of an image with a constant color.
func (cmd CommandBuffer) CmdClearColorImage(
	image Image,
	imageLayout ImageLayout,
	color *ClearColorValue,
	ranges []ImageSubresourceRange,
) {
	commands.CmdClearColorImage(cmd, image, imageLayout, color, lenU32(ranges), firstOrNil(ranges))
}

func (cmd CommandBuffer) CmdClearDepthStencilImage(
	image Image,
	imageLayout ImageLayout,
	depthStencil *ClearDepthStencilValue,
	ranges []ImageSubresourceRange,
) {
	commands.CmdClearDepthStencilImage(cmd, image, imageLayout, depthStencil, lenU32(ranges), firstOrNil(ranges))
}

// CmdClearAttachments clears regions of the current subpass attachments.
// It is only valid inside a render pass.
func (cmd CommandBuffer) CmdClearAttachments(attachments []ClearAttachment, rects []ClearRect) {
	commands.CmdClearAttachments(cmd, lenU32(attachments), firstOrNil(attachments), lenU32(rects), firstOrNil(rects))
}
