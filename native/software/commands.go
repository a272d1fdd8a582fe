package software

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/native"
)

type op struct {
	name string
	run  func()
}

// CommandBuffer records closures that execute against host memory when the owning queue runs them.
// Resource states are validated at execution time, in submission order.
type CommandBuffer struct {
	device    *Device
	ops       []op
	closed    bool
	destroyed bool

	resources native.DescriptorTable
	samplers  native.DescriptorTable
	pipeline  *Pipeline
}

var _ native.CommandBuffer = &CommandBuffer{}

func (c *CommandBuffer) record(name string, run func()) {
	if c.closed {
		c.device.fail("%s recorded into a closed command buffer", name)
		return
	}
	c.ops = append(c.ops, op{name: name, run: run})
}

// Names lists the commands recorded since the last reset
func (c *CommandBuffer) Names() []string {
	names := make([]string, 0, len(c.ops))
	for _, operation := range c.ops {
		names = append(names, operation.name)
	}
	return names
}

func (c *CommandBuffer) Reset() error {
	if c.device.queue.inFlight(c) {
		return errors.New("reset a command buffer that has not finished executing")
	}

	c.ops = nil
	c.closed = false
	c.resources = nil
	c.samplers = nil
	c.pipeline = nil
	return nil
}

func (c *CommandBuffer) Close() error {
	if c.closed {
		return errors.New("closed a command buffer twice")
	}
	c.closed = true
	return nil
}

func (c *CommandBuffer) Destroy() {
	if c.destroyed {
		c.device.fail("command buffer destroyed twice")
		return
	}
	if c.device.queue.inFlight(c) {
		c.device.fail("command buffer destroyed while executing")
	}
	c.destroyed = true
	c.device.stats.Destroyed++
}

func (c *CommandBuffer) SetDescriptorTables(resources native.DescriptorTable, samplers native.DescriptorTable) {
	c.resources = resources
	c.samplers = samplers
	c.record("SetDescriptorTables", func() {})
}

func (c *CommandBuffer) Barriers(barriers []native.Barrier) {
	batch := make([]native.Barrier, len(barriers))
	copy(batch, barriers)

	c.record("Barriers", func() {
		for _, barrier := range batch {
			c.device.stats.Barriers++
			c.applyBarrier(barrier)
		}
	})
}

func (c *CommandBuffer) applyBarrier(barrier native.Barrier) {
	if barrier.Buffer != nil {
		buffer := barrier.Buffer.(*Buffer)
		if !buffer.tracked() {
			return
		}
		if barrier.Kind == native.BarrierUnorderedAccess {
			if buffer.state&native.StateUnorderedAccess == 0 {
				c.device.fail("UAV barrier on buffer %q in state %s", buffer.desc.DebugName, buffer.state)
			}
			return
		}
		if buffer.state != barrier.Before {
			c.device.fail("buffer %q transitioned from %s but is in %s", buffer.desc.DebugName, barrier.Before, buffer.state)
		}
		buffer.state = barrier.After
		return
	}

	texture := barrier.Texture.(*Texture)
	first, last := barrier.Subresource, barrier.Subresource+1
	if barrier.Subresource == native.AllSubresources {
		first, last = 0, len(texture.states)
	}

	for i := first; i < last; i++ {
		if barrier.Kind == native.BarrierUnorderedAccess {
			if texture.states[i]&native.StateUnorderedAccess == 0 {
				c.device.fail("UAV barrier on texture %q subresource %d in state %s", texture.desc.DebugName, i, texture.states[i])
			}
			continue
		}
		if texture.states[i] != barrier.Before {
			c.device.fail("texture %q subresource %d transitioned from %s but is in %s", texture.desc.DebugName, i, barrier.Before, texture.states[i])
		}
		texture.states[i] = barrier.After
	}
}

func (c *CommandBuffer) SetPipeline(pipeline native.Pipeline) {
	c.pipeline = pipeline.(*Pipeline)
	c.record("SetPipeline", func() {
		if pipeline.(*Pipeline).destroyed {
			c.device.fail("executed a destroyed pipeline")
		}
	})
}

func (c *CommandBuffer) SetGraphicsLayout(layout native.BindingLayout) {
	c.record("SetGraphicsLayout", func() {})
}

func (c *CommandBuffer) SetComputeLayout(layout native.BindingLayout) {
	c.record("SetComputeLayout", func() {})
}

func (c *CommandBuffer) checkTable(table native.DescriptorHandle) {
	if table.Table != c.resources && table.Table != c.samplers {
		c.device.fail("descriptor table parameter points outside the bound descriptor tables")
	}
}

func (c *CommandBuffer) SetGraphicsTable(parameter int, table native.DescriptorHandle) {
	c.checkTable(table)
	c.record(fmt.Sprintf("SetGraphicsTable(%d)", parameter), func() {})
}

func (c *CommandBuffer) SetComputeTable(parameter int, table native.DescriptorHandle) {
	c.checkTable(table)
	c.record(fmt.Sprintf("SetComputeTable(%d)", parameter), func() {})
}

func (c *CommandBuffer) SetRenderTargets(targets []native.DescriptorHandle, depth *native.DescriptorHandle) {
	c.record("SetRenderTargets", func() {})
}

// view snapshots a descriptor at record time
func (c *CommandBuffer) view(handle native.DescriptorHandle) (native.ViewDesc, bool) {
	view, ok := c.device.Descriptor(handle)
	if !ok {
		c.device.fail("command refers to an unwritten descriptor")
	}
	return view, ok
}

// requireTextureView returns the subresources a view covers, one per array slice, after checking
// that each is in state
func (c *CommandBuffer) requireTextureView(view native.ViewDesc, state native.ResourceState, command string) (*Texture, []int, bool) {
	texture, ok := view.Texture.(*Texture)
	if !ok {
		return nil, nil, false
	}

	slices := 1
	if texture.desc.Dimension.IsArray() && view.ArrayCount > 1 {
		slices = view.ArrayCount
	}

	subresources := make([]int, 0, slices)
	for slice := view.ArrayIndex; slice < view.ArrayIndex+slices; slice++ {
		subresource := texture.subresource(slice, view.MipLevel)
		if subresource < 0 || subresource >= len(texture.states) {
			c.device.fail("%s on texture %q outside of its subresources", command, texture.desc.DebugName)
			return nil, nil, false
		}
		if texture.states[subresource]&state == 0 {
			c.device.fail("%s on texture %q subresource %d in state %s", command, texture.desc.DebugName, subresource, texture.states[subresource])
		}
		subresources = append(subresources, subresource)
	}
	return texture, subresources, true
}

func (c *CommandBuffer) ClearRenderTarget(target native.DescriptorHandle, color [4]float32) {
	view, ok := c.view(target)
	if !ok {
		return
	}

	c.record("ClearRenderTarget", func() {
		texture, subresources, ok := c.requireTextureView(view, native.StateRenderTarget, "ClearRenderTarget")
		if !ok {
			return
		}
		for _, subresource := range subresources {
			fill(texture.subresources[subresource], encodeFloat(texture.desc.Format, color))
		}
	})
}

func (c *CommandBuffer) ClearDepthStencil(target native.DescriptorHandle, clearDepth bool, depth float32, clearStencil bool, stencil uint8) {
	view, ok := c.view(target)
	if !ok {
		return
	}

	c.record("ClearDepthStencil", func() {
		texture, subresources, ok := c.requireTextureView(view, native.StateDepthWrite, "ClearDepthStencil")
		if !ok {
			return
		}

		size := layoutOf(texture.desc.Format).info.BytesPerPixel
		for _, subresource := range subresources {
			data := texture.subresources[subresource]
			for offset := 0; offset+size <= len(data); offset += size {
				copy(data[offset:], encodeDepth(texture.desc.Format, depth, stencil, clearDepth, clearStencil, data[offset:offset+size]))
			}
		}
	})
}

func (c *CommandBuffer) clearUnorderedAccess(name string, handle native.DescriptorHandle, texel func(native.Format) []byte, word uint32) {
	view, ok := c.view(handle)
	if !ok {
		return
	}

	c.record(name, func() {
		if view.Buffer != nil {
			buffer := view.Buffer.(*Buffer)
			if buffer.tracked() && buffer.state&native.StateUnorderedAccess == 0 {
				c.device.fail("%s on buffer %q in state %s", name, buffer.desc.DebugName, buffer.state)
			}
			if view.Offset+view.Size > len(buffer.data) {
				c.device.fail("%s overruns buffer %q", name, buffer.desc.DebugName)
				return
			}

			var pattern [4]byte
			binary.LittleEndian.PutUint32(pattern[:], word)
			fill(buffer.data[view.Offset:view.Offset+view.Size], pattern[:])
			return
		}

		texture, subresources, ok := c.requireTextureView(view, native.StateUnorderedAccess, name)
		if !ok {
			return
		}
		format := view.Format
		if format == native.FormatUnknown {
			format = texture.desc.Format
		}
		for _, subresource := range subresources {
			fill(texture.subresources[subresource], texel(format))
		}
	})
}

func (c *CommandBuffer) ClearUnorderedAccessFloat(view native.DescriptorHandle, values [4]float32) {
	c.clearUnorderedAccess("ClearUnorderedAccessFloat", view, func(format native.Format) []byte {
		return encodeFloat(format, values)
	}, math.Float32bits(values[0]))
}

func (c *CommandBuffer) ClearUnorderedAccessUint(view native.DescriptorHandle, values [4]uint32) {
	c.clearUnorderedAccess("ClearUnorderedAccessUint", view, func(format native.Format) []byte {
		return encodeUint(format, values)
	}, values[0])
}

func (c *CommandBuffer) requireBuffer(buffer *Buffer, state native.ResourceState, command string) {
	if buffer.tracked() && buffer.state&state == 0 {
		c.device.fail("%s on buffer %q in state %s", command, buffer.desc.DebugName, buffer.state)
	}
}

func (c *CommandBuffer) CopyBufferRegion(dst native.Buffer, dstOffset int, src native.Buffer, srcOffset int, size int) {
	dstBuffer := dst.(*Buffer)
	srcBuffer := src.(*Buffer)

	c.record("CopyBufferRegion", func() {
		c.requireBuffer(dstBuffer, native.StateCopyDest, "CopyBufferRegion")
		if srcBuffer != dstBuffer {
			c.requireBuffer(srcBuffer, native.StateCopySource, "CopyBufferRegion")
		} else if dstOffset < srcOffset+size && srcOffset < dstOffset+size {
			c.device.fail("CopyBufferRegion within buffer %q overlaps itself", dstBuffer.desc.DebugName)
			return
		}
		if dstOffset+size > len(dstBuffer.data) || srcOffset+size > len(srcBuffer.data) {
			c.device.fail("CopyBufferRegion of %d bytes overruns a buffer", size)
			return
		}
		copy(dstBuffer.data[dstOffset:dstOffset+size], srcBuffer.data[srcOffset:srcOffset+size])
	})
}

func copyRows(footprint native.Footprint, move func(packed, staged int)) {
	for z := 0; z < footprint.Depth; z++ {
		for y := 0; y < footprint.Height; y++ {
			row := z*footprint.Height + y
			move(row*footprint.RowSize, footprint.Offset+row*footprint.RowPitch)
		}
	}
}

func (c *CommandBuffer) CopyBufferToTexture(dst native.Texture, subresource int, src native.Buffer, footprint native.Footprint) {
	texture := dst.(*Texture)
	buffer := src.(*Buffer)

	c.record("CopyBufferToTexture", func() {
		if texture.states[subresource]&native.StateCopyDest == 0 {
			c.device.fail("CopyBufferToTexture on texture %q subresource %d in state %s", texture.desc.DebugName, subresource, texture.states[subresource])
		}
		c.requireBuffer(buffer, native.StateCopySource, "CopyBufferToTexture")
		if footprint.Offset+footprint.TotalBytes > len(buffer.data) {
			c.device.fail("CopyBufferToTexture footprint overruns buffer %q", buffer.desc.DebugName)
			return
		}

		data := texture.subresources[subresource]
		copyRows(footprint, func(packed, staged int) {
			copy(data[packed:packed+footprint.RowSize], buffer.data[staged:staged+footprint.RowSize])
		})
	})
}

func (c *CommandBuffer) CopyTextureToBuffer(dst native.Buffer, footprint native.Footprint, src native.Texture, subresource int) {
	buffer := dst.(*Buffer)
	texture := src.(*Texture)

	c.record("CopyTextureToBuffer", func() {
		if texture.states[subresource]&native.StateCopySource == 0 {
			c.device.fail("CopyTextureToBuffer on texture %q subresource %d in state %s", texture.desc.DebugName, subresource, texture.states[subresource])
		}
		c.requireBuffer(buffer, native.StateCopyDest, "CopyTextureToBuffer")
		if footprint.Offset+footprint.TotalBytes > len(buffer.data) {
			c.device.fail("CopyTextureToBuffer footprint overruns buffer %q", buffer.desc.DebugName)
			return
		}

		data := texture.subresources[subresource]
		copyRows(footprint, func(packed, staged int) {
			copy(buffer.data[staged:staged+footprint.RowSize], data[packed:packed+footprint.RowSize])
		})
	})
}

func (c *CommandBuffer) SetPrimitiveTopology(primitive native.PrimitiveType) {
	c.record("SetPrimitiveTopology", func() {})
}

func (c *CommandBuffer) SetVertexBuffers(startSlot int, views []native.VertexBufferView) {
	c.record("SetVertexBuffers", func() {})
}

func (c *CommandBuffer) SetIndexBuffer(view *native.IndexBufferView) {
	c.record("SetIndexBuffer", func() {})
}

func (c *CommandBuffer) SetViewports(viewports []native.Viewport) {
	c.record("SetViewports", func() {})
}

func (c *CommandBuffer) SetScissors(rects []native.Rect) {
	c.record("SetScissors", func() {})
}

func (c *CommandBuffer) SetStencilRef(ref uint8) {
	c.record("SetStencilRef", func() {})
}

func (c *CommandBuffer) requirePipeline(command string, compute bool) {
	if c.pipeline == nil {
		c.device.fail("%s recorded without a pipeline", command)
		return
	}
	if c.pipeline.IsCompute() != compute {
		c.device.fail("%s recorded with the wrong kind of pipeline", command)
	}
}

func (c *CommandBuffer) Draw(vertexCount, instanceCount, startVertex, startInstance int) {
	c.requirePipeline("Draw", false)
	c.record("Draw", func() { c.device.stats.Draws++ })
}

func (c *CommandBuffer) DrawIndexed(indexCount, instanceCount, startIndex, baseVertex, startInstance int) {
	c.requirePipeline("DrawIndexed", false)
	c.record("DrawIndexed", func() { c.device.stats.Draws++ })
}

func (c *CommandBuffer) DrawIndirect(args native.Buffer, offset int) {
	c.requirePipeline("DrawIndirect", false)
	buffer := args.(*Buffer)
	c.record("DrawIndirect", func() {
		c.requireBuffer(buffer, native.StateIndirectArgument, "DrawIndirect")
		c.device.stats.Draws++
	})
}

func (c *CommandBuffer) Dispatch(groupsX, groupsY, groupsZ int) {
	c.requirePipeline("Dispatch", true)
	c.record("Dispatch", func() { c.device.stats.Dispatches++ })
}

func (c *CommandBuffer) DispatchIndirect(args native.Buffer, offset int) {
	c.requirePipeline("DispatchIndirect", true)
	buffer := args.(*Buffer)
	c.record("DispatchIndirect", func() {
		c.requireBuffer(buffer, native.StateIndirectArgument, "DispatchIndirect")
		c.device.stats.Dispatches++
	})
}
