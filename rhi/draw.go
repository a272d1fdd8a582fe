package rhi

import (
	"github.com/vkngwrapper/rhicore/native"
	"golang.org/x/exp/slog"
)

// mipExtent is the size of one dimension of a mip level
func mipExtent(size, mip int) int {
	return maxInt(size>>uint(mip), 1)
}

// targetExtent is the size of the draw's render area, from the depth target when there is one
func targetExtent(render *RenderState) (int, int, bool) {
	target := render.DepthTarget
	if target.Texture == nil {
		if len(render.Targets) == 0 {
			return 0, 0, false
		}
		target = render.Targets[0]
	}

	return mipExtent(target.Texture.desc.Width, target.MipLevel), mipExtent(target.Texture.desc.Height, target.MipLevel), true
}

func (d *Device) bindRenderTargets(render *RenderState) ([]native.DescriptorHandle, *native.DescriptorHandle, bool) {
	targets := make([]native.DescriptorHandle, 0, len(render.Targets))
	for _, target := range render.Targets {
		index, err := d.renderTargetView(target.Texture, target.ArrayIndex, target.MipLevel)
		if err != nil {
			d.signalError(err)
			return nil, nil, false
		}

		targets = append(targets, d.renderTargetHeap.Handle(index))
		d.tracker.RequireState(&target.Texture.resource, target.ArrayIndex, target.MipLevel, native.StateRenderTarget)
	}

	depth := render.DepthTarget
	if depth.Texture == nil {
		return targets, nil, true
	}

	index, err := d.depthStencilView(depth.Texture, depth.ArrayIndex, depth.MipLevel)
	if err != nil {
		d.signalError(err)
		return nil, nil, false
	}

	state := native.StateDepthRead
	ds := render.DepthStencil
	if ds.DepthWriteAll || ds.StencilWriteMask != 0 || render.ClearDepthTarget || render.ClearStencilTarget {
		state = native.StateDepthWrite
	}
	d.tracker.RequireState(&depth.Texture.resource, depth.ArrayIndex, depth.MipLevel, state)

	handle := d.depthStencilHeap.Handle(index)
	return targets, &handle, true
}

func (d *Device) clearRenderTargets(render *RenderState, targets []native.DescriptorHandle, depth *native.DescriptorHandle) {
	if render.ClearColorTarget {
		for i, target := range render.Targets {
			d.warnClearValue(target.Texture, render.ClearColor)
			d.cmd().ClearRenderTarget(targets[i], render.ClearColor.array())
			d.addCommands(1)
		}
	}

	if depth == nil || (!render.ClearDepthTarget && !render.ClearStencilTarget) {
		return
	}

	texture := render.DepthTarget.Texture
	if !texture.desc.UseClearValue {
		d.warn("depth target has no clear value", slog.String("Texture", texture.desc.DebugName))
	} else if render.ClearDepthTarget && texture.desc.ClearValue.R != render.ClearDepth {
		d.warn("depth clear value differs from the texture's clear value", slog.String("Texture", texture.desc.DebugName))
	}

	d.cmd().ClearDepthStencil(*depth, render.ClearDepthTarget, render.ClearDepth, render.ClearStencilTarget, render.ClearStencil)
	d.addCommands(1)
}

func nativeViewports(viewports []Viewport) []native.Viewport {
	result := make([]native.Viewport, len(viewports))
	for i, viewport := range viewports {
		result[i] = native.Viewport{
			X:        viewport.MinX,
			Y:        viewport.MinY,
			Width:    viewport.MaxX - viewport.MinX,
			Height:   viewport.MaxY - viewport.MinY,
			MinDepth: viewport.MinZ,
			MaxDepth: viewport.MaxZ,
		}
	}
	return result
}

// scissorRects uses the explicit rectangles when the rasterizer scissors, and otherwise clips each
// viewport to the render area
func scissorRects(render *RenderState) []native.Rect {
	if render.Raster.Scissor {
		rects := make([]native.Rect, len(render.ScissorRects))
		for i, rect := range render.ScissorRects {
			rects[i] = native.Rect{MinX: rect.MinX, MinY: rect.MinY, MaxX: rect.MaxX, MaxY: rect.MaxY}
		}
		return rects
	}

	width, height, ok := targetExtent(render)
	rects := make([]native.Rect, len(render.Viewports))
	for i, viewport := range render.Viewports {
		rect := native.Rect{
			MinX: int(viewport.MinX),
			MinY: int(viewport.MinY),
			MaxX: int(viewport.MaxX),
			MaxY: int(viewport.MaxY),
		}
		if ok {
			rect.MinX = maxInt(rect.MinX, 0)
			rect.MinY = maxInt(rect.MinY, 0)
			rect.MaxX = minInt(rect.MaxX, width)
			rect.MaxY = minInt(rect.MaxY, height)
		}
		rects[i] = rect
	}
	return rects
}

func (d *Device) applyGraphicsState(state *DrawCallState) bool {
	pipeline := d.graphicsPipeline(state)
	if pipeline == nil {
		return false
	}
	layout := pipeline.layout

	stages := make([]stageBinding, 0, len(layout.stages))
	for _, stage := range graphicsStages(state) {
		if stage.Shader != nil {
			stages = append(stages, stageBinding{shader: stage.Shader, bindings: stage})
		}
	}
	tables, ok := d.bindStages(stages)
	if !ok {
		return false
	}

	render := &state.RenderState
	if len(render.Viewports) > MaxViewports {
		d.warn("draw has too many viewports", slog.Int("Viewports", len(render.Viewports)))
		return false
	}

	targets, depth, ok := d.bindRenderTargets(render)
	if !ok {
		return false
	}
	d.commitBarriers()
	d.clearRenderTargets(render, targets, depth)

	pending := d.counter.Pending()
	layout.lastUse = pending
	pipeline.lastUse = pending

	cmd := d.cmd()
	if d.shadow.pipeline != pipeline {
		cmd.SetPipeline(pipeline.native)
		d.shadow.pipeline = pipeline
	}
	if d.shadow.graphicsLayout != layout {
		cmd.SetGraphicsLayout(layout.native)
		d.shadow.graphicsLayout = layout
	}

	if state.IndexBuffer != nil {
		d.tracker.RequireState(&state.IndexBuffer.resource, 0, 0, native.StateIndexBuffer)
	}
	for _, binding := range state.VertexBuffers {
		if binding.Buffer == nil {
			continue
		}
		if binding.Slot < 0 || binding.Slot >= MaxVertexBuffers {
			d.warn("vertex buffer slot out of range", slog.Int("Slot", binding.Slot))
			continue
		}
		d.tracker.RequireState(&binding.Buffer.resource, 0, 0, native.StateVertexAndConstantBuffer)
	}
	d.commitBarriers()

	if state.IndexBuffer != nil {
		view := native.IndexBufferView{
			Buffer: state.IndexBuffer.native,
			Offset: state.IndexBufferOffset,
			Size:   state.IndexBuffer.desc.ByteSize - state.IndexBufferOffset,
			Format: state.IndexBufferFormat,
		}
		if !d.shadow.indexBufferSet || d.shadow.indexBuffer != view {
			cmd.SetIndexBuffer(&view)
			d.shadow.indexBuffer = view
			d.shadow.indexBufferSet = true
		}
	}

	for _, binding := range state.VertexBuffers {
		if binding.Buffer == nil || binding.Slot < 0 || binding.Slot >= MaxVertexBuffers {
			continue
		}

		view := native.VertexBufferView{
			Buffer: binding.Buffer.native,
			Offset: binding.Offset,
			Size:   binding.Buffer.desc.ByteSize - binding.Offset,
			Stride: binding.Stride,
		}
		if !d.shadow.vertexBuffersSet[binding.Slot] || d.shadow.vertexBuffers[binding.Slot] != view {
			cmd.SetVertexBuffers(binding.Slot, []native.VertexBufferView{view})
			d.shadow.vertexBuffers[binding.Slot] = view
			d.shadow.vertexBuffersSet[binding.Slot] = true
		}
	}

	cmd.SetPrimitiveTopology(state.PrimitiveType)
	for i, table := range tables {
		cmd.SetGraphicsTable(i, table)
	}

	if len(render.Viewports) > 0 {
		cmd.SetViewports(nativeViewports(render.Viewports))
		cmd.SetScissors(scissorRects(render))
	}

	if d.shadow.setRenderTargets(targets, depth) {
		cmd.SetRenderTargets(targets, depth)
	}

	if render.DepthStencil.StencilEnable {
		cmd.SetStencilRef(render.DepthStencil.StencilRef)
	}

	d.addCommands(1)
	return true
}

func (d *Device) applyComputeState(state *DispatchState) bool {
	pipeline := d.computePipeline(state)
	if pipeline == nil {
		return false
	}
	layout := pipeline.layout

	tables, ok := d.bindStages([]stageBinding{{shader: state.Shader, bindings: &state.PipelineStageBindings}})
	if !ok {
		return false
	}
	d.commitBarriers()

	pending := d.counter.Pending()
	layout.lastUse = pending
	pipeline.lastUse = pending

	cmd := d.cmd()
	if d.shadow.pipeline != pipeline {
		cmd.SetPipeline(pipeline.native)
		d.shadow.pipeline = pipeline
	}
	if d.shadow.computeLayout != layout {
		cmd.SetComputeLayout(layout.native)
		d.shadow.computeLayout = layout
	}
	for i, table := range tables {
		cmd.SetComputeTable(i, table)
	}

	d.addCommands(1)
	return true
}

// Draw records one non-indexed draw per element of args, all sharing the same state
func (d *Device) Draw(state DrawCallState, args []DrawArguments) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.applyGraphicsState(&state) {
		return
	}

	cmd := d.cmd()
	for _, arg := range args {
		cmd.Draw(arg.VertexCount, arg.InstanceCount, arg.StartVertexLocation, arg.StartInstanceLocation)
	}
	d.addCommands(len(args))
	d.loadBalance()
}

// DrawIndexed records one indexed draw per element of args. VertexCount is the index count and
// StartVertexLocation the base vertex.
func (d *Device) DrawIndexed(state DrawCallState, args []DrawArguments) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.applyGraphicsState(&state) {
		return
	}

	cmd := d.cmd()
	for _, arg := range args {
		cmd.DrawIndexed(arg.VertexCount, arg.InstanceCount, arg.StartIndexLocation, arg.StartVertexLocation, arg.StartInstanceLocation)
	}
	d.addCommands(len(args))
	d.loadBalance()
}

// DrawIndirect records a draw whose arguments the GPU reads from args at offset
func (d *Device) DrawIndirect(state DrawCallState, args *Buffer, offset int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.applyGraphicsState(&state) {
		return
	}

	d.tracker.RequireState(&args.resource, 0, 0, native.StateIndirectArgument)
	d.commitBarriers()

	d.cmd().DrawIndirect(args.native, offset)
	d.addCommands(1)
	d.loadBalance()
}

func (d *Device) Dispatch(state DispatchState, groupsX, groupsY, groupsZ int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.applyComputeState(&state) {
		return
	}

	d.cmd().Dispatch(groupsX, groupsY, groupsZ)
	d.addCommands(1)
	d.loadBalance()
}

func (d *Device) DispatchIndirect(state DispatchState, args *Buffer, offset int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if !d.applyComputeState(&state) {
		return
	}

	d.tracker.RequireState(&args.resource, 0, 0, native.StateIndirectArgument)
	d.commitBarriers()

	d.cmd().DispatchIndirect(args.native, offset)
	d.addCommands(1)
	d.loadBalance()
}
