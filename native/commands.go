package native

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type Rect struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

type VertexBufferView struct {
	Buffer Buffer
	Offset int
	Size   int
	Stride int
}

type IndexBufferView struct {
	Buffer Buffer
	Offset int
	Size   int
	Format Format
}

// CommandBuffer records commands for later submission to a Queue. A command buffer must be
// closed before it is submitted and reset before it is recorded again.
type CommandBuffer interface {
	Object

	Reset() error
	Close() error

	SetDescriptorTables(resources DescriptorTable, samplers DescriptorTable)
	Barriers(barriers []Barrier)

	SetPipeline(pipeline Pipeline)
	SetGraphicsLayout(layout BindingLayout)
	SetComputeLayout(layout BindingLayout)
	SetGraphicsTable(parameter int, table DescriptorHandle)
	SetComputeTable(parameter int, table DescriptorHandle)

	SetRenderTargets(targets []DescriptorHandle, depth *DescriptorHandle)
	ClearRenderTarget(target DescriptorHandle, color [4]float32)
	ClearDepthStencil(target DescriptorHandle, clearDepth bool, depth float32, clearStencil bool, stencil uint8)
	ClearUnorderedAccessFloat(view DescriptorHandle, values [4]float32)
	ClearUnorderedAccessUint(view DescriptorHandle, values [4]uint32)

	CopyBufferRegion(dst Buffer, dstOffset int, src Buffer, srcOffset int, size int)
	CopyBufferToTexture(dst Texture, subresource int, src Buffer, footprint Footprint)
	CopyTextureToBuffer(dst Buffer, footprint Footprint, src Texture, subresource int)

	SetPrimitiveTopology(primitive PrimitiveType)
	SetVertexBuffers(startSlot int, views []VertexBufferView)
	SetIndexBuffer(view *IndexBufferView)
	SetViewports(viewports []Viewport)
	SetScissors(rects []Rect)
	SetStencilRef(ref uint8)

	Draw(vertexCount, instanceCount, startVertex, startInstance int)
	DrawIndexed(indexCount, instanceCount, startIndex, baseVertex, startInstance int)
	DrawIndirect(args Buffer, offset int)
	Dispatch(groupsX, groupsY, groupsZ int)
	DispatchIndirect(args Buffer, offset int)
}
