package native

// Fence is a native monotonically increasing counter signaled by a Queue
type Fence interface {
	Object
	CompletedValue() uint64
	// Wait blocks until CompletedValue is at least value. An error means the device was lost.
	Wait(value uint64) error
}

// Queue executes closed command buffers in submission order
type Queue interface {
	Submit(commandBuffer CommandBuffer) error
	Signal(fence Fence, value uint64) error
}

// CommandBufferFactory creates command buffers for a Queue
type CommandBufferFactory interface {
	CreateCommandBuffer() (CommandBuffer, error)
}

// Device creates native objects and writes native descriptors
type Device interface {
	CommandBufferFactory

	FormatInfo(format Format) FormatInfo
	// Footprint reports the staging layout of one texture subresource, with Offset left at 0
	Footprint(desc TextureDesc, subresource int) Footprint
	// PlacementAlignment is the alignment a staging offset needs to be used as a texture copy source
	PlacementAlignment() uint

	CreateFence(initialValue uint64) (Fence, error)
	CreateBuffer(desc BufferDesc) (Buffer, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateDescriptorTable(desc DescriptorTableDesc) (DescriptorTable, error)
	CreateBindingLayout(desc BindingLayoutDesc) (BindingLayout, error)
	CreateGraphicsPipeline(desc GraphicsPipelineDesc) (Pipeline, error)
	CreateComputePipeline(desc ComputePipelineDesc) (Pipeline, error)

	WriteDescriptor(dst DescriptorHandle, view ViewDesc)
	// CopyDescriptors copies src[srcIndices[i]] into dst.Index+i
	CopyDescriptors(dst DescriptorHandle, src DescriptorTable, srcIndices []int)

	// RemovedReason returns a non-nil error once the device has been lost
	RemovedReason() error
}
