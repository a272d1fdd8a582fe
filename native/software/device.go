// Package software is a native device that executes command buffers on host memory. It validates
// barrier bookkeeping as it executes, which makes it suitable for headless runs and tests.
package software

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/rhicore/memutils"
	"github.com/vkngwrapper/rhicore/native"
)

const (
	defaultPlacementAlignment uint = 512
	defaultRowPitchAlignment  uint = 256
)

type Options struct {
	// DeferExecution keeps submitted command buffers queued until a fence wait needs their results
	// or ExecuteAll is called. Otherwise command buffers execute as soon as they are submitted.
	DeferExecution bool
	// PlacementAlignment is the staging offset alignment for texture copies, 512 if left empty
	PlacementAlignment uint
	// RowPitchAlignment is the staging row alignment for texture copies, 256 if left empty
	RowPitchAlignment uint
}

// Statistics counts native objects and commands
type Statistics struct {
	Buffers          int
	Textures         int
	DescriptorTables int
	BindingLayouts   int
	Pipelines        int
	CommandBuffers   int
	Submits          int
	Draws            int
	Dispatches       int
	Barriers         int
	Destroyed        int
}

type Device struct {
	options Options
	queue   *Queue
	removed error

	stats    Statistics
	executed []string
	errors   []error
}

var _ native.Device = &Device{}

func New(options Options) *Device {
	if options.PlacementAlignment == 0 {
		options.PlacementAlignment = defaultPlacementAlignment
	}
	if options.RowPitchAlignment == 0 {
		options.RowPitchAlignment = defaultRowPitchAlignment
	}

	device := &Device{options: options}
	device.queue = &Queue{device: device}
	return device
}

func (d *Device) Queue() *Queue {
	return d.queue
}

// Remove simulates device loss: every call to RemovedReason returns err from now on
func (d *Device) Remove(err error) {
	d.removed = err
}

func (d *Device) RemovedReason() error {
	return d.removed
}

// Errors lists the validation problems found while recording or executing commands
func (d *Device) Errors() []error {
	return d.errors
}

// ExecutedCommands lists the commands that have executed, in order
func (d *Device) ExecutedCommands() []string {
	return d.executed
}

func (d *Device) Statistics() Statistics {
	return d.stats
}

func (d *Device) fail(format string, args ...any) {
	d.errors = append(d.errors, errors.Newf(format, args...))
}

func (d *Device) FormatInfo(format native.Format) native.FormatInfo {
	return layoutOf(format).info
}

func (d *Device) PlacementAlignment() uint {
	return d.options.PlacementAlignment
}

func (d *Device) Footprint(desc native.TextureDesc, subresource int) native.Footprint {
	mips := desc.MipLevels
	if mips < 1 {
		mips = 1
	}

	width, height, depth := desc.MipExtent(subresource % mips)
	rowSize := width * layoutOf(desc.Format).info.BytesPerPixel
	rowPitch := memutils.AlignUp(rowSize, d.options.RowPitchAlignment)

	return native.Footprint{
		Format:     desc.Format,
		Width:      width,
		Height:     height,
		Depth:      depth,
		RowSize:    rowSize,
		RowPitch:   rowPitch,
		TotalBytes: rowPitch * height * depth,
	}
}

func (d *Device) CreateFence(initialValue uint64) (native.Fence, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	return &Fence{device: d, completed: initialValue}, nil
}

func (d *Device) CreateBuffer(desc native.BufferDesc) (native.Buffer, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	if desc.ByteSize < 0 {
		return nil, errors.Newf("invalid buffer size %d", desc.ByteSize)
	}

	d.stats.Buffers++
	return &Buffer{
		device: d,
		desc:   desc,
		data:   make([]byte, desc.ByteSize),
		state:  native.StateCommon,
	}, nil
}

func (d *Device) CreateTexture(desc native.TextureDesc) (native.Texture, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, errors.Newf("invalid texture extent %dx%d", desc.Width, desc.Height)
	}
	if desc.MipLevels < 1 {
		desc.MipLevels = 1
	}
	if desc.DepthOrArraySize < 1 {
		desc.DepthOrArraySize = 1
	}

	count := desc.MipLevels
	if desc.Dimension.IsArray() {
		count *= desc.ArraySize()
	}

	texture := &Texture{
		device:       d,
		desc:         desc,
		subresources: make([][]byte, count),
		states:       make([]native.ResourceState, count),
	}

	bytesPerPixel := layoutOf(desc.Format).info.BytesPerPixel
	for i := range texture.subresources {
		width, height, depth := desc.MipExtent(i % desc.MipLevels)
		texture.subresources[i] = make([]byte, width*height*depth*bytesPerPixel)
	}

	d.stats.Textures++
	return texture, nil
}

func (d *Device) CreateDescriptorTable(desc native.DescriptorTableDesc) (native.DescriptorTable, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	if desc.Count <= 0 {
		return nil, errors.Newf("invalid descriptor table size %d", desc.Count)
	}

	d.stats.DescriptorTables++
	return &DescriptorTable{
		device:  d,
		desc:    desc,
		entries: make([]descriptor, desc.Count),
	}, nil
}

func (d *Device) CreateBindingLayout(desc native.BindingLayoutDesc) (native.BindingLayout, error) {
	if d.removed != nil {
		return nil, d.removed
	}

	d.stats.BindingLayouts++
	return &BindingLayout{device: d, desc: desc}, nil
}

func (d *Device) CreateGraphicsPipeline(desc native.GraphicsPipelineDesc) (native.Pipeline, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	if desc.Layout == nil {
		return nil, errors.New("graphics pipeline created without a binding layout")
	}
	if len(desc.VS) == 0 {
		return nil, errors.New("graphics pipeline created without a vertex shader")
	}

	d.stats.Pipelines++
	return &Pipeline{device: d, graphics: &desc}, nil
}

func (d *Device) CreateComputePipeline(desc native.ComputePipelineDesc) (native.Pipeline, error) {
	if d.removed != nil {
		return nil, d.removed
	}
	if desc.Layout == nil {
		return nil, errors.New("compute pipeline created without a binding layout")
	}

	d.stats.Pipelines++
	return &Pipeline{device: d, compute: &desc}, nil
}

func (d *Device) CreateCommandBuffer() (native.CommandBuffer, error) {
	if d.removed != nil {
		return nil, d.removed
	}

	d.stats.CommandBuffers++
	return &CommandBuffer{device: d}, nil
}

func (d *Device) WriteDescriptor(dst native.DescriptorHandle, view native.ViewDesc) {
	table, ok := dst.Table.(*DescriptorTable)
	if !ok || dst.Index < 0 || dst.Index >= len(table.entries) {
		d.fail("descriptor write to invalid slot %d", dst.Index)
		return
	}

	table.entries[dst.Index] = descriptor{view: view, written: true}
}

func (d *Device) CopyDescriptors(dst native.DescriptorHandle, src native.DescriptorTable, srcIndices []int) {
	dstTable, ok := dst.Table.(*DescriptorTable)
	srcTable, srcOK := src.(*DescriptorTable)
	if !ok || !srcOK {
		d.fail("descriptor copy between foreign tables")
		return
	}
	if dst.Index < 0 || dst.Index+len(srcIndices) > len(dstTable.entries) {
		d.fail("descriptor copy of %d entries at %d overruns table of %d", len(srcIndices), dst.Index, len(dstTable.entries))
		return
	}

	for i, index := range srcIndices {
		if index < 0 || index >= len(srcTable.entries) {
			d.fail("descriptor copy from invalid slot %d", index)
			continue
		}
		dstTable.entries[dst.Index+i] = srcTable.entries[index]
	}
}

// Descriptor returns the view written into a descriptor slot
func (d *Device) Descriptor(handle native.DescriptorHandle) (native.ViewDesc, bool) {
	table, ok := handle.Table.(*DescriptorTable)
	if !ok || handle.Index < 0 || handle.Index >= len(table.entries) {
		return native.ViewDesc{}, false
	}
	entry := table.entries[handle.Index]
	return entry.view, entry.written
}

func (d *Device) String() string {
	return fmt.Sprintf("software.Device{buffers: %d, textures: %d, pipelines: %d}", d.stats.Buffers, d.stats.Textures, d.stats.Pipelines)
}
